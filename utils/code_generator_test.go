// file: utils/code_generator_test.go
package utils

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hackCodePattern = regexp.MustCompile(`^HACK-[0-9A-F]{8}$`)

func TestGenerateHackCodeFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := GenerateHackCode()
		assert.Regexp(t, hackCodePattern, code)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

func TestGenerateTeamID(t *testing.T) {
	id := GenerateTeamID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, GenerateTeamID())
}
