// file: utils/code_generator.go
package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateHackCode returns a new event code of the form HACK-XXXXXXXX
// (8 uppercase hex digits). Codes are generated server-side and never
// reused; uniqueness is backed by the document key.
func GenerateHackCode() string {
	hex := strings.Replace(uuid.New().String(), "-", "", -1)[:8]
	return "HACK-" + strings.ToUpper(hex)
}

// GenerateTeamID returns the UUID shared by all members of one
// registration call.
func GenerateTeamID() string {
	return uuid.New().String()
}
