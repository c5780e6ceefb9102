// file: utils/youtube_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYouTubeVideoID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"https://vimeo.com/123456", ""},
		{"not a url", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractYouTubeVideoID(tc.url), tc.url)
	}
}

func TestValidateYouTubeURL(t *testing.T) {
	id, err := ValidateYouTubeURL("https://youtu.be/dQw4w9WgXcQ")
	assert.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", id)

	_, err = ValidateYouTubeURL("")
	assert.Error(t, err)

	_, err = ValidateYouTubeURL("https://vimeo.com/123456")
	assert.Error(t, err)
}
