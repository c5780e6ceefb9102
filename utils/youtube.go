// file: utils/youtube.go
package utils

import (
	"errors"
	"regexp"
	"strings"
)

var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/v/([a-zA-Z0-9_-]{11})`),
}

// ExtractYouTubeVideoID pulls the 11-character video ID out of the
// common YouTube URL formats. Returns "" when none match.
func ExtractYouTubeVideoID(url string) string {
	if url == "" {
		return ""
	}
	for _, p := range youtubePatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// ValidateYouTubeURL checks the URL is a YouTube link and returns its
// video ID.
func ValidateYouTubeURL(url string) (string, error) {
	if url == "" {
		return "", errors.New("URL is required")
	}
	videoID := ExtractYouTubeVideoID(url)
	if videoID == "" {
		return "", errors.New("Invalid YouTube URL format")
	}
	lower := strings.ToLower(url)
	if !strings.Contains(lower, "youtube.com") && !strings.Contains(lower, "youtu.be") {
		return "", errors.New("URL must be from YouTube")
	}
	return videoID, nil
}
