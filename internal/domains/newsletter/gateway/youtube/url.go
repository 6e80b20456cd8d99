package youtube

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidURL is returned when no known YouTube URL shape matches.
var ErrInvalidURL = errors.New("invalid YouTube URL - could not extract video ID")

// Known URL shapes, tried in order. The capture group stops at the
// first of & newline ? #. Ids that match are passed through
// uninspected - no length or charset check.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&\n?#]+)`),
}

var atPrefixRegex = regexp.MustCompile(`^@+`)

// CleanURL canonicalizes a pasted URL: strips leading @ characters
// (common when copying from chat apps) and prefixes https:// when no
// scheme is present.
func CleanURL(raw string) string {
	cleaned := atPrefixRegex.ReplaceAllString(raw, "")

	hasScheme := strings.HasPrefix(cleaned, "http://") || strings.HasPrefix(cleaned, "https://")
	if !hasScheme {
		cleaned = "https://" + cleaned
	}

	return cleaned
}

// ExtractVideoID pulls the video identifier out of a canonical URL.
func ExtractVideoID(url string) (string, error) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], nil
		}
	}
	return "", ErrInvalidURL
}

// ParseVideoURL is the one-call form: normalize then extract.
func ParseVideoURL(raw string) (string, error) {
	return ExtractVideoID(CleanURL(raw))
}
