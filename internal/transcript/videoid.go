package transcript

import (
	"regexp"
	"strings"
)

var bareVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// Ordered from most to least specific; all YouTube URL families the service
// has seen in the wild.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.|m\.)?(?:youtube\.com/(?:watch\?v=|embed/|v/)|youtu\.be/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?i)v=([a-zA-Z0-9_-]{11})(?:&|\s|$)`),
	regexp.MustCompile(`(?i)youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?i)youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?i)youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?i)youtube\.com/v/([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID pulls the 11-character video ID out of a YouTube URL or a
// bare ID. Returns "" when nothing matches.
func ExtractVideoID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if bareVideoID.MatchString(raw) {
		return raw
	}
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}
	return ""
}
