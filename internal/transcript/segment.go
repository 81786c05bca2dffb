package transcript

import "strings"

// Segment is one timed unit of transcript text.
type Segment struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// JoinText assembles the plain text of a transcript for summarization,
// skipping whitespace-only segments.
func JoinText(segments []Segment) string {
	pieces := make([]string, 0, len(segments))
	for _, s := range segments {
		if t := strings.TrimSpace(s.Text); t != "" {
			pieces = append(pieces, t)
		}
	}
	return strings.Join(pieces, " ")
}
