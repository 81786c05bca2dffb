package model

// MoodInterval is the sentiment of one fixed-width slice of a transcript.
// Intervals whose sentiment inference failed carry UNKNOWN with a zero score;
// they are emitted rather than omitted so the trace stays contiguous.
type MoodInterval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Mood  string  `json:"mood"`
	Score float64 `json:"score"`
}

// UnknownMood is the degraded label for a bucket whose inference failed.
const UnknownMood = "UNKNOWN"

// Result is the response payload of a summarization run. Note records the
// translation provenance; SourceLanguage is nil when no language signal was
// available; MoodIntervals is only present when a mood trace was requested.
type Result struct {
	Summary        string         `json:"summary"`
	Note           string         `json:"note,omitempty"`
	SourceLanguage *string        `json:"transcript_language,omitempty"`
	MoodIntervals  []MoodInterval `json:"mood_intervals,omitempty"`
}
