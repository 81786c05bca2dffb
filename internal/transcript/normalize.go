package transcript

import (
	"fmt"
	"strings"
)

// The transcript provider's result shape has shifted repeatedly across
// versions, so normalization probes for capabilities instead of assuming a
// type. These interfaces are the closed set of shapes the normalizer
// recognizes; a provider result may implement any subset of them.

// TranscriptFinder locates a transcript for one of the given language codes.
type TranscriptFinder interface {
	FindTranscript(languageCodes []string) (any, error)
}

// Fetcher materializes a located transcript into its timed content.
type Fetcher interface {
	Fetch() (any, error)
}

// SnippetSource exposes timed items directly.
type SnippetSource interface {
	Snippets() []any
}

// GeneratedLister exposes the auto-generated transcript group.
type GeneratedLister interface {
	GeneratedTranscripts() []any
}

// ManualLister exposes the manually created transcript group.
type ManualLister interface {
	ManuallyCreatedTranscripts() []any
}

// LanguageCoded reports the transcript's language code.
type LanguageCoded interface {
	LanguageCode() string
}

// LineSource is the legacy retrieval surface.
type LineSource interface {
	GetLines() []any
}

// TranscriptSource is the oldest retrieval surface.
type TranscriptSource interface {
	GetTranscript() any
}

// NormalizationError reports that every extraction strategy came up empty.
type NormalizationError struct {
	Attempted []string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("no extractable transcript after strategies: %s", strings.Join(e.Attempted, ", "))
}

// Normalize converts an opaque provider result into ordered timed segments
// plus a best-effort language code. Strategies run in a fixed order, each only
// when the previous one produced nothing, and none of them propagates a
// failure — the only error is exhaustion of the whole chain.
func Normalize(result any) ([]Segment, string, error) {
	working := result
	var attempted []string
	var segments []Segment
	var language string

	// 1. A transcript list: find a transcript by language (English first,
	// then whatever the generated and manual groups advertise), materialize
	// it, and continue against the materialized object.
	attempted = append(attempted, "find_transcript")
	if finder, ok := working.(TranscriptFinder); ok {
		probe(func() {
			langs := []string{"en"}
			if g, ok := working.(GeneratedLister); ok {
				for _, t := range g.GeneratedTranscripts() {
					if lc := languageOf(t); lc != "" {
						langs = append(langs, lc)
					}
				}
			}
			if m, ok := working.(ManualLister); ok {
				for _, t := range m.ManuallyCreatedTranscripts() {
					if lc := languageOf(t); lc != "" {
						langs = append(langs, lc)
					}
				}
			}
			for _, lang := range langs {
				found, err := finder.FindTranscript([]string{lang})
				if err != nil || found == nil {
					continue
				}
				if f, ok := found.(Fetcher); ok {
					if got, err := f.Fetch(); err == nil && got != nil {
						found = got
					}
				} else if t, ok := found.(TranscriptSource); ok {
					if got := t.GetTranscript(); got != nil {
						found = got
					}
				}
				working = found
				return
			}
		})
	}

	// 2. Direct timed items on the (possibly replaced) object.
	attempted = append(attempted, "snippets")
	if src, ok := working.(SnippetSource); ok {
		probe(func() {
			if lc := languageOf(working); lc != "" {
				language = lc
			}
			segments = extractItems(src.Snippets())
		})
	}

	// 3. Generated then manually created transcript groups.
	if len(segments) == 0 {
		attempted = append(attempted, "transcript_groups")
		probe(func() {
			var members []any
			if g, ok := working.(GeneratedLister); ok {
				members = append(members, g.GeneratedTranscripts()...)
			}
			if m, ok := working.(ManualLister); ok {
				members = append(members, m.ManuallyCreatedTranscripts()...)
			}
			for _, member := range members {
				if language == "" {
					if lc := languageOf(member); lc != "" {
						language = lc
					}
				}
				if src, ok := member.(SnippetSource); ok {
					segments = append(segments, extractItems(src.Snippets())...)
				}
			}
		})
	}

	// 4. The object is itself an ordered collection of timed records.
	if len(segments) == 0 {
		attempted = append(attempted, "plain_sequence")
		probe(func() {
			items, ok := asSlice(working)
			if !ok {
				return
			}
			segments = extractItems(items)
			if language == "" {
				for _, item := range items {
					if lc := languageOf(item); lc != "" {
						language = lc
						break
					}
				}
			}
		})
	}

	// 5. Last resort: legacy retrieval methods.
	if len(segments) == 0 {
		attempted = append(attempted, "get_lines")
		probe(func() {
			switch v := working.(type) {
			case LineSource:
				segments = extractItems(v.GetLines())
			case TranscriptSource:
				if items, ok := asSlice(v.GetTranscript()); ok {
					segments = extractItems(items)
				}
			}
		})
	}

	if len(segments) == 0 {
		return nil, "", &NormalizationError{Attempted: attempted}
	}
	return segments, language, nil
}

// probe runs one extraction strategy, absorbing panics from misbehaving
// provider shapes so the chain can fall through to the next strategy.
func probe(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

func extractItems(items []any) []Segment {
	var segments []Segment
	for _, item := range items {
		if seg, ok := segmentFromItem(item); ok {
			segments = append(segments, seg)
		}
	}
	return segments
}
