package chunk

import (
	"fmt"
	"strings"
)

// Default window sizes used by the summarization and translation pipelines.
const (
	SummaryMaxChars = 3000
	SummaryOverlap  = 200

	TranslateMaxChars = 2500
	TranslateOverlap  = 100
)

// Split cuts text into overlapping windows of at most maxSize characters.
// Cut points are pulled back to the last ". " boundary when one exists in the
// back two-thirds of the window, so chunks end on sentence boundaries without
// degenerating into tiny fragments. Every returned chunk is trimmed and
// non-empty; inputs that fit in a single window come back as one chunk.
func Split(text string, maxSize, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= maxSize {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + maxSize
		if end >= len(text) {
			if tail := strings.TrimSpace(text[start:]); tail != "" {
				chunks = append(chunks, tail)
			}
			break
		}

		window := text[start:end]
		if p := strings.LastIndex(window, ". "); p > maxSize/3 {
			end = start + p + 1
		}
		if c := strings.TrimSpace(text[start:end]); c != "" {
			chunks = append(chunks, c)
		}

		next := end - overlap
		if next < 0 {
			next = 0
		}
		if next <= start {
			// Overlap would swallow the whole advance; continue from the cut
			// point so the offset strictly increases.
			next = end
		}
		if next <= start {
			panic(fmt.Sprintf("chunk: no forward progress at offset %d (maxSize=%d overlap=%d)", start, maxSize, overlap))
		}
		start = next
	}
	return chunks
}
