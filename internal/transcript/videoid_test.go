package transcript

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"standard watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch URL without scheme", "youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short URL", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"embed URL", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"legacy v URL", "https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"mobile URL", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch URL with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"uppercase host", "HTTPS://WWW.YOUTUBE.COM/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"bare video ID", "dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"bare ID with whitespace", "  dQw4w9WgXcQ  ", "dQw4w9WgXcQ"},
		{"empty input", "", ""},
		{"unrelated URL", "https://example.com/watch?v=short", ""},
		{"ID too short", "abc123", ""},
		{"ID too long", "abcdefghijklmnop", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractVideoID(tt.input); got != tt.expected {
				t.Errorf("ExtractVideoID(%q): expected %q, got %q", tt.input, tt.expected, got)
			}
		})
	}
}
