package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{
			name:     "watch URL",
			input:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
			ok:       true,
		},
		{
			name:     "watch URL with extra params",
			input:    "https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ&t=42s",
			expected: "dQw4w9WgXcQ",
			ok:       true,
		},
		{
			name:     "short URL",
			input:    "https://youtu.be/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
			ok:       true,
		},
		{
			name:     "embed URL",
			input:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
			ok:       true,
		},
		{
			name:     "bare video ID",
			input:    "dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
			ok:       true,
		},
		{
			name:  "unrelated URL",
			input: "https://example.com/watch?v=nope",
			ok:    false,
		},
		{
			name:  "too short",
			input: "abc123",
			ok:    false,
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, id)
			}
		})
	}
}

func TestWatchURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", WatchURL("dQw4w9WgXcQ"))
}
