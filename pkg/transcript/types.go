package transcript

import "strings"

// Entry is one timed caption unit from the source video.
type Entry struct {
	Text         string  `json:"text"`
	Start        float64 `json:"start"`
	Duration     float64 `json:"duration"`
	End          float64 `json:"end"`
	Timestamp    string  `json:"timestamp"`
	TimestampEnd string  `json:"timestamp_end"`
}

// NewEntry builds an Entry with derived fields (end time, display timestamps)
// populated from start and duration. Text is trimmed of surrounding whitespace.
func NewEntry(text string, start, duration float64) Entry {
	end := start + duration
	return Entry{
		Text:         strings.TrimSpace(text),
		Start:        start,
		Duration:     duration,
		End:          end,
		Timestamp:    FormatTimestamp(start),
		TimestampEnd: FormatTimestamp(end),
	}
}

// Chunk is a contiguous run of entries grouped by elapsed time.
type Chunk struct {
	StartTime      float64 `json:"start_time"`
	EndTime        float64 `json:"end_time"`
	TimestampStart string  `json:"timestamp_start"`
	TimestampEnd   string  `json:"timestamp_end"`
	Text           string  `json:"text"`
	Entries        []Entry `json:"entries"`
}

// Text renders a transcript as readable text, one entry per line.
// When includeTimestamps is true each line is prefixed with "[MM:SS]".
func Text(entries []Entry, includeTimestamps bool) string {
	if len(entries) == 0 {
		return ""
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		if includeTimestamps {
			lines = append(lines, "["+entry.Timestamp+"] "+entry.Text)
		} else {
			lines = append(lines, entry.Text)
		}
	}

	return strings.Join(lines, "\n")
}

// TotalDuration returns the end time of the last entry, or 0 for an empty
// transcript.
func TotalDuration(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	return entries[len(entries)-1].End
}
