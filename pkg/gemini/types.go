package gemini

import (
	"math"

	"github.com/killallgit/summarizer-api/pkg/transcript"
)

// Style selects the summary template sent to the model.
type Style string

const (
	StyleDetailed    Style = "detailed"
	StyleBrief       Style = "brief"
	StyleKeyPoints   Style = "key_points"
	StyleTimestamped Style = "timestamped"
)

// Styles lists every supported summary style.
func Styles() []Style {
	return []Style{StyleDetailed, StyleBrief, StyleKeyPoints, StyleTimestamped}
}

// ValidStyle reports whether s names a supported summary style.
func ValidStyle(s string) bool {
	switch Style(s) {
	case StyleDetailed, StyleBrief, StyleKeyPoints, StyleTimestamped:
		return true
	}
	return false
}

// FallbackChunkSummary is substituted when every attempt to summarize one
// chunk fails; the batch keeps going with the remaining chunks.
const FallbackChunkSummary = "Summary generation failed for this segment."

// Summary is the outcome of one successful summarization call.
type Summary struct {
	Text             string  `json:"summary"`
	Style            Style   `json:"summary_type"`
	Model            string  `json:"model_used"`
	SourceLength     int     `json:"original_length"`
	SummaryLength    int     `json:"summary_length"`
	CompressionRatio float64 `json:"compression_ratio"`
}

// ChunkSummary is the per-chunk result of a batch summarization. A failed
// chunk carries the fixed fallback text, zero summary length, and zero ratio.
type ChunkSummary struct {
	Index            int     `json:"chunk_index"`
	StartTime        float64 `json:"start_time"`
	EndTime          float64 `json:"end_time"`
	TimestampStart   string  `json:"timestamp_start"`
	TimestampEnd     string  `json:"timestamp_end"`
	OriginalText     string  `json:"original_text"`
	Summary          string  `json:"summary"`
	Style            Style   `json:"summary_type"`
	SourceLength     int     `json:"original_length"`
	SummaryLength    int     `json:"summary_length"`
	CompressionRatio float64 `json:"compression_ratio"`
}

// failedChunkSummary builds the fallback record for a chunk whose generation
// calls all failed.
func failedChunkSummary(index int, chunk transcript.Chunk, style Style) ChunkSummary {
	return ChunkSummary{
		Index:            index,
		StartTime:        chunk.StartTime,
		EndTime:          chunk.EndTime,
		TimestampStart:   chunk.TimestampStart,
		TimestampEnd:     chunk.TimestampEnd,
		OriginalText:     chunk.Text,
		Summary:          FallbackChunkSummary,
		Style:            style,
		SourceLength:     len(chunk.Text),
		SummaryLength:    0,
		CompressionRatio: 0,
	}
}

// compressionRatio returns len(summary)/len(source) rounded to 3 decimals.
// Callers guarantee a non-empty source, so the division is always defined.
func compressionRatio(summaryLength, sourceLength int) float64 {
	return math.Round(float64(summaryLength)/float64(sourceLength)*1000) / 1000
}
