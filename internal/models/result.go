package models

import (
	"time"

	"github.com/killallgit/summarizer-api/pkg/gemini"
	"github.com/killallgit/summarizer-api/pkg/transcript"
)

// Metadata keys populated by the pipeline. The structured (JSON) rendering
// preserves these verbatim; document renderings humanize them.
const (
	MetaTranscriptEntries   = "transcript_entries"
	MetaTotalDuration       = "total_duration"
	MetaNumChunks           = "num_chunks"
	MetaTotalTextLength     = "total_text_length"
	MetaSummaryLength       = "summary_length"
	MetaCompressionRatio    = "compression_ratio"
	MetaProcessingCompleted = "processing_completed"
	MetaModelUsed           = "model_used"
)

// Result is the accumulated record of one summarization pipeline run.
// It is created empty when a run starts and filled append-only as stages
// complete; optional fields stay nil/empty when their stage failed or was
// skipped.
type Result struct {
	VideoURL      string       `json:"video_url"`
	VideoID       string       `json:"video_id,omitempty"`
	SummaryType   gemini.Style `json:"summary_type"`
	ChunkDuration int          `json:"chunk_duration"`
	Language      string       `json:"language"`
	RequestedAt   time.Time    `json:"timestamp"`

	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	Transcript      []transcript.Entry    `json:"transcript,omitempty"`
	Chunks          []transcript.Chunk    `json:"transcript_chunks,omitempty"`
	Summary         *gemini.Summary       `json:"summary,omitempty"`
	ChunkSummaries  []gemini.ChunkSummary `json:"chunk_summaries,omitempty"`
	CombinedSummary *gemini.Summary       `json:"combined_summary,omitempty"`
	KeyQuotes       string                `json:"key_quotes,omitempty"`

	Metadata map[string]any `json:"metadata"`
}

// NewResult creates the empty record for a run about to start.
func NewResult(videoURL string, style gemini.Style, chunkDuration int, language string) *Result {
	return &Result{
		VideoURL:      videoURL,
		SummaryType:   style,
		ChunkDuration: chunkDuration,
		Language:      language,
		RequestedAt:   time.Now().UTC(),
		Metadata:      map[string]any{},
	}
}

// Fail marks the run as failed with a human-readable message.
func (r *Result) Fail(message string) *Result {
	r.Success = false
	r.Error = message
	return r
}

// SummaryText returns the whole-transcript summary text, or "" when the
// summary stage produced nothing.
func (r *Result) SummaryText() string {
	if r.Summary == nil {
		return ""
	}
	return r.Summary.Text
}
