package summarize

import (
	"context"

	"github.com/killallgit/summarizer-api/internal/models"
	"github.com/killallgit/summarizer-api/pkg/gemini"
	"github.com/killallgit/summarizer-api/pkg/transcript"
	"github.com/killallgit/summarizer-api/pkg/youtube"
)

// TranscriptSource defines the interface for fetching timed transcripts
type TranscriptSource interface {
	Fetch(ctx context.Context, videoID, language string) ([]transcript.Entry, error)
	ListTranscripts(ctx context.Context, videoID string) ([]youtube.TranscriptInfo, error)
}

// Summarizer defines the interface for the LLM summarization collaborator
type Summarizer interface {
	Model() string
	Summarize(ctx context.Context, transcriptText string, style gemini.Style) (*gemini.Summary, error)
	SummarizeChunks(ctx context.Context, chunks []transcript.Chunk, style gemini.Style) []gemini.ChunkSummary
	CombineSummaries(ctx context.Context, chunkSummaries []gemini.ChunkSummary) (*gemini.Summary, error)
	ExtractKeyQuotes(ctx context.Context, transcriptText string) (string, error)
}

// Persister stores completed run results. Persistence runs after the
// pipeline succeeds and never flips the result's success flag.
type Persister interface {
	Persist(ctx context.Context, result *models.Result) (*models.Report, error)
	SaveFiles(result *models.Result) ([]string, error)
}

// SummarizeService defines the business logic interface for running
// summarization pipelines
type SummarizeService interface {
	Summarize(ctx context.Context, req Request) *models.Result
	VideoInfo(ctx context.Context, urlOrID string) (*VideoInfo, error)
}
