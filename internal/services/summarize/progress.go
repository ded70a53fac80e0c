package summarize

// Stage identifies where a running pipeline currently is.
type Stage string

const (
	StageResolving       Stage = "resolving"
	StageFetching        Stage = "fetching_transcript"
	StageChunking        Stage = "chunking"
	StageSummarizing     Stage = "summarizing"
	StageChunkSummaries  Stage = "chunk_summaries"
	StageCombining       Stage = "combining"
	StageExtractingQuote Stage = "extracting_quotes"
	StageSaving          Stage = "saving"
	StageDone            Stage = "done"
	StageFailed          Stage = "failed"
)

// Progress is one notification emitted as a pipeline advances.
type Progress struct {
	Stage   Stage  `json:"stage"`
	Message string `json:"message"`
	Percent int    `json:"percent"`
}

// ProgressSink receives progress notifications. Publish must not block;
// slow or absent consumers never stall the pipeline.
type ProgressSink interface {
	Publish(p Progress)
}

// NopSink discards all notifications.
type NopSink struct{}

func (NopSink) Publish(Progress) {}

// SinkFunc adapts a function to the ProgressSink interface.
type SinkFunc func(Progress)

func (f SinkFunc) Publish(p Progress) { f(p) }
