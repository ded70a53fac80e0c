package types

// SummarizeRequest is the body for summarization endpoints.
type SummarizeRequest struct {
	URL           string `json:"url" binding:"required"`
	SummaryType   string `json:"summary_type,omitempty"`
	ChunkDuration int    `json:"chunk_duration,omitempty"`
	Language      string `json:"language,omitempty"`
	SaveFiles     bool   `json:"save_files,omitempty"`
}

// VideoInfoRequest is the body for the video info endpoint.
type VideoInfoRequest struct {
	URL string `json:"url" binding:"required"`
}
