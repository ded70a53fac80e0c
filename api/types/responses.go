package types

import (
	"github.com/killallgit/summarizer-api/internal/models"
	"github.com/killallgit/summarizer-api/internal/services/summarize"
)

// Status constants for API responses
const (
	StatusOK         = "ok"
	StatusError      = "error"
	StatusProcessing = "processing"
	StatusFailed     = "failed"
	StatusQueued     = "queued"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	BaseResponse
}

// NewErrorResponse builds the standard error body.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{BaseResponse{Status: StatusError, Message: message}}
}

// SummarizeResponse wraps a completed pipeline result.
type SummarizeResponse struct {
	BaseResponse
	Result *models.Result `json:"result"`
}

// JobResponse wraps an asynchronous job record.
type JobResponse struct {
	BaseResponse
	Job *summarize.Job `json:"job"`
}

// VideoInfoResponse wraps the transcript listing for a video.
type VideoInfoResponse struct {
	BaseResponse
	Info *summarize.VideoInfo `json:"info"`
}

// ReportsResponse for report lists
type ReportsResponse struct {
	BaseResponse
	Reports []models.Report `json:"reports"`
	Count   int             `json:"count"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
}

// SingleReportResponse for getting a single report
type SingleReportResponse struct {
	BaseResponse
	Report *models.Report `json:"report"`
}

// ConfigResponse exposes the non-secret effective configuration.
type ConfigResponse struct {
	BaseResponse
	Model         string   `json:"model"`
	SummaryType   string   `json:"summary_type"`
	ChunkDuration int      `json:"chunk_duration"`
	Language      string   `json:"language"`
	OutputFormat  string   `json:"output_format"`
	SummaryTypes  []string `json:"available_summary_types"`
	Models        []string `json:"available_models"`
	OutputFormats []string `json:"available_output_formats"`
}
