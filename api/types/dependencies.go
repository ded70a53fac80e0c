package types

import (
	"github.com/killallgit/summarizer-api/internal/database"
	"github.com/killallgit/summarizer-api/internal/metrics"
	"github.com/killallgit/summarizer-api/internal/services/reports"
	"github.com/killallgit/summarizer-api/internal/services/summarize"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB               *database.DB
	SummarizeService summarize.SummarizeService
	JobManager       *summarize.JobManager
	ReportService    reports.ReportService
	Metrics          *metrics.Metrics

	// ProgressHub is the websocket hub jobs broadcast through. Handlers
	// only ever publish; the ws package owns subscription.
	ProgressHub summarize.Broadcaster
}
