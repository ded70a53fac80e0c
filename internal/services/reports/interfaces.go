package reports

import (
	"context"

	"github.com/killallgit/summarizer-api/internal/models"
)

// ReportRepository defines the interface for report persistence
type ReportRepository interface {
	CreateReport(ctx context.Context, report *models.Report) error
	GetReportByID(ctx context.Context, id uint) (*models.Report, error)
	GetReportsByVideoID(ctx context.Context, videoID string, limit int) ([]models.Report, error)
	ListReports(ctx context.Context, page, limit int) ([]models.Report, int64, error)
	DeleteReport(ctx context.Context, id uint) error
}

// ReportService defines the business logic interface for report operations
type ReportService interface {
	// Persist stores the run outcome in the database and returns the record.
	Persist(ctx context.Context, result *models.Result) (*models.Report, error)

	// Render produces the report document in the given format. The docx
	// format is binary; the rest are UTF-8 text.
	Render(result *models.Result, format string) ([]byte, error)

	// SaveFiles writes the transcript and summary files configured for the
	// run and returns the paths written.
	SaveFiles(result *models.Result) ([]string, error)

	// Read operations
	GetReportByID(ctx context.Context, id uint) (*models.Report, error)
	GetReportsByVideoID(ctx context.Context, videoID string, limit int) ([]models.Report, error)
	ListReports(ctx context.Context, page, limit int) ([]models.Report, int64, error)

	// DeleteReport removes a stored report.
	DeleteReport(ctx context.Context, id uint) error
}
