package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/killallgit/summarizer-api/internal/models"
	"github.com/killallgit/summarizer-api/pkg/config"
	"github.com/killallgit/summarizer-api/pkg/transcript"
)

// Service implements the ReportService interface
type Service struct {
	repository ReportRepository
	output     config.OutputConfig
	log        *slog.Logger
}

// Ensure Service implements ReportService interface
var _ ReportService = (*Service)(nil)

func NewService(repository ReportRepository, output config.OutputConfig, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repository: repository,
		output:     output,
		log:        log,
	}
}

// Persist stores the run outcome in the database. The full result is kept
// as a JSON payload alongside the scalar columns used for listing.
func (s *Service) Persist(ctx context.Context, result *models.Result) (*models.Report, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encoding result payload: %w", err)
	}

	report := &models.Report{
		VideoID:       result.VideoID,
		VideoURL:      result.VideoURL,
		SummaryType:   string(result.SummaryType),
		ChunkDuration: result.ChunkDuration,
		Language:      result.Language,
		Model:         modelUsed(result),
		Success:       result.Success,
		Error:         result.Error,
		Summary:       result.SummaryText(),
		EntryCount:    len(result.Transcript),
		ChunkCount:    len(result.Chunks),
		TotalDuration: transcript.TotalDuration(result.Transcript),
		Payload:       string(payload),
	}
	if result.Summary != nil {
		report.CompressionRatio = result.Summary.CompressionRatio
	}

	if err := s.repository.CreateReport(ctx, report); err != nil {
		return nil, err
	}
	s.log.Info("report persisted", "report_id", report.ID, "video_id", report.VideoID)
	return report, nil
}

// Render produces the report document in the given format.
func (s *Service) Render(result *models.Result, format string) ([]byte, error) {
	switch format {
	case "json":
		return renderJSON(result)
	case "markdown":
		return renderMarkdown(result), nil
	case "text":
		return renderText(result), nil
	case "docx":
		return renderDocx(result)
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// transcriptFile is the layout of the saved transcript JSON.
type transcriptFile struct {
	VideoID   string             `json:"video_id"`
	VideoURL  string             `json:"video_url"`
	Timestamp string             `json:"timestamp"`
	Entries   []transcript.Entry `json:"transcript"`
	Chunks    []transcript.Chunk `json:"transcript_chunks"`
}

// SaveFiles writes the transcript and summary files enabled in the output
// configuration and returns the paths written.
func (s *Service) SaveFiles(result *models.Result) ([]string, error) {
	if err := os.MkdirAll(s.output.Dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	base := fmt.Sprintf("video_%s_%s", result.VideoID, result.RequestedAt.Format("20060102_150405"))
	var written []string

	if s.output.SaveTranscripts && len(result.Transcript) > 0 {
		data, err := json.MarshalIndent(transcriptFile{
			VideoID:   result.VideoID,
			VideoURL:  result.VideoURL,
			Timestamp: result.RequestedAt.Format(time.RFC3339),
			Entries:   result.Transcript,
			Chunks:    result.Chunks,
		}, "", "  ")
		if err != nil {
			return written, fmt.Errorf("encoding transcript: %w", err)
		}
		path := filepath.Join(s.output.Dir, base+"_transcript.json")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return written, fmt.Errorf("writing transcript: %w", err)
		}
		s.log.Info("transcript saved", "path", path)
		written = append(written, path)
	}

	if s.output.SaveSummaries {
		data, err := s.Render(result, s.output.Format)
		if err != nil {
			return written, err
		}
		path := filepath.Join(s.output.Dir, fmt.Sprintf("%s_summary.%s", base, s.output.Format))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return written, fmt.Errorf("writing summary: %w", err)
		}
		s.log.Info("summary saved", "path", path)
		written = append(written, path)
	}

	return written, nil
}

func (s *Service) GetReportByID(ctx context.Context, id uint) (*models.Report, error) {
	return s.repository.GetReportByID(ctx, id)
}

func (s *Service) GetReportsByVideoID(ctx context.Context, videoID string, limit int) ([]models.Report, error) {
	return s.repository.GetReportsByVideoID(ctx, videoID, limit)
}

func (s *Service) ListReports(ctx context.Context, page, limit int) ([]models.Report, int64, error) {
	return s.repository.ListReports(ctx, page, limit)
}

func (s *Service) DeleteReport(ctx context.Context, id uint) error {
	return s.repository.DeleteReport(ctx, id)
}
