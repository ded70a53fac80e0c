package reports

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/killallgit/summarizer-api/internal/models"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements ReportRepository interface
var _ ReportRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateReport(ctx context.Context, report *models.Report) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	return nil
}

func (r *Repository) GetReportByID(ctx context.Context, id uint) (*models.Report, error) {
	var report models.Report
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("report %d not found", id)
		}
		return nil, fmt.Errorf("getting report: %w", err)
	}
	return &report, nil
}

func (r *Repository) GetReportsByVideoID(ctx context.Context, videoID string, limit int) ([]models.Report, error) {
	var reports []models.Report
	query := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("getting reports for video %s: %w", videoID, err)
	}
	return reports, nil
}

func (r *Repository) ListReports(ctx context.Context, page, limit int) ([]models.Report, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Report{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting reports: %w", err)
	}

	var reports []models.Report
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reports).Error; err != nil {
		return nil, 0, fmt.Errorf("listing reports: %w", err)
	}
	return reports, total, nil
}

func (r *Repository) DeleteReport(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Report{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("report %d not found", id)
	}
	return nil
}
