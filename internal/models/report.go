package models

import (
	"time"

	"gorm.io/gorm"
)

// Report is the persisted record of a completed summarization run.
// Payload holds the full Result as JSON for machine consumption; the scalar
// columns exist so reports can be listed and filtered without decoding it.
type Report struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	VideoID          string         `gorm:"index" json:"video_id"`
	VideoURL         string         `json:"video_url"`
	SummaryType      string         `json:"summary_type"`
	ChunkDuration    int            `json:"chunk_duration"`
	Language         string         `json:"language"`
	Model            string         `json:"model"`
	Success          bool           `json:"success"`
	Error            string         `json:"error,omitempty"`
	Summary          string         `gorm:"type:text" json:"summary"`
	EntryCount       int            `json:"entry_count"`
	ChunkCount       int            `json:"chunk_count"`
	TotalDuration    float64        `json:"total_duration"`
	CompressionRatio float64        `json:"compression_ratio"`
	Payload          string         `gorm:"type:text" json:"-"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Report
func (Report) TableName() string {
	return "reports"
}
