package summarize_test

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/killallgit/summarizer-api/internal/models"
	"github.com/killallgit/summarizer-api/internal/services/reports"
	"github.com/killallgit/summarizer-api/internal/services/summarize"
	"github.com/killallgit/summarizer-api/pkg/config"
	"github.com/killallgit/summarizer-api/pkg/gemini"
	"github.com/killallgit/summarizer-api/pkg/transcript"
	"github.com/killallgit/summarizer-api/pkg/youtube"
)

type PipelineTestSuite struct {
	t             *testing.T
	db            *gorm.DB
	reportService *reports.Service
	pipeline      *summarize.Service
	jobs          *summarize.JobManager
}

type stubSource struct {
	entries []transcript.Entry
}

func (s *stubSource) Fetch(ctx context.Context, videoID, language string) ([]transcript.Entry, error) {
	return s.entries, nil
}

func (s *stubSource) ListTranscripts(ctx context.Context, videoID string) ([]youtube.TranscriptInfo, error) {
	return []youtube.TranscriptInfo{{LanguageCode: "en", Language: "English"}}, nil
}

type stubSummarizer struct{}

func (s *stubSummarizer) Model() string { return "stub-model" }

func (s *stubSummarizer) Summarize(ctx context.Context, text string, style gemini.Style) (*gemini.Summary, error) {
	return &gemini.Summary{
		Text:             "A full video summary.",
		Style:            style,
		Model:            s.Model(),
		SourceLength:     len(text),
		SummaryLength:    21,
		CompressionRatio: 0.5,
	}, nil
}

func (s *stubSummarizer) SummarizeChunks(ctx context.Context, chunks []transcript.Chunk, style gemini.Style) []gemini.ChunkSummary {
	summaries := make([]gemini.ChunkSummary, 0, len(chunks))
	for i, chunk := range chunks {
		summaries = append(summaries, gemini.ChunkSummary{
			Index:          i,
			StartTime:      chunk.StartTime,
			EndTime:        chunk.EndTime,
			TimestampStart: chunk.TimestampStart,
			TimestampEnd:   chunk.TimestampEnd,
			OriginalText:   chunk.Text,
			Summary:        fmt.Sprintf("Summary of segment %d.", i+1),
			Style:          style,
		})
	}
	return summaries
}

func (s *stubSummarizer) CombineSummaries(ctx context.Context, chunkSummaries []gemini.ChunkSummary) (*gemini.Summary, error) {
	return &gemini.Summary{Text: "Combined narrative.", Model: s.Model()}, nil
}

func (s *stubSummarizer) ExtractKeyQuotes(ctx context.Context, text string) (string, error) {
	return "1. \"A memorable quote.\" [00:10]", nil
}

func longTranscript() []transcript.Entry {
	entries := make([]transcript.Entry, 0, 30)
	for i := 0; i < 30; i++ {
		text := fmt.Sprintf("Sentence number %d about an interesting topic.", i+1)
		entries = append(entries, transcript.NewEntry(text, float64(i*10), 10))
	}
	return entries
}

func setupPipelineSuite(t *testing.T) *PipelineTestSuite {
	tempDir := t.TempDir()

	db, err := gorm.Open(sqlite.Open(filepath.Join(tempDir, "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Report{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	reportService := reports.NewService(reports.NewRepository(db), config.OutputConfig{
		Format:        "json",
		Dir:           tempDir,
		SaveSummaries: true,
	}, nil)

	defaults := config.DefaultsConfig{SummaryType: "detailed", ChunkDuration: 60, Language: "en"}
	pipeline := summarize.NewService(
		&stubSource{entries: longTranscript()},
		&stubSummarizer{},
		defaults,
		nil,
		summarize.WithPersister(reportService),
	)

	return &PipelineTestSuite{
		t:             t,
		db:            db,
		reportService: reportService,
		pipeline:      pipeline,
		jobs:          summarize.NewJobManager(pipeline, nil, nil),
	}
}

func TestPipelineIntegration_FullWorkflow(t *testing.T) {
	suite := setupPipelineSuite(t)
	ctx := context.Background()

	result := suite.pipeline.Summarize(ctx, summarize.Request{
		URL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Persist: true,
	})

	if !result.Success {
		t.Fatalf("Summarize() success = false, error = %q", result.Error)
	}
	if result.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("VideoID = %q, want dQw4w9WgXcQ", result.VideoID)
	}
	if result.Summary == nil || result.Summary.Text == "" {
		t.Error("Expected a whole-video summary")
	}
	if len(result.ChunkSummaries) != 5 {
		t.Errorf("ChunkSummaries length = %d, want 5", len(result.ChunkSummaries))
	}
	if result.CombinedSummary == nil {
		t.Error("Expected a combined summary for a multi-chunk run")
	}
	if result.KeyQuotes == "" {
		t.Error("Expected key quotes for a long transcript")
	}

	// The run must be queryable from the report store.
	stored, err := suite.reportService.GetReportsByVideoID(ctx, "dQw4w9WgXcQ", 10)
	if err != nil {
		t.Fatalf("GetReportsByVideoID() error = %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("Stored reports = %d, want 1", len(stored))
	}
	if !stored[0].Success {
		t.Error("Stored report success = false, want true")
	}
	if stored[0].ChunkCount != 5 {
		t.Errorf("Stored ChunkCount = %d, want 5", stored[0].ChunkCount)
	}

	// The stored payload must round-trip back into a result.
	var roundTrip models.Result
	if err := json.Unmarshal([]byte(stored[0].Payload), &roundTrip); err != nil {
		t.Fatalf("Payload unmarshal error = %v", err)
	}
	if roundTrip.VideoID != result.VideoID {
		t.Errorf("Round-trip VideoID = %q, want %q", roundTrip.VideoID, result.VideoID)
	}
	if len(roundTrip.ChunkSummaries) != len(result.ChunkSummaries) {
		t.Errorf("Round-trip ChunkSummaries = %d, want %d", len(roundTrip.ChunkSummaries), len(result.ChunkSummaries))
	}
}

func TestPipelineIntegration_JobLifecycle(t *testing.T) {
	suite := setupPipelineSuite(t)

	job := suite.jobs.Start(context.Background(), summarize.Request{
		URL:     "https://youtu.be/dQw4w9WgXcQ",
		Persist: true,
	})

	suite.jobs.Wait()

	finished, err := suite.jobs.Get(job.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if finished.Status != summarize.JobStatusCompleted {
		t.Fatalf("Job status = %q, want %q (error: %s)", finished.Status, summarize.JobStatusCompleted, finished.Error)
	}
	if finished.Result == nil || !finished.Result.Success {
		t.Error("Expected a successful result on the finished job")
	}

	stored, err := suite.reportService.GetReportsByVideoID(context.Background(), "dQw4w9WgXcQ", 10)
	if err != nil {
		t.Fatalf("GetReportsByVideoID() error = %v", err)
	}
	if len(stored) != 1 {
		t.Errorf("Stored reports = %d, want 1", len(stored))
	}
}

func TestPipelineIntegration_ConcurrentJobs(t *testing.T) {
	suite := setupPipelineSuite(t)

	numJobs := 5
	ids := make([]string, 0, numJobs)
	for i := 0; i < numJobs; i++ {
		job := suite.jobs.Start(context.Background(), summarize.Request{
			URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		})
		ids = append(ids, job.ID)
	}

	done := make(chan struct{})
	go func() {
		suite.jobs.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Jobs did not finish in time")
	}

	for i, id := range ids {
		job, err := suite.jobs.Get(id)
		if err != nil {
			t.Errorf("Get() for job %d error = %v", i+1, err)
			continue
		}
		if job.Status != summarize.JobStatusCompleted {
			t.Errorf("Job %d status = %q, want completed", i+1, job.Status)
		}
	}
}
