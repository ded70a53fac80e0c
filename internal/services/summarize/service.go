package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/killallgit/summarizer-api/internal/metrics"
	"github.com/killallgit/summarizer-api/internal/models"
	"github.com/killallgit/summarizer-api/pkg/config"
	"github.com/killallgit/summarizer-api/pkg/gemini"
	"github.com/killallgit/summarizer-api/pkg/transcript"
	"github.com/killallgit/summarizer-api/pkg/youtube"
)

// keyQuotesMinLength is the transcript text length below which quote
// extraction is skipped.
const keyQuotesMinLength = 500

// Request describes one summarization run. Zero values fall back to the
// configured defaults.
type Request struct {
	URL           string
	Style         gemini.Style
	ChunkDuration int
	Language      string
	SaveFiles     bool
	Persist       bool
	Progress      ProgressSink
}

// VideoInfo describes a video's available transcripts without running a
// summarization.
type VideoInfo struct {
	VideoID     string                   `json:"video_id"`
	VideoURL    string                   `json:"video_url"`
	Transcripts []youtube.TranscriptInfo `json:"available_transcripts"`
}

// Service implements the SummarizeService interface. One Summarize call is
// one self-contained pipeline run; concurrent calls share nothing but the
// read-only collaborators.
type Service struct {
	source     TranscriptSource
	summarizer Summarizer
	persister  Persister
	metrics    *metrics.Metrics
	defaults   config.DefaultsConfig
	log        *slog.Logger
}

// Ensure Service implements SummarizeService interface
var _ SummarizeService = (*Service)(nil)

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithPersister sets the report persistence collaborator.
func WithPersister(p Persister) ServiceOption {
	return func(s *Service) {
		s.persister = p
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(source TranscriptSource, summarizer Summarizer, defaults config.DefaultsConfig, log *slog.Logger, opts ...ServiceOption) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{
		source:     source,
		summarizer: summarizer,
		defaults:   defaults,
		log:        log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize runs the full pipeline for one video and always returns a
// result record. Only identifier resolution and transcript fetch failures
// are fatal; every later stage leaves its field absent and the run
// successful.
func (s *Service) Summarize(ctx context.Context, req Request) *models.Result {
	style := req.Style
	if style == "" {
		style = gemini.Style(s.defaults.SummaryType)
	}
	chunkDuration := req.ChunkDuration
	if chunkDuration == 0 {
		chunkDuration = s.defaults.ChunkDuration
	}
	language := req.Language
	if language == "" {
		language = s.defaults.Language
	}
	progress := req.Progress
	if progress == nil {
		progress = NopSink{}
	}

	result := models.NewResult(req.URL, style, chunkDuration, language)
	log := s.log.With("video_url", req.URL)
	log.Info("starting summarization", "style", style, "chunk_duration", chunkDuration)
	if s.metrics != nil {
		s.metrics.IncPipelinesStarted()
	}

	// Step 1: resolve the video identifier. Fatal on failure.
	progress.Publish(Progress{Stage: StageResolving, Message: "resolving video identifier", Percent: 5})
	videoID, ok := youtube.ExtractVideoID(req.URL)
	if !ok {
		return s.fail(result, progress, fmt.Sprintf("could not resolve identifier: %s", req.URL))
	}
	result.VideoID = videoID
	log = log.With("video_id", videoID)

	// Step 2: fetch the transcript. Fatal on failure or empty result.
	progress.Publish(Progress{Stage: StageFetching, Message: "fetching transcript", Percent: 15})
	entries, err := s.source.Fetch(ctx, videoID, language)
	if err != nil {
		return s.fail(result, progress, fmt.Sprintf("failed to extract transcript: %v", err))
	}
	if len(entries) == 0 {
		return s.fail(result, progress, "failed to extract transcript")
	}
	result.Transcript = entries
	result.Metadata[models.MetaTranscriptEntries] = len(entries)
	result.Metadata[models.MetaTotalDuration] = transcript.TotalDuration(entries)
	log.Info("transcript fetched", "entries", len(entries))

	// Step 3: group the transcript into time-bounded chunks.
	progress.Publish(Progress{Stage: StageChunking, Message: "chunking transcript", Percent: 25})
	chunks, err := transcript.ChunkByDuration(entries, chunkDuration)
	if err != nil {
		return s.fail(result, progress, fmt.Sprintf("invalid chunk duration: %v", err))
	}
	result.Chunks = chunks
	result.Metadata[models.MetaNumChunks] = len(chunks)
	log.Info("transcript chunked", "chunks", len(chunks))

	// Step 4: whole-transcript summary. Non-fatal.
	progress.Publish(Progress{Stage: StageSummarizing, Message: "summarizing transcript", Percent: 40})
	fullText := transcript.Text(entries, true)
	summary, err := s.summarizer.Summarize(ctx, fullText, style)
	if err != nil {
		log.Warn("whole-transcript summary failed", "error", err)
		if s.metrics != nil {
			s.metrics.IncGenerationFailures()
		}
	} else {
		result.Summary = summary
	}

	// Steps 5-6: per-chunk breakdown and combined summary, only when the
	// video spans more than one chunk. Non-fatal.
	if len(chunks) > 1 {
		progress.Publish(Progress{Stage: StageChunkSummaries, Message: "summarizing chunks", Percent: 60})
		result.ChunkSummaries = s.summarizer.SummarizeChunks(ctx, chunks, gemini.StyleKeyPoints)

		progress.Publish(Progress{Stage: StageCombining, Message: "combining chunk summaries", Percent: 75})
		combined, err := s.summarizer.CombineSummaries(ctx, result.ChunkSummaries)
		if err != nil {
			log.Warn("combined summary failed", "error", err)
			if s.metrics != nil {
				s.metrics.IncGenerationFailures()
			}
		} else {
			result.CombinedSummary = combined
		}
	}

	// Step 7: key quotes, only for substantial transcripts. Non-fatal.
	if len(fullText) > keyQuotesMinLength {
		progress.Publish(Progress{Stage: StageExtractingQuote, Message: "extracting key quotes", Percent: 85})
		quotes, err := s.summarizer.ExtractKeyQuotes(ctx, fullText)
		if err != nil {
			log.Warn("key quote extraction failed", "error", err)
			if s.metrics != nil {
				s.metrics.IncGenerationFailures()
			}
		} else {
			result.KeyQuotes = quotes
		}
	}

	// Step 8: derived metadata.
	result.Metadata[models.MetaTotalTextLength] = len(fullText)
	if result.Summary != nil {
		result.Metadata[models.MetaSummaryLength] = result.Summary.SummaryLength
		result.Metadata[models.MetaCompressionRatio] = result.Summary.CompressionRatio
	} else {
		result.Metadata[models.MetaSummaryLength] = 0
		result.Metadata[models.MetaCompressionRatio] = 0
	}
	result.Metadata[models.MetaProcessingCompleted] = nowISO()
	result.Metadata[models.MetaModelUsed] = s.summarizer.Model()

	result.Success = true
	log.Info("summarization completed")

	// Step 9: persistence, requested by the caller. Failures are logged and
	// never flip the success flag.
	if s.persister != nil && (req.Persist || req.SaveFiles) {
		progress.Publish(Progress{Stage: StageSaving, Message: "saving results", Percent: 95})
		if req.Persist {
			if _, err := s.persister.Persist(ctx, result); err != nil {
				log.Error("persisting report failed", "error", err)
			}
		}
		if req.SaveFiles {
			if _, err := s.persister.SaveFiles(result); err != nil {
				log.Error("saving result files failed", "error", err)
			}
		}
	}

	progress.Publish(Progress{Stage: StageDone, Message: "done", Percent: 100})
	return result
}

// VideoInfo resolves an identifier and lists the video's available
// transcripts.
func (s *Service) VideoInfo(ctx context.Context, urlOrID string) (*VideoInfo, error) {
	videoID, ok := youtube.ExtractVideoID(urlOrID)
	if !ok {
		return nil, fmt.Errorf("could not resolve identifier: %s", urlOrID)
	}

	transcripts, err := s.source.ListTranscripts(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("listing transcripts: %w", err)
	}

	return &VideoInfo{
		VideoID:     videoID,
		VideoURL:    youtube.WatchURL(videoID),
		Transcripts: transcripts,
	}, nil
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (s *Service) fail(result *models.Result, progress ProgressSink, message string) *models.Result {
	s.log.Error("summarization failed", "video_url", result.VideoURL, "error", message)
	if s.metrics != nil {
		s.metrics.IncPipelinesFailed()
	}
	progress.Publish(Progress{Stage: StageFailed, Message: message, Percent: 100})
	return result.Fail(message)
}
