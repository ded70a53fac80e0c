package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/killallgit/summarizer-api/pkg/transcript"
)

// Generator is the raw text generation collaborator: send prompt text,
// receive generated text or an error. The production implementation wraps
// the Gemini API; tests substitute fakes.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// geminiGenerator calls the Gemini API through the official SDK.
type geminiGenerator struct {
	client *genai.Client
	model  string
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var builder strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			builder.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(builder.String())
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}

	return text, nil
}

// Client drives summarization calls with bounded retry.
type Client struct {
	gen        Generator
	model      string
	maxRetries int
	log        *slog.Logger
}

// NewClient creates a summarization client backed by the Gemini API.
// requestTimeout bounds each generation call; zero means no client-side
// timeout.
func NewClient(ctx context.Context, apiKey, model string, maxRetries int, requestTimeout time.Duration, log *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, clientConfig(apiKey, requestTimeout))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return NewClientWithGenerator(&geminiGenerator{client: client, model: model}, model, maxRetries, log), nil
}

func clientConfig(apiKey string, requestTimeout time.Duration) *genai.ClientConfig {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if requestTimeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: requestTimeout}
	}
	return cfg
}

// NewClientWithGenerator creates a summarization client around an arbitrary
// generator. Used by tests and alternative backends.
func NewClientWithGenerator(gen Generator, model string, maxRetries int, log *slog.Logger) *Client {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{gen: gen, model: model, maxRetries: maxRetries, log: log}
}

// Model returns the model identifier this client generates with.
func (c *Client) Model() string {
	return c.model
}

// Summarize generates a summary of transcriptText in the requested style,
// retrying failed generation calls up to the configured attempt budget.
// Empty or whitespace-only input is rejected before any network call.
func (c *Client) Summarize(ctx context.Context, transcriptText string, style Style) (*Summary, error) {
	if strings.TrimSpace(transcriptText) == "" {
		return nil, fmt.Errorf("empty transcript text provided")
	}

	prompt := SummaryPrompt(transcriptText, style)

	text, err := c.generateWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Text:             text,
		Style:            style,
		Model:            c.model,
		SourceLength:     len(transcriptText),
		SummaryLength:    len(text),
		CompressionRatio: compressionRatio(len(text), len(transcriptText)),
	}, nil
}

// SummarizeChunks applies Summarize to each chunk in order. A chunk whose
// calls all fail gets the fixed fallback record; one bad chunk never aborts
// the batch.
func (c *Client) SummarizeChunks(ctx context.Context, chunks []transcript.Chunk, style Style) []ChunkSummary {
	summaries := make([]ChunkSummary, 0, len(chunks))

	for i, chunk := range chunks {
		c.log.Info("summarizing chunk", "chunk", i+1, "total", len(chunks))

		chunkText := fmt.Sprintf("[%s - %s] %s", chunk.TimestampStart, chunk.TimestampEnd, chunk.Text)
		summary, err := c.Summarize(ctx, chunkText, style)
		if err != nil {
			c.log.Warn("failed to summarize chunk", "chunk", i+1, "error", err)
			summaries = append(summaries, failedChunkSummary(i, chunk, style))
			continue
		}

		summaries = append(summaries, ChunkSummary{
			Index:            i,
			StartTime:        chunk.StartTime,
			EndTime:          chunk.EndTime,
			TimestampStart:   chunk.TimestampStart,
			TimestampEnd:     chunk.TimestampEnd,
			OriginalText:     chunk.Text,
			Summary:          summary.Text,
			Style:            style,
			SourceLength:     len(chunk.Text),
			SummaryLength:    summary.SummaryLength,
			CompressionRatio: summary.CompressionRatio,
		})
	}

	return summaries
}

// CombineSummaries synthesizes one overall summary out of per-chunk
// summaries.
func (c *Client) CombineSummaries(ctx context.Context, chunkSummaries []ChunkSummary) (*Summary, error) {
	if len(chunkSummaries) == 0 {
		return nil, fmt.Errorf("no chunk summaries provided")
	}

	prompt := CombinedSummaryPrompt(chunkSummaries)

	text, err := c.generateWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	sourceLength := 0
	for _, chunk := range chunkSummaries {
		sourceLength += chunk.SummaryLength
	}

	summary := &Summary{
		Text:          text,
		Style:         StyleDetailed,
		Model:         c.model,
		SourceLength:  sourceLength,
		SummaryLength: len(text),
	}
	if sourceLength > 0 {
		summary.CompressionRatio = compressionRatio(len(text), sourceLength)
	}

	return summary, nil
}

// ExtractKeyQuotes pulls 5-10 notable timestamped quotes out of a
// transcript.
func (c *Client) ExtractKeyQuotes(ctx context.Context, transcriptText string) (string, error) {
	if strings.TrimSpace(transcriptText) == "" {
		return "", fmt.Errorf("empty transcript text provided")
	}

	return c.generateWithRetry(ctx, KeyQuotesPrompt(transcriptText))
}

// generateWithRetry runs the generation call up to maxRetries times,
// sequentially, returning the first usable response.
func (c *Client) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		c.log.Debug("generating content", "attempt", attempt, "max_attempts", c.maxRetries)

		text, err := c.gen.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}

		lastErr = err
		c.log.Warn("generation attempt failed", "attempt", attempt, "error", err)
	}

	return "", fmt.Errorf("all %d generation attempts failed: %w", c.maxRetries, lastErr)
}
