package gemini

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/summarizer-api/pkg/transcript"
)

// fakeGenerator scripts generation outcomes per call.
type fakeGenerator struct {
	calls     int
	responses []string
	errs      []error
	// failFor makes every call whose prompt contains the given substring fail.
	failFor string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if f.failFor != "" && strings.Contains(prompt, f.failFor) {
		f.calls++
		return "", fmt.Errorf("scripted failure")
	}

	idx := f.calls
	f.calls++

	if idx < len(f.errs) && f.errs[idx] != nil {
		return "", f.errs[idx]
	}
	if idx < len(f.responses) {
		return f.responses[idx], nil
	}
	return "generated summary", nil
}

func newTestClient(gen Generator) *Client {
	return NewClientWithGenerator(gen, "gemini-1.5-flash", 3, nil)
}

func TestClientConfigAppliesRequestTimeout(t *testing.T) {
	cfg := clientConfig("key", 45*time.Second)
	require.NotNil(t, cfg.HTTPClient)
	assert.Equal(t, 45*time.Second, cfg.HTTPClient.Timeout)

	// Zero means no client-side timeout.
	cfg = clientConfig("key", 0)
	assert.Nil(t, cfg.HTTPClient)
}

func TestSummarize_Success(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"short summary"}}
	client := newTestClient(gen)

	source := "[00:00] a transcript with enough text to compress"
	summary, err := client.Summarize(context.Background(), source, StyleBrief)
	require.NoError(t, err)

	assert.Equal(t, "short summary", summary.Text)
	assert.Equal(t, StyleBrief, summary.Style)
	assert.Equal(t, "gemini-1.5-flash", summary.Model)
	assert.Equal(t, len(source), summary.SourceLength)
	assert.Equal(t, len("short summary"), summary.SummaryLength)
	assert.InDelta(t, float64(len("short summary"))/float64(len(source)), summary.CompressionRatio, 0.001)
	assert.Greater(t, summary.CompressionRatio, 0.0)
	assert.Equal(t, 1, gen.calls)
}

func TestSummarize_RejectsEmptyInput(t *testing.T) {
	gen := &fakeGenerator{}
	client := newTestClient(gen)

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := client.Summarize(context.Background(), input, StyleDetailed)
		assert.Error(t, err)
	}

	// No network call was made.
	assert.Equal(t, 0, gen.calls)
}

func TestSummarize_RetriesThenSucceeds(t *testing.T) {
	gen := &fakeGenerator{
		errs:      []error{fmt.Errorf("transient"), fmt.Errorf("transient")},
		responses: []string{"", "", "eventual summary"},
	}
	client := newTestClient(gen)

	summary, err := client.Summarize(context.Background(), "some transcript", StyleDetailed)
	require.NoError(t, err)
	assert.Equal(t, "eventual summary", summary.Text)
	assert.Equal(t, 3, gen.calls)
}

func TestSummarize_ExhaustsAttempts(t *testing.T) {
	gen := &fakeGenerator{
		errs: []error{fmt.Errorf("boom"), fmt.Errorf("boom"), fmt.Errorf("boom")},
	}
	client := newTestClient(gen)

	_, err := client.Summarize(context.Background(), "some transcript", StyleDetailed)
	require.Error(t, err)
	assert.Equal(t, 3, gen.calls)
	assert.Contains(t, err.Error(), "3 generation attempts failed")
}

func TestSummarizeChunks_MiddleChunkFails(t *testing.T) {
	chunks := []transcript.Chunk{
		{TimestampStart: "00:00", TimestampEnd: "01:00", Text: "first chunk text"},
		{TimestampStart: "01:00", TimestampEnd: "02:00", Text: "poison chunk text"},
		{TimestampStart: "02:00", TimestampEnd: "03:00", Text: "third chunk text"},
	}

	gen := &fakeGenerator{failFor: "poison"}
	client := newTestClient(gen)

	summaries := client.SummarizeChunks(context.Background(), chunks, StyleKeyPoints)
	require.Len(t, summaries, 3)

	assert.Equal(t, "generated summary", summaries[0].Summary)
	assert.Greater(t, summaries[0].CompressionRatio, 0.0)

	assert.Equal(t, FallbackChunkSummary, summaries[1].Summary)
	assert.Equal(t, 0, summaries[1].SummaryLength)
	assert.Equal(t, 0.0, summaries[1].CompressionRatio)
	assert.Equal(t, "poison chunk text", summaries[1].OriginalText)

	assert.Equal(t, "generated summary", summaries[2].Summary)

	for i, summary := range summaries {
		assert.Equal(t, i, summary.Index)
		assert.Equal(t, StyleKeyPoints, summary.Style)
	}
}

func TestCombineSummaries(t *testing.T) {
	client := newTestClient(&fakeGenerator{responses: []string{"overall synthesis"}})

	chunkSummaries := []ChunkSummary{
		{TimestampStart: "00:00", TimestampEnd: "01:00", Summary: "part one", SummaryLength: 8},
		{TimestampStart: "01:00", TimestampEnd: "02:00", Summary: "part two", SummaryLength: 8},
	}

	combined, err := client.CombineSummaries(context.Background(), chunkSummaries)
	require.NoError(t, err)
	assert.Equal(t, "overall synthesis", combined.Text)
	assert.Equal(t, 16, combined.SourceLength)
	assert.Greater(t, combined.CompressionRatio, 0.0)
}

func TestCombineSummaries_Empty(t *testing.T) {
	client := newTestClient(&fakeGenerator{})
	_, err := client.CombineSummaries(context.Background(), nil)
	assert.Error(t, err)
}

func TestExtractKeyQuotes(t *testing.T) {
	client := newTestClient(&fakeGenerator{responses: []string{`- [00:10] "a quote" - context`}})

	quotes, err := client.ExtractKeyQuotes(context.Background(), "[00:10] a quote and more")
	require.NoError(t, err)
	assert.Contains(t, quotes, "a quote")

	_, err = client.ExtractKeyQuotes(context.Background(), "  ")
	assert.Error(t, err)
}

func TestCompressionRatioRounding(t *testing.T) {
	assert.Equal(t, 0.333, compressionRatio(1, 3))
	assert.Equal(t, 0.667, compressionRatio(2, 3))
	assert.Equal(t, 1.0, compressionRatio(10, 10))
}
