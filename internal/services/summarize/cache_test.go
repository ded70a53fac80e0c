package summarize

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/summarizer-api/pkg/transcript"
	"github.com/killallgit/summarizer-api/pkg/youtube"
)

type countingSource struct {
	mu         sync.Mutex
	fetchCalls int
	listCalls  int
	entries    []transcript.Entry
}

func (c *countingSource) Fetch(ctx context.Context, videoID, language string) ([]transcript.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchCalls++
	return c.entries, nil
}

func (c *countingSource) ListTranscripts(ctx context.Context, videoID string) ([]youtube.TranscriptInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listCalls++
	return []youtube.TranscriptInfo{{LanguageCode: "en"}}, nil
}

func TestCachingSourceFetch(t *testing.T) {
	inner := &countingSource{entries: []transcript.Entry{transcript.NewEntry("hi", 0, 1)}}
	cached := NewCachingSource(inner, time.Minute)
	ctx := context.Background()

	first, err := cached.Fetch(ctx, "abc", "en")
	require.NoError(t, err)
	second, err := cached.Fetch(ctx, "abc", "en")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.fetchCalls)

	// different language misses the cache
	_, err = cached.Fetch(ctx, "abc", "de")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.fetchCalls)
}

func TestCachingSourceExpiry(t *testing.T) {
	inner := &countingSource{entries: []transcript.Entry{transcript.NewEntry("hi", 0, 1)}}
	cached := NewCachingSource(inner, 10*time.Millisecond)
	ctx := context.Background()

	_, err := cached.Fetch(ctx, "abc", "en")
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	_, err = cached.Fetch(ctx, "abc", "en")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.fetchCalls)
}

func TestCachingSourceListTranscripts(t *testing.T) {
	inner := &countingSource{}
	cached := NewCachingSource(inner, time.Minute)
	ctx := context.Background()

	_, err := cached.ListTranscripts(ctx, "abc")
	require.NoError(t, err)
	_, err = cached.ListTranscripts(ctx, "abc")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.listCalls)
}
