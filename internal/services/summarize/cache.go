package summarize

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/killallgit/summarizer-api/pkg/transcript"
	"github.com/killallgit/summarizer-api/pkg/youtube"
)

// CachingSource wraps a TranscriptSource with a TTL cache so repeated runs
// against the same video skip the network fetch.
type CachingSource struct {
	source  TranscriptSource
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

type cacheEntry struct {
	transcript []transcript.Entry
	infos      []youtube.TranscriptInfo
	expiresAt  time.Time
}

// Ensure CachingSource implements TranscriptSource interface
var _ TranscriptSource = (*CachingSource)(nil)

func NewCachingSource(source TranscriptSource, ttl time.Duration) *CachingSource {
	cache := &CachingSource{
		source:  source,
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}

	go cache.cleanupExpired()

	return cache
}

func (c *CachingSource) Fetch(ctx context.Context, videoID, language string) ([]transcript.Entry, error) {
	key := fmt.Sprintf("transcript:%s:%s", videoID, language)

	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()
	if exists && entry.expiresAt.After(time.Now()) {
		return entry.transcript, nil
	}

	entries, err := c.source.Fetch(ctx, videoID, language)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = &cacheEntry{
		transcript: entries,
		expiresAt:  time.Now().Add(c.ttl),
	}
	c.mu.Unlock()

	return entries, nil
}

func (c *CachingSource) ListTranscripts(ctx context.Context, videoID string) ([]youtube.TranscriptInfo, error) {
	key := fmt.Sprintf("tracks:%s", videoID)

	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()
	if exists && entry.expiresAt.After(time.Now()) {
		return entry.infos, nil
	}

	infos, err := c.source.ListTranscripts(ctx, videoID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = &cacheEntry{
		infos:     infos,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()

	return infos, nil
}

func (c *CachingSource) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.mu.Lock()
		for key, entry := range c.entries {
			if entry.expiresAt.Before(now) {
				delete(c.entries, key)
			}
		}
		c.mu.Unlock()
	}
}
