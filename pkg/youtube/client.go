package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/killallgit/summarizer-api/pkg/transcript"
)

// ClientOptions configures transcript fetching behavior
type ClientOptions struct {
	Timeout   time.Duration
	UserAgent string
	MaxSize   int64 // Maximum response size in bytes
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Timeout:   30 * time.Second,
		UserAgent: "SummarizerAPI/1.0",
		MaxSize:   10 * 1024 * 1024, // 10MB max for watch pages and caption payloads
	}
}

// TranscriptInfo describes one caption track available for a video.
type TranscriptInfo struct {
	Language       string `json:"language"`
	LanguageCode   string `json:"language_code"`
	IsGenerated    bool   `json:"is_generated"`
	IsTranslatable bool   `json:"is_translatable"`
}

// Client fetches timed transcripts from YouTube's caption endpoints.
type Client struct {
	httpClient *http.Client
	options    ClientOptions
}

// NewClient creates a new transcript client
func NewClient(options ClientOptions) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: options.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        5,
				IdleConnTimeout:     30 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		options: options,
	}
}

var captionTracksRegex = regexp.MustCompile(`"captionTracks":(\[.*?\])`)

// captionTrack is the slice of the player response we care about.
type captionTrack struct {
	BaseURL string `json:"baseUrl"`
	Name    struct {
		SimpleText string `json:"simpleText"`
	} `json:"name"`
	LanguageCode   string `json:"languageCode"`
	Kind           string `json:"kind"`
	IsTranslatable bool   `json:"isTranslatable"`
}

// Fetch downloads the transcript for a video in the preferred language and
// returns it as ordered timed entries. Failure conditions map onto the
// sentinel errors in this package.
func (c *Client) Fetch(ctx context.Context, videoID, language string) ([]transcript.Entry, error) {
	track, err := c.findTrack(ctx, videoID, language)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, track.BaseURL+"&fmt=json3")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caption track: %w", err)
	}

	entries, err := parseTimedText(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse caption track for video %s: %w", videoID, err)
	}

	return entries, nil
}

// ListTranscripts returns the caption tracks available for a video, possibly
// empty when captions exist but expose no metadata.
func (c *Client) ListTranscripts(ctx context.Context, videoID string) ([]TranscriptInfo, error) {
	tracks, err := c.captionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	infos := make([]TranscriptInfo, 0, len(tracks))
	for _, track := range tracks {
		language := track.Name.SimpleText
		if language == "" {
			language = track.LanguageCode
		}
		infos = append(infos, TranscriptInfo{
			Language:       language,
			LanguageCode:   track.LanguageCode,
			IsGenerated:    track.Kind == "asr",
			IsTranslatable: track.IsTranslatable,
		})
	}

	return infos, nil
}

// findTrack picks the caption track matching the preferred language, favoring
// manually created tracks over auto-generated ones. Falls back to the first
// track when nothing matches.
func (c *Client) findTrack(ctx context.Context, videoID, language string) (*captionTrack, error) {
	tracks, err := c.captionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	var generated *captionTrack
	for i := range tracks {
		track := &tracks[i]
		if track.LanguageCode != language && !strings.HasPrefix(track.LanguageCode, language+"-") {
			continue
		}
		if track.Kind != "asr" {
			return track, nil
		}
		if generated == nil {
			generated = track
		}
	}
	if generated != nil {
		return generated, nil
	}
	if len(tracks) > 0 {
		return &tracks[0], nil
	}

	return nil, ErrNoTranscript
}

// captionTracks scrapes the watch page for the player response caption list.
func (c *Client) captionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	body, err := c.get(ctx, WatchURL(videoID))
	if err != nil {
		return nil, err
	}

	page := string(body)
	match := captionTracksRegex.FindStringSubmatch(page)
	if match == nil {
		if strings.Contains(page, `"status":"ERROR"`) || strings.Contains(page, "Video unavailable") {
			return nil, ErrVideoUnavailable
		}
		return nil, ErrTranscriptsDisabled
	}

	var tracks []captionTrack
	if err := json.Unmarshal([]byte(match[1]), &tracks); err != nil {
		return nil, fmt.Errorf("failed to parse caption tracks for video %s: %w", videoID, err)
	}
	if len(tracks) == 0 {
		return nil, ErrTranscriptsDisabled
	}

	return tracks, nil
}

// get performs a size-limited GET request
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.options.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrVideoUnavailable
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	limitedReader := io.LimitReader(resp.Body, c.options.MaxSize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}

// timedTextResponse is YouTube's json3 caption payload.
type timedTextResponse struct {
	Events []struct {
		StartMs    int64 `json:"tStartMs"`
		DurationMs int64 `json:"dDurationMs"`
		Segs       []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

// parseTimedText converts a json3 payload into timed entries, skipping
// events that carry no text (window definitions, music markers).
func parseTimedText(body []byte) ([]transcript.Entry, error) {
	var response timedTextResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}

	entries := make([]transcript.Entry, 0, len(response.Events))
	for _, event := range response.Events {
		var builder strings.Builder
		for _, seg := range event.Segs {
			builder.WriteString(seg.UTF8)
		}

		text := strings.TrimSpace(strings.ReplaceAll(builder.String(), "\n", " "))
		if text == "" {
			continue
		}

		entries = append(entries, transcript.NewEntry(
			text,
			float64(event.StartMs)/1000,
			float64(event.DurationMs)/1000,
		))
	}

	return entries, nil
}
