package youtube

import "errors"

// Upstream failure conditions callers may want to distinguish.
var (
	// ErrTranscriptsDisabled means the video exists but has no caption tracks.
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")

	// ErrVideoUnavailable means the video is private, deleted, or region locked.
	ErrVideoUnavailable = errors.New("video is unavailable")

	// ErrRateLimited means YouTube rejected the request with 429.
	ErrRateLimited = errors.New("too many requests, try again later")

	// ErrNoTranscript means no caption track matched the requested language.
	ErrNoTranscript = errors.New("no transcript found for requested language")
)
