package youtube

import "regexp"

// Video ID extraction mirrors the URL shapes YouTube serves: full watch URLs,
// short youtu.be links, embed URLs, and bare 11-character IDs.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

// ExtractVideoID pulls the 11-character video ID out of a URL or returns the
// input itself when it already is a bare ID. The second return is false when
// no ID could be resolved.
func ExtractVideoID(urlOrID string) (string, bool) {
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(urlOrID); match != nil {
			return match[1], true
		}
	}
	return "", false
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
