package youtube

import (
	"regexp"

	"ytsummarizer/errors"
)

// Video IDs are 11 characters of [A-Za-z0-9_-]. Patterns are tried in order;
// the first match wins.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/v/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`m\.youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`[?&]v=([a-zA-Z0-9_-]{11})`),
}

// ResolveVideoID extracts the 11-character video ID from a YouTube URL.
// Supported shapes: watch URLs, youtu.be short links, embed and /v/ player
// URLs, mobile watch URLs, and a v= query parameter anywhere in the string.
func ResolveVideoID(url string) (string, error) {
	const op = "youtube.ResolveVideoID"

	if url == "" {
		return "", errors.InvalidInput(op, nil, "Invalid URL provided")
	}

	for _, pattern := range idPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], nil
		}
	}

	return "", errors.InvalidFormat(op, nil, "Invalid YouTube URL format")
}
