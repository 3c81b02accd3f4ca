package chat

import (
	"context"

	"ytsummarizer/models"
)

type Service interface {
	// Answer responds to a free-text question about a video using the
	// client-supplied transcript and summary. The service holds no session
	// state; every call carries its full context.
	Answer(ctx context.Context, req Request) (string, error)
}

type Request struct {
	Question   string
	VideoID    string
	Transcript []models.TranscriptSegment
	Summary    string
	APIKey     string
}

type Config struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

func DefaultConfig(model string) Config {
	return Config{
		Model:       model,
		MaxTokens:   400,
		Temperature: 0.7,
	}
}
