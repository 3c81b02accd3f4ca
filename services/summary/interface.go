package summary

import (
	"context"

	"ytsummarizer/models"
)

type Service interface {
	// Summarize generates a summary of the transcript. apiKey is an optional
	// per-request override; empty means use the process default.
	Summarize(ctx context.Context, segments []models.TranscriptSegment, apiKey string) (*models.SummaryResult, error)
}

type Config struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

func DefaultConfig(model string) Config {
	return Config{
		Model:       model,
		MaxTokens:   600,
		Temperature: 0.6,
	}
}
