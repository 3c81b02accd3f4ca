package video

import (
	"context"

	"ytsummarizer/models"
)

type Service interface {
	// Process runs the full pipeline for a video URL: resolve the video ID,
	// fetch the English transcript, and summarize it.
	Process(ctx context.Context, videoURL, apiKey string) (*models.ProcessResult, error)
}
