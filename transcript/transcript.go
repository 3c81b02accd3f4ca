package transcript

import (
	"context"

	"ytsummarizer/models"
)

// Fetcher retrieves the timed English transcript for a video. Segments come
// back in playback order with non-negative start offsets and durations.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) ([]models.TranscriptSegment, error)
}
