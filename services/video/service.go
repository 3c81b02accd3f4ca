package video

import (
	"context"

	"ytsummarizer/models"
	"ytsummarizer/services/summary"
	"ytsummarizer/transcript"
	"ytsummarizer/youtube"

	"github.com/sirupsen/logrus"
)

type service struct {
	fetcher    transcript.Fetcher
	summarizer summary.Service
	logger     *logrus.Logger
}

func NewService(fetcher transcript.Fetcher, summarizer summary.Service) Service {
	return &service{
		fetcher:    fetcher,
		summarizer: summarizer,
		logger:     logrus.StandardLogger(),
	}
}

func (s *service) Process(ctx context.Context, videoURL, apiKey string) (*models.ProcessResult, error) {
	videoID, err := youtube.ResolveVideoID(videoURL)
	if err != nil {
		return nil, err
	}

	logger := s.logger.WithField("video_id", videoID)

	segments, err := s.fetcher.Fetch(ctx, videoID)
	if err != nil {
		return nil, err
	}

	result, err := s.summarizer.Summarize(ctx, segments, apiKey)
	if err != nil {
		return nil, err
	}

	logger.WithField("snippets", result.SnippetCount).Info("Video processed")

	return &models.ProcessResult{
		Summary:       result.Summary,
		TotalDuration: result.TotalDuration,
		SnippetCount:  result.SnippetCount,
		VideoID:       videoID,
		Transcript:    segments,
	}, nil
}
