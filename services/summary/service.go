package summary

import (
	"context"

	"ytsummarizer/apikey"
	"ytsummarizer/errors"
	"ytsummarizer/llm"
	"ytsummarizer/models"
	"ytsummarizer/prompt"

	"github.com/sirupsen/logrus"
)

const systemPrompt = "You are a helpful assistant that summarizes video transcripts. " +
	"Start with a brief 3-sentence overview of the video, then list the most " +
	"important points with their timestamps."

type service struct {
	keys   *apikey.Store
	client llm.Client
	config Config
	logger *logrus.Logger
}

func NewService(keys *apikey.Store, client llm.Client, config Config) Service {
	return &service{
		keys:   keys,
		client: client,
		config: config,
		logger: logrus.StandardLogger(),
	}
}

func (s *service) Summarize(ctx context.Context, segments []models.TranscriptSegment, apiKey string) (*models.SummaryResult, error) {
	const op = "SummaryService.Summarize"

	if len(segments) == 0 {
		return nil, errors.InvalidInput(op, nil, "Transcript data is required")
	}

	key, err := s.keys.Resolve(apiKey)
	if err != nil {
		return nil, err
	}

	rendered := prompt.RenderTranscript(segments)

	text, err := s.client.Complete(ctx, key, llm.CompletionRequest{
		Model:       s.config.Model,
		System:      systemPrompt,
		User:        "Please provide a summary of this video transcript with the most important points and their timestamps:\n\n" + rendered,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		s.logger.WithError(err).Error("Summary generation failed")
		return nil, errors.Internal(op, err, "Failed to generate summary")
	}

	last := segments[len(segments)-1]

	return &models.SummaryResult{
		Summary:       text,
		TotalDuration: prompt.FormatTimestamp(last.Start + last.Duration),
		SnippetCount:  len(segments),
	}, nil
}
