package chat

import (
	"context"
	"fmt"

	"ytsummarizer/apikey"
	"ytsummarizer/errors"
	"ytsummarizer/llm"
	"ytsummarizer/prompt"

	"github.com/sirupsen/logrus"
)

const systemPrompt = "You are a helpful assistant that answers questions about a video " +
	"using its transcript and summary. Cite timestamps from the transcript when relevant."

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

func (s *service) Answer(ctx context.Context, req Request) (string, error) {
	const op = "ChatService.Answer"

	if req.Question == "" {
		return "", errors.InvalidInput(op, nil, "Question is required")
	}
	if len(req.Transcript) == 0 {
		return "", errors.InvalidInput(op, nil, "Transcript data is required")
	}

	key, err := s.keys.Resolve(req.APIKey)
	if err != nil {
		return "", err
	}

	user := fmt.Sprintf(
		"Video summary:\n%s\n\nVideo transcript:\n%s\nQuestion: %s",
		req.Summary,
		prompt.RenderTranscript(req.Transcript),
		req.Question,
	)

	answer, err := s.client.Complete(ctx, key, llm.CompletionRequest{
		Model:       s.config.Model,
		System:      systemPrompt,
		User:        user,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		s.logger.WithError(err).Error("Question answering failed")
		return "", errors.Internal(op, err, "Failed to answer question")
	}

	return answer, nil
}
