package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

var errNoChoices = errors.New("completion response contained no choices")

// CompletionRequest carries one chat completion call to the backend.
type CompletionRequest struct {
	Model       string
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

// Client is the completion backend. Implementations take the API key per
// call so request-scoped key overrides never touch shared state.
type Client interface {
	// Complete issues a single completion request and returns the generated
	// text. An empty string is a valid completion.
	Complete(ctx context.Context, apiKey string, req CompletionRequest) (string, error)

	// CheckKey performs a lightweight authenticated probe to confirm the
	// key is accepted by the backend.
	CheckKey(ctx context.Context, apiKey string) error
}

// OpenAI implements Client against the OpenAI API. A fresh client is built
// per call because the key can differ between requests.
type OpenAI struct{}

func NewOpenAI() *OpenAI {
	return &OpenAI{}
}

func (o *OpenAI) Complete(ctx context.Context, apiKey string, req CompletionRequest) (string, error) {
	cli := openai.NewClient(apiKey)

	resp, err := cli.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.System,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.User,
			},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errNoChoices
	}

	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAI) CheckKey(ctx context.Context, apiKey string) error {
	cli := openai.NewClient(apiKey)
	_, err := cli.ListModels(ctx)
	return err
}
