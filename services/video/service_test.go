package video

import (
	"context"
	"fmt"
	"testing"

	"ytsummarizer/apikey"
	"ytsummarizer/errors"
	"ytsummarizer/llm"
	"ytsummarizer/models"
	"ytsummarizer/services/summary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	segments []models.TranscriptSegment
	err      error
	lastID   string
}

func (s *stubFetcher) Fetch(ctx context.Context, videoID string) ([]models.TranscriptSegment, error) {
	s.lastID = videoID
	return s.segments, s.err
}

type stubLLM struct {
	response string
	lastKey  string
}

func (s *stubLLM) Complete(ctx context.Context, apiKey string, req llm.CompletionRequest) (string, error) {
	s.lastKey = apiKey
	return s.response, nil
}

func (s *stubLLM) CheckKey(ctx context.Context, apiKey string) error {
	return nil
}

func newTestService(fetcher *stubFetcher, client *stubLLM, defaultKey string) Service {
	keys := apikey.NewStore(defaultKey)
	return NewService(fetcher, summary.NewService(keys, client, summary.DefaultConfig("gpt-4")))
}

func TestProcess(t *testing.T) {
	fetcher := &stubFetcher{segments: []models.TranscriptSegment{
		{Text: "hello", Start: 0, Duration: 2},
		{Text: "world", Start: 2, Duration: 3},
	}}
	client := &stubLLM{response: "A short greeting video."}
	svc := newTestService(fetcher, client, "sk-default")

	result, err := svc.Process(context.Background(), "https://youtu.be/dQw4w9WgXcQ", "")
	require.NoError(t, err)

	assert.Equal(t, "dQw4w9WgXcQ", result.VideoID)
	assert.Equal(t, "dQw4w9WgXcQ", fetcher.lastID)
	assert.Equal(t, "A short greeting video.", result.Summary)
	assert.Equal(t, "00:05", result.TotalDuration)
	assert.Equal(t, 2, result.SnippetCount)
	assert.Equal(t, fetcher.segments, result.Transcript)
}

func TestProcessInvalidURL(t *testing.T) {
	svc := newTestService(&stubFetcher{}, &stubLLM{}, "sk-default")

	_, err := svc.Process(context.Background(), "https://example.com/nope", "")
	require.Error(t, err)
	assert.True(t, errors.IsClientError(err))
}

func TestProcessTranscriptFailure(t *testing.T) {
	fetcher := &stubFetcher{
		err: errors.Unavailable("op", fmt.Errorf("no captions"), "Failed to fetch transcript: no captions"),
	}
	svc := newTestService(fetcher, &stubLLM{}, "sk-default")

	_, err := svc.Process(context.Background(), "https://youtu.be/dQw4w9WgXcQ", "")
	require.Error(t, err)
	assert.False(t, errors.IsClientError(err))
}

func TestProcessKeyOverrideReachesBackend(t *testing.T) {
	fetcher := &stubFetcher{segments: []models.TranscriptSegment{{Text: "hi", Start: 0, Duration: 1}}}
	client := &stubLLM{}
	svc := newTestService(fetcher, client, "sk-default")

	_, err := svc.Process(context.Background(), "https://youtu.be/dQw4w9WgXcQ", "sk-override")
	require.NoError(t, err)
	assert.Equal(t, "sk-override", client.lastKey)
}
