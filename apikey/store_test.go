package apikey

import (
	"context"
	"fmt"
	"testing"

	"ytsummarizer/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	checkErr    error
	checkedKeys []string
}

func (s *stubClient) Complete(ctx context.Context, apiKey string, req llm.CompletionRequest) (string, error) {
	return "", nil
}

func (s *stubClient) CheckKey(ctx context.Context, apiKey string) error {
	s.checkedKeys = append(s.checkedKeys, apiKey)
	return s.checkErr
}

func TestResolvePrefersOverride(t *testing.T) {
	store := NewStore("sk-default")

	key, err := store.Resolve("sk-override")
	require.NoError(t, err)
	assert.Equal(t, "sk-override", key)
}

func TestResolveFallsBackToDefault(t *testing.T) {
	store := NewStore("sk-default")

	key, err := store.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "sk-default", key)
}

func TestResolveNoCredential(t *testing.T) {
	store := NewStore("")

	_, err := store.Resolve("")
	require.Error(t, err)
}

func TestValidateUpdatesDefault(t *testing.T) {
	store := NewStore("sk-old")
	client := &stubClient{}
	validator := NewValidator(store, client)

	ok := validator.Validate(context.Background(), "sk-new")
	require.True(t, ok)
	assert.Equal(t, []string{"sk-new"}, client.checkedKeys)

	// Subsequent requests without an override pick up the validated key.
	key, err := store.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "sk-new", key)
}

func TestValidateFailureLeavesDefault(t *testing.T) {
	store := NewStore("sk-old")
	client := &stubClient{checkErr: fmt.Errorf("401 unauthorized")}
	validator := NewValidator(store, client)

	ok := validator.Validate(context.Background(), "sk-bad")
	require.False(t, ok)

	key, err := store.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "sk-old", key)
}

func TestValidateEmptyKey(t *testing.T) {
	store := NewStore("")
	client := &stubClient{}
	validator := NewValidator(store, client)

	assert.False(t, validator.Validate(context.Background(), ""))
	assert.Empty(t, client.checkedKeys)
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore("sk-seed")
	done := make(chan struct{})

	go func() {
		for i := 0; i < 1000; i++ {
			store.Set(fmt.Sprintf("sk-%d", i))
		}
		close(done)
	}()

	for i := 0; i < 1000; i++ {
		key, err := store.Resolve("")
		require.NoError(t, err)
		assert.NotEmpty(t, key)
	}
	<-done
}
