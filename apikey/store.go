package apikey

import (
	"context"
	"sync"

	"ytsummarizer/errors"
	"ytsummarizer/llm"

	"github.com/sirupsen/logrus"
)

// Store holds the process-wide default API key. The default is seeded from
// the environment at startup and replaced whenever a key passes validation,
// so it must tolerate concurrent readers and writers. Last writer wins.
type Store struct {
	mu  sync.RWMutex
	key string
}

func NewStore(defaultKey string) *Store {
	return &Store{key: defaultKey}
}

// Resolve returns the key to use for a request: the override when supplied,
// otherwise the current default.
func (s *Store) Resolve(override string) (string, error) {
	const op = "apikey.Store.Resolve"

	if override != "" {
		return override, nil
	}

	s.mu.RLock()
	key := s.key
	s.mu.RUnlock()

	if key == "" {
		return "", errors.NoCredential(op)
	}
	return key, nil
}

// Set replaces the process-wide default key.
func (s *Store) Set(key string) {
	s.mu.Lock()
	s.key = key
	s.mu.Unlock()
}

// Validator probes the completion backend to check whether a key is
// accepted. A key that validates becomes the new process default, so
// later requests without an explicit key use it.
type Validator struct {
	store  *Store
	client llm.Client
	logger *logrus.Logger
}

func NewValidator(store *Store, client llm.Client) *Validator {
	return &Validator{
		store:  store,
		client: client,
		logger: logrus.StandardLogger(),
	}
}

// Validate returns true when the backend accepts the key. Network errors,
// auth rejections, and malformed keys all report false; the cause is only
// logged. The key itself is never logged.
func (v *Validator) Validate(ctx context.Context, key string) bool {
	if key == "" {
		return false
	}

	if err := v.client.CheckKey(ctx, key); err != nil {
		v.logger.WithError(err).Info("API key validation failed")
		return false
	}

	v.store.Set(key)
	return true
}
