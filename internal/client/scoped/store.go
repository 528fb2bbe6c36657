package scoped

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/museumkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
	"github.com/dmitrijs2005/museumkeeper/internal/logging"
)

// ParseError reports a stored value that could not be decoded.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed value under %q: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type Store struct {
	repo kv.Repository
	log  logging.Logger
	mu   sync.Mutex
}

func NewStore(repo kv.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log.With("component", "scoped")}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	return s.repo.Get(ctx, key)
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.repo.Set(ctx, key, value)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

// KeyFor returns the storage key of collection for the signed-in user, or
// collection itself when nobody is signed in. An unreadable session counts
// as no session.
func (s *Store) KeyFor(ctx context.Context, collection string) (string, error) {
	raw, err := s.repo.Get(ctx, common.SessionKey)
	if err != nil {
		return "", fmt.Errorf("failed to resolve key for %s: %w", collection, err)
	}
	if raw == nil {
		return collection, nil
	}

	var session struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &session); err != nil {
		s.log.Warn(ctx, "ignoring unreadable session", "collection", collection, "error", err)
		return collection, nil
	}
	if session.ID == "" {
		return collection, nil
	}
	return collection + "_" + session.ID, nil
}
