package kv

import "context"

// Repository is the persisted string store behind sessions, preferences and
// per-user collections. Values are opaque text (JSON in practice).
type Repository interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
