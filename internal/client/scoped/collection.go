package scoped

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Collection is a JSON-array list of T stored under a user-scoped key.
type Collection[T any] struct {
	store *Store
	name  string
}

func NewCollection[T any](store *Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

func (c *Collection[T]) Name() string {
	return c.name
}

// Read returns the stored items. An absent key yields an empty slice. A
// malformed value yields an empty slice and a *ParseError.
func (c *Collection[T]) Read(ctx context.Context) ([]T, error) {
	key, err := c.store.KeyFor(ctx, c.name)
	if err != nil {
		return nil, err
	}
	return c.readKey(ctx, key)
}

// Write replaces the stored list with items.
func (c *Collection[T]) Write(ctx context.Context, items []T) error {
	key, err := c.store.KeyFor(ctx, c.name)
	if err != nil {
		return err
	}
	return c.writeKey(ctx, key, items)
}

// Modify applies fn to the current list and stores the result, holding the
// store's mutex for the whole cycle. If fn fails nothing is written.
func (c *Collection[T]) Modify(ctx context.Context, fn func(items []T) ([]T, error)) ([]T, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	key, err := c.store.KeyFor(ctx, c.name)
	if err != nil {
		return nil, err
	}

	items, err := c.readKey(ctx, key)
	var perr *ParseError
	if errors.As(err, &perr) {
		c.store.log.Warn(ctx, "resetting corrupted collection", "key", key, "error", perr.Err)
	} else if err != nil {
		return nil, err
	}

	updated, err := fn(items)
	if err != nil {
		return nil, err
	}
	if err := c.writeKey(ctx, key, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Collection[T]) readKey(ctx context.Context, key string) ([]T, error) {
	raw, err := c.store.repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", key, err)
	}
	if raw == nil {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}, &ParseError{Key: key, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) writeKey(ctx context.Context, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}
	if err := c.store.repo.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	return nil
}
