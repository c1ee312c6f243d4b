package repositories

import (
	"context"
	"sync"

	"luxride/internal/storage"
)

// collection is a JSON array stored under one key. Mutations rewrite the whole array;
// mu serializes read-modify-write cycles within this process.
type collection[T any] struct {
	store storage.Store
	key   string
	mu    sync.Mutex
}

func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	out := []T{}
	if _, err := storage.GetJSON(ctx, c.store, c.key, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (c *collection[T]) update(ctx context.Context, fn func([]T) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.list(ctx)
	if err != nil {
		return nil, err
	}
	next, err := fn(items)
	if err != nil {
		return nil, err
	}
	if err := storage.PutJSON(ctx, c.store, c.key, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (c *collection[T]) replace(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if items == nil {
		items = []T{}
	}
	return storage.PutJSON(ctx, c.store, c.key, items)
}
