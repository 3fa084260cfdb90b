package mock

import (
	"context"

	"github.com/fwojciec/docnamer"
)

var _ docnamer.NameCache = (*NameCache)(nil)

// NameCache is a mock implementation of docnamer.NameCache.
type NameCache struct {
	GetFn func(ctx context.Context, key string) ([]string, bool, error)
	PutFn func(ctx context.Context, key string, names []string) error
}

func (c *NameCache) Get(ctx context.Context, key string) ([]string, bool, error) {
	return c.GetFn(ctx, key)
}

func (c *NameCache) Put(ctx context.Context, key string, names []string) error {
	return c.PutFn(ctx, key, names)
}

var _ docnamer.MissFilter = (*MissFilter)(nil)

// MissFilter is a mock implementation of docnamer.MissFilter.
type MissFilter struct {
	AddFn  func(key string)
	SeenFn func(key string) bool
}

func (f *MissFilter) Add(key string) {
	f.AddFn(key)
}

func (f *MissFilter) Seen(key string) bool {
	return f.SeenFn(key)
}
