package mock

import (
	"context"
	"io"

	"github.com/fwojciec/docnamer"
)

var _ docnamer.Locator = (*Locator)(nil)

// Locator is a mock implementation of docnamer.Locator.
type Locator struct {
	FetchFn func(ctx context.Context, relPath string) (io.ReadCloser, error)
	CloseFn func() error
}

func (l *Locator) Fetch(ctx context.Context, relPath string) (io.ReadCloser, error) {
	return l.FetchFn(ctx, relPath)
}

func (l *Locator) Close() error {
	if l.CloseFn == nil {
		return nil
	}
	return l.CloseFn()
}
