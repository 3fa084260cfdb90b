package mock

import (
	"context"

	"github.com/fwojciec/docnamer"
)

var _ docnamer.Lookuper = (*Lookuper)(nil)

// Lookuper is a mock implementation of docnamer.Lookuper.
type Lookuper struct {
	ParameterNamesFn func(ctx context.Context, c *docnamer.Callable, policy docnamer.MissingPolicy) ([]string, error)
}

func (l *Lookuper) ParameterNames(ctx context.Context, c *docnamer.Callable, policy docnamer.MissingPolicy) ([]string, error) {
	return l.ParameterNamesFn(ctx, c, policy)
}
