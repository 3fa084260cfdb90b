package docnamer

import "context"

// NameCache stores resolved parameter name lists keyed by callable.
// Implementations: lru (bounded in-memory), sqlite (persistent).
type NameCache interface {
	// Get returns the cached names for the key and whether the key was
	// present. A cached empty list is a valid zero-arity result.
	Get(ctx context.Context, key string) ([]string, bool, error)

	// Put stores names for the key, replacing any previous entry.
	Put(ctx context.Context, key string, names []string) error
}

// MissFilter remembers callables whose lookup already came back empty, so
// repeated misses can be short-circuited. Implementations may be
// probabilistic (see the bloom package): Seen may rarely report true for a
// key never added, so it is only consulted under PolicyEmpty, where the
// short-circuit answer is the same empty list a real lookup would produce.
type MissFilter interface {
	Add(key string)
	Seen(key string) bool
}

// CachingLookup is a read-through cache around a Lookuper, modeled after a
// tool that resolves the same callables repeatedly across runs. Cache
// failures never fail a lookup; the inner Lookuper is consulted instead.
type CachingLookup struct {
	Next  Lookuper
	Cache NameCache

	// Misses is optional. When set, callables whose lookup failed under
	// PolicyEmpty are recorded and skipped on repeat.
	Misses MissFilter
}

var _ Lookuper = (*CachingLookup)(nil)

// ParameterNames implements Lookuper.
func (l *CachingLookup) ParameterNames(ctx context.Context, c *Callable, policy MissingPolicy) ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	key := c.String()

	if names, ok, err := l.Cache.Get(ctx, key); err == nil && ok {
		return names, nil
	}
	if policy == PolicyEmpty && l.Misses != nil && l.Misses.Seen(key) {
		return []string{}, nil
	}

	names, err := l.Next.ParameterNames(ctx, c, policy)
	if err != nil {
		return nil, err
	}

	// Under PolicyEmpty a folded miss and a zero-arity success are both
	// empty; only a result with one name per declared parameter is a
	// genuine success worth caching.
	if len(names) == len(c.ParameterTypes) {
		_ = l.Cache.Put(ctx, key, names)
	} else if l.Misses != nil {
		l.Misses.Add(key)
	}
	return names, nil
}
