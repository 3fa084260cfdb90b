// Package bloom provides a probabilistic record of failed lookups using
// Bloom filters.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/docnamer"
)

// Ensure Filter implements docnamer.MissFilter at compile time.
var _ docnamer.MissFilter = (*Filter)(nil)

// Filter remembers callable keys whose lookup already failed, so repeat
// misses can be skipped without refetching and reparsing the page. False
// positives are possible; false negatives are not. Consumers must only
// consult it where a false positive is benign (see docnamer.MissFilter).
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Filter sized for n expected keys with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a callable key as a known miss.
func (f *Filter) Add(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(key)
}

// Seen returns true if the key might have been recorded as a miss.
func (f *Filter) Seen(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestString(key)
}

// EstimatedCount returns the approximate number of recorded misses.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}
