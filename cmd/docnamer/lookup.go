package main

import (
	"fmt"

	"github.com/fwojciec/docnamer"
	"github.com/fwojciec/docnamer/bloom"
	"github.com/fwojciec/docnamer/goquery"
	"github.com/fwojciec/docnamer/lru"
	docslog "github.com/fwojciec/docnamer/slog"
	"github.com/fwojciec/docnamer/sqlite"
)

// Bloom filter sizing for the miss filter: one CLI run rarely resolves
// more than a few thousand distinct callables.
const (
	missFilterExpectedKeys      = 10000
	missFilterFalsePositiveRate = 0.001
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	locator, err := openLocator(deps.Ctx, c.Root)
	if err != nil {
		return err
	}
	defer locator.Close()

	lookuper, cleanup, err := c.buildLookuper(deps, locator)
	if err != nil {
		return err
	}
	defer cleanup()

	callable := buildCallable(c.Class, c.Member, c.ParamTypes, c.Constructor)
	policy := docnamer.PolicyRaise
	if c.Empty {
		policy = docnamer.PolicyEmpty
	}

	names, err := lookuper.ParameterNames(deps.Ctx, callable, policy)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}

// buildLookuper wires the lookup pipeline: extractor, optional caching
// (persistent SQLite or in-memory LRU), optional miss filter, optional
// logging. The returned cleanup closes whatever was opened.
func (c *LookupCmd) buildLookuper(deps *Dependencies, locator docnamer.Locator) (docnamer.Lookuper, func(), error) {
	var lookuper docnamer.Lookuper = &docnamer.LookupService{
		Locator:   locator,
		Extractor: goquery.NewExtractor(),
	}
	cleanup := func() {}

	var cache docnamer.NameCache
	switch {
	case c.DB != "":
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			return nil, nil, fmt.Errorf("failed to open cache database at %q: %w", c.DB, err)
		}
		cleanup = func() { _ = db.Close() }
		cache = sqlite.NewCacheService(db)
	case c.CacheSize > 0:
		var err error
		cache, err = lru.NewCache(c.CacheSize)
		if err != nil {
			return nil, nil, err
		}
	}

	if cache != nil {
		caching := &docnamer.CachingLookup{Next: lookuper, Cache: cache}
		if c.Empty {
			caching.Misses = bloom.NewFilter(missFilterExpectedKeys, missFilterFalsePositiveRate)
		}
		lookuper = caching
	}

	if deps.Verbose {
		lookuper = docslog.NewLoggingLookup(lookuper, deps.Logger)
	}
	return lookuper, cleanup, nil
}
