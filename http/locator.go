// Package http provides a docnamer.Locator for documentation served over
// HTTP, such as hosted Javadoc trees.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/docnamer"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 10 * time.Second

// Ensure Locator implements docnamer.Locator at compile time.
var _ docnamer.Locator = (*Locator)(nil)

// Locator serves documentation pages from a remote tree beneath a base
// URL. Reachability is validated once at construction by fetching the
// package-list sentinel; fetch failures after that are not retried.
type Locator struct {
	base    string
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Locator.
type Option func(*Locator)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(l *Locator) {
		l.timeout = d
	}
}

// WithClient sets a custom HTTP client. The client's own timeout is used
// as-is, overriding WithTimeout.
func WithClient(c *http.Client) Option {
	return func(l *Locator) {
		l.client = c
	}
}

// WithLimiter caps fetches at rps requests per second with no bursting,
// out of politeness toward remote documentation hosts.
func WithLimiter(rps float64) Option {
	return func(l *Locator) {
		l.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewLocator validates the base URL by eagerly fetching the package-list
// sentinel; the body is read and discarded. Construction fails hard when
// the sentinel cannot be fetched, signaling that the URL does not point at
// a documentation root.
func NewLocator(ctx context.Context, base string, opts ...Option) (*Locator, error) {
	l := &Locator{
		base:    strings.TrimRight(base, "/"),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.client == nil {
		l.client = &http.Client{Timeout: l.timeout}
	}

	stream, err := l.Fetch(ctx, docnamer.PackageListFile)
	if err != nil {
		return nil, docnamer.Errorf(docnamer.ENOTFOUND, "%q is not a documentation URL: %s", base, docnamer.ErrorMessage(err))
	}
	defer stream.Close()
	if _, err := io.Copy(io.Discard, stream); err != nil {
		return nil, docnamer.Errorf(docnamer.ENOTFOUND, "%q is not a documentation URL: %v", base, err)
	}
	return l, nil
}

// Fetch issues a GET for base/relPath and returns the response body.
// Any non-200 response is reported as ENOTFOUND.
func (l *Locator) Fetch(ctx context.Context, relPath string) (io.ReadCloser, error) {
	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil, docnamer.Errorf(docnamer.EINTERNAL, "rate limit wait: %v", err)
		}
	}

	url := l.base + "/" + relPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, docnamer.Errorf(docnamer.EINVALID, "build request for %q: %v", url, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, docnamer.Errorf(docnamer.ENOTFOUND, "fetch %q: %v", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, docnamer.Errorf(docnamer.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	}
	return resp.Body, nil
}

// Close releases idle connections held by the underlying client.
func (l *Locator) Close() error {
	l.client.CloseIdleConnections()
	return nil
}
