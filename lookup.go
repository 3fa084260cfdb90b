package docnamer

import (
	"bufio"
	"context"
	"io"
	"strings"
	"unicode/utf8"
)

// MissingPolicy selects how a lookup reports "names not found" outcomes:
// missing pages, unmatched declarations, and unparseable signatures.
type MissingPolicy int

const (
	// PolicyRaise propagates lookup failures as errors naming the
	// callable and the underlying cause.
	PolicyRaise MissingPolicy = iota

	// PolicyEmpty folds lookup failures into an empty name list.
	PolicyEmpty
)

// Lookuper resolves declared parameter names for callables.
type Lookuper interface {
	// ParameterNames returns the callable's parameter names in
	// declaration order. An empty result is either a genuine zero-arity
	// callable or, under PolicyEmpty, a failed lookup; under
	// PolicyRaise a non-error result always has one name per declared
	// parameter. An invalid callable is a programmer error reported as
	// EINVALID regardless of policy.
	ParameterNames(ctx context.Context, c *Callable, policy MissingPolicy) ([]string, error)
}

// LookupService wires path resolution, content location, and signature
// extraction into one lookup pipeline. It performs no caching and no
// retries; wrap it (see CachingLookup) when resilience or reuse across
// repeated lookups is needed.
type LookupService struct {
	Locator   Locator
	Extractor Extractor
}

var _ Lookuper = (*LookupService)(nil)

// ParameterNames implements Lookuper.
func (s *LookupService) ParameterNames(ctx context.Context, c *Callable, policy MissingPolicy) ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	names, err := s.lookup(ctx, c)
	if err != nil {
		if policy == PolicyEmpty {
			return []string{}, nil
		}
		return nil, Errorf(ErrorCode(err), "parameter names for %s: %s", c, ErrorMessage(err))
	}
	return names, nil
}

// Description returns the callable's documentation comment as HTML.
// Unlike ParameterNames it has no graceful mode; a missing page or member
// is always an error.
func (s *LookupService) Description(ctx context.Context, c *Callable) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	page, err := s.page(ctx, c)
	if err != nil {
		return "", Errorf(ErrorCode(err), "description for %s: %s", c, ErrorMessage(err))
	}
	desc, err := s.Extractor.Description(page, c)
	if err != nil {
		return "", Errorf(ErrorCode(err), "description for %s: %s", c, ErrorMessage(err))
	}
	return desc, nil
}

func (s *LookupService) lookup(ctx context.Context, c *Callable) ([]string, error) {
	page, err := s.page(ctx, c)
	if err != nil {
		return nil, err
	}
	names, err := s.Extractor.ParameterNames(page, c)
	if err != nil {
		return nil, err
	}
	// A name list shorter than the declared parameter count is a parser
	// defect, never a valid result.
	if len(names) != len(c.ParameterTypes) {
		return nil, Errorf(EINTERNAL, "extracted %d names for %d declared parameters", len(names), len(c.ParameterTypes))
	}
	return names, nil
}

func (s *LookupService) page(ctx context.Context, c *Callable) (string, error) {
	relPath, err := TypePagePath(c.DeclaringType)
	if err != nil {
		return "", err
	}
	stream, err := s.Locator.Fetch(ctx, relPath)
	if err != nil {
		return "", err
	}
	return decodeText(stream)
}

// decodeText reads the stream as UTF-8 text, line by line, normalizing
// line endings. The stream is closed on every exit path, including decode
// failure. Malformed bytes are reported as ENOTFOUND: a page we cannot
// decode is as useless as no page at all.
func decodeText(stream io.ReadCloser) (string, error) {
	defer stream.Close()

	var b strings.Builder
	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 64*1024), 8*1024*1024)
	for scanner.Scan() {
		if !utf8.Valid(scanner.Bytes()) {
			return "", Errorf(ENOTFOUND, "page content is not valid UTF-8")
		}
		b.Write(scanner.Bytes())
		b.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", Errorf(ENOTFOUND, "reading page content: %v", err)
	}
	return b.String(), nil
}
