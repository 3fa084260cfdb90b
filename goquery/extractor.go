// Package goquery implements signature extraction from generated Javadoc
// pages using CSS selectors.
//
// Two generator layouts are recognized: the detail sections emitted by
// Javadoc 11 and later, and the anchor/heading layout of Javadoc 8. Pages
// are scanned with the newer layout first; other generator versions are
// extensions and get their own scan function.
package goquery

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docnamer"
)

// Ensure Extractor implements docnamer.Extractor at compile time.
var _ docnamer.Extractor = (*Extractor)(nil)

// Extractor recovers declared parameter names from Javadoc page markup.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// formatScan finds every declaration block documented under the target
// heading for one generator layout.
type formatScan func(doc *goquery.Document, target string) []*candidate

// formats in scan order; the first layout that yields candidates wins.
var formats = []formatScan{scanModern, scanJavadoc8}

// ParameterNames scans the page for the callable's declaration and returns
// its parameter names in declaration order. Overload selection is exact on
// arity and normalized parameter type sequence: returning names for the
// wrong overload would be worse than failing.
func (e *Extractor) ParameterNames(pageHTML string, c *docnamer.Callable) ([]string, error) {
	match, err := e.match(pageHTML, c)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(match.params))
	for i, p := range match.params {
		if p.name == "" {
			// Some build configurations omit parameter names from the
			// generated signature. Failing beats guessing.
			return nil, docnamer.Errorf(docnamer.EINTERNAL, "declaration of %q omits the name of parameter %d", c, i+1)
		}
		names[i] = p.name
	}
	return names, nil
}

// Description returns the callable's prose documentation block as HTML.
func (e *Extractor) Description(pageHTML string, c *docnamer.Callable) (string, error) {
	match, err := e.match(pageHTML, c)
	if err != nil {
		return "", err
	}
	if match.description == "" {
		return "", docnamer.Errorf(docnamer.ENOTFOUND, "declaration of %q carries no description", c)
	}
	return match.description, nil
}

// match locates the one declaration block matching the callable's heading
// and normalized parameter type sequence.
func (e *Extractor) match(pageHTML string, c *docnamer.Callable) (*candidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, docnamer.Errorf(docnamer.EINVALID, "failed to parse HTML: %v", err)
	}

	// Constructors are documented under the declaring type's simple name.
	target := c.Name
	if c.Kind == docnamer.KindConstructor {
		target = c.SimpleTypeName()
	}

	var cands []*candidate
	for _, scan := range formats {
		if cands = scan(doc, target); len(cands) > 0 {
			break
		}
	}
	if len(cands) == 0 {
		return nil, docnamer.Errorf(docnamer.ENOTFOUND, "no declaration of %q on page", target)
	}

	want := make([]string, len(c.ParameterTypes))
	for i, t := range c.ParameterTypes {
		want[i] = normalizeType(t)
	}
	for _, cand := range cands {
		if slices.Equal(cand.types(), want) {
			return cand, nil
		}
	}
	return nil, docnamer.Errorf(docnamer.ENOTFOUND, "no overload of %q matches parameter types (%s)", target, strings.Join(c.ParameterTypes, ", "))
}
