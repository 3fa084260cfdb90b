package mock

import "github.com/fwojciec/docnamer"

var _ docnamer.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docnamer.Extractor.
type Extractor struct {
	ParameterNamesFn func(pageHTML string, c *docnamer.Callable) ([]string, error)
	DescriptionFn    func(pageHTML string, c *docnamer.Callable) (string, error)
}

func (e *Extractor) ParameterNames(pageHTML string, c *docnamer.Callable) ([]string, error) {
	return e.ParameterNamesFn(pageHTML, c)
}

func (e *Extractor) Description(pageHTML string, c *docnamer.Callable) (string, error) {
	return e.DescriptionFn(pageHTML, c)
}
