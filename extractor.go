package docnamer

// Extractor recovers declared parameter names from documentation markup.
type Extractor interface {
	// ParameterNames scans the page for the callable's declaration block
	// and returns its parameter names in declaration order. Overload
	// selection is exact on arity and normalized parameter type
	// sequence, never fuzzy. Returns ENOTFOUND when no declaration on
	// the page matches the callable, and EINTERNAL when a matching
	// declaration omits or garbles a parameter name; a partial name
	// list is never returned.
	ParameterNames(pageHTML string, c *Callable) ([]string, error)

	// Description returns the callable's prose documentation block as
	// HTML. Returns ENOTFOUND when the callable or its description is
	// absent from the page.
	Description(pageHTML string, c *Callable) (string, error)
}

// Converter renders extracted documentation HTML for display.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	Convert(html string) (string, error)
}
