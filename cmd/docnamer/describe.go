package main

import (
	"fmt"

	"github.com/fwojciec/docnamer"
	"github.com/fwojciec/docnamer/goquery"
	"github.com/fwojciec/docnamer/htmltomarkdown"
)

// Run executes the describe command.
func (c *DescribeCmd) Run(deps *Dependencies) error {
	locator, err := openLocator(deps.Ctx, c.Root)
	if err != nil {
		return err
	}
	defer locator.Close()

	service := &docnamer.LookupService{
		Locator:   locator,
		Extractor: goquery.NewExtractor(),
	}

	callable := buildCallable(c.Class, c.Member, c.ParamTypes, c.Constructor)
	descriptionHTML, err := service.Description(deps.Ctx, callable)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnamer.ErrorMessage(err))
		return err
	}

	markdown, err := htmltomarkdown.NewConverter().Convert(descriptionHTML)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}
