package main

import (
	"fmt"

	"github.com/fwojciec/docnamer"
)

// Run executes the packages command.
func (c *PackagesCmd) Run(deps *Dependencies) error {
	locator, err := openLocator(deps.Ctx, c.Root)
	if err != nil {
		return err
	}
	defer locator.Close()

	stream, err := locator.Fetch(deps.Ctx, docnamer.PackageListFile)
	if err != nil {
		return err
	}
	defer stream.Close()

	packages, err := docnamer.ParsePackageList(stream)
	if err != nil {
		return err
	}
	if len(packages) == 0 {
		fmt.Fprintln(deps.Stdout, "No packages listed.")
		return nil
	}
	for _, pkg := range packages {
		fmt.Fprintln(deps.Stdout, pkg)
	}
	return nil
}
