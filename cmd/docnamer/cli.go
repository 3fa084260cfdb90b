package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fwojciec/docnamer"
	"github.com/fwojciec/docnamer/fs"
	dochttp "github.com/fwojciec/docnamer/http"
	"github.com/fwojciec/docnamer/zip"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Verbose bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Lookup   LookupCmd   `cmd:"" help:"Look up parameter names for a method or constructor"`
	Describe DescribeCmd `cmd:"" help:"Print a member's documentation as Markdown"`
	Bulk     BulkCmd     `cmd:"" help:"Look up parameter names for many callables from a file"`
	Packages PackagesCmd `cmd:"" help:"List the packages a documentation root covers"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Root        string   `arg:"" help:"Documentation root: directory, zip archive, or base URL"`
	Class       string   `arg:"" help:"Fully-qualified class name"`
	Member      string   `arg:"" optional:"" help:"Method name (omit with --constructor)"`
	ParamTypes  []string `arg:"" optional:"" help:"Declared parameter types, in order"`
	Constructor bool     `short:"c" help:"Look up a constructor instead of a method"`
	Empty       bool     `name:"empty-on-missing" help:"Print nothing instead of failing when names cannot be found"`
	CacheSize   int      `default:"256" help:"In-memory cache entries (0 disables caching)"`
	DB          string   `help:"SQLite cache path for persistence across runs"`
}

// DescribeCmd is the "describe" subcommand.
type DescribeCmd struct {
	Root        string   `arg:"" help:"Documentation root: directory, zip archive, or base URL"`
	Class       string   `arg:"" help:"Fully-qualified class name"`
	Member      string   `arg:"" optional:"" help:"Method name (omit with --constructor)"`
	ParamTypes  []string `arg:"" optional:"" help:"Declared parameter types, in order"`
	Constructor bool     `short:"c" help:"Describe a constructor instead of a method"`
}

// BulkCmd is the "bulk" subcommand.
type BulkCmd struct {
	Root        string `arg:"" help:"Documentation root: directory, zip archive, or base URL"`
	File        string `arg:"" help:"File with one callable per line, e.g. com.example.Foo#process(java.lang.String,int)"`
	Concurrency int    `default:"4" help:"Concurrent lookup limit"`
	Empty       bool   `name:"empty-on-missing" help:"Report misses as empty instead of errors"`
}

// PackagesCmd is the "packages" subcommand.
type PackagesCmd struct {
	Root string `arg:"" help:"Documentation root: directory, zip archive, or base URL"`
}

// openLocator selects a backend for the root: an existing directory is
// served from the filesystem, an existing regular file as a zip archive,
// and anything else is treated as a base URL.
func openLocator(ctx context.Context, root string) (docnamer.Locator, error) {
	info, err := os.Stat(root)
	switch {
	case err == nil && info.IsDir():
		return fs.NewLocator(root)
	case err == nil:
		return zip.NewLocator(root)
	default:
		return dochttp.NewLocator(ctx, root)
	}
}

// buildCallable assembles the callable from positional arguments. With
// --constructor the member argument, when present, is really the first
// parameter type.
func buildCallable(class, member string, paramTypes []string, constructor bool) *docnamer.Callable {
	if constructor {
		if member != "" {
			paramTypes = append([]string{member}, paramTypes...)
		}
		return &docnamer.Callable{
			Kind:           docnamer.KindConstructor,
			DeclaringType:  class,
			ParameterTypes: paramTypes,
		}
	}
	return &docnamer.Callable{
		Kind:           docnamer.KindMethod,
		DeclaringType:  class,
		Name:           member,
		ParameterTypes: paramTypes,
	}
}
