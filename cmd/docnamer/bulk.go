package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/docnamer"
	"github.com/fwojciec/docnamer/goquery"
	"golang.org/x/sync/errgroup"
)

// constructorMarker names a constructor in a callable spec line.
const constructorMarker = "<init>"

// Run executes the bulk command.
func (c *BulkCmd) Run(deps *Dependencies) error {
	file, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open callable file: %w", err)
	}
	defer file.Close()

	var callables []*docnamer.Callable
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		callable, err := parseCallableSpec(line)
		if err != nil {
			return err
		}
		callables = append(callables, callable)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read callable file: %w", err)
	}
	if len(callables) == 0 {
		return docnamer.Errorf(docnamer.EINVALID, "no callables in %q", c.File)
	}

	locator, err := openLocator(deps.Ctx, c.Root)
	if err != nil {
		return err
	}
	defer locator.Close()

	// One locator shared across workers; locators are safe for
	// concurrent lookups.
	service := &docnamer.LookupService{
		Locator:   locator,
		Extractor: goquery.NewExtractor(),
	}
	policy := docnamer.PolicyRaise
	if c.Empty {
		policy = docnamer.PolicyEmpty
	}

	type result struct {
		names []string
		err   error
	}
	results := make([]result, len(callables))

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, callable := range callables {
		g.Go(func() error {
			names, err := service.ParameterNames(gctx, callable, policy)
			results[i] = result{names: names, err: err}
			return nil
		})
	}
	_ = g.Wait()

	// Report in input order.
	var failed int
	for i, callable := range callables {
		if results[i].err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "%s: %s\n", callable, docnamer.ErrorMessage(results[i].err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", callable, strings.Join(results[i].names, ","))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lookups failed", failed, len(callables))
	}
	return nil
}

// parseCallableSpec parses one callable line of the form
// "com.example.Foo#process(java.lang.String,int)". Constructors use the
// "<init>" marker in place of the method name. Parameter types must be
// spelled without generic arguments; generics are erased from
// documentation signatures before matching anyway.
func parseCallableSpec(line string) (*docnamer.Callable, error) {
	class, member, ok := strings.Cut(line, "#")
	if !ok || class == "" {
		return nil, docnamer.Errorf(docnamer.EINVALID, "callable spec %q: want class#member(types)", line)
	}
	name, rest, ok := strings.Cut(member, "(")
	if !ok || !strings.HasSuffix(rest, ")") {
		return nil, docnamer.Errorf(docnamer.EINVALID, "callable spec %q: missing parameter list", line)
	}

	var paramTypes []string
	if inner := strings.TrimSuffix(rest, ")"); inner != "" {
		for _, t := range strings.Split(inner, ",") {
			t = strings.TrimSpace(t)
			if t == "" {
				return nil, docnamer.Errorf(docnamer.EINVALID, "callable spec %q: empty parameter type", line)
			}
			paramTypes = append(paramTypes, t)
		}
	}

	if name == constructorMarker {
		return &docnamer.Callable{
			Kind:           docnamer.KindConstructor,
			DeclaringType:  class,
			ParameterTypes: paramTypes,
		}, nil
	}
	return &docnamer.Callable{
		Kind:           docnamer.KindMethod,
		DeclaringType:  class,
		Name:           name,
		ParameterTypes: paramTypes,
	}, nil
}
