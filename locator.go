package docnamer

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// Locator retrieves raw documentation pages from one documentation root.
// Three interchangeable implementations share this contract: zip archives
// (zip package), directory trees (fs package), and remote HTTP-served
// trees (http package). A Locator validates its root once at construction
// and is safe for concurrent read-only use across many lookups.
type Locator interface {
	// Fetch opens the page at the relative path beneath the root.
	// Returns ENOTFOUND if no page exists at the path. The caller owns
	// the returned reader and must close it on every exit path.
	Fetch(ctx context.Context, relPath string) (io.ReadCloser, error)

	// Close releases resources held by the root handle.
	// Must be called when the Locator is no longer needed.
	Close() error
}

// ParsePackageList reads the sentinel package-list resource: one package
// name per line, blank lines ignored.
func ParsePackageList(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var packages []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		packages = append(packages, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, Errorf(EINTERNAL, "reading package list: %v", err)
	}
	return packages, nil
}
