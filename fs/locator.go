// Package fs provides a docnamer.Locator backed by an unpacked
// documentation directory tree on the local filesystem.
package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/docnamer"
)

// Ensure Locator implements docnamer.Locator at compile time.
var _ docnamer.Locator = (*Locator)(nil)

// Locator serves documentation pages from files beneath a root directory.
type Locator struct {
	root string
}

// NewLocator validates that root is a directory holding the package-list
// sentinel as a direct child.
func NewLocator(root string) (*Locator, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, docnamer.Errorf(docnamer.ENOTFOUND, "documentation root %q: %v", root, err)
	}
	if !info.IsDir() {
		return nil, docnamer.Errorf(docnamer.EINVALID, "documentation root %q is not a directory", root)
	}
	if _, err := os.Stat(filepath.Join(root, docnamer.PackageListFile)); err != nil {
		return nil, docnamer.Errorf(docnamer.ENOTFOUND, "%q is not a documentation directory: no %s file", root, docnamer.PackageListFile)
	}
	return &Locator{root: root}, nil
}

// Fetch opens the file at root/relPath.
func (l *Locator) Fetch(ctx context.Context, relPath string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(l.root, filepath.FromSlash(relPath)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, docnamer.Errorf(docnamer.ENOTFOUND, "no documentation page at %q", relPath)
		}
		return nil, docnamer.Errorf(docnamer.EINTERNAL, "open documentation page %q: %v", relPath, err)
	}
	return file, nil
}

// Close releases resources. The directory locator holds no open handles
// between fetches, so this is a no-op.
func (l *Locator) Close() error {
	return nil
}
