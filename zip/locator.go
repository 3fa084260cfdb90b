// Package zip provides a docnamer.Locator backed by a zip archive of
// generated documentation, the form Javadoc bundles ship in.
package zip

import (
	"archive/zip"
	"context"
	"io"
	"strings"

	"github.com/fwojciec/docnamer"
)

// Ensure Locator implements docnamer.Locator at compile time.
var _ docnamer.Locator = (*Locator)(nil)

// Locator serves documentation pages from entries of a zip archive.
// Archives often nest the documentation under a top-level directory, so
// entries are matched by path suffix rather than exact name. zip readers
// support concurrent entry opens, so a Locator is safe for concurrent
// lookups without additional locking.
type Locator struct {
	archive *zip.ReadCloser
}

// NewLocator opens the archive and verifies that it contains the
// package-list sentinel. An archive without the sentinel is not a
// documentation archive and is rejected before any lookup can fail
// confusingly deep in parsing.
func NewLocator(path string) (*Locator, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, docnamer.Errorf(docnamer.EINVALID, "open archive %q: %v", path, err)
	}
	l := &Locator{archive: archive}
	if _, err := l.find(docnamer.PackageListFile); err != nil {
		archive.Close()
		return nil, docnamer.Errorf(docnamer.ENOTFOUND, "%q is not a documentation archive: no %s entry", path, docnamer.PackageListFile)
	}
	return l, nil
}

// find returns the first entry whose name ends with the given path suffix.
func (l *Locator) find(suffix string) (*zip.File, error) {
	for _, f := range l.archive.File {
		if strings.HasSuffix(f.Name, suffix) {
			return f, nil
		}
	}
	return nil, docnamer.Errorf(docnamer.ENOTFOUND, "no archive entry matches %q", suffix)
}

// Fetch opens a read stream on the entry matching the relative path.
func (l *Locator) Fetch(ctx context.Context, relPath string) (io.ReadCloser, error) {
	entry, err := l.find(relPath)
	if err != nil {
		return nil, err
	}
	stream, err := entry.Open()
	if err != nil {
		return nil, docnamer.Errorf(docnamer.EINTERNAL, "open archive entry %q: %v", entry.Name, err)
	}
	return stream, nil
}

// Close closes the underlying archive handle.
func (l *Locator) Close() error {
	return l.archive.Close()
}
