package ingest

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/gmltools/gml"
)

// DefaultPattern matches GML files.
const DefaultPattern = "*.gml"

// Document is a decoded GML file.
type Document struct {
	Path string
	Tag  gml.Tag
}

// Discover lists the regular files in dir matching pattern (filepath.Match
// syntax; DefaultPattern when empty), sorted by name. The directory is always
// explicit: the process working directory is never consulted implicitly.
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, errors.Wrapf(err, "ingest: pattern %q", pattern)
	}

	paths := matches[:0]
	for _, m := range matches {
		fi, err := os.Stat(m)
		if err != nil {
			return nil, errors.Wrap(err, "ingest: stat")
		}
		if fi.Mode().IsRegular() {
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadFile reads and decodes a single GML file.
func LoadFile(path string) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, errors.Wrap(err, "ingest: read")
	}
	tag, err := DecodeBytes(b)
	if err != nil {
		return Document{}, errors.Wrapf(err, "ingest: %s", path)
	}
	return Document{Path: path, Tag: tag}, nil
}

// LoadFiles decodes paths concurrently, reading at most workers files at a
// time (unbounded when workers <= 0). Documents are returned in the order of
// paths. The first failure cancels the remaining reads and is returned.
func LoadFiles(ctx context.Context, paths []string, workers int) ([]Document, error) {
	docs := make([]Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := LoadFile(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	gml.Logger().Info("ingest: loaded documents", "count", len(docs))
	return docs, nil
}
