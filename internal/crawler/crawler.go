package crawler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"csdoc/internal/extractor"

	"golang.org/x/sync/errgroup"
)

// ErrNoSourceFiles is returned when the root holds no C# sources at all.
var ErrNoSourceFiles = errors.New("no source files found")

var defaultIgnored = []string{".git", ".vs", "bin", "obj", "node_modules", "testdata"}

// Crawler scans a directory for source files.
type Crawler struct {
	extractor *extractor.Extractor
	ignored   []string
	workers   int
}

// NewCrawler creates a new crawler instance. extraIgnored directory names
// are skipped in addition to the defaults.
func NewCrawler(ext *extractor.Extractor, extraIgnored ...string) *Crawler {
	return &Crawler{
		extractor: ext,
		ignored:   append(append([]string(nil), defaultIgnored...), extraIgnored...),
		workers:   runtime.GOMAXPROCS(0),
	}
}

// FindSources lists every .cs file below root in lexical order.
func (c *Crawler) FindSources(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip ignored directories
		if d.IsDir() {
			if path != root && c.isIgnored(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.EqualFold(filepath.Ext(d.Name()), ".cs") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func (c *Crawler) isIgnored(name string) bool {
	for _, ign := range c.ignored {
		if name == ign {
			return true
		}
	}
	return false
}

// ScanProject extracts every source file below root and hands the results
// to onFile in path order, after all files are done. Files are parsed
// concurrently; a file that cannot be read or parsed is logged and skipped.
// Cancelling ctx aborts the scan with the context error. It returns the
// number of source files found.
func (c *Crawler) ScanProject(ctx context.Context, root string, onFile func(*extractor.FileResult)) (int, error) {
	paths, err := c.FindSources(root)
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, ErrNoSourceFiles
	}

	results := make([]*extractor.FileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, path := range paths {
		i, path := i, path // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := c.extractor.ExtractFromFile(gctx, path)
			if err != nil {
				// A cancelled run must not look like a skipped file.
				if ctxErr := gctx.Err(); ctxErr != nil {
					return fmt.Errorf("scan of %s interrupted: %w", path, ctxErr)
				}
				// Log and continue instead of failing the whole scan
				log.Printf("⚠️ Skipping %s: %v", path, err)
				return nil
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return len(paths), err
	}

	for _, res := range results {
		if res != nil {
			onFile(res)
		}
	}
	return len(paths), nil
}
