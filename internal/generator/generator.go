package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"csdoc/internal/crawler"
	"csdoc/internal/extractor"
	"csdoc/internal/markup"
)

// ErrNoDocumentation is returned when sources were found but none of them
// carried a usable summary.
var ErrNoDocumentation = errors.New("no documentation found")

// Document is the result of one generation run.
type Document struct {
	Items []Item
	HTML  string
	Stats Stats
}

// WriteFile stores the rendered HTML at path.
func (d *Document) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(d.HTML), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// HTMLGenerator runs the whole pipeline: crawl, extract, transform,
// assemble and render.
type HTMLGenerator struct {
	crawler     *crawler.Crawler
	transformer *markup.Transformer
	renderer    *HTMLRenderer
}

func NewHTMLGenerator(c *crawler.Crawler, t *markup.Transformer, r *HTMLRenderer) *HTMLGenerator {
	return &HTMLGenerator{
		crawler:     c,
		transformer: t,
		renderer:    r,
	}
}

// Collect scans root and returns the assembled, sorted items.
func (g *HTMLGenerator) Collect(ctx context.Context, root string) ([]Item, Stats, error) {
	var stats Stats
	var items []Item

	found, err := g.crawler.ScanProject(ctx, root, func(res *extractor.FileResult) {
		if len(res.Summaries) == 0 {
			return
		}
		items = append(items, g.transformFile(res))
	})
	stats.FilesScanned = found
	if err != nil {
		return nil, stats, err
	}

	items = Assemble(items)
	if len(items) == 0 {
		return nil, stats, ErrNoDocumentation
	}

	stats.FilesDocumented = len(items)
	for _, it := range items {
		stats.Summaries += len(it.Summaries)
	}
	return items, stats, nil
}

func (g *HTMLGenerator) transformFile(res *extractor.FileResult) Item {
	summaries := make([]string, 0, len(res.Summaries))
	for _, raw := range res.Summaries {
		summaries = append(summaries, g.transformer.Transform(raw))
	}
	return Item{
		Title:     res.Title,
		Namespace: res.Namespace,
		Summaries: summaries,
	}
}

// Generate collects the items below root and renders them. The project
// name defaults to the base name of root.
func (g *HTMLGenerator) Generate(ctx context.Context, root, projectName string) (*Document, error) {
	items, stats, err := g.Collect(ctx, root)
	if err != nil {
		return nil, err
	}

	if projectName == "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, err
		}
		projectName = filepath.Base(abs)
	}

	return &Document{
		Items: items,
		HTML:  g.renderer.Render(items, projectName),
		Stats: stats,
	}, nil
}
