package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"csdoc/internal/syntax"
)

// Extractor reads a source file and pulls its namespace and summaries.
type Extractor struct {
	provider syntax.Provider
}

// NewExtractor creates an extractor backed by the given syntax provider.
func NewExtractor(p syntax.Provider) *Extractor {
	return &Extractor{provider: p}
}

// ExtractFromFile parses a single source file. A file without summaries
// yields a result with an empty Summaries slice, not an error.
func (e *Extractor) ExtractFromFile(ctx context.Context, path string) (*FileResult, error) {
	sourceCode, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return e.ExtractFromSource(ctx, path, sourceCode)
}

// ExtractFromSource is ExtractFromFile for source already in memory.
func (e *Extractor) ExtractFromSource(ctx context.Context, path string, sourceCode []byte) (*FileResult, error) {
	root, err := e.provider.Parse(ctx, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}

	base := filepath.Base(path)
	return &FileResult{
		Title:     strings.TrimSuffix(base, filepath.Ext(base)),
		Namespace: ResolveNamespace(root),
		Summaries: ExtractSummaries(root),
	}, nil
}
