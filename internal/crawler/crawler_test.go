package crawler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"csdoc/internal/extractor"
	"csdoc/internal/syntax"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newTestCrawler(extra ...string) *Crawler {
	return NewCrawler(extractor.NewExtractor(syntax.NewTreeSitterProvider()), extra...)
}

func TestCrawler_FindSources(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "B.cs"), "class B {}")
	writeFile(t, filepath.Join(root, "sub", "A.cs"), "class A {}")
	writeFile(t, filepath.Join(root, "Upper.CS"), "class U {}")
	writeFile(t, filepath.Join(root, "notes.txt"), "not code")
	writeFile(t, filepath.Join(root, "bin", "Gen.cs"), "class Gen {}")
	writeFile(t, filepath.Join(root, "obj", "Debug", "Gen.cs"), "class Gen {}")
	writeFile(t, filepath.Join(root, "legacy", "Old.cs"), "class Old {}")

	paths, err := newTestCrawler("legacy").FindSources(root)
	require.NoError(t, err)

	var rel []string
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	assert.Equal(t, []string{"B.cs", "Upper.CS", "sub/A.cs"}, rel)
}

func TestCrawler_ScanProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Zeta.cs"), "/// <summary>Z.</summary>\nclass Zeta {}\n")
	writeFile(t, filepath.Join(root, "Alpha.cs"), "namespace N { class Alpha {} }\n")

	var titles []string
	found, err := newTestCrawler().ScanProject(context.Background(), root, func(res *extractor.FileResult) {
		titles = append(titles, res.Title)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, found)
	assert.Equal(t, []string{"Alpha", "Zeta"}, titles)
}

func TestCrawler_ScanProject_NoSources(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "README.md"), "# nothing")

	found, err := newTestCrawler().ScanProject(context.Background(), root, func(*extractor.FileResult) {
		t.Fatal("callback must not run")
	})
	assert.ErrorIs(t, err, ErrNoSourceFiles)
	assert.Zero(t, found)
}

func TestCrawler_ScanProject_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "A.cs"), "class A {}")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestCrawler().ScanProject(ctx, root, func(*extractor.FileResult) {})
	assert.ErrorIs(t, err, context.Canceled)
}

// cancellingProvider cancels the run while the first file is being parsed.
type cancellingProvider struct {
	cancel context.CancelFunc
}

func (p *cancellingProvider) Parse(ctx context.Context, _ []byte) (*syntax.Node, error) {
	p.cancel()
	<-ctx.Done()
	return nil, fmt.Errorf("parse interrupted: %w", ctx.Err())
}

func TestCrawler_ScanProject_CancelledDuringParse(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "A.cs"), "class A {}")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := NewCrawler(extractor.NewExtractor(&cancellingProvider{cancel: cancel}))
	_, err := c.ScanProject(ctx, root, func(*extractor.FileResult) {
		t.Fatal("callback must not run")
	})
	assert.ErrorIs(t, err, context.Canceled)
}
