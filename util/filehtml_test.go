package util

import (
	"bytes"
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, path, lang string, fsys fstest.MapFS) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := FileToHTML(path, lang, fsys).Render(context.Background(), &buf)
	return buf.String(), err
}

func TestFileToHTMLMarkdown(t *testing.T) {
	fsys := fstest.MapFS{
		"md/page.md": {Data: []byte("# Title\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")},
	}

	out, err := render(t, "md/page.md", "", fsys)
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<table>")
}

func TestFileToHTMLSource(t *testing.T) {
	fsys := fstest.MapFS{
		"src/main.go": {Data: []byte("package main\n")},
	}

	out, err := render(t, "src/main.go", "", fsys)
	require.NoError(t, err)
	assert.Contains(t, out, "<pre")
	assert.Contains(t, out, "package")
}

func TestFileToHTMLIsCached(t *testing.T) {
	fsys := fstest.MapFS{
		"cache/page.md": {Data: []byte("first")},
	}
	first, err := render(t, "cache/page.md", "", fsys)
	require.NoError(t, err)

	fsys["cache/page.md"] = &fstest.MapFile{Data: []byte("second")}
	second, err := render(t, "cache/page.md", "", fsys)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, second, "first")
}

func TestFileToHTMLMissingFile(t *testing.T) {
	_, err := render(t, "missing/page.md", "", fstest.MapFS{})
	assert.Error(t, err)

	// failures are not cached
	out, err := render(t, "missing/page.md", "", fstest.MapFS{
		"missing/page.md": {Data: []byte("found")},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "found")
}
