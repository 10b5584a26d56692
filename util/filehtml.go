package util

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// cache holds rendered HTML keyed by path, so each file is converted once
// per process.
var cache sync.Map // map[string]string

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(highlighting.WithStyle("github")),
	),
)

// FileToHTML converts a Markdown or source-code file to ready-to-embed HTML.
//
//	path   – file path inside fsys
//	lang   – "" to auto-detect from extension, or override like "go", "sh"
//
// The returned templ.Component is either safe HTML (templ.Raw) or one that
// fails with the read or conversion error when rendered.
func FileToHTML(path string, lang string, fsys fs.FS) templ.Component {
	if v, ok := cache.Load(path); ok {
		return templ.Raw(v.(string))
	}

	htmlStr, err := convert(path, lang, fsys)
	if err != nil {
		return templ.ComponentFunc(func(context.Context, io.Writer) error { return err })
	}
	cache.Store(path, htmlStr)
	return templ.Raw(htmlStr)
}

func convert(path string, lang string, fsys fs.FS) (string, error) {
	src, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", err
	}

	if lang == "" {
		lang = strings.TrimPrefix(filepath.Ext(path), ".") // ".go" -> "go"
	}
	if lang != "" && lang != "md" && lang != "markdown" {
		// fenced so the highlighter picks it up
		src = append([]byte("```"+lang+"\n"), append(src, []byte("\n```")...)...)
	}

	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("convert %s: %w", path, err)
	}
	return buf.String(), nil
}
