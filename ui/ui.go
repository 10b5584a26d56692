// Package ui renders the HTML served on the home route.
package ui

import (
	"context"
	"embed"
	"io"

	"webmetrics/ui/components"
	"webmetrics/util"

	"github.com/a-h/templ"
)

//go:embed content
var contentFS embed.FS

// PageData is what the home page needs from the running process.
type PageData struct {
	Title      string
	InstanceID string
}

// Index renders the home page: the Markdown body from content/index.md, a
// list of routes and the instance footer.
func Index(data PageData) templ.Component {
	body := util.FileToHTML("content/index.md", "", contentFS)
	routes := []templ.Component{
		components.RouteLink("/health", "liveness check"),
		components.RouteLink("/metrics", "Prometheus metrics"),
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"><title>"+
			templ.EscapeString(data.Title)+"</title></head><body><main>"); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<ul class=\"routes\">"); err != nil {
			return err
		}
		for _, r := range routes {
			if err := r.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</ul></main>"); err != nil {
			return err
		}
		if err := components.InstanceFooter(data.InstanceID).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}
