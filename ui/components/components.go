package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// RouteLink renders a link to one of the service's endpoints.
func RouteLink(path, label string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<li><a href=\"%s\"><code>%s</code></a> %s</li>",
			templ.EscapeString(path), templ.EscapeString(path), templ.EscapeString(label))
		return err
	})
}

// InstanceFooter shows which process served the page.
func InstanceFooter(id string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<footer class=\"instance\">instance <code>%s</code></footer>", templ.EscapeString(id))
		return err
	})
}
