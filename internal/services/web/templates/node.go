package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// component exposes a gomponents tree as a templ component.
func component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// embed renders a templ component inside a gomponents tree.
func embed(ctx context.Context, c templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}
