package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/studypicks/internal/page"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NotFound renders a minimal missing-page document that links home.
func NotFound(lang string, homeHref string) templ.Component {
	p := page.Page{Lang: lang, Title: "Page not found"}
	body := component(h.Main(
		h.ID("not-found"),
		h.Class("mx-auto flex max-w-5xl flex-col gap-6 px-6 py-24 md:px-12"),
		h.H1(h.Class("text-3xl font-semibold text-white"), g.Text(p.Title)),
		h.A(h.Class("text-indigo-200 underline"), h.Href(homeHref), g.Text("Back to the study picks")),
	))
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(p).Render(templ.WithChildren(ctx, body), w)
	})
}
