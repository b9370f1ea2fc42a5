package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/studypicks/internal/page"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Layout renders the document shell around its templ children.
func Layout(p page.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := p.Lang
		if lang == "" {
			lang = "en"
		}
		children := templ.GetChildren(ctx)
		return h.Doctype(
			h.HTML(
				h.Lang(lang),
				h.Head(
					h.Meta(h.Charset("utf-8")),
					h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
					h.TitleEl(g.Text(p.Title)),
					h.Meta(h.Name("description"), h.Content(p.Description)),
				),
				h.Body(
					h.Class("min-h-screen bg-slate-950 text-slate-100"),
					embed(templ.ClearChildren(ctx), children),
				),
			),
		).Render(w)
	})
}

// Document renders the full advisor page.
func Document(p page.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(p).Render(templ.WithChildren(ctx, HomePage(p)), w)
	})
}
