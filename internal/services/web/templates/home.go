package templates

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/studypicks/internal/page"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HomePage renders every advisor section in page order.
func HomePage(p page.Page) templ.Component {
	return component(h.Div(
		h.Class("min-h-screen bg-slate-950 text-slate-100"),
		hero(p.Hero),
		h.Main(
			h.Class("mx-auto flex max-w-5xl flex-col gap-16 px-6 pb-24 md:px-12"),
			primaryPanel(p.Primary),
			subjectGrid(p.Subjects),
			contenderGrid(p.Contenders),
			launchPlan(p.LaunchPlan),
			callToAction(p.CallToAction),
		),
		h.Footer(
			h.Class("border-t border-white/10 bg-slate-950/80 py-10 text-center text-xs text-white/40"),
			g.Text(p.Footer),
		),
	))
}

func hero(hr page.Hero) g.Node {
	return h.Div(
		h.Class("relative isolate overflow-hidden px-6 pt-16 pb-24 md:px-12"),
		h.Div(h.Class("absolute inset-0 -z-10 bg-gradient-to-br from-indigo-600/20 via-blue-500/10 to-emerald-500/10 blur-3xl")),
		h.Header(
			h.ID("hero"),
			h.Class("mx-auto max-w-5xl space-y-8"),
			h.Span(
				h.Class("inline-flex items-center gap-2 rounded-full border border-white/20 bg-white/10 px-4 py-1 text-sm font-medium text-white/80 backdrop-blur"),
				g.Text(hr.Badge),
			),
			h.H1(h.Class("text-balance text-4xl font-semibold tracking-tight sm:text-6xl"), g.Text(hr.Headline)),
			h.P(h.Class("max-w-2xl text-lg leading-8 text-slate-200/80"), g.Text(hr.Tagline)),
		),
	)
}

func primaryPanel(p page.PrimaryPanel) g.Node {
	return h.Section(
		h.ID("top-pick"),
		h.Class("grid gap-10 rounded-3xl border border-white/10 bg-slate-900/60 p-8 shadow-2xl shadow-indigo-900/20 backdrop-blur"),
		h.Div(
			h.Class("flex flex-col gap-6"),
			h.Div(
				h.Class("flex flex-wrap items-center justify-between gap-4"),
				h.Div(
					h.P(h.Class("text-sm uppercase tracking-[0.3em] text-indigo-300/70"), g.Text(p.Eyebrow)),
					labeledField(h.H2, "name", "text-3xl font-semibold text-white", p.Name),
				),
				link("inline-flex h-12 items-center rounded-full border border-indigo-400/50 bg-indigo-500/20 px-6 text-sm font-semibold text-indigo-100 transition hover:border-indigo-300 hover:bg-indigo-500/30", "explore", p.Link),
			),
			labeledField(h.P, "headline", "text-lg text-slate-200/90", p.Headline),
			h.Div(
				h.Class("flex flex-wrap items-center gap-4 text-sm text-indigo-100/80"),
				labeledField(h.Span, "pricing", "rounded-full border border-indigo-300/40 bg-indigo-500/10 px-4 py-2", p.Pricing),
				labeledField(h.Span, "best-for", "rounded-full border border-white/10 px-4 py-2", p.BestFor),
			),
		),
		h.Div(
			h.Class("grid gap-6 md:grid-cols-2"),
			itemList("strengths", "bg-indigo-300", p.Strengths),
			itemList("ai-features", "bg-emerald-300", p.AIFeatures),
		),
	)
}

func labeledField(el func(...g.Node) g.Node, field, class string, f page.Field) g.Node {
	return el(
		h.Class(class),
		h.Data("field", field),
		h.Aria("label", f.Label),
		g.Text(f.Value),
	)
}

func itemList(name, dotClass string, list page.ItemList) g.Node {
	return h.Div(
		h.Class("rounded-2xl border border-white/5 bg-white/5 p-6"),
		h.H3(h.Class("text-sm font-semibold uppercase tracking-[0.2em] text-white/70"), g.Text(list.Title)),
		h.Ul(
			h.Class("mt-4 space-y-3 text-sm text-slate-200/80"),
			h.Data("list", name),
			g.Map(list.Items, func(item page.ListItem) g.Node {
				return h.Li(
					h.Class("flex items-start gap-3 rounded-xl border border-white/5 bg-slate-950/60 p-3"),
					h.Data("key", item.Key),
					h.Span(h.Class("mt-1 h-2 w-2 flex-none rounded-full "+dotClass)),
					h.Span(g.Text(item.Text)),
				)
			}),
		),
	)
}

func sectionHeading(heading, intro string) g.Node {
	return h.Div(
		h.Class("flex flex-col gap-3"),
		h.H2(h.Class("text-2xl font-semibold text-white"), g.Text(heading)),
		h.P(h.Class("max-w-2xl text-sm text-slate-200/70"), g.Text(intro)),
	)
}

func subjectGrid(grid page.SubjectGrid) g.Node {
	return h.Section(
		h.ID("subjects"),
		h.Class("space-y-8"),
		sectionHeading(grid.Heading, grid.Intro),
		h.Div(
			h.Class("grid gap-6 md:grid-cols-3"),
			g.Map(grid.Cards, func(card page.SubjectCard) g.Node {
				return h.Article(
					h.Class("relative overflow-hidden rounded-3xl border bg-gradient-to-br p-6 "+card.Tone),
					h.Data("subject", card.Key.String()),
					h.Div(h.Class("absolute inset-0 -z-10 bg-gradient-to-br from-white/5 via-transparent to-transparent")),
					h.H3(h.Class("text-lg font-semibold text-white"), g.Text(card.Label)),
					h.P(h.Class("mt-4 text-sm leading-6 text-slate-100/80"), g.Text(card.Body)),
				)
			}),
		),
	)
}

func contenderGrid(grid page.ContenderGrid) g.Node {
	return h.Section(
		h.ID("contenders"),
		h.Class("space-y-8"),
		sectionHeading(grid.Heading, grid.Intro),
		h.Div(
			h.Class("grid gap-6 md:grid-cols-3"),
			g.Map(grid.Cards, contenderCard),
		),
	)
}

func contenderCard(card page.ContenderCard) g.Node {
	return h.Article(
		h.Class("flex flex-col gap-4 rounded-3xl border border-white/10 bg-slate-900/70 p-6"),
		h.Data("contender", card.Name),
		h.Div(
			h.Class("flex flex-col gap-2"),
			h.H3(h.Class("text-lg font-semibold text-white"), g.Text(card.Name)),
			h.P(h.Class("text-sm text-indigo-200/80"), g.Text(card.Headline)),
			h.P(h.Class("text-xs uppercase tracking-[0.2em] text-white/50"), g.Text(card.Pricing)),
		),
		h.Div(
			h.Class("space-y-3 text-sm text-slate-200/80"),
			h.P(g.Text(card.BestFor)),
			h.Ul(
				h.Class("space-y-2"),
				h.Data("list", "strengths"),
				g.Map(card.Strengths, func(item page.ListItem) g.Node {
					return h.Li(
						h.Class("flex gap-2 rounded-xl border border-white/5 bg-slate-950/60 p-2"),
						h.Data("key", item.Key),
						h.Span(h.Class("mt-1 h-1.5 w-1.5 flex-none rounded-full bg-indigo-300")),
						h.Span(g.Text(item.Text)),
					)
				}),
			),
		),
		link("mt-auto inline-flex items-center justify-center rounded-full border border-white/20 px-4 py-2 text-sm font-semibold text-white transition hover:border-white/40 hover:bg-white/10", "visit", card.Link),
	)
}

func launchPlan(plan page.LaunchPlan) g.Node {
	return h.Section(
		h.ID("launch-plan"),
		h.Class("grid gap-8 rounded-3xl border border-white/10 bg-slate-900/70 p-8"),
		sectionHeading(plan.Heading, plan.Intro),
		h.Ol(
			h.Class("grid gap-4 md:grid-cols-2"),
			g.Map(plan.Steps, func(step page.PlanStep) g.Node {
				return h.Li(
					h.Class("flex flex-col gap-3 rounded-2xl border border-white/10 bg-slate-950/60 p-5"),
					h.Data("key", step.Title),
					h.Span(h.Class("text-sm uppercase tracking-[0.2em] text-indigo-200/70"), g.Text(step.Title)),
					h.P(h.Class("text-sm text-slate-200/80"), g.Text(step.Detail)),
				)
			}),
		),
	)
}

func callToAction(cta page.CallToAction) g.Node {
	return h.Section(
		h.ID("cta"),
		h.Class("rounded-3xl border border-white/10 bg-gradient-to-r from-indigo-600/50 via-cyan-500/40 to-emerald-500/40 p-8 shadow-2xl shadow-emerald-500/20"),
		h.Div(
			h.Class("flex flex-col gap-6 md:flex-row md:items-center md:justify-between"),
			h.Div(
				h.Class("space-y-3"),
				h.H2(h.Class("text-2xl font-semibold text-white"), g.Text(cta.Heading)),
				h.P(h.Class("max-w-xl text-sm text-white/80"), g.Text(cta.Body)),
			),
			link("inline-flex items-center justify-center rounded-full border border-white/30 bg-white/10 px-6 py-3 text-sm font-semibold text-white transition hover:bg-white/20", "flashburst", cta.Link),
		),
	)
}

// link writes the href with attribute escaping only, so feed URLs pass
// through unchanged.
func link(class, name string, l page.Link) g.Node {
	return h.A(
		h.Href(l.Href),
		g.If(l.NewTab, h.Target("_blank")),
		h.Class(class),
		h.Data("link", name),
		g.Text(l.Label),
	)
}
