// Package preview renders the advisor page for terminals.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/louisbranch/studypicks/internal/page"
)

const defaultWordWrap = 80

// Markdown renders the page section tree as Markdown. Page text is escaped so
// feed values never turn into formatting.
func Markdown(p page.Page) string {
	var b strings.Builder
	e := escapeText

	fmt.Fprintf(&b, "_%s_\n\n# %s\n\n%s\n\n", e(p.Hero.Badge), e(p.Hero.Headline), e(p.Hero.Tagline))

	fmt.Fprintf(&b, "## %s: %s\n\n", e(p.Primary.Eyebrow), e(p.Primary.Name.Value))
	fmt.Fprintf(&b, "%s\n\n", e(p.Primary.Headline.Value))
	fmt.Fprintf(&b, "- **%s:** %s\n", e(p.Primary.Pricing.Label), e(p.Primary.Pricing.Value))
	fmt.Fprintf(&b, "- **%s:** %s\n\n", e(p.Primary.BestFor.Label), e(p.Primary.BestFor.Value))
	writeList(&b, p.Primary.Strengths.Title, p.Primary.Strengths.Items)
	writeList(&b, p.Primary.AIFeatures.Title, p.Primary.AIFeatures.Items)
	writeLink(&b, p.Primary.Link)

	fmt.Fprintf(&b, "## %s\n\n%s\n\n", e(p.Subjects.Heading), e(p.Subjects.Intro))
	for _, card := range p.Subjects.Cards {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", e(card.Label), e(card.Body))
	}

	fmt.Fprintf(&b, "## %s\n\n%s\n\n", e(p.Contenders.Heading), e(p.Contenders.Intro))
	for _, card := range p.Contenders.Cards {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n*%s*\n\n%s\n\n", e(card.Name), e(card.Headline), e(card.Pricing), e(card.BestFor))
		for _, item := range card.Strengths {
			fmt.Fprintf(&b, "- %s\n", e(item.Text))
		}
		if len(card.Strengths) > 0 {
			b.WriteString("\n")
		}
		writeLink(&b, card.Link)
	}

	fmt.Fprintf(&b, "## %s\n\n%s\n\n", e(p.LaunchPlan.Heading), e(p.LaunchPlan.Intro))
	for i, step := range p.LaunchPlan.Steps {
		fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, e(step.Title), e(step.Detail))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n%s\n\n", e(p.CallToAction.Heading), e(p.CallToAction.Body))
	writeLink(&b, p.CallToAction.Link)

	fmt.Fprintf(&b, "---\n\n%s\n", e(p.Footer))
	return b.String()
}

func writeList(b *strings.Builder, title string, items []page.ListItem) {
	fmt.Fprintf(b, "### %s\n\n", escapeText(title))
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", escapeText(item.Text))
	}
	b.WriteString("\n")
}

func writeLink(b *strings.Builder, l page.Link) {
	fmt.Fprintf(b, "[%s](<%s>)\n\n", escapeText(l.Label), escapeHref(l.Href))
}

var (
	inlineEscaper = strings.NewReplacer(
		"\\", "\\\\",
		"`", "\\`",
		"*", "\\*",
		"_", "\\_",
		"[", "\\[",
		"]", "\\]",
		"<", "\\<",
		">", "\\>",
		"|", "\\|",
		"~", "\\~",
		"\r\n", " ",
		"\n", " ",
		"\r", " ",
	)
	hrefEscaper = strings.NewReplacer(
		"<", "%3C",
		">", "%3E",
		" ", "%20",
		"\r", "",
		"\n", "",
	)
)

// escapeText makes s render as literal text inside a Markdown line.
func escapeText(s string) string {
	s = inlineEscaper.Replace(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	// Block markers only matter at the start of a line.
	switch s[0] {
	case '#', '-', '+', '=':
		return "\\" + s
	}
	if i := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }); i > 0 && (s[i] == '.' || s[i] == ')') {
		return s[:i] + "\\" + s[i:]
	}
	return s
}

// escapeHref keeps a URL inside a Markdown angle-bracket link destination.
func escapeHref(s string) string {
	return hrefEscaper.Replace(strings.TrimSpace(s))
}

// Options controls terminal rendering. An empty Style detects the terminal
// background; "notty" disables colour.
type Options struct {
	Width int
	Style string
}

// Render renders the page for a terminal.
func Render(p page.Page, opts Options) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = defaultWordWrap
	}
	style := glamour.WithAutoStyle()
	if opts.Style != "" {
		style = glamour.WithStandardStyle(opts.Style)
	}
	renderer, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("init terminal renderer: %w", err)
	}
	out, err := renderer.Render(Markdown(p))
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return out, nil
}
