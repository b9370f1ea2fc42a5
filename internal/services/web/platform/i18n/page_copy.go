// Package i18n resolves localized page copy for web requests.
package i18n

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/studypicks/internal/content"
	"github.com/louisbranch/studypicks/internal/page"
	"github.com/louisbranch/studypicks/internal/platform/branding"
	"github.com/louisbranch/studypicks/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

// Page returns localized page copy for the closest supported language.
func Page(tag language.Tag) page.Copy {
	bundle := catalog.Default()
	resolved := Match(tag)
	loc := bundle.Printer(resolved)
	fallback := page.DefaultCopy()

	labels := make(map[content.SubjectKey]string, len(fallback.SubjectLabels))
	for _, key := range content.SubjectKeys() {
		labels[key] = localizeWithFallback(loc, "subjects."+key.String(), fallback.SubjectLabels[key])
	}

	var steps [4]page.PlanStep
	for i := range steps {
		week := fmt.Sprintf("plan.week%d", i+1)
		steps[i] = page.PlanStep{
			Title:  localizeWithFallback(loc, week+".title", fallback.PlanSteps[i].Title),
			Detail: localizeWithFallback(loc, week+".detail", fallback.PlanSteps[i].Detail),
		}
	}

	return page.Copy{
		Lang:        resolved.String(),
		Title:       withProductSuffix(localizeWithFallback(loc, "meta.title", "")),
		Description: localizeWithFallback(loc, "meta.description", fallback.Description),

		HeroBadge:    localizeWithFallback(loc, "hero.badge", fallback.HeroBadge),
		HeroHeadline: localizeWithFallback(loc, "hero.headline", fallback.HeroHeadline),
		HeroTagline:  localizeWithFallback(loc, "hero.tagline", fallback.HeroTagline),

		TopPickEyebrow:  localizeWithFallback(loc, "primary.eyebrow", fallback.TopPickEyebrow),
		NameLabel:       localizeWithFallback(loc, "primary.name", fallback.NameLabel),
		HeadlineLabel:   localizeWithFallback(loc, "primary.headline", fallback.HeadlineLabel),
		PricingLabel:    localizeWithFallback(loc, "primary.pricing", fallback.PricingLabel),
		BestForLabel:    localizeWithFallback(loc, "primary.best_for", fallback.BestForLabel),
		StrengthsTitle:  localizeWithFallback(loc, "primary.strengths", fallback.StrengthsTitle),
		AIFeaturesTitle: localizeWithFallback(loc, "primary.ai_features", fallback.AIFeaturesTitle),
		ExploreLink:     localizeWithFallback(loc, "primary.explore", fallback.ExploreLink),

		SubjectsHeading: localizeWithFallback(loc, "subjects.heading", fallback.SubjectsHeading),
		SubjectsIntro:   localizeWithFallback(loc, "subjects.intro", fallback.SubjectsIntro),
		SubjectLabels:   labels,

		ContendersHeading: localizeWithFallback(loc, "contenders.heading", fallback.ContendersHeading),
		ContendersIntro:   localizeWithFallback(loc, "contenders.intro", fallback.ContendersIntro),
		VisitSiteLink:     localizeWithFallback(loc, "contenders.visit", fallback.VisitSiteLink),

		PlanHeading: localizeWithFallback(loc, "plan.heading", fallback.PlanHeading),
		PlanIntro:   localizeWithFallback(loc, "plan.intro", fallback.PlanIntro),
		PlanSteps:   steps,

		CTAHeading: localizeWithFallback(loc, "cta.heading", fallback.CTAHeading),
		CTABody:    localizeWithFallback(loc, "cta.body", fallback.CTABody),
		CTALink:    localizeWithFallback(loc, "cta.link", fallback.CTALink),

		Footer: localizeWithFallback(loc, "footer", fallback.Footer),
	}
}

// Supported returns the supported language tags, default first.
func Supported() []language.Tag {
	return catalog.Default().Tags()
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.MustParse(catalog.BaseLocale)
}

// Match returns the supported tag closest to tag, or the default language
// when nothing is close.
func Match(tags ...language.Tag) language.Tag {
	if tag, ok := matchSupported(tags...); ok {
		return tag
	}
	return Default()
}

func matchSupported(tags ...language.Tag) (language.Tag, bool) {
	supported := Supported()
	if len(supported) == 0 || len(tags) == 0 {
		return language.Und, false
	}
	_, index, confidence := language.NewMatcher(supported).Match(tags...)
	if confidence == language.No {
		return language.Und, false
	}
	return supported[index], true
}

// ParseTag parses a configured language value into a supported tag.
func ParseTag(value string) (language.Tag, error) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Und, fmt.Errorf("parse language %q: %w", value, err)
	}
	return Match(tag), nil
}

// QueryTag parses the lang query parameter. An absent parameter yields
// language.Und and no error.
func QueryTag(r *http.Request) (language.Tag, error) {
	if r == nil || r.URL == nil {
		return language.Und, nil
	}
	value := strings.TrimSpace(r.URL.Query().Get(LangParam))
	if value == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, fmt.Errorf("parse %s parameter %q: %w", LangParam, value, err)
	}
	return tag, nil
}

// ResolveTag picks the request language from the lang query parameter, then
// Accept-Language, then fallback. A candidate that no supported language
// matches is skipped.
func ResolveTag(r *http.Request, fallback language.Tag) language.Tag {
	if fallback == language.Und {
		fallback = Default()
	}
	if r == nil {
		return Match(fallback)
	}
	if tag, err := QueryTag(r); err == nil && tag != language.Und {
		if matched, ok := matchSupported(tag); ok {
			return matched
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			if matched, ok := matchSupported(tags...); ok {
				return matched
			}
		}
	}
	return Match(fallback)
}

func withProductSuffix(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return branding.AppName
	}
	return fmt.Sprintf("%s | %s", trimmed, branding.AppName)
}

func localizeWithFallback(loc *message.Printer, key string, fallback string) string {
	if loc != nil {
		value := strings.TrimSpace(loc.Sprintf(key))
		if value != "" && value != key {
			return value
		}
	}
	return fallback
}
