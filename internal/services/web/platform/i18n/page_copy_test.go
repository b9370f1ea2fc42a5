package i18n

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/studypicks/internal/content"
	"github.com/louisbranch/studypicks/internal/page"
	"golang.org/x/text/language"
)

func TestPageReturnsBritishCopyByDefault(t *testing.T) {
	t.Parallel()

	copy := Page(language.BritishEnglish)
	want := page.DefaultCopy()
	if copy.Lang != "en-GB" {
		t.Fatalf("Lang = %q, want %q", copy.Lang, "en-GB")
	}
	if copy.HeroHeadline != want.HeroHeadline {
		t.Fatalf("HeroHeadline = %q, want %q", copy.HeroHeadline, want.HeroHeadline)
	}
	if copy.ContendersIntro != want.ContendersIntro {
		t.Fatalf("ContendersIntro = %q, want %q", copy.ContendersIntro, want.ContendersIntro)
	}
	if copy.Title != want.Title {
		t.Fatalf("Title = %q, want %q", copy.Title, want.Title)
	}
	if copy.PlanSteps != want.PlanSteps {
		t.Fatalf("PlanSteps = %+v, want %+v", copy.PlanSteps, want.PlanSteps)
	}
	for _, key := range content.SubjectKeys() {
		if copy.SubjectLabels[key] != page.SubjectLabel(key) {
			t.Fatalf("SubjectLabels[%s] = %q, want %q", key, copy.SubjectLabels[key], page.SubjectLabel(key))
		}
	}
}

func TestPageUsesAmericanOverrides(t *testing.T) {
	t.Parallel()

	copy := Page(language.AmericanEnglish)
	if copy.Lang != "en-US" {
		t.Fatalf("Lang = %q, want %q", copy.Lang, "en-US")
	}
	if !strings.Contains(copy.ContendersIntro, "customization") {
		t.Fatalf("ContendersIntro = %q, want US spelling", copy.ContendersIntro)
	}
	if copy.HeroBadge != page.DefaultCopy().HeroBadge {
		t.Fatalf("HeroBadge = %q, want base locale value", copy.HeroBadge)
	}
}

func TestPageFallsBackToDefaultForUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	copy := Page(language.Japanese)
	if copy.Lang != "en-GB" {
		t.Fatalf("Lang = %q, want %q", copy.Lang, "en-GB")
	}
}

func TestResolveTagPrefersQueryParam(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/?lang=en-US", nil)
	req.Header.Set("Accept-Language", "en-GB")
	if got := ResolveTag(req, Default()); got != language.AmericanEnglish {
		t.Fatalf("ResolveTag = %v, want en-US", got)
	}
}

func TestResolveTagUsesAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "fr-FR, en-US;q=0.8")
	if got := ResolveTag(req, Default()); got != language.AmericanEnglish {
		t.Fatalf("ResolveTag = %v, want en-US", got)
	}
}

func TestResolveTagFallsBack(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/?lang=%21%21", nil)
	if got := ResolveTag(req, language.AmericanEnglish); got != language.AmericanEnglish {
		t.Fatalf("ResolveTag = %v, want en-US", got)
	}
	if got := ResolveTag(nil, language.Und); got != Default() {
		t.Fatalf("ResolveTag(nil) = %v, want %v", got, Default())
	}
}

func TestResolveTagSkipsUnsupportedLanguages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		accept string
	}{
		{name: "french accept-language", target: "/", accept: "fr-FR"},
		{name: "german accept-language", target: "/", accept: "de"},
		{name: "french query", target: "/?lang=fr"},
		{name: "french query and german header", target: "/?lang=fr", accept: "de"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			if got := ResolveTag(req, language.AmericanEnglish); got != language.AmericanEnglish {
				t.Fatalf("ResolveTag = %v, want en-US", got)
			}
		})
	}
}

func TestResolveTagUnsupportedQueryFallsThroughToHeader(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/?lang=fr", nil)
	req.Header.Set("Accept-Language", "en-US")
	if got := ResolveTag(req, language.BritishEnglish); got != language.AmericanEnglish {
		t.Fatalf("ResolveTag = %v, want en-US", got)
	}
}

func TestQueryTag(t *testing.T) {
	t.Parallel()

	tag, err := QueryTag(httptest.NewRequest("GET", "/", nil))
	if err != nil || tag != language.Und {
		t.Fatalf("QueryTag(no param) = %v, %v; want und, nil", tag, err)
	}
	tag, err = QueryTag(httptest.NewRequest("GET", "/?lang=en-US", nil))
	if err != nil || tag != language.AmericanEnglish {
		t.Fatalf("QueryTag(en-US) = %v, %v; want en-US, nil", tag, err)
	}
	if _, err := QueryTag(httptest.NewRequest("GET", "/?lang=%21%21", nil)); err == nil {
		t.Fatal("expected error for unparsable lang")
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	tag, err := ParseTag(" en-US ")
	if err != nil {
		t.Fatalf("ParseTag() error = %v", err)
	}
	if tag != language.AmericanEnglish {
		t.Fatalf("ParseTag = %v, want en-US", tag)
	}
	if _, err := ParseTag("not a tag!"); err == nil {
		t.Fatal("expected error")
	}
}
