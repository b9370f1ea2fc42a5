package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	locales := strings.Join(bundle.Locales(), ",")
	if locales != "en-GB,en-US" {
		t.Fatalf("Locales() = %q, want %q", locales, "en-GB,en-US")
	}
	tags := bundle.Tags()
	if len(tags) != 2 || tags[0] != language.MustParse(BaseLocale) {
		t.Fatalf("Tags() = %v, want base locale first", tags)
	}
}

func TestPrinterKeepsPercentSignsLiteral(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-GB/page.yaml"), `locale: "en-GB"
namespace: "page"
messages:
  "cta.body": "Save 20% on annual plans"
  "plan.detail": "100%s guaranteed"
`)

	bundle, err := LoadFromFS(os.DirFS(tempDir))
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	printer := bundle.Printer(language.BritishEnglish)
	if got := printer.Sprintf("cta.body"); got != "Save 20% on annual plans" {
		t.Fatalf("cta.body = %q, want literal percent", got)
	}
	if got := printer.Sprintf("plan.detail"); got != "100%s guaranteed" {
		t.Fatalf("plan.detail = %q, want literal verb", got)
	}
}

func TestPrinterUsesLocaleOverrides(t *testing.T) {
	bundle := Default()

	us := bundle.Printer(language.AmericanEnglish).Sprintf("contenders.intro")
	if !strings.Contains(us, "customization") {
		t.Fatalf("en-US contenders.intro = %q, want US spelling", us)
	}
	gb := bundle.Printer(language.BritishEnglish).Sprintf("contenders.intro")
	if !strings.Contains(gb, "customisation") {
		t.Fatalf("en-GB contenders.intro = %q, want UK spelling", gb)
	}
	if got := bundle.Printer(language.AmericanEnglish).Sprintf("plan.week1.title"); got != "Week 1 · Foundation" {
		t.Fatalf("en-US plan.week1.title = %q, want base locale value", got)
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-GB/core.yaml"), `locale: "en-GB"
namespace: "core"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-GB/page.yaml"), `locale: "en-GB"
namespace: "page"
messages:
  "a.key": "b"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil || !strings.Contains(err.Error(), "duplicate key") {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-GB/page.yaml"), `locale: "en-US"
namespace: "page"
messages:
  "a.key": "a"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil || !strings.Contains(err.Error(), "must match path locale") {
		t.Fatalf("expected locale mismatch error, got %v", err)
	}
}

func TestLoadFromFSRejectsNamespaceMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-GB/page.yaml"), `locale: "en-GB"
namespace: "other"
messages:
  "a.key": "a"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil || !strings.Contains(err.Error(), "namespace") {
		t.Fatalf("expected namespace mismatch error, got %v", err)
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/page.yaml"), `locale: "en-US"
namespace: "page"
messages:
  "a.key": "a"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil || !strings.Contains(err.Error(), "base locale") {
		t.Fatalf("expected base locale error, got %v", err)
	}
}

func TestLoadFromFSRejectsEmptyDirectory(t *testing.T) {
	_, err := LoadFromFS(os.DirFS(t.TempDir()))
	if err == nil {
		t.Fatal("expected error")
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
