package modules

import (
	"testing"

	"github.com/louisbranch/studypicks/internal/content"
)

func TestDefaultModulesIncludeAdvisor(t *testing.T) {
	t.Parallel()

	built := DefaultModules(Dependencies{Feed: content.NewStore(content.Default())})
	if len(built) != 1 {
		t.Fatalf("module count = %d, want %d", len(built), 1)
	}
	if got := built[0].ID(); got != "advisor" {
		t.Fatalf("module[0] id = %q, want %q", got, "advisor")
	}
}

func TestRegistryModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	out := NewRegistry().Build(BuildInput{Dependencies: Dependencies{Feed: content.NewStore(content.Default())}})
	seen := map[string]string{}
	for _, m := range out.Modules {
		mount, err := m.Mount()
		if err != nil {
			t.Fatalf("Mount(%s) error = %v", m.ID(), err)
		}
		if previous, ok := seen[mount.Prefix]; ok {
			t.Fatalf("prefix %q shared by %q and %q", mount.Prefix, previous, m.ID())
		}
		seen[mount.Prefix] = m.ID()
	}
}
