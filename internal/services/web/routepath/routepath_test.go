package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Home != "/{$}" {
		t.Fatalf("Home = %q", Home)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
}
