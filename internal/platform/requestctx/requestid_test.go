package requestctx

import (
	"context"
	"testing"
)

func TestRequestIDFromContextRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "web-42")
	got := RequestIDFromContext(ctx)
	if got != "web-42" {
		t.Fatalf("RequestIDFromContext = %q, want %q", got, "web-42")
	}
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	got := RequestIDFromContext(context.Background())
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRequestIDFromContextNil(t *testing.T) {
	//nolint:staticcheck // nil context is the case under test.
	got := RequestIDFromContext(nil)
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestWithRequestIDNilContext(t *testing.T) {
	//nolint:staticcheck // nil context is the case under test.
	ctx := WithRequestID(nil, "web-7")
	if got := RequestIDFromContext(ctx); got != "web-7" {
		t.Fatalf("RequestIDFromContext = %q, want %q", got, "web-7")
	}
}
