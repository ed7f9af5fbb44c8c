package ctxutil

import (
	"context"
	"testing"
)

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Fatalf("expected %q, got %q", "req-123", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestWithClientIP_And_ClientIPFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithClientIP(context.Background(), "10.0.0.7")

	got, ok := ClientIPFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for stored address")
	}
	if got != "10.0.0.7" {
		t.Fatalf("expected %q, got %q", "10.0.0.7", got)
	}
}

func TestClientIPFromCtx_Missing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  context.Context
	}{
		{"empty context", context.Background()},
		{"empty value", WithClientIP(context.Background(), "")},
		{"wrong type", context.WithValue(context.Background(), clientIPKey, 42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got, ok := ClientIPFromCtx(tt.ctx); ok || got != "" {
				t.Fatalf("expected (\"\", false), got (%q, %v)", got, ok)
			}
		})
	}
}
