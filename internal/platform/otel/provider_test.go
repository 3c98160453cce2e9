package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/tilequest/internal/platform/otel"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("TILEQUEST_OTEL_ENDPOINT", "")
	t.Setenv("TILEQUEST_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupWithConfigNoopWhenDisabled(t *testing.T) {
	shutdown, err := otel.SetupWithConfig(context.Background(), "test-service", otel.Config{
		Enabled:  false,
		Endpoint: "http://localhost:4318",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetupRejectsBadEnv(t *testing.T) {
	t.Setenv("TILEQUEST_OTEL_ENABLED", "maybe")
	if _, err := otel.Setup(context.Background(), "test-service"); err == nil {
		t.Fatal("expected env parse error")
	}
}
