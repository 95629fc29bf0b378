package observability

import (
	"testing"

	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

func TestSetupTracingDisabled(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := Config{ServiceName: "crm", Environment: "test"}

	if err := setupTracing(lc, cfg, zap.NewNop()); err != nil {
		t.Fatalf("expected tracing setup to succeed, got %v", err)
	}
	lc.RequireStart().RequireStop()
}
