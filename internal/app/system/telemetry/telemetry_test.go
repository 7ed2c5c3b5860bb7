package telemetry_test

import (
	"testing"

	"github.com/eneca-dev/handoff/internal/app/system/telemetry"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapSink_Emits(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sink := telemetry.New(zap.New(core), telemetry.ModeAll)

	sink.Warn("audit_write_failed", zap.String("assignment_id", "abc"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["telemetry"] != true {
		t.Error("telemetry marker missing")
	}
	if fields["event"] != "audit_write_failed" {
		t.Errorf("event: got %v", fields["event"])
	}
	if fields["assignment_id"] != "abc" {
		t.Errorf("assignment_id: got %v", fields["assignment_id"])
	}
}

func TestZapSink_ModeOff(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sink := telemetry.New(zap.New(core), telemetry.ModeOff)

	sink.Warn("filter_team_unresolved")

	if logs.Len() != 0 {
		t.Errorf("expected no entries, got %d", logs.Len())
	}
}

func TestZapSink_UnknownModeEmits(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sink := telemetry.New(zap.New(core), "whatever")

	sink.Warn("filter_team_unresolved")

	if logs.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", logs.Len())
	}
}

func TestNop(t *testing.T) {
	// Must not panic, with or without fields.
	telemetry.Nop().Warn("anything", zap.Int("n", 1))
}
