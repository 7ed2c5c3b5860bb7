package auditdiff_test

import (
	"testing"
	"time"

	"github.com/eneca-dev/handoff/internal/app/system/auditdiff"
	"github.com/eneca-dev/handoff/internal/domain/models"
	"github.com/eneca-dev/handoff/internal/domain/workflow"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDiff_IdenticalSnapshots(t *testing.T) {
	date := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	days := 10
	s := auditdiff.Snapshot{
		Title:                "Review drawings",
		Description:          "Check rev. C",
		PlannedTransmittedAt: &date,
		PlannedDurationDays:  &days,
		Link:                 "https://example.com/doc",
	}

	if got := auditdiff.Diff(s, s); len(got) != 0 {
		t.Errorf("identical snapshots: got %d changes, want 0", len(got))
	}
}

func TestDiff_SingleFieldChange(t *testing.T) {
	old := auditdiff.Snapshot{Title: "A", Description: "same"}
	new := auditdiff.Snapshot{Title: "B", Description: "same"}

	got := auditdiff.Diff(old, new)
	if len(got) != 1 {
		t.Fatalf("got %d changes, want 1", len(got))
	}
	c := got[0]
	if c.Field != models.AuditFieldTitle || c.OldValue != "A" || c.NewValue != "B" {
		t.Errorf("change: got %+v", c)
	}
}

func TestDiff_DateStringification(t *testing.T) {
	date := time.Date(2026, 5, 20, 14, 30, 0, 0, time.UTC)
	old := auditdiff.Snapshot{}
	new := auditdiff.Snapshot{PlannedTransmittedAt: &date}

	got := auditdiff.Diff(old, new)
	if len(got) != 1 {
		t.Fatalf("got %d changes, want 1", len(got))
	}
	if got[0].OldValue != "" || got[0].NewValue != "2026-05-20" {
		t.Errorf("date change: got old=%q new=%q", got[0].OldValue, got[0].NewValue)
	}
}

func TestDiff_DurationStringification(t *testing.T) {
	five, twelve := 5, 12
	got := auditdiff.Diff(
		auditdiff.Snapshot{PlannedDurationDays: &five},
		auditdiff.Snapshot{PlannedDurationDays: &twelve},
	)
	if len(got) != 1 {
		t.Fatalf("got %d changes, want 1", len(got))
	}
	if got[0].Field != models.AuditFieldPlannedDurationDays || got[0].OldValue != "5" || got[0].NewValue != "12" {
		t.Errorf("duration change: got %+v", got[0])
	}
}

func TestDiff_ComparesByValueNotPointer(t *testing.T) {
	a := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	five1, five2 := 5, 5

	got := auditdiff.Diff(
		auditdiff.Snapshot{PlannedTransmittedAt: &a, PlannedDurationDays: &five1},
		auditdiff.Snapshot{PlannedTransmittedAt: &b, PlannedDurationDays: &five2},
	)
	if len(got) != 0 {
		t.Errorf("equal values behind distinct pointers: got %d changes, want 0", len(got))
	}
}

func TestDiff_MultipleChanges(t *testing.T) {
	got := auditdiff.Diff(
		auditdiff.Snapshot{Title: "A", Link: ""},
		auditdiff.Snapshot{Title: "B", Link: "https://example.com"},
	)
	if len(got) != 2 {
		t.Fatalf("got %d changes, want 2", len(got))
	}
}

func TestTake_IgnoresNonWhitelistedFields(t *testing.T) {
	// Two assignments differing only in status and actual dates must take
	// identical snapshots: those fields are not audited.
	stamp := time.Now().UTC()
	base := models.Assignment{
		ID:     primitive.NewObjectID(),
		Title:  "Review drawings",
		Status: string(workflow.StatusCreated),
	}
	moved := base
	moved.Status = string(workflow.StatusTransferred)
	moved.ActualTransmittedAt = &stamp
	moved.UpdatedByName = "someone else"

	if got := auditdiff.Diff(auditdiff.Take(base), auditdiff.Take(moved)); len(got) != 0 {
		t.Errorf("non-whitelisted changes produced %d audit entries, want 0", len(got))
	}
}
