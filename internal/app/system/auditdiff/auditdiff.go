// internal/app/system/auditdiff/auditdiff.go

// Package auditdiff computes the field-level change list between two
// snapshots of an assignment's editable fields.
//
// Only the whitelisted fields (title, description, planned transmission
// date, planned duration, link) are compared; everything else on the
// assignment — status and the actual dates in particular — is invisible to
// this package and never produces history entries.
package auditdiff

import (
	"strconv"
	"time"

	"github.com/eneca-dev/handoff/internal/domain/models"
)

// dateLayout is the stringified form of date fields in audit entries.
const dateLayout = "2006-01-02"

// Snapshot is the audited view of an assignment: its five whitelisted
// editable fields. Take one before and after an edit and Diff them.
type Snapshot struct {
	Title                string
	Description          string
	PlannedTransmittedAt *time.Time
	PlannedDurationDays  *int
	Link                 string
}

// Take captures the audited fields of an assignment.
func Take(a models.Assignment) Snapshot {
	return Snapshot{
		Title:                a.Title,
		Description:          a.Description,
		PlannedTransmittedAt: a.PlannedTransmittedAt,
		PlannedDurationDays:  a.PlannedDurationDays,
		Link:                 a.Link,
	}
}

// FieldChange is one changed field with both values stringified. Absent
// values stringify to the empty string.
type FieldChange struct {
	Field    string
	OldValue string
	NewValue string
}

// Diff compares two snapshots by value and returns one FieldChange per
// whitelisted field that differs. Identical snapshots produce an empty
// list; that is the normal outcome of an edit that touched nothing
// audited, not an error.
func Diff(old, new Snapshot) []FieldChange {
	var changes []FieldChange

	add := func(field, oldVal, newVal string) {
		if oldVal != newVal {
			changes = append(changes, FieldChange{Field: field, OldValue: oldVal, NewValue: newVal})
		}
	}

	add(models.AuditFieldTitle, old.Title, new.Title)
	add(models.AuditFieldDescription, old.Description, new.Description)
	add(models.AuditFieldPlannedTransmitted, formatDate(old.PlannedTransmittedAt), formatDate(new.PlannedTransmittedAt))
	add(models.AuditFieldPlannedDurationDays, formatDays(old.PlannedDurationDays), formatDays(new.PlannedDurationDays))
	add(models.AuditFieldLink, old.Link, new.Link)

	return changes
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func formatDays(d *int) string {
	if d == nil {
		return ""
	}
	return strconv.Itoa(*d)
}
