// internal/domain/models/assignment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assignment is a unit of work handed from one project section to another.
//
// It models a document in the `assignments` collection. The four actual_*
// dates are owned exclusively by the workflow package: exactly the dates for
// statuses at or before the current status may be populated, and no other
// code path may set or clear them.
type Assignment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID primitive.ObjectID `bson:"project_id" json:"project_id"`

	// Source and destination sections of the hand-off. Both required.
	FromSectionID primitive.ObjectID `bson:"from_section_id" json:"from_section_id"`
	ToSectionID   primitive.ObjectID `bson:"to_section_id" json:"to_section_id"`

	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Link        string `bson:"link,omitempty" json:"link,omitempty"`

	// Status holds one of the five workflow states; the persisted strings
	// are part of the wire vocabulary and must round-trip unchanged.
	Status string `bson:"status" json:"status"`

	// Planned fields are user-editable at create/edit time, independent of
	// status, and are part of the audited field whitelist.
	PlannedTransmittedAt *time.Time `bson:"planned_transmitted_at,omitempty" json:"planned_transmitted_at,omitempty"`
	PlannedDurationDays  *int       `bson:"planned_duration_days,omitempty" json:"planned_duration_days,omitempty"`

	// Actual per-transition dates, date-only precision (UTC midnight).
	// Each is present only once the paired transition has occurred.
	ActualTransmittedAt *time.Time `bson:"actual_transmitted_at,omitempty" json:"actual_transmitted_at,omitempty"`
	ActualAcceptedAt    *time.Time `bson:"actual_accepted_at,omitempty" json:"actual_accepted_at,omitempty"`
	ActualWorkedOutAt   *time.Time `bson:"actual_worked_out_at,omitempty" json:"actual_worked_out_at,omitempty"`
	ActualAgreedAt      *time.Time `bson:"actual_agreed_at,omitempty" json:"actual_agreed_at,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`

	CreatedByID   *primitive.ObjectID `bson:"created_by_id,omitempty" json:"created_by_id,omitempty"`
	CreatedByName string              `bson:"created_by_name,omitempty" json:"created_by_name,omitempty"`
	UpdatedByID   *primitive.ObjectID `bson:"updated_by_id,omitempty" json:"updated_by_id,omitempty"`
	UpdatedByName string              `bson:"updated_by_name,omitempty" json:"updated_by_name,omitempty"`
}
