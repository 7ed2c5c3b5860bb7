// internal/domain/models/auditrecord.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audited field names. These are the persisted values of AuditRecord.Field
// and the complete whitelist of editable fields the diff engine tracks.
// Status transitions are never audited.
const (
	AuditFieldTitle               = "title"
	AuditFieldDescription         = "description"
	AuditFieldPlannedTransmitted  = "planned_transmitted_at"
	AuditFieldPlannedDurationDays = "planned_duration_days"
	AuditFieldLink                = "link"
)

// AuditRecord is one immutable field-change entry in an assignment's history.
//
// Records in the `assignment_audit` collection are only ever created as a
// byproduct of an edit operation, never updated, and deletable only by
// bulk-clearing a single assignment's history. BatchID groups the records
// written by one edit.
type AuditRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID primitive.ObjectID `bson:"assignment_id" json:"assignment_id"`
	BatchID      string             `bson:"batch_id" json:"batch_id"`

	Field    string `bson:"field" json:"field"`
	OldValue string `bson:"old_value" json:"old_value"`
	NewValue string `bson:"new_value" json:"new_value"`

	ChangedByID   primitive.ObjectID `bson:"changed_by_id" json:"changed_by_id"`
	ChangedByName string             `bson:"changed_by_name,omitempty" json:"changed_by_name,omitempty"`
	ChangedAt     time.Time          `bson:"changed_at" json:"changed_at"`
}
