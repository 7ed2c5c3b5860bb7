// internal/app/features/assignments/types.go
package assignments

import (
	"time"

	"github.com/eneca-dev/handoff/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateInput carries the user-supplied fields of a new assignment.
type CreateInput struct {
	ProjectID     primitive.ObjectID `json:"project_id"`
	FromSectionID primitive.ObjectID `json:"from_section_id"`
	ToSectionID   primitive.ObjectID `json:"to_section_id"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`

	PlannedTransmittedAt *time.Time `json:"planned_transmitted_at"`
	PlannedDurationDays  *int       `json:"planned_duration_days"`
}

// UpdateInput carries the editable fields of an existing assignment. Every
// field is applied; this is a full edit of the whitelisted set, not a
// patch.
type UpdateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`

	PlannedTransmittedAt *time.Time `json:"planned_transmitted_at"`
	PlannedDurationDays  *int       `json:"planned_duration_days"`
}

// TransitionInput carries what the client believed the status was when it
// issued the transition, plus the optional duration an acceptance may
// supply. ObservedStatus is advisory: the transition is recomputed against
// the stored record and the last write wins.
type TransitionInput struct {
	ObservedStatus string `json:"observed_status"`
	DurationDays   *int   `json:"duration_days"`
}

// View is an assignment enriched with display names resolved through the
// reference directory. Names of entities the directory does not know
// resolve to empty strings.
type View struct {
	models.Assignment

	ProjectName     string `json:"project_name,omitempty"`
	FromSectionName string `json:"from_section_name,omitempty"`
	ToSectionName   string `json:"to_section_name,omitempty"`
}
