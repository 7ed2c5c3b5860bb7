package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/eneca-dev/handoff/internal/domain/models"
	"github.com/eneca-dev/handoff/internal/domain/workflow"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// NewAssignment returns an unsaved assignment in the initial status with
// the given title, linking fresh project and section ids.
func NewAssignment(title string) models.Assignment {
	return models.Assignment{
		ID:            primitive.NewObjectID(),
		ProjectID:     primitive.NewObjectID(),
		FromSectionID: primitive.NewObjectID(),
		ToSectionID:   primitive.NewObjectID(),
		Title:         title,
		Status:        string(workflow.StatusCreated),
		CreatedAt:     time.Now().UTC(),
	}
}

// CreateAssignment inserts an assignment in the initial status and returns it.
func (f *Fixtures) CreateAssignment(ctx context.Context, title string) models.Assignment {
	f.t.Helper()

	a := NewAssignment(title)
	if _, err := f.db.Collection("assignments").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test assignment: %v", err)
	}
	return a
}

// CreateAssignmentBetween inserts an assignment wired to the given project
// and section ids.
func (f *Fixtures) CreateAssignmentBetween(ctx context.Context, title string, projectID, fromSectionID, toSectionID primitive.ObjectID) models.Assignment {
	f.t.Helper()

	a := NewAssignment(title)
	a.ProjectID = projectID
	a.FromSectionID = fromSectionID
	a.ToSectionID = toSectionID
	if _, err := f.db.Collection("assignments").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test assignment: %v", err)
	}
	return a
}

// CreateAuditRecord inserts an audit record for the given assignment.
func (f *Fixtures) CreateAuditRecord(ctx context.Context, assignmentID primitive.ObjectID, batchID, field, oldVal, newVal string, changedAt time.Time) models.AuditRecord {
	f.t.Helper()

	rec := models.AuditRecord{
		ID:            primitive.NewObjectID(),
		AssignmentID:  assignmentID,
		BatchID:       batchID,
		Field:         field,
		OldValue:      oldVal,
		NewValue:      newVal,
		ChangedByID:   primitive.NewObjectID(),
		ChangedByName: "Test Editor",
		ChangedAt:     changedAt,
	}
	if _, err := f.db.Collection("assignment_audit").InsertOne(ctx, rec); err != nil {
		f.t.Fatalf("failed to create test audit record: %v", err)
	}
	return rec
}

// CreateHierarchyRow inserts a section-hierarchy view row.
func (f *Fixtures) CreateHierarchyRow(ctx context.Context, row models.SectionHierarchyRow) models.SectionHierarchyRow {
	f.t.Helper()

	if row.SectionID.IsZero() {
		row.SectionID = primitive.NewObjectID()
	}
	if _, err := f.db.Collection("view_section_hierarchy").InsertOne(ctx, row); err != nil {
		f.t.Fatalf("failed to create test hierarchy row: %v", err)
	}
	return row
}

// CreateOrgUnitRow inserts an organization view row.
func (f *Fixtures) CreateOrgUnitRow(ctx context.Context, row models.OrgUnitRow) models.OrgUnitRow {
	f.t.Helper()

	if row.DepartmentID.IsZero() {
		row.DepartmentID = primitive.NewObjectID()
	}
	if row.TeamID.IsZero() {
		row.TeamID = primitive.NewObjectID()
	}
	if _, err := f.db.Collection("view_organization").InsertOne(ctx, row); err != nil {
		f.t.Fatalf("failed to create test org unit row: %v", err)
	}
	return row
}
