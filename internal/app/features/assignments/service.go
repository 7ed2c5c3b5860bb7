// internal/app/features/assignments/service.go

// Package assignments implements the hand-off operations over the
// assignment collection: filtered reads, creation, audited edits, and the
// status transitions of the workflow.
package assignments

import (
	"context"
	"fmt"
	"time"

	assignmentstore "github.com/eneca-dev/handoff/internal/app/store/assignments"
	"github.com/eneca-dev/handoff/internal/app/system/auditdiff"
	"github.com/eneca-dev/handoff/internal/app/system/directory"
	"github.com/eneca-dev/handoff/internal/app/system/filters"
	"github.com/eneca-dev/handoff/internal/app/system/htmlsanitize"
	"github.com/eneca-dev/handoff/internal/app/system/identity"
	"github.com/eneca-dev/handoff/internal/app/system/inputval"
	"github.com/eneca-dev/handoff/internal/app/system/telemetry"
	"github.com/eneca-dev/handoff/internal/domain/models"
	"github.com/eneca-dev/handoff/internal/domain/workflow"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ErrNotFound is returned when the requested assignment does not exist.
var ErrNotFound = assignmentstore.ErrNotFound

// Warning strings surfaced to the client for non-fatal outcomes of an
// otherwise committed operation.
const (
	WarnAuditWriteFailed    = "audit_write_failed"
	WarnAuditSkippedNoActor = "audit_skipped_no_actor"
)

// StoreError wraps a persistence failure crossing the service boundary, so
// handlers can distinguish infrastructure faults from domain rejections.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// AssignmentStore is the persistence surface the service mutates through.
type AssignmentStore interface {
	Create(ctx context.Context, a models.Assignment) (models.Assignment, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Assignment, error)
	Replace(ctx context.Context, a models.Assignment) (models.Assignment, error)
}

// SnapshotCache serves the wholesale list reads feed on. Mutating
// operations must Invalidate it after every committed write.
type SnapshotCache interface {
	Snapshot(ctx context.Context) ([]models.Assignment, error)
	Invalidate()
}

// AuditStore persists and serves assignment history.
type AuditStore interface {
	Insert(ctx context.Context, records []models.AuditRecord) error
	ListByAssignment(ctx context.Context, assignmentID primitive.ObjectID) ([]models.AuditRecord, error)
	ClearByAssignment(ctx context.Context, assignmentID primitive.ObjectID) (int64, error)
}

// DirectorySource provides the current reference directory.
type DirectorySource interface {
	Current() *directory.Directory
}

// Service carries out the assignment operations. Construct with NewService.
type Service struct {
	store AssignmentStore
	cache SnapshotCache
	audit AuditStore
	dirs  DirectorySource
	tel   telemetry.Sink
	log   *zap.Logger

	auditEnabled bool
}

// NewService wires a Service. A nil telemetry sink discards telemetry;
// auditEnabled false disables history writing entirely (edits still
// commit, with no records produced).
func NewService(store AssignmentStore, cache SnapshotCache, audit AuditStore, dirs DirectorySource, tel telemetry.Sink, log *zap.Logger, auditEnabled bool) *Service {
	if tel == nil {
		tel = telemetry.Nop()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:        store,
		cache:        cache,
		audit:        audit,
		dirs:         dirs,
		tel:          tel,
		log:          log,
		auditEnabled: auditEnabled,
	}
}

// Fetch returns the assignments surviving the given criteria, enriched
// with display names from the reference directory.
func (s *Service) Fetch(ctx context.Context, c filters.Criteria) ([]View, error) {
	snap, err := s.cache.Snapshot(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}

	dir := s.dirs.Current()
	engine := filters.New(dir, s.tel)
	matched := engine.Resolve(snap, c)

	out := make([]View, 0, len(matched))
	for _, a := range matched {
		out = append(out, s.enrich(dir, a))
	}
	return out, nil
}

// Create validates and stores a new assignment in the initial status,
// attributed to the actor when one was resolved.
func (s *Service) Create(ctx context.Context, actor identity.Actor, in CreateInput) (View, error) {
	if in.ProjectID.IsZero() {
		return View{}, &inputval.ValidationError{Field: "project_id", Message: "is required"}
	}
	if in.FromSectionID.IsZero() {
		return View{}, &inputval.ValidationError{Field: "from_section_id", Message: "is required"}
	}
	if in.ToSectionID.IsZero() {
		return View{}, &inputval.ValidationError{Field: "to_section_id", Message: "is required"}
	}

	a := models.Assignment{
		ProjectID:     in.ProjectID,
		FromSectionID: in.FromSectionID,
		ToSectionID:   in.ToSectionID,
		Status:        string(workflow.StatusCreated),
	}
	if err := applyContent(&a, in.Title, in.Description, in.Link, in.PlannedTransmittedAt, in.PlannedDurationDays); err != nil {
		return View{}, err
	}
	if !actor.ID.IsZero() {
		id := actor.ID
		a.CreatedByID = &id
		a.CreatedByName = actor.Name
	}

	created, err := s.store.Create(ctx, a)
	if err != nil {
		return View{}, &StoreError{Op: "create", Err: err}
	}
	s.cache.Invalidate()

	return s.enrich(s.dirs.Current(), created), nil
}

// Update applies a full edit of the whitelisted fields, then records the
// resulting field changes as one audit batch. The edit commits first; an
// audit failure degrades to a warning, never rolls the edit back.
func (s *Service) Update(ctx context.Context, actor identity.Actor, id primitive.ObjectID, in UpdateInput) (View, []string, error) {
	a, err := s.store.GetByID(ctx, id)
	if err != nil {
		if err == ErrNotFound {
			return View{}, nil, err
		}
		return View{}, nil, &StoreError{Op: "load", Err: err}
	}

	before := auditdiff.Take(a)
	if err := applyContent(&a, in.Title, in.Description, in.Link, in.PlannedTransmittedAt, in.PlannedDurationDays); err != nil {
		return View{}, nil, err
	}
	if !actor.ID.IsZero() {
		aid := actor.ID
		a.UpdatedByID = &aid
		a.UpdatedByName = actor.Name
	}

	updated, err := s.store.Replace(ctx, a)
	if err != nil {
		if err == ErrNotFound {
			return View{}, nil, err
		}
		return View{}, nil, &StoreError{Op: "update", Err: err}
	}
	s.cache.Invalidate()

	warnings := s.recordChanges(ctx, updated.ID, actor, before, auditdiff.Take(updated))
	return s.enrich(s.dirs.Current(), updated), warnings, nil
}

// recordChanges persists the diff of one committed edit as a single batch.
// Returns warnings for the non-fatal paths: no actor, or a failed write.
func (s *Service) recordChanges(ctx context.Context, id primitive.ObjectID, actor identity.Actor, before, after auditdiff.Snapshot) []string {
	if !s.auditEnabled {
		return nil
	}
	changes := auditdiff.Diff(before, after)
	if len(changes) == 0 {
		return nil
	}
	if actor.ID.IsZero() {
		s.tel.Warn("audit_skipped_no_actor", zap.String("assignment_id", id.Hex()))
		return []string{WarnAuditSkippedNoActor}
	}

	batch := uuid.NewString()
	now := time.Now().UTC()
	records := make([]models.AuditRecord, 0, len(changes))
	for _, ch := range changes {
		records = append(records, models.AuditRecord{
			AssignmentID:  id,
			BatchID:       batch,
			Field:         ch.Field,
			OldValue:      ch.OldValue,
			NewValue:      ch.NewValue,
			ChangedByID:   actor.ID,
			ChangedByName: actor.Name,
			ChangedAt:     now,
		})
	}

	if err := s.audit.Insert(ctx, records); err != nil {
		s.tel.Warn("audit_write_failed",
			zap.String("assignment_id", id.Hex()),
			zap.String("batch_id", batch),
			zap.Error(err))
		return []string{WarnAuditWriteFailed}
	}
	return nil
}

// Advance moves an assignment one status forward. The client's observed
// status is advisory: the transition is recomputed against the stored
// record and the last write wins. Status changes are never audited.
func (s *Service) Advance(ctx context.Context, actor identity.Actor, id primitive.ObjectID, in TransitionInput) (View, error) {
	if err := inputval.DurationDays(in.DurationDays); err != nil {
		return View{}, err
	}
	return s.transition(ctx, actor, id, in.ObservedStatus, func(a *models.Assignment) error {
		return workflow.Advance(a, time.Now(), in.DurationDays)
	})
}

// Revert moves an assignment one status back, clearing the actual date of
// the status being left.
func (s *Service) Revert(ctx context.Context, actor identity.Actor, id primitive.ObjectID, in TransitionInput) (View, error) {
	return s.transition(ctx, actor, id, in.ObservedStatus, func(a *models.Assignment) error {
		return workflow.Revert(a)
	})
}

func (s *Service) transition(ctx context.Context, actor identity.Actor, id primitive.ObjectID, observed string, apply func(*models.Assignment) error) (View, error) {
	a, err := s.store.GetByID(ctx, id)
	if err != nil {
		if err == ErrNotFound {
			return View{}, err
		}
		return View{}, &StoreError{Op: "load", Err: err}
	}

	if observed != "" && observed != a.Status {
		s.tel.Warn("transition_stale_view",
			zap.String("assignment_id", id.Hex()),
			zap.String("observed", observed),
			zap.String("stored", a.Status))
	}

	if err := apply(&a); err != nil {
		return View{}, err
	}
	if !actor.ID.IsZero() {
		aid := actor.ID
		a.UpdatedByID = &aid
		a.UpdatedByName = actor.Name
	}

	updated, err := s.store.Replace(ctx, a)
	if err != nil {
		if err == ErrNotFound {
			return View{}, err
		}
		return View{}, &StoreError{Op: "transition", Err: err}
	}
	s.cache.Invalidate()

	return s.enrich(s.dirs.Current(), updated), nil
}

// History returns an assignment's audit records, newest first.
func (s *Service) History(ctx context.Context, id primitive.ObjectID) ([]models.AuditRecord, error) {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		if err == ErrNotFound {
			return nil, err
		}
		return nil, &StoreError{Op: "load", Err: err}
	}
	records, err := s.audit.ListByAssignment(ctx, id)
	if err != nil {
		return nil, &StoreError{Op: "history", Err: err}
	}
	return records, nil
}

// ClearHistory removes an assignment's audit trail and returns how many
// records were deleted.
func (s *Service) ClearHistory(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		if err == ErrNotFound {
			return 0, err
		}
		return 0, &StoreError{Op: "load", Err: err}
	}
	n, err := s.audit.ClearByAssignment(ctx, id)
	if err != nil {
		return 0, &StoreError{Op: "clear history", Err: err}
	}
	return n, nil
}

// applyContent validates, sanitizes, and writes the editable fields onto
// the assignment. Titles carry no markup; descriptions keep safe
// user-generated formatting.
func applyContent(a *models.Assignment, title, description, link string, plannedAt *time.Time, durationDays *int) error {
	title, err := inputval.Title(htmlsanitize.StripTags(title))
	if err != nil {
		return err
	}
	description, err = inputval.Description(htmlsanitize.Sanitize(description))
	if err != nil {
		return err
	}
	link, err = inputval.Link(link)
	if err != nil {
		return err
	}
	if err := inputval.DurationDays(durationDays); err != nil {
		return err
	}

	a.Title = title
	a.Description = description
	a.Link = link
	if plannedAt != nil {
		d := workflow.DateOnly(*plannedAt)
		a.PlannedTransmittedAt = &d
	} else {
		a.PlannedTransmittedAt = nil
	}
	if durationDays != nil {
		d := *durationDays
		a.PlannedDurationDays = &d
	} else {
		a.PlannedDurationDays = nil
	}
	return nil
}

func (s *Service) enrich(dir *directory.Directory, a models.Assignment) View {
	v := View{Assignment: a}
	v.ProjectName, _ = dir.ProjectName(a.ProjectID)
	v.FromSectionName, _ = dir.SectionName(a.FromSectionID)
	v.ToSectionName, _ = dir.SectionName(a.ToSectionID)
	return v
}
