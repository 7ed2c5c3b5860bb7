// internal/app/store/audittrail/audittrailstore.go
package audittrailstore

import (
	"context"

	"github.com/eneca-dev/handoff/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("assignment_audit")}
}

// Insert writes the records of one edit batch. Records are immutable once
// written; there is no update path.
func (s *Store) Insert(ctx context.Context, records []models.AuditRecord) error {
	if len(records) == 0 {
		return nil
	}
	docs := make([]any, len(records))
	for i, rec := range records {
		if rec.ID.IsZero() {
			rec.ID = primitive.NewObjectID()
		}
		docs[i] = rec
	}
	_, err := s.c.InsertMany(ctx, docs)
	return err
}

// ListByAssignment returns an assignment's history, newest change first.
func (s *Store) ListByAssignment(ctx context.Context, assignmentID primitive.ObjectID) ([]models.AuditRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "changed_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"assignment_id": assignmentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.AuditRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ClearByAssignment removes an assignment's entire history. This is the
// only delete path for audit records. Returns the number removed.
func (s *Store) ClearByAssignment(ctx context.Context, assignmentID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"assignment_id": assignmentID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
