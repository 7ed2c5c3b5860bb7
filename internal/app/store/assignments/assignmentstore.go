// internal/app/store/assignments/assignmentstore.go
package assignmentstore

import (
	"context"
	"errors"
	"time"

	"github.com/eneca-dev/handoff/internal/domain/models"
	"github.com/eneca-dev/handoff/internal/domain/workflow"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("assignment not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("assignments")}
}

func (s *Store) Create(ctx context.Context, a models.Assignment) (models.Assignment, error) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = nil
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Assignment{}, err
	}
	return a, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Assignment, error) {
	var a models.Assignment
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return models.Assignment{}, ErrNotFound
	}
	if err != nil {
		return models.Assignment{}, err
	}
	return a, nil
}

// Replace overwrites the full document and refreshes UpdatedAt. The caller
// is expected to have loaded the assignment first, so the document always
// carries a complete, validated state. The actual-date invariant is checked
// before the write; a document violating it is rejected unwritten.
func (s *Store) Replace(ctx context.Context, a models.Assignment) (models.Assignment, error) {
	if err := workflow.CheckDatePrefix(&a); err != nil {
		return models.Assignment{}, err
	}
	now := time.Now().UTC()
	a.UpdatedAt = &now
	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return models.Assignment{}, err
	}
	if res.MatchedCount == 0 {
		return models.Assignment{}, ErrNotFound
	}
	return a, nil
}

// List returns every assignment, newest first. Filtering happens in memory
// against this wholesale list, so there is no per-criteria query path.
func (s *Store) List(ctx context.Context) ([]models.Assignment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Assignment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
