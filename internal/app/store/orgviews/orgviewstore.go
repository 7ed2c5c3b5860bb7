// internal/app/store/orgviews/orgviewstore.go

// Package orgviewstore reads the two externally maintained join views.
// Both collections are read-only from this service's point of view; the
// dashboard's project and staffing modules own their contents.
package orgviewstore

import (
	"context"

	"github.com/eneca-dev/handoff/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	hier *mongo.Collection
	org  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		hier: db.Collection("view_section_hierarchy"),
		org:  db.Collection("view_organization"),
	}
}

// SectionHierarchy loads every row of the section hierarchy view.
func (s *Store) SectionHierarchy(ctx context.Context) ([]models.SectionHierarchyRow, error) {
	cur, err := s.hier.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.SectionHierarchyRow
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrgUnits loads every row of the organization view.
func (s *Store) OrgUnits(ctx context.Context) ([]models.OrgUnitRow, error) {
	cur, err := s.org.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.OrgUnitRow
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
