// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
EnsureAll is called at startup for the four collections the service owns
or reads. Index creation is idempotent; errors are aggregated so every
problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureAssignments(ctx, db); err != nil {
		problems = append(problems, "assignments: "+err.Error())
	}
	if err := ensureAssignmentAudit(ctx, db); err != nil {
		problems = append(problems, "assignment_audit: "+err.Error())
	}
	if err := ensureSectionHierarchy(ctx, db); err != nil {
		problems = append(problems, "view_section_hierarchy: "+err.Error())
	}
	if err := ensureOrganization(ctx, db); err != nil {
		problems = append(problems, "view_organization: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func createMany(ctx context.Context, db *mongo.Database, collection string, models []mongo.IndexModel) error {
	_, err := db.Collection(collection).Indexes().CreateMany(ctx, models)
	return err
}

func ensureAssignments(ctx context.Context, db *mongo.Database) error {
	return createMany(ctx, db, "assignments", []mongo.IndexModel{
		// The wholesale snapshot is sorted by creation time.
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		// Direct field filter on project.
		{Keys: bson.D{
			{Key: "project_id", Value: 1},
			{Key: "created_at", Value: -1},
		}},
		// Section-set filters probe both ends of the hand-off.
		{Keys: bson.D{{Key: "from_section_id", Value: 1}}},
		{Keys: bson.D{{Key: "to_section_id", Value: 1}}},
	})
}

func ensureAssignmentAudit(ctx context.Context, db *mongo.Database) error {
	return createMany(ctx, db, "assignment_audit", []mongo.IndexModel{
		// History is listed (and bulk-cleared) per assignment, newest first.
		{Keys: bson.D{
			{Key: "assignment_id", Value: 1},
			{Key: "changed_at", Value: -1},
		}},
	})
}

func ensureSectionHierarchy(ctx context.Context, db *mongo.Database) error {
	return createMany(ctx, db, "view_section_hierarchy", []mongo.IndexModel{
		{Keys: bson.D{{Key: "section_id", Value: 1}}},
		{Keys: bson.D{{Key: "stage_id", Value: 1}}},
		{Keys: bson.D{{Key: "object_id", Value: 1}}},
	})
}

func ensureOrganization(ctx context.Context, db *mongo.Database) error {
	return createMany(ctx, db, "view_organization", []mongo.IndexModel{
		{Keys: bson.D{{Key: "department_id", Value: 1}}},
		{Keys: bson.D{{Key: "team_id", Value: 1}}},
	})
}
