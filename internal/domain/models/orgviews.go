// internal/domain/models/orgviews.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SectionHierarchyRow is one row of the read-only `view_section_hierarchy`
// collection: a denormalized join exposing, for a section, its enclosing
// object/stage/project and the organizational unit responsible for it.
//
// The responsible department is carried by id, but the responsible team and
// specialist are carried by *name* — the two views are maintained
// independently and share no foreign keys for those dimensions. Filter
// resolution joins on folded name keys and must treat that join as fragile.
type SectionHierarchyRow struct {
	SectionID   primitive.ObjectID `bson:"section_id" json:"section_id"`
	SectionName string             `bson:"section_name" json:"section_name"`

	ObjectID   primitive.ObjectID `bson:"object_id" json:"object_id"`
	ObjectName string             `bson:"object_name" json:"object_name"`

	StageID   primitive.ObjectID `bson:"stage_id" json:"stage_id"`
	StageName string             `bson:"stage_name" json:"stage_name"`

	ProjectID   primitive.ObjectID `bson:"project_id" json:"project_id"`
	ProjectName string             `bson:"project_name" json:"project_name"`

	DepartmentID   *primitive.ObjectID `bson:"department_id,omitempty" json:"department_id,omitempty"`
	TeamName       string              `bson:"team_name,omitempty" json:"team_name,omitempty"`
	SpecialistName string              `bson:"specialist_name,omitempty" json:"specialist_name,omitempty"`
}

// OrgUnitRow is one row of the read-only `view_organization` collection:
// department → team → specialist, flattened.
type OrgUnitRow struct {
	DepartmentID   primitive.ObjectID `bson:"department_id" json:"department_id"`
	DepartmentName string             `bson:"department_name" json:"department_name"`

	TeamID   primitive.ObjectID `bson:"team_id" json:"team_id"`
	TeamName string             `bson:"team_name" json:"team_name"`

	SpecialistID   *primitive.ObjectID `bson:"specialist_id,omitempty" json:"specialist_id,omitempty"`
	SpecialistName string              `bson:"specialist_name,omitempty" json:"specialist_name,omitempty"`
}
