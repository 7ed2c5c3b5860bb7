// internal/app/system/filters/filters.go

// Package filters narrows an assignment snapshot against criteria spanning
// the project hierarchy (project/stage/object) and the organizational
// structure (department/team/specialist).
//
// Resolution is a sequence of independent passes over the surviving set;
// each pass owns one disjoint criterion, so pass order never changes the
// result. A criterion whose referenced entity cannot be resolved narrows to
// the empty set for that dimension — resolution itself never fails.
package filters

import (
	"github.com/eneca-dev/handoff/internal/app/system/directory"
	"github.com/eneca-dev/handoff/internal/app/system/namekey"
	"github.com/eneca-dev/handoff/internal/app/system/telemetry"
	"github.com/eneca-dev/handoff/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Criteria holds the optional filter dimensions. Nil pointers mean "not
// filtered on". The organizational dimensions apply in strict specificity
// order: a specialist criterion suppresses team and department, and a team
// criterion suppresses department.
type Criteria struct {
	ProjectID *primitive.ObjectID
	Status    string // one of the persisted status strings; empty means any

	StageID  *primitive.ObjectID
	ObjectID *primitive.ObjectID

	DepartmentID *primitive.ObjectID
	TeamID       *primitive.ObjectID
	SpecialistID *primitive.ObjectID
}

// Empty reports whether no dimension is set.
func (c Criteria) Empty() bool {
	return c.ProjectID == nil && c.Status == "" &&
		c.StageID == nil && c.ObjectID == nil &&
		c.DepartmentID == nil && c.TeamID == nil && c.SpecialistID == nil
}

// Engine resolves criteria against a directory. Lookup misses and
// ambiguous name joins are reported to the telemetry sink.
type Engine struct {
	dir *directory.Directory
	tel telemetry.Sink
}

// New creates an Engine over the given directory. A nil sink discards
// telemetry.
func New(dir *directory.Directory, tel telemetry.Sink) *Engine {
	if tel == nil {
		tel = telemetry.Nop()
	}
	return &Engine{dir: dir, tel: tel}
}

// Resolve returns the assignments surviving every set criterion. The input
// slice is never modified.
func (e *Engine) Resolve(assignments []models.Assignment, c Criteria) []models.Assignment {
	if c.Empty() {
		return assignments
	}
	out := assignments

	if c.ProjectID != nil {
		out = keep(out, func(a models.Assignment) bool { return a.ProjectID == *c.ProjectID })
	}
	if c.Status != "" {
		out = keep(out, func(a models.Assignment) bool { return a.Status == c.Status })
	}
	if c.StageID != nil {
		set := e.dir.SectionsForStage(*c.StageID)
		if len(set) == 0 {
			e.tel.Warn("filter_stage_unresolved", zap.String("stage_id", c.StageID.Hex()))
		}
		out = keepBySection(out, set)
	}
	if c.ObjectID != nil {
		set := e.dir.SectionsForObject(*c.ObjectID)
		if len(set) == 0 {
			e.tel.Warn("filter_object_unresolved", zap.String("object_id", c.ObjectID.Hex()))
		}
		out = keepBySection(out, set)
	}

	// Organizational specificity: specialist > team > department.
	switch {
	case c.SpecialistID != nil:
		out = e.bySpecialist(out, *c.SpecialistID)
	case c.TeamID != nil:
		out = e.byTeam(out, *c.TeamID)
	case c.DepartmentID != nil:
		set := e.dir.SectionsForDepartment(*c.DepartmentID)
		if len(set) == 0 {
			e.tel.Warn("filter_department_unresolved", zap.String("department_id", c.DepartmentID.Hex()))
		}
		out = keepBySection(out, set)
	}

	return out
}

// byTeam narrows to assignments touching a section the team is responsible
// for. The hierarchy view stores the team's display name, so the team id is
// first resolved to its name and joined by name key.
func (e *Engine) byTeam(in []models.Assignment, teamID primitive.ObjectID) []models.Assignment {
	team, ok := e.dir.TeamByID(teamID)
	if !ok {
		e.tel.Warn("filter_team_unresolved", zap.String("team_id", teamID.Hex()))
		return nil
	}
	set := e.dir.SectionsForTeamKey(namekey.For(team.Name))
	if len(set) == 0 {
		e.tel.Warn("filter_team_no_sections",
			zap.String("team_id", teamID.Hex()),
			zap.String("team_name", team.Name))
	}
	return keepBySection(in, set)
}

// bySpecialist narrows to assignments the specialist is involved in: as
// creator, as last editor, or as the responsible of either section (joined
// by name key). An unknown id or an ambiguous name is an unresolved filter
// and matches nothing.
func (e *Engine) bySpecialist(in []models.Assignment, specialistID primitive.ObjectID) []models.Assignment {
	sp, ok := e.dir.SpecialistByID(specialistID)
	if !ok {
		e.tel.Warn("filter_specialist_unresolved", zap.String("specialist_id", specialistID.Hex()))
		return nil
	}
	if e.dir.AmbiguousKey(sp.Key) {
		e.tel.Warn("filter_specialist_ambiguous",
			zap.String("specialist_id", specialistID.Hex()),
			zap.String("name", sp.Name))
		return nil
	}

	return keep(in, func(a models.Assignment) bool {
		if a.CreatedByID != nil && *a.CreatedByID == specialistID {
			return true
		}
		if a.UpdatedByID != nil && *a.UpdatedByID == specialistID {
			return true
		}
		return e.responsibleFor(a.FromSectionID, sp) || e.responsibleFor(a.ToSectionID, sp)
	})
}

func (e *Engine) responsibleFor(sectionID primitive.ObjectID, sp directory.Specialist) bool {
	for _, k := range e.dir.ResponsibleKeys(sectionID) {
		if k == sp.Key {
			return true
		}
	}
	return false
}

func keep(in []models.Assignment, match func(models.Assignment) bool) []models.Assignment {
	var out []models.Assignment
	for _, a := range in {
		if match(a) {
			out = append(out, a)
		}
	}
	return out
}

// keepBySection keeps assignments whose source or destination section is in
// the set. An empty set keeps nothing.
func keepBySection(in []models.Assignment, set directory.SectionSet) []models.Assignment {
	return keep(in, func(a models.Assignment) bool {
		return set.Contains(a.FromSectionID) || set.Contains(a.ToSectionID)
	})
}
