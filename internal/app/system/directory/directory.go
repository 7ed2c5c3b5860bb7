// internal/app/system/directory/directory.go

// Package directory materializes the read-only organizational reference
// data: the project → stage → object → section hierarchy and the
// department → team → specialist structure.
//
// A Directory is built once per session from the two join views and then
// queried in memory. Every lookup is total — an unknown id yields zero
// values or an empty set, never an error — because filter resolution must
// degrade to "no match", not fail.
package directory

import (
	"sort"

	"github.com/eneca-dev/handoff/internal/app/system/namekey"
	"github.com/eneca-dev/handoff/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a top-level project known to the hierarchy view.
type Project struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

// Stage is a design stage within a project.
type Stage struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	ProjectID primitive.ObjectID `json:"project_id"`
}

// Object is a constructed object within a stage.
type Object struct {
	ID      primitive.ObjectID `json:"id"`
	Name    string             `json:"name"`
	StageID primitive.ObjectID `json:"stage_id"`
}

// Section is a discipline section within an object; assignments are handed
// off between sections.
type Section struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	ObjectID primitive.ObjectID `json:"object_id"`
}

// Department is an organizational department.
type Department struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

// Team is a team within a department.
type Team struct {
	ID           primitive.ObjectID `json:"id"`
	Name         string             `json:"name"`
	DepartmentID primitive.ObjectID `json:"department_id"`
}

// Specialist is a person from the organizational view. Key is the name-join
// key the hierarchy view is correlated by; when two specialists share a
// key, lookups through that key are ambiguous and filters built on it are
// treated as unresolved.
type Specialist struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	TeamID primitive.ObjectID `json:"team_id"`
	Key    namekey.Key        `json:"-"`
}

// SectionSet is a set of section ids produced by resolving one filter
// dimension against the hierarchy.
type SectionSet map[primitive.ObjectID]struct{}

// Contains reports membership; a nil set contains nothing.
func (s SectionSet) Contains(id primitive.ObjectID) bool {
	_, ok := s[id]
	return ok
}

// Directory is the in-memory materialization. Build it with Build; the
// zero value answers every query with "not found".
type Directory struct {
	projects    map[primitive.ObjectID]Project
	stages      map[primitive.ObjectID]Stage
	objects     map[primitive.ObjectID]Object
	sections    map[primitive.ObjectID]Section
	departments map[primitive.ObjectID]Department
	teams       map[primitive.ObjectID]Team
	specialists map[primitive.ObjectID]Specialist

	// hierarchy rows indexed by section for responsibility lookups
	rowsBySection map[primitive.ObjectID][]models.SectionHierarchyRow
	rows          []models.SectionHierarchyRow

	// specialist ids per name key, for collision detection
	specialistsByKey map[namekey.Key][]primitive.ObjectID
}

// Build materializes a Directory from the two join views. Rows with
// duplicate ids collapse to one entry; specialists deduplicate by name key
// (the hierarchy view knows them only by name), keeping every distinct id
// per key so collisions stay visible.
func Build(hier []models.SectionHierarchyRow, org []models.OrgUnitRow) *Directory {
	d := &Directory{
		projects:         make(map[primitive.ObjectID]Project),
		stages:           make(map[primitive.ObjectID]Stage),
		objects:          make(map[primitive.ObjectID]Object),
		sections:         make(map[primitive.ObjectID]Section),
		departments:      make(map[primitive.ObjectID]Department),
		teams:            make(map[primitive.ObjectID]Team),
		specialists:      make(map[primitive.ObjectID]Specialist),
		rowsBySection:    make(map[primitive.ObjectID][]models.SectionHierarchyRow),
		specialistsByKey: make(map[namekey.Key][]primitive.ObjectID),
	}

	for _, row := range hier {
		d.projects[row.ProjectID] = Project{ID: row.ProjectID, Name: row.ProjectName}
		d.stages[row.StageID] = Stage{ID: row.StageID, Name: row.StageName, ProjectID: row.ProjectID}
		d.objects[row.ObjectID] = Object{ID: row.ObjectID, Name: row.ObjectName, StageID: row.StageID}
		d.sections[row.SectionID] = Section{ID: row.SectionID, Name: row.SectionName, ObjectID: row.ObjectID}
		d.rowsBySection[row.SectionID] = append(d.rowsBySection[row.SectionID], row)
	}
	d.rows = append(d.rows, hier...)

	for _, row := range org {
		d.departments[row.DepartmentID] = Department{ID: row.DepartmentID, Name: row.DepartmentName}
		d.teams[row.TeamID] = Team{ID: row.TeamID, Name: row.TeamName, DepartmentID: row.DepartmentID}

		if row.SpecialistID == nil || row.SpecialistName == "" {
			continue
		}
		id := *row.SpecialistID
		if _, seen := d.specialists[id]; seen {
			continue
		}
		key := namekey.For(row.SpecialistName)
		d.specialists[id] = Specialist{ID: id, Name: row.SpecialistName, TeamID: row.TeamID, Key: key}
		if !key.Zero() {
			d.specialistsByKey[key] = append(d.specialistsByKey[key], id)
		}
	}

	return d
}

/* ------------------------------- lookups -------------------------------- */

// ProjectName resolves a project id to its display name.
func (d *Directory) ProjectName(id primitive.ObjectID) (string, bool) {
	p, ok := d.projects[id]
	return p.Name, ok
}

// SectionName resolves a section id to its display name.
func (d *Directory) SectionName(id primitive.ObjectID) (string, bool) {
	s, ok := d.sections[id]
	return s.Name, ok
}

// TeamByID resolves a team id from the organizational view.
func (d *Directory) TeamByID(id primitive.ObjectID) (Team, bool) {
	t, ok := d.teams[id]
	return t, ok
}

// SpecialistByID resolves a specialist id from the organizational view.
func (d *Directory) SpecialistByID(id primitive.ObjectID) (Specialist, bool) {
	s, ok := d.specialists[id]
	return s, ok
}

// SpecialistName resolves a specialist id to its display name.
func (d *Directory) SpecialistName(id primitive.ObjectID) (string, bool) {
	s, ok := d.specialists[id]
	return s.Name, ok
}

// AmbiguousKey reports whether more than one specialist carries the given
// name key. Filters resolved through an ambiguous key must be treated as
// unresolved rather than guessing a match.
func (d *Directory) AmbiguousKey(key namekey.Key) bool {
	return len(d.specialistsByKey[key]) > 1
}

/* ---------------------------- membership lists --------------------------- */

// Projects returns all known projects sorted by name.
func (d *Directory) Projects() []Project {
	out := make([]Project, 0, len(d.projects))
	for _, p := range d.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// StagesOf returns the stages of a project sorted by name.
func (d *Directory) StagesOf(projectID primitive.ObjectID) []Stage {
	var out []Stage
	for _, s := range d.stages {
		if s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ObjectsOf returns the objects of a stage sorted by name.
func (d *Directory) ObjectsOf(stageID primitive.ObjectID) []Object {
	var out []Object
	for _, o := range d.objects {
		if o.StageID == stageID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SectionsOf returns the sections of an object sorted by name.
func (d *Directory) SectionsOf(objectID primitive.ObjectID) []Section {
	var out []Section
	for _, s := range d.sections {
		if s.ObjectID == objectID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Departments returns all departments sorted by name.
func (d *Directory) Departments() []Department {
	out := make([]Department, 0, len(d.departments))
	for _, dep := range d.departments {
		out = append(out, dep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// TeamsOf returns the teams of a department sorted by name.
func (d *Directory) TeamsOf(departmentID primitive.ObjectID) []Team {
	var out []Team
	for _, t := range d.teams {
		if t.DepartmentID == departmentID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SpecialistsOf returns the specialists of a team sorted by name.
func (d *Directory) SpecialistsOf(teamID primitive.ObjectID) []Specialist {
	var out []Specialist
	for _, s := range d.specialists {
		if s.TeamID == teamID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

/* --------------------------- section resolution -------------------------- */

// SectionsForStage returns the section ids belonging to a stage.
func (d *Directory) SectionsForStage(stageID primitive.ObjectID) SectionSet {
	return d.sectionsWhere(func(r models.SectionHierarchyRow) bool {
		return r.StageID == stageID
	})
}

// SectionsForObject returns the section ids belonging to an object.
func (d *Directory) SectionsForObject(objectID primitive.ObjectID) SectionSet {
	return d.sectionsWhere(func(r models.SectionHierarchyRow) bool {
		return r.ObjectID == objectID
	})
}

// SectionsForDepartment returns the section ids whose responsible
// department matches.
func (d *Directory) SectionsForDepartment(departmentID primitive.ObjectID) SectionSet {
	return d.sectionsWhere(func(r models.SectionHierarchyRow) bool {
		return r.DepartmentID != nil && *r.DepartmentID == departmentID
	})
}

// SectionsForTeamKey returns the section ids whose responsible team name
// resolves to the given key. This is the name-join: the hierarchy view
// stores the team's display name, not its id.
func (d *Directory) SectionsForTeamKey(key namekey.Key) SectionSet {
	if key.Zero() {
		return SectionSet{}
	}
	return d.sectionsWhere(func(r models.SectionHierarchyRow) bool {
		return key.Matches(r.TeamName)
	})
}

// ResponsibleKeys returns the name keys of the specialists responsible for
// a section. Usually zero or one; multiple rows per section all contribute.
func (d *Directory) ResponsibleKeys(sectionID primitive.ObjectID) []namekey.Key {
	var out []namekey.Key
	for _, r := range d.rowsBySection[sectionID] {
		if k := namekey.For(r.SpecialistName); !k.Zero() {
			out = append(out, k)
		}
	}
	return out
}

func (d *Directory) sectionsWhere(match func(models.SectionHierarchyRow) bool) SectionSet {
	set := make(SectionSet)
	for _, r := range d.rows {
		if match(r) {
			set[r.SectionID] = struct{}{}
		}
	}
	return set
}
