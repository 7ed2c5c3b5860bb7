// internal/app/features/directoryapi/handler.go

// Package directoryapi serves the reference directory as one nested tree,
// which the dashboard's filter widgets consume wholesale.
package directoryapi

import (
	"encoding/json"
	"net/http"

	"github.com/eneca-dev/handoff/internal/app/system/directory"
	"go.uber.org/zap"
)

// Handler serves the directory tree.
type Handler struct {
	Dirs DirectorySource
	Log  *zap.Logger
}

// DirectorySource provides the current reference directory.
type DirectorySource interface {
	Current() *directory.Directory
}

// NewHandler constructs the directory handler.
func NewHandler(dirs DirectorySource, logger *zap.Logger) *Handler {
	return &Handler{Dirs: dirs, Log: logger}
}

// projectNode is a project with its stage subtree.
type projectNode struct {
	directory.Project
	Stages []stageNode `json:"stages"`
}

type stageNode struct {
	directory.Stage
	Objects []objectNode `json:"objects"`
}

type objectNode struct {
	directory.Object
	Sections []directory.Section `json:"sections"`
}

// departmentNode is a department with its team subtree.
type departmentNode struct {
	directory.Department
	Teams []teamNode `json:"teams"`
}

type teamNode struct {
	directory.Team
	Specialists []directory.Specialist `json:"specialists"`
}

type treeResponse struct {
	Projects    []projectNode    `json:"projects"`
	Departments []departmentNode `json:"departments"`
}

// Serve handles GET /api/directory.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	dir := h.Dirs.Current()

	resp := treeResponse{
		Projects:    []projectNode{},
		Departments: []departmentNode{},
	}

	for _, p := range dir.Projects() {
		pn := projectNode{Project: p, Stages: []stageNode{}}
		for _, s := range dir.StagesOf(p.ID) {
			sn := stageNode{Stage: s, Objects: []objectNode{}}
			for _, o := range dir.ObjectsOf(s.ID) {
				sn.Objects = append(sn.Objects, objectNode{
					Object:   o,
					Sections: dir.SectionsOf(o.ID),
				})
			}
			pn.Stages = append(pn.Stages, sn)
		}
		resp.Projects = append(resp.Projects, pn)
	}

	for _, d := range dir.Departments() {
		dn := departmentNode{Department: d, Teams: []teamNode{}}
		for _, t := range dir.TeamsOf(d.ID) {
			dn.Teams = append(dn.Teams, teamNode{
				Team:        t,
				Specialists: dir.SpecialistsOf(t.ID),
			})
		}
		resp.Departments = append(resp.Departments, dn)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
