// Package study holds the facility-layout dataset that the dashboard and
// CLI work on: the plant's departments with their areas before and after
// optimization, the REL chart of adjacency ratings, the material-flow
// sequence and the hand-drawn floor plan.
//
// A Study is an immutable snapshot once loaded. Scoring is done by package
// slp; this package only supplies and checks the records.
//
// # Files
//
// Studies are read and written as TOML, JSON or YAML, chosen by file
// extension:
//
//	s, err := study.ReadFile("lacima.toml")
//	err = study.WriteFile("lacima.json", s)
//
// [Seed] returns the built-in food-plant study.
package study

import (
	"github.com/lacima/plantlayout/pkg/slp"
)

// Study is one facility-layout study.
type Study struct {
	Name  string `json:"name" toml:"name" yaml:"name"`
	Plant string `json:"plant,omitempty" toml:"plant,omitempty" yaml:"plant,omitempty"`

	// Flow lists department IDs in material-flow order.
	Flow  []string `json:"flow,omitempty" toml:"flow,omitempty" yaml:"flow,omitempty"`
	Notes []string `json:"notes,omitempty" toml:"notes,omitempty" yaml:"notes,omitempty"`

	Departments []slp.Department     `json:"departments" toml:"departments" yaml:"departments"`
	Adjacencies []slp.AdjacencyScore `json:"adjacencies,omitempty" toml:"adjacencies,omitempty" yaml:"adjacencies,omitempty"`
	Plan        *Plan                `json:"plan,omitempty" toml:"plan,omitempty" yaml:"plan,omitempty"`
}

// Plan is a floor plan drawn on a grid. Coordinates are 1-based.
type Plan struct {
	Cols  int    `json:"cols" toml:"cols" yaml:"cols"`
	Rows  int    `json:"rows" toml:"rows" yaml:"rows"`
	Cells []Cell `json:"cells" toml:"cells" yaml:"cells"`
}

// Cell places one department on the plan grid.
type Cell struct {
	DeptID  string `json:"deptId" toml:"dept" yaml:"dept"`
	Label   string `json:"label,omitempty" toml:"label,omitempty" yaml:"label,omitempty"`
	Col     int    `json:"col" toml:"col" yaml:"col"`
	Row     int    `json:"row" toml:"row" yaml:"row"`
	ColSpan int    `json:"colSpan,omitempty" toml:"col_span,omitempty" yaml:"col_span,omitempty"`
	RowSpan int    `json:"rowSpan,omitempty" toml:"row_span,omitempty" yaml:"row_span,omitempty"`
}

// Spans returns the cell's column and row spans, treating zero as one.
func (c Cell) Spans() (cols, rows int) {
	cols, rows = c.ColSpan, c.RowSpan
	if cols == 0 {
		cols = 1
	}
	if rows == 0 {
		rows = 1
	}
	return cols, rows
}

// Department returns the department with the given ID.
func (s *Study) Department(id string) (slp.Department, bool) {
	for _, d := range s.Departments {
		if d.ID == id {
			return d, true
		}
	}
	return slp.Department{}, false
}

// Rank orders the study's departments by Total Closeness Rating.
func (s *Study) Rank() ([]slp.Placement, error) {
	return slp.Rank(s.Departments, s.Adjacencies)
}

// Clone returns a deep copy of s.
func (s *Study) Clone() *Study {
	c := *s
	c.Flow = append([]string(nil), s.Flow...)
	c.Notes = append([]string(nil), s.Notes...)
	c.Departments = append([]slp.Department(nil), s.Departments...)
	c.Adjacencies = append([]slp.AdjacencyScore(nil), s.Adjacencies...)
	if s.Plan != nil {
		p := *s.Plan
		p.Cells = append([]Cell(nil), s.Plan.Cells...)
		c.Plan = &p
	}
	return &c
}
