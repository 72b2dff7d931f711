package study

import (
	"fmt"
	"strings"

	"github.com/lacima/plantlayout/pkg/errors"
	"github.com/lacima/plantlayout/pkg/slp"
)

// Report lists the problems found in a study. Errors make the study unusable;
// Warnings describe data the scoring tolerates, such as adjacency records
// that reference unknown departments.
type Report struct {
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// OK reports whether the study has no errors.
func (r Report) OK() bool { return len(r.Errors) == 0 }

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Check inspects s and reports every problem it finds. Area breakdowns are
// not required to add up to the totals.
func (s *Study) Check() Report {
	var r Report

	known := make(map[string]bool, len(s.Departments))
	for i, d := range s.Departments {
		if err := errors.ValidateID(d.ID); err != nil {
			r.errorf("department %d: %s", i, errors.UserMessage(err))
		} else if known[d.ID] {
			r.errorf("department %d: duplicate id %q", i, d.ID)
		}
		known[d.ID] = true

		for _, f := range []struct {
			name string
			v    float64
		}{
			{"current area", d.CurrentArea},
			{"needed area", d.NeededArea},
			{"aisles area", d.AislesArea},
			{"workstations area", d.WorkstationsArea},
		} {
			if err := errors.ValidateArea(f.name, f.v); err != nil {
				r.errorf("department %q: %s", d.ID, errors.UserMessage(err))
			}
		}
		if d.Importance != "" && !d.Importance.Valid() {
			r.errorf("department %q: invalid importance %q", d.ID, string(d.Importance))
		}
	}

	for i, a := range s.Adjacencies {
		if !a.Rating.Valid() {
			r.errorf("adjacency %d (%s-%s): invalid rating %q", i, a.FromID, a.ToID, string(a.Rating))
		}
		for _, id := range []string{a.FromID, a.ToID} {
			if !known[id] {
				r.warnf("adjacency %d (%s-%s): unknown department %q", i, a.FromID, a.ToID, id)
			}
		}
		if a.FromID == a.ToID {
			r.warnf("adjacency %d: department %q rated against itself", i, a.FromID)
		}
	}

	for i, id := range s.Flow {
		if !known[id] {
			r.warnf("flow step %d: unknown department %q", i+1, id)
		}
	}

	if s.Plan != nil {
		s.Plan.check(known, &r)
	}
	return r
}

func (p *Plan) check(known map[string]bool, r *Report) {
	if p.Cols <= 0 || p.Rows <= 0 {
		r.errorf("plan: grid must be at least 1x1 (got %dx%d)", p.Cols, p.Rows)
		return
	}
	owner := make(map[[2]int]string)
	for i, c := range p.Cells {
		if !known[c.DeptID] {
			r.errorf("plan cell %d: unknown department %q", i, c.DeptID)
		}
		cols, rows := c.Spans()
		if c.Col < 1 || c.Row < 1 || cols < 1 || rows < 1 || c.Col+cols-1 > p.Cols || c.Row+rows-1 > p.Rows {
			r.errorf("plan cell %d (%s): outside the %dx%d grid", i, c.DeptID, p.Cols, p.Rows)
			continue
		}
		for x := c.Col; x < c.Col+cols; x++ {
			for y := c.Row; y < c.Row+rows; y++ {
				if prev, taken := owner[[2]int{x, y}]; taken {
					r.errorf("plan cell %d (%s): overlaps %s at column %d row %d", i, c.DeptID, prev, x, y)
					continue
				}
				owner[[2]int{x, y}] = c.DeptID
			}
		}
	}
}

// Validate returns an error when the study cannot be used. An invalid
// adjacency rating is reported as the *slp.InvalidRatingError produced by
// scoring; every other problem is an INVALID_STUDY error listing all errors.
func (s *Study) Validate() error {
	if err := slp.Validate(s.Adjacencies); err != nil {
		return err
	}
	r := s.Check()
	if r.OK() {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidStudy, "%s", strings.Join(r.Errors, "; "))
}
