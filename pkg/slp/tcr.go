package slp

import "slices"

// Rate returns the Total Closeness Rating of the department identified by
// deptID: the summed weight of every record in adjacencies that names deptID
// as either endpoint. A self-referencing record counts once. Rate does not
// check that deptID belongs to any department; with no matching records the
// result is 0.
//
// Only matching records are inspected. If one of them carries a rating
// outside the scale, Rate returns an *InvalidRatingError.
func Rate(deptID string, adjacencies []AdjacencyScore) (int, error) {
	tcr := 0
	for i, a := range adjacencies {
		if !a.Touches(deptID) {
			continue
		}
		w, ok := a.Rating.Weight()
		if !ok {
			return 0, invalidRating(i, a)
		}
		tcr += w
	}
	return tcr, nil
}

// Validate checks every record in adjacencies and returns an
// *InvalidRatingError for the first rating outside the scale.
func Validate(adjacencies []AdjacencyScore) error {
	for i, a := range adjacencies {
		if !a.Rating.Valid() {
			return invalidRating(i, a)
		}
	}
	return nil
}

// Rank rates each department once and returns placements sorted by
// descending TCR. Departments with equal TCR keep their relative input
// order. The adjacency set is validated as a whole first: one invalid
// rating anywhere fails the call and no placements are returned.
//
// The result is a new slice; departments is not modified.
func Rank(departments []Department, adjacencies []AdjacencyScore) ([]Placement, error) {
	if err := Validate(adjacencies); err != nil {
		return nil, err
	}

	type scored struct {
		index int
		tcr   int
	}
	scores := make([]scored, len(departments))
	for i, d := range departments {
		tcr, err := Rate(d.ID, adjacencies)
		if err != nil {
			return nil, err
		}
		scores[i] = scored{index: i, tcr: tcr}
	}

	// Ties fall back to input position; SortFunc itself is not stable.
	slices.SortFunc(scores, func(a, b scored) int {
		if a.tcr != b.tcr {
			if a.tcr > b.tcr {
				return -1
			}
			return 1
		}
		return a.index - b.index
	})

	placements := make([]Placement, len(scores))
	for pos, s := range scores {
		placements[pos] = Placement{
			Position:   pos + 1,
			Department: departments[s.index],
			TCR:        s.tcr,
		}
	}
	return placements, nil
}

// Order returns departments permuted into descending TCR order, with ties
// in input order. See [Rank] for the validation rules.
func Order(departments []Department, adjacencies []AdjacencyScore) ([]Department, error) {
	placements, err := Rank(departments, adjacencies)
	if err != nil {
		return nil, err
	}
	ordered := make([]Department, len(placements))
	for i, p := range placements {
		ordered[i] = p.Department
	}
	return ordered, nil
}

// Scores rates every department and returns TCR by department ID. When two
// departments share an ID the score is the same for both.
func Scores(departments []Department, adjacencies []AdjacencyScore) (map[string]int, error) {
	if err := Validate(adjacencies); err != nil {
		return nil, err
	}
	out := make(map[string]int, len(departments))
	for _, d := range departments {
		if _, done := out[d.ID]; done {
			continue
		}
		tcr, err := Rate(d.ID, adjacencies)
		if err != nil {
			return nil, err
		}
		out[d.ID] = tcr
	}
	return out, nil
}

func invalidRating(i int, a AdjacencyScore) *InvalidRatingError {
	return &InvalidRatingError{Index: i, FromID: a.FromID, ToID: a.ToID, Rating: a.Rating}
}
