package study

import "github.com/lacima/plantlayout/pkg/slp"

// Seed returns the Lacima food-plant study: nine departments surveyed before
// and after optimization, a REL chart built from the process flow, and the
// floor plan from the hand-drawn sketch. Each call returns a fresh copy.
func Seed() *Study {
	return &Study{
		Name:  "Lacima plant layout improvement",
		Plant: "Lacima cheese plant",
		Flow:  []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		Notes: []string{
			"Congestion was observed in the filling and cooking areas because of narrow aisles.",
			"The new layout aims to reduce unnecessary worker movement.",
			"HACCP principles were applied when distributing departments to ensure food safety.",
			"Figures compare the current area against the area needed after optimization.",
		},
		Departments: []slp.Department{
			{ID: "1", Code: "D1", Name: "Raw Material Receiving & Handling", CurrentArea: 70, NeededArea: 56, AislesArea: 25, WorkstationsArea: 31, Importance: slp.RatingA},
			{ID: "2", Code: "D2", Name: "Preparation & Cooking", CurrentArea: 210, NeededArea: 180, AislesArea: 75, WorkstationsArea: 105, Importance: slp.RatingA},
			{ID: "3", Code: "D3", Name: "Thermal Processing / Pasteurization", CurrentArea: 45, NeededArea: 56, AislesArea: 31, WorkstationsArea: 25, Importance: slp.RatingA},
			{ID: "4", Code: "D4", Name: "Homogenization", CurrentArea: 30, NeededArea: 40, AislesArea: 22, WorkstationsArea: 18, Importance: slp.RatingA},
			{ID: "5", Code: "D5", Name: "Filling & Capping", CurrentArea: 90, NeededArea: 115, AislesArea: 66, WorkstationsArea: 49, Importance: slp.RatingA},
			{ID: "6", Code: "D6", Name: "Inspection & Drying", CurrentArea: 60, NeededArea: 72, AislesArea: 43, WorkstationsArea: 28, Importance: slp.RatingE},
			{ID: "7", Code: "D7", Name: "Labeling & Date Printing", CurrentArea: 60, NeededArea: 58, AislesArea: 36, WorkstationsArea: 22, Importance: slp.RatingI},
			{ID: "8", Code: "D8", Name: "Case Packing", CurrentArea: 95, NeededArea: 119, AislesArea: 66, WorkstationsArea: 53, Importance: slp.RatingA},
			{ID: "9", Code: "D9", Name: "Cold Storage (Finished Products)", CurrentArea: 165, NeededArea: 100, AislesArea: 54, WorkstationsArea: 46, Importance: slp.RatingA},
		},
		Adjacencies: []slp.AdjacencyScore{
			// Consecutive process steps.
			{FromID: "1", ToID: "2", Rating: slp.RatingA},
			{FromID: "2", ToID: "3", Rating: slp.RatingA},
			{FromID: "3", ToID: "4", Rating: slp.RatingA},
			{FromID: "4", ToID: "5", Rating: slp.RatingA},
			{FromID: "5", ToID: "6", Rating: slp.RatingE},
			{FromID: "6", ToID: "7", Rating: slp.RatingE},
			{FromID: "7", ToID: "8", Rating: slp.RatingA},
			{FromID: "8", ToID: "9", Rating: slp.RatingA},
			// Secondary relationships.
			{FromID: "3", ToID: "5", Rating: slp.RatingE},
			{FromID: "5", ToID: "7", Rating: slp.RatingI},
			{FromID: "6", ToID: "8", Rating: slp.RatingI},
			{FromID: "1", ToID: "9", Rating: slp.RatingO},
			{FromID: "4", ToID: "6", Rating: slp.RatingO},
			{FromID: "2", ToID: "8", Rating: slp.RatingU},
			{FromID: "1", ToID: "5", Rating: slp.RatingU},
			// Cooking heat next to cold storage.
			{FromID: "2", ToID: "9", Rating: slp.RatingX},
		},
		Plan: &Plan{
			Cols: 4,
			Rows: 6,
			Cells: []Cell{
				{DeptID: "9", Label: "Cold Storage", Col: 1, Row: 1, RowSpan: 6},
				{DeptID: "8", Label: "Case Packing", Col: 2, Row: 1, RowSpan: 6},
				{DeptID: "6", Label: "Inspect", Col: 3, Row: 1, RowSpan: 2},
				{DeptID: "7", Label: "Label", Col: 4, Row: 1},
				{DeptID: "3", Label: "Pasteur", Col: 4, Row: 2},
				{DeptID: "5", Label: "Filling", Col: 4, Row: 3, RowSpan: 3},
				{DeptID: "4", Label: "Homog", Col: 3, Row: 4},
				{DeptID: "2", Label: "Prep & Cook", Col: 3, Row: 5, RowSpan: 2},
				{DeptID: "1", Label: "Raw Mat", Col: 4, Row: 6},
			},
		},
	}
}
