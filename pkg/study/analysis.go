package study

import "github.com/lacima/plantlayout/pkg/slp"

// Trend classifies how a department's area changes after optimization.
type Trend string

const (
	TrendGrow   Trend = "grow"
	TrendShrink Trend = "shrink"
	TrendSame   Trend = "same"
)

// Row is one line of the area comparison table.
type Row struct {
	Department slp.Department `json:"department"`
	Delta      float64        `json:"delta"`
	Percent    float64        `json:"percent"` // Delta relative to CurrentArea; 0 when CurrentArea is 0
	Trend      Trend          `json:"trend"`
}

// Analysis compares areas before and after optimization.
type Analysis struct {
	Rows []Row `json:"rows"`

	TotalCurrent      float64 `json:"totalCurrent"`
	TotalNeeded       float64 `json:"totalNeeded"`
	TotalAisles       float64 `json:"totalAisles"`
	TotalWorkstations float64 `json:"totalWorkstations"`
	TotalDelta        float64 `json:"totalDelta"`

	// LargestGrowth and LargestReduction are the departments whose area
	// grows or shrinks the most; nil when no department does. The first
	// department wins a tie.
	LargestGrowth    *Row `json:"largestGrowth,omitempty"`
	LargestReduction *Row `json:"largestReduction,omitempty"`
}

// Analyze builds the area comparison for the study's departments, in input order.
func (s *Study) Analyze() Analysis {
	a := Analysis{Rows: make([]Row, 0, len(s.Departments))}
	for _, d := range s.Departments {
		row := Row{Department: d, Delta: d.AreaDelta(), Trend: TrendSame}
		if d.CurrentArea != 0 {
			row.Percent = row.Delta / d.CurrentArea * 100
		}
		switch {
		case row.Delta > 0:
			row.Trend = TrendGrow
		case row.Delta < 0:
			row.Trend = TrendShrink
		}
		a.Rows = append(a.Rows, row)

		a.TotalCurrent += d.CurrentArea
		a.TotalNeeded += d.NeededArea
		a.TotalAisles += d.AislesArea
		a.TotalWorkstations += d.WorkstationsArea
	}
	a.TotalDelta = a.TotalNeeded - a.TotalCurrent

	for i := range a.Rows {
		r := &a.Rows[i]
		if r.Delta > 0 && (a.LargestGrowth == nil || r.Delta > a.LargestGrowth.Delta) {
			a.LargestGrowth = r
		}
		if r.Delta < 0 && (a.LargestReduction == nil || r.Delta < a.LargestReduction.Delta) {
			a.LargestReduction = r
		}
	}
	return a
}
