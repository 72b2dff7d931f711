package slp

// Department is a functional area of the plant. Areas are in square metres;
// CurrentArea is the surveyed area before optimization and NeededArea the
// area after it.
type Department struct {
	ID               string  `json:"id" toml:"id" yaml:"id"`
	Code             string  `json:"code" toml:"code" yaml:"code"`
	Name             string  `json:"name" toml:"name" yaml:"name"`
	CurrentArea      float64 `json:"currentArea" toml:"current_area" yaml:"current_area"`
	NeededArea       float64 `json:"neededArea" toml:"needed_area" yaml:"needed_area"`
	AislesArea       float64 `json:"aislesArea" toml:"aisles_area" yaml:"aisles_area"`
	WorkstationsArea float64 `json:"workstationsArea" toml:"workstations_area" yaml:"workstations_area"`
	Importance       Rating  `json:"importance" toml:"importance" yaml:"importance"`
}

// AreaDelta returns NeededArea - CurrentArea.
func (d Department) AreaDelta() float64 {
	return d.NeededArea - d.CurrentArea
}

// AdjacencyScore rates the closeness wanted between two departments.
// FromID and ToID are Department.ID values; the record is counted for both.
type AdjacencyScore struct {
	FromID string `json:"fromId" toml:"from" yaml:"from"`
	ToID   string `json:"toId" toml:"to" yaml:"to"`
	Rating Rating `json:"rating" toml:"rating" yaml:"rating"`
}

// Touches reports whether id is either endpoint of a.
func (a AdjacencyScore) Touches(id string) bool {
	return a.FromID == id || a.ToID == id
}

// Placement is one entry of a placement order.
type Placement struct {
	Position   int        `json:"position"` // 1-based
	Department Department `json:"department"`
	TCR        int        `json:"tcr"`
}
