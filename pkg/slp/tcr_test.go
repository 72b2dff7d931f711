package slp

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	plerrors "github.com/lacima/plantlayout/pkg/errors"
)

func dept(id string) Department {
	return Department{ID: id, Code: "D-" + id, Name: "Department " + id}
}

func ids(ds []Department) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.ID
	}
	return out
}

var pqr = []AdjacencyScore{
	{FromID: "p", ToID: "q", Rating: RatingA},
	{FromID: "q", ToID: "r", Rating: RatingE},
	{FromID: "p", ToID: "r", Rating: RatingX},
}

func TestRate(t *testing.T) {
	tests := []struct {
		name string
		id   string
		adj  []AdjacencyScore
		want int
	}{
		{"p cancels out", "p", pqr, 0},
		{"q", "q", pqr, 11000},
		{"r", "r", pqr, -9000},
		{"unknown department", "zz", pqr, 0},
		{"no adjacencies", "p", nil, 0},
		{"self loop counted once", "s", []AdjacencyScore{{FromID: "s", ToID: "s", Rating: RatingI}}, 100},
		{"duplicate records both count", "a", []AdjacencyScore{
			{FromID: "a", ToID: "b", Rating: RatingO},
			{FromID: "b", ToID: "a", Rating: RatingO},
		}, 20},
		{"U contributes nothing", "a", []AdjacencyScore{{FromID: "a", ToID: "b", Rating: RatingU}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rate(tt.id, tt.adj)
			if err != nil {
				t.Fatalf("Rate(%q) error: %v", tt.id, err)
			}
			if got != tt.want {
				t.Errorf("Rate(%q) = %d, want %d", tt.id, got, tt.want)
			}
		})
	}
}

func TestRateWeights(t *testing.T) {
	want := map[Rating]int{
		RatingA: 10000,
		RatingE: 1000,
		RatingI: 100,
		RatingO: 10,
		RatingU: 0,
		RatingX: -10000,
	}
	for r, w := range want {
		got, err := Rate("a", []AdjacencyScore{{FromID: "a", ToID: "b", Rating: r}})
		if err != nil {
			t.Fatalf("Rate with %s: %v", r, err)
		}
		if got != w {
			t.Errorf("weight of %s = %d, want %d", r, got, w)
		}
	}
}

func TestRateEndpointSymmetry(t *testing.T) {
	for _, r := range Ratings {
		adj := []AdjacencyScore{{FromID: "x", ToID: "y", Rating: r}}
		fromSide, _ := Rate("x", adj)
		toSide, _ := Rate("y", adj)
		if fromSide != toSide {
			t.Errorf("rating %s: Rate(from)=%d, Rate(to)=%d", r, fromSide, toSide)
		}
	}
}

func TestRateMonotonic(t *testing.T) {
	base := []AdjacencyScore{
		{FromID: "a", ToID: "b", Rating: RatingO},
		{FromID: "a", ToID: "c", Rating: RatingU},
	}
	prev := 0
	for i := len(Ratings) - 1; i >= 0; i-- {
		adj := append([]AdjacencyScore(nil), base...)
		adj[1].Rating = Ratings[i]
		got, err := Rate("a", adj)
		if err != nil {
			t.Fatal(err)
		}
		if i < len(Ratings)-1 && got < prev {
			t.Errorf("upgrading to %s lowered TCR: %d < %d", Ratings[i], got, prev)
		}
		prev = got
	}
}

func TestRateIdempotent(t *testing.T) {
	first, _ := Rate("q", pqr)
	second, _ := Rate("q", pqr)
	if first != second {
		t.Errorf("Rate not deterministic: %d then %d", first, second)
	}
}

func TestRateInvalidRating(t *testing.T) {
	adj := []AdjacencyScore{
		{FromID: "a", ToID: "b", Rating: RatingA},
		{FromID: "b", ToID: "c", Rating: "Z"},
	}

	if _, err := Rate("a", adj); err != nil {
		t.Errorf("Rate(a) should ignore records that do not touch it, got %v", err)
	}

	_, err := Rate("c", adj)
	var ire *InvalidRatingError
	if !errors.As(err, &ire) {
		t.Fatalf("Rate(c) error = %v, want *InvalidRatingError", err)
	}
	if ire.Index != 1 || ire.FromID != "b" || ire.ToID != "c" || ire.Rating != "Z" {
		t.Errorf("InvalidRatingError = %+v", ire)
	}
	if !plerrors.Is(err, plerrors.ErrCodeInvalidRating) {
		t.Error("InvalidRatingError should carry ErrCodeInvalidRating")
	}
}

func TestOrder(t *testing.T) {
	in := []Department{dept("p"), dept("q"), dept("r")}
	got, err := Order(in, pqr)
	if err != nil {
		t.Fatalf("Order error: %v", err)
	}
	if diff := cmp.Diff([]string{"q", "p", "r"}, ids(got)); diff != "" {
		t.Errorf("Order mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderStableTies(t *testing.T) {
	adj := []AdjacencyScore{
		{FromID: "s", ToID: "other1", Rating: RatingI},
		{FromID: "other2", ToID: "t", Rating: RatingI},
	}
	tests := []struct {
		name string
		in   []Department
		want []string
	}{
		{"t first", []Department{dept("t"), dept("s")}, []string{"t", "s"}},
		{"s first", []Department{dept("s"), dept("t")}, []string{"s", "t"}},
		{"all zero keeps input", []Department{dept("c"), dept("a"), dept("b")}, []string{"c", "a", "b"}},
		{"ties among mixed scores", []Department{dept("z"), dept("t"), dept("y"), dept("s")}, []string{"t", "s", "z", "y"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Order(tt.in, adj)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("Order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOrderEmpty(t *testing.T) {
	got, err := Order(nil, pqr)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Order(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestOrderIsPermutation(t *testing.T) {
	in := []Department{dept("r"), dept("q"), dept("p"), dept("q"), dept("w")}
	got, err := Order(in, pqr)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	count := map[string]int{}
	for _, d := range in {
		count[d.ID]++
	}
	for _, d := range got {
		count[d.ID]--
	}
	for id, n := range count {
		if n != 0 {
			t.Errorf("department %s count off by %d", id, n)
		}
	}
}

func TestOrderDoesNotMutateInput(t *testing.T) {
	in := []Department{dept("p"), dept("q"), dept("r")}
	before := append([]Department(nil), in...)
	if _, err := Order(in, pqr); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, in); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}

func TestOrderInvalidRatingFailsWholeCall(t *testing.T) {
	adj := append([]AdjacencyScore(nil), pqr...)
	adj = append(adj, AdjacencyScore{FromID: "m", ToID: "n", Rating: "Z"})

	got, err := Order([]Department{dept("p"), dept("q")}, adj)
	var ire *InvalidRatingError
	if !errors.As(err, &ire) {
		t.Fatalf("Order error = %v, want *InvalidRatingError", err)
	}
	if got != nil {
		t.Errorf("Order returned partial result %v", ids(got))
	}
	if ire.Index != 3 || ire.FromID != "m" || ire.ToID != "n" {
		t.Errorf("InvalidRatingError = %+v", ire)
	}
}

func TestRank(t *testing.T) {
	got, err := Rank([]Department{dept("p"), dept("q"), dept("r")}, pqr)
	if err != nil {
		t.Fatal(err)
	}
	type row struct {
		Pos int
		ID  string
		TCR int
	}
	var rows []row
	for _, p := range got {
		rows = append(rows, row{p.Position, p.Department.ID, p.TCR})
	}
	want := []row{{1, "q", 11000}, {2, "p", 0}, {3, "r", -9000}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Rank mismatch (-want +got):\n%s", diff)
	}
}

func TestScores(t *testing.T) {
	got, err := Scores([]Department{dept("p"), dept("q"), dept("r"), dept("p")}, pqr)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"p": 0, "q": 11000, "r": -9000}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scores mismatch (-want +got):\n%s", diff)
	}
}
