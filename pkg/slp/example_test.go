package slp_test

import (
	"fmt"

	"github.com/lacima/plantlayout/pkg/slp"
)

func ExampleOrder() {
	departments := []slp.Department{
		{ID: "p", Code: "P"},
		{ID: "q", Code: "Q"},
		{ID: "r", Code: "R"},
	}
	adjacencies := []slp.AdjacencyScore{
		{FromID: "p", ToID: "q", Rating: slp.RatingA},
		{FromID: "q", ToID: "r", Rating: slp.RatingE},
		{FromID: "p", ToID: "r", Rating: slp.RatingX},
	}

	ordered, err := slp.Order(departments, adjacencies)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, d := range ordered {
		tcr, _ := slp.Rate(d.ID, adjacencies)
		fmt.Println(d.Code, tcr)
	}
	// Output:
	// Q 11000
	// P 0
	// R -9000
}

func ExampleRate_invalid() {
	_, err := slp.Rate("a", []slp.AdjacencyScore{{FromID: "a", ToID: "b", Rating: "Z"}})
	fmt.Println(err)
	// Output:
	// adjacency 0 (a-b): invalid rating "Z" (want one of A, E, I, O, U, X)
}
