package slp

import "strings"

// Rating is a symbol of the SLP closeness scale.
type Rating string

// The six ratings, strongest first.
const (
	RatingA Rating = "A" // absolutely necessary
	RatingE Rating = "E" // especially important
	RatingI Rating = "I" // important
	RatingO Rating = "O" // ordinary closeness
	RatingU Rating = "U" // unimportant
	RatingX Rating = "X" // undesirable
)

// Ratings lists the scale from strongest to weakest.
var Ratings = []Rating{RatingA, RatingE, RatingI, RatingO, RatingU, RatingX}

// Weight returns the TCR contribution of r and whether r is on the scale.
func (r Rating) Weight() (int, bool) {
	switch r {
	case RatingA:
		return 10000, true
	case RatingE:
		return 1000, true
	case RatingI:
		return 100, true
	case RatingO:
		return 10, true
	case RatingU:
		return 0, true
	case RatingX:
		return -10000, true
	}
	return 0, false
}

// Valid reports whether r is one of the six symbols.
func (r Rating) Valid() bool {
	_, ok := r.Weight()
	return ok
}

// Label returns the planning meaning of r, or "" for an unknown symbol.
func (r Rating) Label() string {
	switch r {
	case RatingA:
		return "absolutely necessary"
	case RatingE:
		return "especially important"
	case RatingI:
		return "important"
	case RatingO:
		return "ordinary"
	case RatingU:
		return "unimportant"
	case RatingX:
		return "undesirable"
	}
	return ""
}

// Color returns the dashboard colour of r. Unknown symbols are drawn grey.
func (r Rating) Color() string {
	switch r {
	case RatingA:
		return "#ef4444"
	case RatingE:
		return "#f97316"
	case RatingI:
		return "#eab308"
	case RatingO:
		return "#22c55e"
	case RatingU:
		return "#94a3b8"
	}
	return "#6b7280"
}

// ParseRating converts s into a Rating. Surrounding space and lower case
// are accepted; anything outside the scale is an *InvalidRatingError with
// Index -1.
func ParseRating(s string) (Rating, error) {
	r := Rating(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", &InvalidRatingError{Index: -1, Rating: Rating(s)}
	}
	return r, nil
}

func (r Rating) String() string { return string(r) }
