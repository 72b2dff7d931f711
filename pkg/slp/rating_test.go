package slp

import (
	"errors"
	"testing"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		in      string
		want    Rating
		wantErr bool
	}{
		{"A", RatingA, false},
		{"e", RatingE, false},
		{" i ", RatingI, false},
		{"X", RatingX, false},
		{"Z", "", true},
		{"", "", true},
		{"AA", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRating(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRating(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRating(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if tt.wantErr {
			var ire *InvalidRatingError
			if !errors.As(err, &ire) || ire.Index != -1 {
				t.Errorf("ParseRating(%q) error = %#v, want *InvalidRatingError with Index -1", tt.in, err)
			}
		}
	}
}

func TestRatingsStrictlyDescending(t *testing.T) {
	prev, _ := Ratings[0].Weight()
	for _, r := range Ratings[1:] {
		w, ok := r.Weight()
		if !ok {
			t.Fatalf("%s should be valid", r)
		}
		if w >= prev {
			t.Errorf("%s weight %d not below %d", r, w, prev)
		}
		prev = w
	}
}

func TestRatingLabelAndColor(t *testing.T) {
	for _, r := range Ratings {
		if r.Label() == "" {
			t.Errorf("%s has no label", r)
		}
		if r.Color() == "" {
			t.Errorf("%s has no color", r)
		}
	}
	if Rating("Q").Label() != "" {
		t.Error("unknown rating should have empty label")
	}
	if Rating("Q").Valid() {
		t.Error("unknown rating should be invalid")
	}
}

func TestInvalidRatingErrorMessage(t *testing.T) {
	err := &InvalidRatingError{Index: 2, FromID: "a", ToID: "b", Rating: "Z"}
	want := `adjacency 2 (a-b): invalid rating "Z" (want one of A, E, I, O, U, X)`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
