package slp

import (
	"fmt"

	"github.com/lacima/plantlayout/pkg/errors"
)

// InvalidRatingError reports an adjacency record whose rating is not on the
// scale. Index is the record's position in the adjacency slice, or -1 when
// the rating did not come from a record.
type InvalidRatingError struct {
	Index  int
	FromID string
	ToID   string
	Rating Rating
}

func (e *InvalidRatingError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid rating %q (want one of A, E, I, O, U, X)", string(e.Rating))
	}
	return fmt.Sprintf("adjacency %d (%s-%s): invalid rating %q (want one of A, E, I, O, U, X)",
		e.Index, e.FromID, e.ToID, string(e.Rating))
}

// Code returns the error code for this error type.
func (e *InvalidRatingError) Code() errors.Code {
	return errors.ErrCodeInvalidRating
}
