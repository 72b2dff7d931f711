package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/lacima/plantlayout/pkg/errors"
	"github.com/lacima/plantlayout/pkg/slp"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Fallback string `json:"fallback,omitempty"`

	// Set for INVALID_RATING.
	Index  *int   `json:"index,omitempty"`
	FromID string `json:"fromId,omitempty"`
	ToID   string `json:"toId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch {
	case code == errors.ErrCodeInvalidRating:
		return http.StatusUnprocessableEntity
	case strings.HasPrefix(string(code), "INVALID_"):
		return http.StatusBadRequest
	case code == errors.ErrCodeNotFound, code == errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case code == errors.ErrCodeAdvisorFailed:
		return http.StatusBadGateway
	case code == errors.ErrCodeAdvisorUnavailable:
		return http.StatusServiceUnavailable
	case code == errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

// writeError writes err as JSON. Uncoded errors are logged and reported as
// INTERNAL_ERROR without their text.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	body := errorBody{Code: string(code), Message: errors.UserMessage(err)}

	var rerr *slp.InvalidRatingError
	if stderrors.As(err, &rerr) {
		body.Message = rerr.Error()
		if rerr.Index >= 0 {
			idx := rerr.Index
			body.Index = &idx
			body.FromID, body.ToID = rerr.FromID, rerr.ToID
		}
	}

	if code == "" {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
		code = errors.ErrCodeInternal
		body = errorBody{Code: string(code), Message: "internal error"}
	}
	writeJSON(w, statusFor(code), body)
}
