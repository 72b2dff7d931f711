package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxIDLength bounds department ids and codes accepted from files and requests.
const maxIDLength = 64

// ValidateID validates a department identifier.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters or whitespace
//   - Maximum length of 64 characters
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidStudy, "department id cannot be empty")
	}
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidStudy, "department id too long (max %d characters)", maxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidStudy, "department id %q contains whitespace or control characters", id)
		}
	}
	return nil
}

// ValidateArea validates an area figure in square metres.
func ValidateArea(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidStudy, "%s must be a finite number", field)
	}
	if v < 0 {
		return New(ErrCodeInvalidStudy, "%s cannot be negative (got %g)", field, v)
	}
	return nil
}

// ValidatePath validates a user-supplied file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateChartName validates the name of a chart requested over HTTP.
// It accepts simple lower-case names only (letters and dashes).
func ValidateChartName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidChart, "chart name cannot be empty")
	}
	if strings.Trim(name, "abcdefghijklmnopqrstuvwxyz-") != "" {
		return New(ErrCodeInvalidChart, "invalid chart name %q", name)
	}
	return nil
}
