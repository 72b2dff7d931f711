package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"numeric", "1", false},
		{"code-like", "D9", false},
		{"uuid", "6f1c2a9e-2f59-4a34-9a57-1c1b8b0b6c1d", false},

		{"empty", "", true},
		{"too long", strings.Repeat("x", 65), true},
		{"space", "D 1", true},
		{"tab", "D\t1", true},
		{"null byte", "D\x001", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidStudy) {
				t.Errorf("ValidateID(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateArea(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 115.5, false},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArea("needed_area", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateArea(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "study.toml", false},
		{"valid nested", "studies/lacima/study.json", false},
		{"absolute", "/srv/plant/study.yaml", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateChartName(t *testing.T) {
	for _, ok := range []string{"areas", "plan", "adjacency", "floor-plan"} {
		if err := ValidateChartName(ok); err != nil {
			t.Errorf("ValidateChartName(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "../etc", "Plan", "plan.svg", "a b"} {
		if err := ValidateChartName(bad); !Is(err, ErrCodeInvalidChart) {
			t.Errorf("ValidateChartName(%q) = %v, want INVALID_CHART", bad, err)
		}
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidRating,
		ErrCodeInvalidStudy,
		ErrCodeInvalidFormat,
		ErrCodeInvalidChart,
		ErrCodeInvalidPath,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeAdvisorUnavailable,
		ErrCodeAdvisorFailed,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
