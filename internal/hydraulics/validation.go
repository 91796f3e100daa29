// ABOUTME: Input validation for head calculations
// ABOUTME: Rejects negative geometry, non-finite values and non-positive STP capacity

package hydraulics

import (
	"fmt"
	"math"
	"strings"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every invalid field of an input.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

// Validate checks a calculation input before it reaches Calculate.
func Validate(in CalculationInput) error {
	verr := &ValidationError{}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"vertical_height_m", in.VerticalHeightM},
		{"horizontal_distance_m", in.HorizontalDistanceM},
		{"bends_fittings_loss_m", in.BendsFittingsLossM},
		{"required_pressure_kg_cm2", in.RequiredPressureKgCm2},
	} {
		if !isFinite(f.value) {
			verr.add(f.name, "must be a finite number")
			continue
		}
		if f.value < 0 {
			verr.add(f.name, "must not be negative")
		}
	}

	switch {
	case !isFinite(in.STPCapacityKLD):
		verr.add("stp_capacity_kld", "must be a finite number")
	case in.STPCapacityKLD <= 0:
		verr.add("stp_capacity_kld", "must be greater than zero")
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// Validate ensures every coefficient is a positive finite number.
func (c Coefficients) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"pressure head factor", c.PressureHeadPerKgCm2},
		{"flow friction coefficient", c.FlowFrictionCoeff},
		{"pipe friction per metre", c.PipeFrictionPerM},
		{"pipe friction factor", c.PipeFrictionFactor},
	} {
		if !isFinite(f.value) || f.value <= 0 {
			return fmt.Errorf("%s must be a positive number, got %v", f.name, f.value)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
