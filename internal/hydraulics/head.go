// ABOUTME: Pump head calculator for building plumbing systems
// ABOUTME: Converts geometry, pressure and STP throughput into total required head

package hydraulics

import "math"

const secondsPerDay = 24 * 60 * 60

// Coefficients holds the empirical constants used by the head calculation.
type Coefficients struct {
	PressureHeadPerKgCm2 float64 `json:"pressure_head_per_kg_cm2"` // metres of head per kg/cm²
	FlowFrictionCoeff    float64 `json:"flow_friction_coeff"`      // applied to flow rate squared
	PipeFrictionPerM     float64 `json:"pipe_friction_per_m"`      // loss per metre of pipe run
	PipeFrictionFactor   float64 `json:"pipe_friction_factor"`     // derating applied to pipe loss
}

// DefaultCoefficients returns the coefficients used by the field worksheets.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		PressureHeadPerKgCm2: 10,
		FlowFrictionCoeff:    0.1,
		PipeFrictionPerM:     0.083,
		PipeFrictionFactor:   0.8,
	}
}

// CalculationInput is a single head calculation request.
type CalculationInput struct {
	VerticalHeightM       float64 `json:"vertical_height_m"`
	HorizontalDistanceM   float64 `json:"horizontal_distance_m"`
	BendsFittingsLossM    float64 `json:"bends_fittings_loss_m"`
	RequiredPressureKgCm2 float64 `json:"required_pressure_kg_cm2"`
	STPCapacityKLD        float64 `json:"stp_capacity_kld"`
	PipeSize              string  `json:"pipe_size,omitempty"` // reference only
}

// CalculationResult holds every intermediate value of a head calculation.
type CalculationResult struct {
	FlowRateLPS         float64 `json:"flow_rate_lps"`
	FlowFrictionLossM   float64 `json:"flow_friction_loss_m"`
	StaticFrictionLossM float64 `json:"static_friction_loss_m"`
	TotalFrictionLossM  float64 `json:"total_friction_loss_m"`
	PressureHeadM       float64 `json:"pressure_head_m"`
	TotalHeadUnroundedM float64 `json:"total_head_unrounded_m"`
	TotalHeadM          int     `json:"total_head_m"`
}

// Calculate computes the required pump head. It performs no validation;
// callers must run Validate first.
func Calculate(in CalculationInput, c Coefficients) CalculationResult {
	pressureHead := in.RequiredPressureKgCm2 * c.PressureHeadPerKgCm2

	flowRate := (in.STPCapacityKLD * 1000) / secondsPerDay
	flowFriction := c.FlowFrictionCoeff * flowRate * flowRate

	staticFriction := (in.VerticalHeightM + in.HorizontalDistanceM) * c.PipeFrictionPerM * c.PipeFrictionFactor
	totalFriction := staticFriction + flowFriction

	unrounded := in.VerticalHeightM + totalFriction + in.BendsFittingsLossM + pressureHead

	// Always round up: an undersized pump cannot reach the farthest outlet.
	return CalculationResult{
		FlowRateLPS:         flowRate,
		FlowFrictionLossM:   flowFriction,
		StaticFrictionLossM: staticFriction,
		TotalFrictionLossM:  totalFriction,
		PressureHeadM:       pressureHead,
		TotalHeadUnroundedM: unrounded,
		TotalHeadM:          ceilHead(unrounded),
	}
}

// ceilHead rounds up, saturating at math.MaxInt so a huge head never wraps
// negative.
func ceilHead(v float64) int {
	c := math.Ceil(v)
	if c >= math.MaxInt || math.IsNaN(c) {
		return math.MaxInt
	}
	return int(c)
}
