// ABOUTME: Per-component breakdown of a head calculation
// ABOUTME: Produces labeled loss components and a step-by-step derivation

package hydraulics

import "fmt"

// LossComponent is one contributor to the total head.
type LossComponent struct {
	Label  string  `json:"label"`
	Meters float64 `json:"meters"`
}

// Components returns the head contributors in display order.
func Components(in CalculationInput, res CalculationResult) []LossComponent {
	return []LossComponent{
		{Label: "Vertical Height", Meters: in.VerticalHeightM},
		{Label: "Static Friction Loss", Meters: res.StaticFrictionLossM},
		{Label: "Flow-based Friction Loss", Meters: res.FlowFrictionLossM},
		{Label: "Bends/Fittings Loss", Meters: in.BendsFittingsLossM},
		{Label: "Pressure Head", Meters: res.PressureHeadM},
	}
}

// Step is one line of the textual derivation.
type Step struct {
	Label   string `json:"label"`
	Formula string `json:"formula,omitempty"`
	Result  string `json:"result"`
}

func (s Step) String() string {
	if s.Formula == "" {
		return fmt.Sprintf("%s = %s", s.Label, s.Result)
	}
	return fmt.Sprintf("%s = %s = %s", s.Label, s.Formula, s.Result)
}

// Steps returns the derivation of a result, every value to two decimals.
func Steps(in CalculationInput, res CalculationResult, c Coefficients) []Step {
	return []Step{
		{
			Label:  "STP Capacity",
			Result: fmt.Sprintf("%.2f KLD", in.STPCapacityKLD),
		},
		{
			Label:   "Flow Rate",
			Formula: fmt.Sprintf("(%.2f × 1000) / (24 × 60 × 60)", in.STPCapacityKLD),
			Result:  fmt.Sprintf("%.2f LPS", res.FlowRateLPS),
		},
		{
			Label:   "Flow Friction Loss",
			Formula: fmt.Sprintf("%g × Flow²", c.FlowFrictionCoeff),
			Result:  fmt.Sprintf("%.2f m", res.FlowFrictionLossM),
		},
		{
			Label: "Static Friction Loss",
			Formula: fmt.Sprintf("(%.2f + %.2f) × %g × %g",
				in.VerticalHeightM, in.HorizontalDistanceM, c.PipeFrictionPerM, c.PipeFrictionFactor),
			Result: fmt.Sprintf("%.2f m", res.StaticFrictionLossM),
		},
		{
			Label:  "Bends/Fittings Loss",
			Result: fmt.Sprintf("%.2f m", in.BendsFittingsLossM),
		},
		{
			Label:   "Pressure Head",
			Formula: fmt.Sprintf("%.2f Kg/cm²", in.RequiredPressureKgCm2),
			Result:  fmt.Sprintf("%.2f m", res.PressureHeadM),
		},
		{
			Label:  "Total Head (unrounded)",
			Result: fmt.Sprintf("%.2f m", res.TotalHeadUnroundedM),
		},
		{
			Label:  "Rounded Total Head",
			Result: fmt.Sprintf("%d m", res.TotalHeadM),
		},
	}
}
