// ABOUTME: Pump sizing service tying validation, head calculation and matching together
// ABOUTME: Shared by the interactive TUI and the non-interactive calculate command

package sizing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/markalston/pump-head/internal/catalog"
	"github.com/markalston/pump-head/internal/hydraulics"
	"github.com/markalston/pump-head/internal/matcher"
)

// CatalogSource provides the loaded pump catalog.
type CatalogSource interface {
	Get(ctx context.Context) (*catalog.Catalog, error)
}

// Report is everything produced by one sizing run.
type Report struct {
	Input        hydraulics.CalculationInput  `json:"input"`
	Result       hydraulics.CalculationResult `json:"result"`
	Components   []hydraulics.LossComponent   `json:"components"`
	Steps        []hydraulics.Step            `json:"steps"`
	Match        matcher.Result               `json:"match"`
	SkippedRows  int                          `json:"skipped_rows,omitempty"`
	CatalogError string                       `json:"catalog_error,omitempty"`

	catalogErr error
}

// CatalogErr returns the error that prevented pump matching, if any.
func (r *Report) CatalogErr() error {
	return r.catalogErr
}

// Matched reports whether at least one pump was suggested.
func (r *Report) Matched() bool {
	return r.catalogErr == nil && r.Match.Status == matcher.StatusMatched
}

// Warnings returns the informational messages to surface with the report.
func (r *Report) Warnings() []string {
	var warnings []string
	if r.catalogErr != nil {
		return append(warnings, "Pump data not loaded: "+r.catalogErr.Error())
	}
	if msg := r.Match.Message(); msg != "" {
		warnings = append(warnings, msg)
	}
	if r.SkippedRows > 0 {
		warnings = append(warnings, fmt.Sprintf("%d catalog row(s) skipped due to unreadable head values.", r.SkippedRows))
	}
	return warnings
}

// Sizer runs pump sizing calculations against a catalog.
type Sizer struct {
	catalog      CatalogSource
	coefficients hydraulics.Coefficients
}

// New creates a sizer using the given catalog and friction coefficients.
func New(source CatalogSource, coefficients hydraulics.Coefficients) *Sizer {
	return &Sizer{
		catalog:      source,
		coefficients: coefficients,
	}
}

// Coefficients returns the coefficients used for calculations.
func (s *Sizer) Coefficients() hydraulics.Coefficients {
	return s.coefficients
}

// Size validates the input, computes the required head and matches pumps.
// Only invalid input is returned as an error; an unavailable catalog is
// reported on the Report so the head figure is still shown.
func (s *Sizer) Size(ctx context.Context, in hydraulics.CalculationInput) (*Report, error) {
	if err := hydraulics.Validate(in); err != nil {
		return nil, err
	}

	res := hydraulics.Calculate(in, s.coefficients)
	report := &Report{
		Input:      in,
		Result:     res,
		Components: hydraulics.Components(in, res),
		Steps:      hydraulics.Steps(in, res, s.coefficients),
	}

	cat, err := s.catalog.Get(ctx)
	if err != nil {
		slog.Error("Pump catalog unavailable", "error", err)
		report.catalogErr = err
		report.CatalogError = err.Error()
		report.Match = matcher.Result{TotalHeadM: res.TotalHeadM, Pumps: []catalog.PumpRecord{}}
		return report, nil
	}

	report.Match = matcher.Match(cat, res.TotalHeadM)
	report.SkippedRows = len(cat.Skipped())

	slog.Info("Pump head calculated",
		"total_head_m", res.TotalHeadM,
		"flow_rate_lps", res.FlowRateLPS,
		"match_status", report.Match.Status,
		"pumps", len(report.Match.Pumps),
	)
	return report, nil
}
