// ABOUTME: Matches catalog pumps against a required total head
// ABOUTME: Stable threshold filter; empty results are informational, never errors

package matcher

import (
	"log/slog"

	"github.com/markalston/pump-head/internal/catalog"
)

// Status summarises a match outcome.
type Status string

const (
	StatusMatched      Status = "matched"
	StatusNoMatch      Status = "no_match"
	StatusEmptyCatalog Status = "empty_catalog"
)

// Result is the outcome of matching a catalog against a total head.
type Result struct {
	TotalHeadM int                  `json:"total_head_m"`
	Pumps      []catalog.PumpRecord `json:"pumps"`
	Status     Status               `json:"status"`
}

// Message returns the user-facing text for non-matched outcomes.
func (r Result) Message() string {
	switch r.Status {
	case StatusEmptyCatalog:
		return "Pump catalog is empty; no pumps can be suggested."
	case StatusNoMatch:
		return "No suitable pumps found for the calculated total head."
	default:
		return ""
	}
}

// Match returns the pumps whose minimum head is at least totalHeadM, in
// catalog order. A nil catalog is treated as empty.
func Match(cat *catalog.Catalog, totalHeadM int) Result {
	res := Result{
		TotalHeadM: totalHeadM,
		Pumps:      []catalog.PumpRecord{},
	}

	if cat.Empty() {
		slog.Warn("Matching against an empty pump catalog", "total_head_m", totalHeadM)
		res.Status = StatusEmptyCatalog
		return res
	}

	required := float64(totalHeadM)
	for _, p := range cat.Pumps() {
		if p.MinHeadM >= required {
			res.Pumps = append(res.Pumps, p)
		}
	}

	if len(res.Pumps) == 0 {
		res.Status = StatusNoMatch
	} else {
		res.Status = StatusMatched
	}

	slog.Debug("Pump match complete",
		"total_head_m", totalHeadM,
		"catalog_size", cat.Len(),
		"matched", len(res.Pumps),
	)
	return res
}
