// ABOUTME: Pump catalog records and the head range variant
// ABOUTME: Resolves scalar or bracketed head values into a minimum head at load time

package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// HeadKind tags how a catalog head value was written.
type HeadKind int

const (
	HeadScalar HeadKind = iota // "40"
	HeadRange                  // "[30, 45]"
)

// Head is the parsed "Head m" column of a catalog row.
type Head struct {
	Kind HeadKind
	Min  float64
	Max  float64
}

// Scalar returns a single-value head.
func Scalar(v float64) Head {
	return Head{Kind: HeadScalar, Min: v, Max: v}
}

// Range returns a min/max head range.
func Range(lo, hi float64) Head {
	return Head{Kind: HeadRange, Min: lo, Max: hi}
}

// MinHead is the head used for matching: the scalar value or the range minimum.
func (h Head) MinHead() float64 {
	return h.Min
}

// String renders the head the way the catalog wrote it.
func (h Head) String() string {
	if h.Kind == HeadRange {
		return fmt.Sprintf("[%s, %s]", formatNumber(h.Min), formatNumber(h.Max))
	}
	return formatNumber(h.Min)
}

// MarshalJSON encodes the head in its display form.
func (h Head) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// ParseHead parses a "Head m" cell. Values starting with '[' must be a
// two-element numeric list; anything else must be a plain number.
func ParseHead(raw string) (Head, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Head{}, fmt.Errorf("empty head value")
	}

	if !strings.HasPrefix(raw, "[") {
		v, err := parseHeadValue(raw)
		if err != nil {
			return Head{}, err
		}
		return Scalar(v), nil
	}

	if !gjson.Valid(raw) {
		return Head{}, fmt.Errorf("invalid head range")
	}
	parts := gjson.Parse(raw).Array()
	if len(parts) != 2 {
		return Head{}, fmt.Errorf("head range needs 2 values, got %d", len(parts))
	}
	for _, p := range parts {
		if p.Type != gjson.Number {
			return Head{}, fmt.Errorf("head range value %q is not a number", p.Raw)
		}
		if v := p.Float(); math.IsNaN(v) || math.IsInf(v, 0) {
			return Head{}, fmt.Errorf("head range value %q is out of range", p.Raw)
		}
	}
	return Range(parts[0].Float(), parts[1].Float()), nil
}

// PumpRecord is one row of the pump catalog.
type PumpRecord struct {
	Model        string  `json:"model"`
	Manufacturer string  `json:"manufacturer"`
	Horsepower   float64 `json:"horsepower"`
	Head         Head    `json:"head_range"`
	Suitability  string  `json:"suitability"`
	MinHeadM     float64 `json:"min_head_m"`
}

// Catalog is an immutable, loaded pump catalog.
type Catalog struct {
	records  []PumpRecord
	skipped  []*MalformedRecordError
	source   string
	loadedAt time.Time
}

// New builds a catalog from already-parsed records.
func New(source string, records []PumpRecord) *Catalog {
	return &Catalog{
		records:  slices.Clone(records),
		source:   source,
		loadedAt: clock.Now(),
	}
}

// Pumps returns a copy of the catalog rows in source order.
func (c *Catalog) Pumps() []PumpRecord {
	if c == nil {
		return nil
	}
	return slices.Clone(c.records)
}

// Len returns the number of loaded rows.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Empty reports whether no rows were loaded.
func (c *Catalog) Empty() bool {
	return c.Len() == 0
}

// Skipped returns the rows dropped during load.
func (c *Catalog) Skipped() []*MalformedRecordError {
	if c == nil {
		return nil
	}
	return slices.Clone(c.skipped)
}

// Source is the path the catalog was read from.
func (c *Catalog) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// LoadedAt is when the catalog was read.
func (c *Catalog) LoadedAt() time.Time {
	if c == nil {
		return time.Time{}
	}
	return c.loadedAt
}

// parseHeadValue accepts a plain decimal only. Commas are rejected so "30,45"
// is never read as 3045.
func parseHeadValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

// parseNumber tolerates thousands separators in horsepower and capacity cells.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
