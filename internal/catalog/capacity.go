// ABOUTME: Loads STP capacity options for the capacity selector
// ABOUTME: Reads distinct values of the "STP Capacity (KLD)" column

package catalog

import (
	"fmt"
	"log/slog"
)

// ColumnCapacity is the capacity-options column header.
const ColumnCapacity = "STP Capacity (KLD)"

// LoadCapacities returns the distinct, non-empty capacities of the options
// file in file order. Non-numeric cells are skipped with a warning.
func LoadCapacities(path string) ([]float64, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("capacity file %s: no header row", path)
	}

	idx, ok := indexColumns(rows[0])[normalizeHeader(ColumnCapacity)]
	if !ok {
		return nil, fmt.Errorf("capacity file %s: missing %q column", path, ColumnCapacity)
	}

	seen := make(map[float64]bool)
	capacities := []float64{}
	for i, row := range rows[1:] {
		raw := cell(row, idx)
		if raw == "" {
			continue
		}
		v, err := parseNumber(raw)
		if err != nil {
			slog.Warn("Skipping unreadable capacity", "source", path, "row", i+2, "value", raw)
			continue
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		capacities = append(capacities, v)
	}

	slog.Info("Capacity options loaded", "source", path, "count", len(capacities))
	return capacities, nil
}
