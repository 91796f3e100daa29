// ABOUTME: Loads the pump catalog from CSV or XLSX files
// ABOUTME: Skips rows with unparseable head values and records them on the catalog

package catalog

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Catalog column headers.
const (
	ColumnModel        = "Model"
	ColumnManufacturer = "Manufacturer"
	ColumnHP           = "HP"
	ColumnHead         = "Head m"
	ColumnSuitability  = "Suitability"
)

// Load reads a pump catalog. Rows whose head value cannot be parsed are
// skipped, logged, and kept in Catalog.Skipped; the rest of the file loads.
func Load(path string) (*Catalog, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	cat, err := parseCatalog(rows)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	cat.source = path
	cat.loadedAt = clock.Now()

	for _, skipped := range cat.skipped {
		slog.Warn("Skipping malformed catalog row", "source", path, "row", skipped.Row, "error", skipped)
	}
	slog.Info("Pump catalog loaded", "source", path, "pumps", len(cat.records), "skipped", len(cat.skipped))

	return cat, nil
}

func parseCatalog(rows [][]string) (*Catalog, error) {
	cat := &Catalog{records: []PumpRecord{}}
	if len(rows) == 0 {
		return cat, nil
	}

	cols := indexColumns(rows[0])
	headIdx, ok := cols[normalizeHeader(ColumnHead)]
	if !ok {
		return nil, fmt.Errorf("missing %q column", ColumnHead)
	}

	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rowNum := i + 2

		rawHead := cell(row, headIdx)
		head, err := ParseHead(rawHead)
		if err != nil {
			cat.skipped = append(cat.skipped, &MalformedRecordError{
				Row:   rowNum,
				Field: ColumnHead,
				Value: rawHead,
				Err:   err,
			})
			continue
		}

		rec := PumpRecord{
			Model:        lookup(row, cols, ColumnModel),
			Manufacturer: lookup(row, cols, ColumnManufacturer),
			Head:         head,
			Suitability:  lookup(row, cols, ColumnSuitability),
			MinHeadM:     head.MinHead(),
		}

		// HP is display-only, a bad value does not drop the pump
		if rawHP := lookup(row, cols, ColumnHP); rawHP != "" {
			hp, err := parseNumber(rawHP)
			if err != nil {
				slog.Warn("Unreadable horsepower, showing as 0", "row", rowNum, "value", rawHP)
			}
			rec.Horsepower = hp
		}

		cat.records = append(cat.records, rec)
	}

	return cat, nil
}

// readRows returns every row of the first sheet (XLSX) or the file (CSV).
func readRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	case ".csv", ".txt":
		return readCSV(path)
	default:
		return nil, fmt.Errorf("unsupported file format %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, unavailable(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, unavailable(path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheet, path, err)
	}
	return rows, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := cols[key]; !dup {
			cols[key] = i
		}
	}
	return cols
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}

func lookup(row []string, cols map[string]int, column string) string {
	idx, ok := cols[normalizeHeader(column)]
	if !ok {
		return ""
	}
	return cell(row, idx)
}

// cell tolerates short rows; excelize drops trailing empty cells.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
