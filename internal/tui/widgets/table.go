// ABOUTME: Pump suggestion table rendered with lipgloss/table
// ABOUTME: Columns mirror the catalog: model, manufacturer, HP, head and suitability

package widgets

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/markalston/pump-head/internal/catalog"
)

// PumpTableHeaders are the column titles of the pump table.
var PumpTableHeaders = []string{"Model", "Manufacturer", "HP", "Head (m)", "Suitability"}

// PumpRows converts pump records into table rows.
func PumpRows(pumps []catalog.PumpRecord) [][]string {
	rows := make([][]string, 0, len(pumps))
	for _, p := range pumps {
		rows = append(rows, []string{
			p.Model,
			p.Manufacturer,
			strconv.FormatFloat(p.Horsepower, 'f', -1, 64),
			p.Head.String(),
			p.Suitability,
		})
	}
	return rows
}

// PumpTable renders the pumps as a bordered table in catalog order.
func PumpTable(pumps []catalog.PumpRecord, borderColor lipgloss.Color) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		Headers(PumpTableHeaders...).
		Rows(PumpRows(pumps)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.Render()
}
