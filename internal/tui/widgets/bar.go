// ABOUTME: Horizontal bars showing each loss component's share of the total head
// ABOUTME: One block per scale metres, with aligned labels and metre values

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/pump-head/internal/hydraulics"
)

// DefaultBarScale is the metres represented by one block.
const DefaultBarScale = 2.0

// MaxBlocks caps any single bar regardless of scale.
const MaxBlocks = 200

// LossBarConfig holds configuration for loss bars
type LossBarConfig struct {
	Scale    float64 // metres per block
	MaxWidth int     // widest bar in blocks, 0 for no limit
	Colors   []lipgloss.Color
}

// BlockCount returns the number of blocks drawn for a value, at most MaxBlocks.
func BlockCount(meters, scale float64) int {
	if scale <= 0 {
		scale = DefaultBarScale
	}
	blocks := meters / scale
	switch {
	case !(blocks >= 1):
		return 0
	case blocks >= MaxBlocks:
		return MaxBlocks
	}
	return int(blocks)
}

// effectiveScale widens the scale so the largest component fits MaxWidth,
// keeping every bar proportional.
func effectiveScale(components []hydraulics.LossComponent, config LossBarConfig) float64 {
	scale := config.Scale
	if scale <= 0 {
		scale = DefaultBarScale
	}
	if config.MaxWidth <= 0 {
		return scale
	}
	var largest float64
	for _, c := range components {
		largest = max(largest, c.Meters)
	}
	if need := largest / float64(config.MaxWidth); need > scale {
		return need
	}
	return scale
}

// LossBar renders a single bar with its metre value, e.g. "█████ (10.00 m)".
func LossBar(meters, scale float64, color lipgloss.Color) string {
	bar := strings.Repeat("█", BlockCount(meters, scale))
	if color != "" {
		bar = lipgloss.NewStyle().Foreground(color).Render(bar)
	}
	return fmt.Sprintf("%s (%.2f m)", bar, meters)
}

// LossBars renders one labeled bar per component, labels padded to align.
func LossBars(components []hydraulics.LossComponent, config LossBarConfig) string {
	if len(components) == 0 {
		return ""
	}

	labelWidth := 0
	for _, c := range components {
		labelWidth = max(labelWidth, lipgloss.Width(c.Label))
	}

	scale := effectiveScale(components, config)
	lines := make([]string, 0, len(components))
	for i, c := range components {
		var color lipgloss.Color
		if len(config.Colors) > 0 {
			color = config.Colors[i%len(config.Colors)]
		}
		lines = append(lines, fmt.Sprintf("%-*s : %s", labelWidth, c.Label, LossBar(c.Meters, scale, color)))
	}
	return strings.Join(lines, "\n")
}
