// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Renders colored inline badges for pump match outcomes

package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/pump-head/internal/matcher"
	"github.com/markalston/pump-head/internal/tui/icons"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusNeutral
)

var (
	BadgeOKBg      = lipgloss.Color("#10B981")
	BadgeOKFg      = lipgloss.Color("#FFFFFF")
	BadgeWarnBg    = lipgloss.Color("#F59E0B")
	BadgeWarnFg    = lipgloss.Color("#000000")
	BadgeCritBg    = lipgloss.Color("#EF4444")
	BadgeCritFg    = lipgloss.Color("#FFFFFF")
	BadgeNeutralBg = lipgloss.Color("#6B7280")
	BadgeNeutralFg = lipgloss.Color("#FFFFFF")
)

func levelColors(level StatusLevel) (bg, fg lipgloss.Color) {
	switch level {
	case StatusOK:
		return BadgeOKBg, BadgeOKFg
	case StatusWarning:
		return BadgeWarnBg, BadgeWarnFg
	case StatusCritical:
		return BadgeCritBg, BadgeCritFg
	default:
		return BadgeNeutralBg, BadgeNeutralFg
	}
}

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	bg, fg := levelColors(level)
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true).
		Render(text)
}

// MatchLevel maps a match status to a badge level.
func MatchLevel(status matcher.Status) StatusLevel {
	switch status {
	case matcher.StatusMatched:
		return StatusOK
	case matcher.StatusNoMatch:
		return StatusWarning
	case matcher.StatusEmptyCatalog:
		return StatusCritical
	default:
		return StatusNeutral
	}
}

// MatchBadge renders the badge shown next to the pump suggestions.
func MatchBadge(status matcher.Status, count int) string {
	text := "UNAVAILABLE"
	switch status {
	case matcher.StatusMatched:
		noun := "pumps"
		if count == 1 {
			noun = "pump"
		}
		text = fmt.Sprintf("%d %s", count, noun)
	case matcher.StatusNoMatch:
		text = "NO MATCH"
	case matcher.StatusEmptyCatalog:
		text = "EMPTY CATALOG"
	}
	return Badge(text, MatchLevel(status))
}

// StatusIcon returns the appropriate icon for a status level
func StatusIcon(level StatusLevel) string {
	bg, _ := levelColors(level)
	style := lipgloss.NewStyle().Foreground(bg)
	switch level {
	case StatusOK:
		return style.Render(icons.CheckOK.String())
	case StatusWarning:
		return style.Render(icons.Warning.String())
	case StatusCritical:
		return style.Render(icons.Critical.String())
	default:
		return style.Render("•")
	}
}

// StatusText returns styled status text with icon
func StatusText(text string, level StatusLevel) string {
	bg, _ := levelColors(level)
	return fmt.Sprintf("%s %s", StatusIcon(level), lipgloss.NewStyle().Foreground(bg).Render(text))
}
