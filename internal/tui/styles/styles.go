// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Defines the palette, panels and text styles used across components

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Core palette
	Primary   = lipgloss.Color("#0EA5E9") // Sky blue
	Secondary = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Accent    = lipgloss.Color("#22D3EE") // Cyan for section titles
	Surface   = lipgloss.Color("#374151") // Empty bar track

	// Loss component colors, in breakdown order
	LossColors = []lipgloss.Color{
		lipgloss.Color("#3B82F6"), // vertical
		lipgloss.Color("#22D3EE"), // static friction
		lipgloss.Color("#8B5CF6"), // flow friction
		lipgloss.Color("#F59E0B"), // bends
		lipgloss.Color("#10B981"), // pressure
	}

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	SectionTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	HeadlineStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Status indicators
	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	ErrorPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Danger).
			Padding(1, 2)

	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)
)
