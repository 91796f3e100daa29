// ABOUTME: Results view showing required head, pump suggestions and loss breakdown
// ABOUTME: Scrollable viewport with an expandable step-by-step derivation

package results

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/pump-head/internal/sizing"
	"github.com/markalston/pump-head/internal/tui/icons"
	"github.com/markalston/pump-head/internal/tui/styles"
	"github.com/markalston/pump-head/internal/tui/widgets"
)

// Results displays a sizing report
type Results struct {
	report   *sizing.Report
	width    int
	height   int
	barScale float64
	expanded bool
	viewport viewport.Model
}

// New creates a results view for the report
func New(report *sizing.Report, width, height int, barScale float64) *Results {
	r := &Results{
		report:   report,
		width:    width,
		height:   height,
		barScale: barScale,
		viewport: viewport.New(max(width, 20), max(height, 5)),
	}
	r.refresh()
	return r
}

// SetReport replaces the displayed report, e.g. after a catalog reload
func (r *Results) SetReport(report *sizing.Report) {
	r.report = report
	r.refresh()
}

// Report returns the displayed report
func (r *Results) Report() *sizing.Report {
	return r.report
}

// ToggleDetails shows or hides the calculation derivation
func (r *Results) ToggleDetails() {
	r.expanded = !r.expanded
	r.refresh()
}

// Expanded reports whether the derivation is shown
func (r *Results) Expanded() bool {
	return r.expanded
}

// SetSize resizes the scrollable area
func (r *Results) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.viewport.Width = max(width, 20)
	r.viewport.Height = max(height, 5)
	r.refresh()
}

func (r *Results) refresh() {
	r.viewport.SetContent(r.Content())
}

// Update forwards scrolling keys to the viewport
func (r *Results) Update(msg tea.Msg) (*Results, tea.Cmd) {
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return r, cmd
}

// View renders the visible part of the results
func (r *Results) View() string {
	return r.viewport.View()
}

// Content renders the full results, independent of scrolling
func (r *Results) Content() string {
	if r.report == nil {
		return "No results"
	}

	var sb strings.Builder
	sb.WriteString(r.renderHeadline())
	sb.WriteString("\n\n")
	sb.WriteString(r.renderPumps())
	sb.WriteString("\n\n")
	sb.WriteString(r.renderBreakdown())

	if r.expanded {
		sb.WriteString("\n\n")
		sb.WriteString(r.renderSteps())
	}
	return sb.String()
}

func (r *Results) renderHeadline() string {
	res := r.report.Result
	headline := fmt.Sprintf("%s Total Head Required: %s",
		icons.Pump.String(),
		styles.HeadlineStyle.Render(fmt.Sprintf("%d m", res.TotalHeadM)))

	flow := styles.Subtitle.Render(fmt.Sprintf("%s Flow Rate (from STP): %.2f LPS   %s Pressure Head: %.2f m",
		icons.Flow.String(), res.FlowRateLPS, icons.Pressure.String(), res.PressureHeadM))

	return headline + "\n" + flow
}

func (r *Results) renderPumps() string {
	var sb strings.Builder
	match := r.report.Match

	sb.WriteString(styles.SectionTitle.Render("Recommended Pumps"))
	sb.WriteString(" ")
	sb.WriteString(widgets.MatchBadge(match.Status, len(match.Pumps)))
	sb.WriteString("\n")

	if r.report.CatalogErr() == nil && len(match.Pumps) > 0 {
		sb.WriteString(widgets.PumpTable(match.Pumps, styles.Muted))
		sb.WriteString("\n")
	}

	for _, w := range r.report.Warnings() {
		level := widgets.StatusWarning
		if r.report.CatalogErr() != nil {
			level = widgets.StatusCritical
		}
		sb.WriteString(widgets.StatusText(w, level))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *Results) renderBreakdown() string {
	var sb strings.Builder
	sb.WriteString(styles.SectionTitle.Render("Loss Components"))
	sb.WriteString("\n")

	// label + " : " + "(000.00 m)" leaves the rest for blocks
	barWidth := max(r.width-50, 10)
	sb.WriteString(widgets.LossBars(r.report.Components, widgets.LossBarConfig{
		Scale:    r.barScale,
		MaxWidth: barWidth,
		Colors:   styles.LossColors,
	}))
	return sb.String()
}

func (r *Results) renderSteps() string {
	var sb strings.Builder
	sb.WriteString(styles.SectionTitle.Render("Calculation Steps"))
	sb.WriteString("\n")

	lines := make([]string, 0, len(r.report.Steps))
	for _, s := range r.report.Steps {
		lines = append(lines, s.String())
	}
	if r.report.Input.PipeSize != "" {
		lines = append(lines, "Pipe Size = "+r.report.Input.PipeSize)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Muted).
		Padding(0, 1)
	sb.WriteString(box.Render(strings.Join(lines, "\n")))
	return sb.String()
}
