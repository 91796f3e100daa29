// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state and routes keyboard input to child components

package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"

	"github.com/markalston/pump-head/internal/catalog"
	"github.com/markalston/pump-head/internal/hydraulics"
	"github.com/markalston/pump-head/internal/sizing"
	"github.com/markalston/pump-head/internal/tui/form"
	"github.com/markalston/pump-head/internal/tui/icons"
	"github.com/markalston/pump-head/internal/tui/results"
	"github.com/markalston/pump-head/internal/tui/styles"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenForm
	ScreenCalculating
	ScreenResults
	ScreenError
)

// Minimum frame width before the header and footer stop shrinking
const minTerminalWidth = 80

// sourcesLoadedMsg is sent once the capacities and the catalog are read
type sourcesLoadedMsg struct {
	capacities []float64
	capErr     error
	catalog    *catalog.Catalog
	catErr     error
}

// calculatedMsg is sent when a sizing run completes
type calculatedMsg struct {
	report *sizing.Report
	err    error
}

// catalogReloadedMsg is sent when an explicit reload completes
type catalogReloadedMsg struct {
	catalog *catalog.Catalog
	err     error
}

// Options wires the TUI to its data sources
type Options struct {
	Sizer          *sizing.Sizer
	Store          *catalog.Store
	CapacitiesPath string
	BarScale       float64
	Clock          clockwork.Clock // nil uses the real clock
}

// App is the root model for the TUI
type App struct {
	opts   Options
	screen Screen
	width  int
	height int
	err    error

	capacities []float64
	catalog    *catalog.Catalog
	catalogErr error
	lastUpdate time.Time
	lastInput  *hydraulics.CalculationInput
	status     string

	spinner     spinner.Model
	formScreen  *form.Form
	resultsView *results.Results
}

// New creates a new TUI application
func New(opts Options) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	return &App{
		opts:    opts,
		screen:  ScreenLoading,
		spinner: s,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadSources())
}

// Screen returns the active screen
func (a *App) Screen() Screen {
	return a.screen
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.resultsView != nil {
			a.resultsView.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.formScreen != nil {
			a.formScreen.SetWidth(a.contentWidth())
			_, cmd := a.formScreen.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.screen {
		case ScreenForm:
			return a.updateForm(msg)
		case ScreenResults:
			return a.updateResults(msg)
		case ScreenError:
			return a.updateError(msg)
		default:
			if msg.String() == "q" {
				return a, tea.Quit
			}
		}
		return a, nil

	case spinner.TickMsg:
		if a.screen != ScreenLoading && a.screen != ScreenCalculating {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case sourcesLoadedMsg:
		return a.handleSourcesLoaded(msg)

	case form.SubmittedMsg:
		in := msg.Input
		a.lastInput = &in
		a.screen = ScreenCalculating
		a.status = ""
		return a, tea.Batch(a.spinner.Tick, a.calculate(in))

	case form.CancelledMsg:
		if a.resultsView != nil {
			a.screen = ScreenResults
			return a, nil
		}
		return a, tea.Quit

	case calculatedMsg:
		return a.handleCalculated(msg)

	case catalogReloadedMsg:
		return a.handleCatalogReloaded(msg)
	}

	// Non-key messages (cursor blink, huh internals) belong to the form
	if a.screen == ScreenForm && a.formScreen != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.formScreen == nil {
		return a, nil
	}
	_, cmd := a.formScreen.Update(msg)
	return a, cmd
}

func (a *App) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "n":
		return a, a.showForm()
	case "r":
		a.status = "Reloading pump catalog..."
		return a, a.reloadCatalog()
	case "d":
		if a.resultsView != nil {
			a.resultsView.ToggleDetails()
		}
		return a, nil
	}

	if a.resultsView != nil {
		_, cmd := a.resultsView.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) updateError(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "r":
		a.err = nil
		a.screen = ScreenLoading
		return a, tea.Batch(a.spinner.Tick, a.loadSources())
	case "n", "esc":
		if len(a.capacities) > 0 {
			a.err = nil
			return a, a.showForm()
		}
	}
	return a, nil
}

func (a *App) handleSourcesLoaded(msg sourcesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.capErr != nil {
		a.err = msg.capErr
		a.screen = ScreenError
		return a, nil
	}
	a.capacities = msg.capacities
	a.setCatalog(msg.catalog, msg.catErr)
	return a, a.showForm()
}

func (a *App) handleCalculated(msg calculatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.err = msg.err
		a.screen = ScreenError
		return a, nil
	}

	if a.resultsView != nil {
		a.resultsView.SetReport(msg.report)
	} else {
		a.resultsView = results.New(msg.report, a.contentWidth(), a.contentHeight(), a.opts.BarScale)
	}
	a.catalogErr = msg.report.CatalogErr()
	a.screen = ScreenResults
	return a, nil
}

func (a *App) handleCatalogReloaded(msg catalogReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.status = "Catalog reload failed: " + msg.err.Error()
		return a, nil
	}
	a.setCatalog(msg.catalog, nil)
	a.status = fmt.Sprintf("Catalog reloaded: %d pumps", msg.catalog.Len())

	if a.screen == ScreenResults && a.lastInput != nil {
		return a, a.calculate(*a.lastInput)
	}
	return a, nil
}

func (a *App) setCatalog(cat *catalog.Catalog, err error) {
	a.catalogErr = err
	if cat != nil {
		a.catalog = cat
		a.lastUpdate = cat.LoadedAt()
	}
}

// showForm transitions to the input form, keeping the last values
func (a *App) showForm() tea.Cmd {
	a.formScreen = form.New(a.capacities, a.lastInput)
	a.formScreen.SetWidth(a.contentWidth())
	a.screen = ScreenForm
	return a.formScreen.Init()
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenLoading:
		content = a.viewWaiting("Loading pump catalog and STP capacities...")
	case ScreenForm:
		content = a.viewForm()
	case ScreenCalculating:
		content = a.viewWaiting("Calculating pump head...")
	case ScreenResults:
		content = a.viewResults()
	case ScreenError:
		content = a.viewError()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewWaiting(label string) string {
	return "\n " + a.spinner.View() + " " + label + "\n"
}

func (a *App) viewForm() string {
	if a.formScreen == nil {
		return ""
	}
	var sb strings.Builder
	if a.catalogErr != nil {
		sb.WriteString(styles.StatusWarning.Render(icons.Warning.String() + " Pump data not loaded: " + a.catalogErr.Error()))
		sb.WriteString("\n\n")
	}
	sb.WriteString(a.formScreen.View())
	return sb.String()
}

func (a *App) viewResults() string {
	if a.resultsView == nil {
		return ""
	}
	content := a.resultsView.View()
	if a.status != "" {
		content += "\n" + styles.Help.Render(a.status)
	}
	return content
}

func (a *App) viewError() string {
	var sb strings.Builder
	sb.WriteString(styles.StatusCritical.Render(icons.Critical.String() + " Error"))
	sb.WriteString("\n\n")

	var verr *hydraulics.ValidationError
	switch {
	case errors.As(a.err, &verr):
		sb.WriteString("Please enter valid numeric values:\n")
		for _, f := range verr.Fields {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", f.Field, f.Message))
		}
	case errors.Is(a.err, catalog.ErrDataUnavailable):
		sb.WriteString(fmt.Sprintf("'%s' could not be read. Please generate the file first.\n", filepath.Base(a.opts.CapacitiesPath)))
		sb.WriteString(styles.Subtitle.Render(a.err.Error()))
	case a.err != nil:
		sb.WriteString(a.err.Error())
	}

	return styles.ErrorPanel.Width(max(a.contentWidth()-4, 40)).Render(strings.TrimRight(sb.String(), "\n"))
}

// contentWidth is the usable width inside the frame
func (a *App) contentWidth() int {
	return max(a.width-1, 40)
}

// contentHeight is the height left for content: header, footer and the
// status line take four lines.
func (a *App) contentHeight() int {
	return max(a.height-4, 5)
}

// frameWidth stays one column short of the terminal to avoid wrapping,
// and guards against zero/small width before WindowSizeMsg is received
func (a *App) frameWidth() int {
	return max(a.width-1, minTerminalWidth)
}

// renderHeader creates the header bar with app branding and catalog context
func (a *App) renderHeader() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("Pump Head Calculator"))

	rightText := ""
	if a.catalog != nil {
		rightText = contextStyle.Render(fmt.Sprintf("%s %s (%d pumps)",
			icons.Catalog.String(), filepath.Base(a.catalog.Source()), a.catalog.Len())) + " "
	}

	fillWidth := max(width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText), 0)
	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"
	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var shortcuts []string
	switch a.screen {
	case ScreenLoading, ScreenCalculating:
		shortcuts = []string{"q Quit"}
	case ScreenForm:
		shortcuts = []string{"Tab Next", "Enter Confirm", "Esc Cancel"}
	case ScreenResults:
		details := "Details"
		if a.resultsView != nil && a.resultsView.Expanded() {
			details = "Hide details"
		}
		shortcuts = []string{"n New", "r Reload", "d " + details, "↑↓ Scroll", "q Quit"}
	case ScreenError:
		shortcuts = []string{"r Retry", "n Back", "q Quit"}
	}

	var styled []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styled = append(styled, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styled = append(styled, s)
		}
	}

	leftText := " " + strings.Join(styled, "  ")

	rightText := ""
	if !a.lastUpdate.IsZero() && a.screen == ScreenResults {
		rightText = statusStyle.Render("Catalog loaded "+a.formatTimeSince(a.lastUpdate)) + " "
	}

	fillWidth := max(width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText), 0)
	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"
	return borderStyle.Render(footer)
}

// formatTimeSince formats a duration since the given time in human-readable form
func (a *App) formatTimeSince(t time.Time) string {
	d := a.opts.Clock.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh ago", int(d.Hours()))
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder
	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())
	return sb.String()
}

// loadSources reads the capacity list and the pump catalog
func (a *App) loadSources() tea.Cmd {
	return func() tea.Msg {
		msg := sourcesLoadedMsg{}
		msg.capacities, msg.capErr = catalog.LoadCapacities(a.opts.CapacitiesPath)
		if msg.capErr == nil && len(msg.capacities) == 0 {
			msg.capErr = fmt.Errorf("%w: no capacity values in %s", catalog.ErrDataUnavailable, a.opts.CapacitiesPath)
		}
		msg.catalog, msg.catErr = a.opts.Store.Get(context.Background())
		return msg
	}
}

// calculate runs a sizing calculation off the update loop
func (a *App) calculate(in hydraulics.CalculationInput) tea.Cmd {
	return func() tea.Msg {
		report, err := a.opts.Sizer.Size(context.Background(), in)
		return calculatedMsg{report: report, err: err}
	}
}

// reloadCatalog re-reads the catalog file
func (a *App) reloadCatalog() tea.Cmd {
	return func() tea.Msg {
		cat, err := a.opts.Store.Reload(context.Background())
		return catalogReloadedMsg{catalog: cat, err: err}
	}
}

// Run starts the TUI
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(
		New(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
