// ABOUTME: Pump head input form as a bubbletea model
// ABOUTME: Collects building, loss and flow parameters in three huh steps

package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/pump-head/internal/hydraulics"
	"github.com/markalston/pump-head/internal/tui/icons"
	"github.com/markalston/pump-head/internal/tui/styles"
)

// SubmittedMsg is sent when the user triggers a calculation
type SubmittedMsg struct {
	Input hydraulics.CalculationInput
}

// CancelledMsg is sent when the form is abandoned with esc
type CancelledMsg struct{}

// Defaults pre-filled on first display.
var Defaults = hydraulics.CalculationInput{
	VerticalHeightM:       66,
	HorizontalDistanceM:   109,
	BendsFittingsLossM:    5,
	RequiredPressureKgCm2: 3.5,
	PipeSize:              `6" GI`,
}

var stepNames = []string{"Building", "Losses", "Flow"}

// Form collects a CalculationInput over three steps.
type Form struct {
	capacities []float64
	step       int
	width      int
	form       *huh.Form

	vertical   string
	horizontal string
	pipeSize   string
	bends      string
	pressure   string
	capacity   float64
	confirmed  bool
}

// New creates a form offering the given capacities. prev, when non-nil,
// seeds the fields with the last submitted values.
func New(capacities []float64, prev *hydraulics.CalculationInput) *Form {
	seed := Defaults
	if prev != nil {
		seed = *prev
	}

	f := &Form{
		capacities: capacities,
		step:       1,
		vertical:   formatValue(seed.VerticalHeightM),
		horizontal: formatValue(seed.HorizontalDistanceM),
		pipeSize:   seed.PipeSize,
		bends:      formatValue(seed.BendsFittingsLossM),
		pressure:   formatValue(seed.RequiredPressureKgCm2),
		capacity:   defaultCapacity(capacities, seed.STPCapacityKLD),
		confirmed:  true,
	}
	f.form = f.createStep1Form()
	return f
}

func defaultCapacity(capacities []float64, preferred float64) float64 {
	for _, c := range capacities {
		if c == preferred {
			return c
		}
	}
	if len(capacities) > 0 {
		return capacities[0]
	}
	return 0
}

func (f *Form) createStep1Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Vertical height (m)").
				Description("Height from the pump to the highest outlet").
				Placeholder("e.g., 66").
				Value(&f.vertical).
				Validate(validateNonNegative),
			huh.NewInput().
				Title("Horizontal distance (m)").
				Description("Length of the horizontal pipe run").
				Placeholder("e.g., 109").
				Value(&f.horizontal).
				Validate(validateNonNegative),
			huh.NewInput().
				Title("Pipe size").
				Description("Recorded for reference only").
				Placeholder(`e.g., 6" GI`).
				CharLimit(32).
				Value(&f.pipeSize),
		).Title("Step 1: Building").
			Description("Describe the delivery pipeline"),
	).WithTheme(createTheme())
}

func (f *Form) createStep2Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Bends/fittings loss (m)").
				Description("Estimated head lost in bends, valves and fittings").
				Placeholder("e.g., 5").
				Value(&f.bends).
				Validate(validateNonNegative),
			huh.NewInput().
				Title("Required pressure (kg/cm²)").
				Description("Residual pressure needed at the outlet").
				Placeholder("e.g., 3.5").
				Value(&f.pressure).
				Validate(validateNonNegative),
		).Title("Step 2: Losses").
			Description("Additional head the pump must overcome"),
	).WithTheme(createTheme())
}

func (f *Form) createStep3Form() *huh.Form {
	options := make([]huh.Option[float64], 0, len(f.capacities))
	for _, c := range f.capacities {
		options = append(options, huh.NewOption(formatValue(c)+" KLD", c))
	}
	f.confirmed = true

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[float64]().
				Title("STP capacity (KLD)").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(options...).
				Value(&f.capacity),
			huh.NewConfirm().
				Title("Calculate pump head & suggest pumps?").
				Affirmative("Calculate").
				Negative("Edit").
				Value(&f.confirmed),
		).Title("Step 3: Flow").
			Description("Treated water flow from the sewage treatment plant"),
	).WithTheme(createTheme())
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return f, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		return f.advanceStep()
	}
	return f, cmd
}

func (f *Form) advanceStep() (tea.Model, tea.Cmd) {
	switch f.step {
	case 1:
		f.step = 2
		f.form = f.createStep2Form()
		return f, f.form.Init()
	case 2:
		f.step = 3
		f.form = f.createStep3Form()
		return f, f.form.Init()
	case 3:
		if !f.confirmed {
			f.step = 1
			f.form = f.createStep1Form()
			return f, f.form.Init()
		}
		in, err := f.Input()
		if err != nil {
			// Validators make this unreachable from the keyboard.
			f.step = 1
			f.form = f.createStep1Form()
			return f, f.form.Init()
		}
		return f, func() tea.Msg { return SubmittedMsg{Input: in} }
	}
	return f, nil
}

// Input parses the current field values.
func (f *Form) Input() (hydraulics.CalculationInput, error) {
	var errs []error
	parse := func(name, raw string) float64 {
		v, err := parseValue(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return v
	}

	in := hydraulics.CalculationInput{
		VerticalHeightM:       parse("vertical height", f.vertical),
		HorizontalDistanceM:   parse("horizontal distance", f.horizontal),
		BendsFittingsLossM:    parse("bends/fittings loss", f.bends),
		RequiredPressureKgCm2: parse("required pressure", f.pressure),
		STPCapacityKLD:        f.capacity,
		PipeSize:              strings.TrimSpace(f.pipeSize),
	}
	return in, errors.Join(errs...)
}

// Step returns the current step number, starting at 1.
func (f *Form) Step() int {
	return f.step
}

// SetWidth sets the form width for proper rendering
func (f *Form) SetWidth(width int) {
	f.width = width
}

// View implements tea.Model
func (f *Form) View() string {
	var sb strings.Builder
	sb.WriteString(f.renderProgress())
	sb.WriteString("\n\n")
	sb.WriteString(f.form.View())
	return sb.String()
}

func (f *Form) renderProgress() string {
	width := max(f.width-1, 60)

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	var steps []string
	for i, name := range stepNames {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		switch {
		case stepNum < f.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		case stepNum == f.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		default:
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}
		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(name)))
	}
	stepsLine := strings.Join(steps, "    ")

	// "│  " + bar + " │"
	barWidth := width - 5
	filledWidth := (f.step * barWidth) / len(stepNames)
	filledBar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filledWidth))
	emptyBar := lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", barWidth-filledWidth))

	title := icons.Pump.String() + " Pump Head"
	topFill := max(0, width-5-lipgloss.Width(title))
	stepsPadding := max(0, width-4-lipgloss.Width(stepsLine))

	return borderStyle.Render(strings.Join([]string{
		"┌─ " + titleStyle.Render(title) + " " + strings.Repeat("─", topFill) + "┐",
		"│ " + stepsLine + strings.Repeat(" ", stepsPadding) + " │",
		"│  " + filledBar + emptyBar + " │",
		"└" + strings.Repeat("─", width-2) + "┘",
	}, "\n"))
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("must be a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("must be a finite number")
	}
	return v, nil
}

func validateNonNegative(s string) error {
	v, err := parseValue(s)
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
