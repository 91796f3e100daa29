// ABOUTME: Non-interactive pump head calculation command
// ABOUTME: Prints the required head, matching pumps and loss breakdown

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/markalston/pump-head/internal/catalog"
	"github.com/markalston/pump-head/internal/config"
	"github.com/markalston/pump-head/internal/hydraulics"
	"github.com/markalston/pump-head/internal/logger"
	"github.com/markalston/pump-head/internal/sizing"
	"github.com/markalston/pump-head/internal/tui/styles"
	"github.com/markalston/pump-head/internal/tui/widgets"
)

var (
	calcInput   hydraulics.CalculationInput
	showDetails bool
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate pump head and suggest pumps",
	Long: `Calculate the total pump head without the interactive TUI.

Exit codes:
  0 - At least one suitable pump found
  1 - No suitable pump, or the catalog is empty
  2 - Error (invalid input, unreadable catalog)

Example:
  pump-head calculate --vertical 66 --horizontal 109 --bends 5 --pressure 3.5 --capacity 100`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		logger.InitCLI(cfg.LogLevel, cfg.LogFormat)
		logConfig(cfg)

		exitCode := runCalculate(ctx, os.Stdout, cfg, calcInput)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(calculateCmd)
	calculateCmd.Flags().Float64Var(&calcInput.VerticalHeightM, "vertical", 66, "Vertical height in metres")
	calculateCmd.Flags().Float64Var(&calcInput.HorizontalDistanceM, "horizontal", 109, "Horizontal distance in metres")
	calculateCmd.Flags().Float64Var(&calcInput.BendsFittingsLossM, "bends", 5, "Bends/fittings loss in metres")
	calculateCmd.Flags().Float64Var(&calcInput.RequiredPressureKgCm2, "pressure", 3.5, "Required pressure in kg/cm²")
	calculateCmd.Flags().Float64Var(&calcInput.STPCapacityKLD, "capacity", 0, "STP capacity in KLD")
	calculateCmd.Flags().StringVar(&calcInput.PipeSize, "pipe-size", `6" GI`, "Pipe size (reference only)")
	calculateCmd.Flags().BoolVar(&showDetails, "details", false, "Include the step-by-step derivation")
	_ = calculateCmd.MarkFlagRequired("capacity")
}

// cliBarWidth is the widest loss bar printed by calculate, in blocks.
const cliBarWidth = 60

// runCalculate sizes a pump and returns the exit code
func runCalculate(ctx context.Context, w io.Writer, cfg *config.Config, in hydraulics.CalculationInput) int {
	sizer := sizing.New(catalog.NewStore(cfg.CatalogPath), cfg.Coefficients)

	report, err := sizer.Size(ctx, in)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		out, err := formatCalculateJSON(report)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		fmt.Fprintln(w, out)
	} else {
		fmt.Fprintln(w, formatCalculateHuman(report, cfg.BarScale, showDetails))
	}

	return calculateExitCode(report)
}

func calculateExitCode(report *sizing.Report) int {
	switch {
	case report.CatalogErr() != nil:
		return 2
	case report.Matched():
		return 0
	default:
		return 1
	}
}

// formatCalculateHuman formats a report for human readability
func formatCalculateHuman(report *sizing.Report, barScale float64, details bool) string {
	var sb strings.Builder
	res := report.Result

	fmt.Fprintf(&sb, "Total Head Required: %d m\n", res.TotalHeadM)
	fmt.Fprintf(&sb, "Flow Rate (from STP): %.2f LPS\n", res.FlowRateLPS)

	sb.WriteString("\nRecommended Pumps:\n")
	if report.CatalogErr() == nil && len(report.Match.Pumps) > 0 {
		sb.WriteString(widgets.PumpTable(report.Match.Pumps, styles.Muted))
		sb.WriteString("\n")
	}
	for _, warn := range report.Warnings() {
		fmt.Fprintf(&sb, "  ⚠ %s\n", warn)
	}

	sb.WriteString("\nLoss Components:\n")
	sb.WriteString(widgets.LossBars(report.Components, widgets.LossBarConfig{Scale: barScale, MaxWidth: cliBarWidth}))
	sb.WriteString("\n")

	if details {
		sb.WriteString("\nCalculation Steps:\n")
		for _, s := range report.Steps {
			fmt.Fprintf(&sb, "  %s\n", s)
		}
		if report.Input.PipeSize != "" {
			fmt.Fprintf(&sb, "  Pipe Size = %s\n", report.Input.PipeSize)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// formatCalculateJSON formats a report as JSON
func formatCalculateJSON(report *sizing.Report) (string, error) {
	status := string(report.Match.Status)
	if report.CatalogErr() != nil {
		status = "catalog_unavailable"
		if !errors.Is(report.CatalogErr(), catalog.ErrDataUnavailable) {
			status = "catalog_error"
		}
	}

	output := map[string]interface{}{
		"status":       status,
		"total_head_m": report.Result.TotalHeadM,
		"report":       report,
		"warnings":     report.Warnings(),
	}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return string(data), nil
}
