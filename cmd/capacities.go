// ABOUTME: Capacities command listing the STP capacity options
// ABOUTME: Shows the values offered by the interactive capacity selector

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/markalston/pump-head/internal/catalog"
	"github.com/markalston/pump-head/internal/logger"
)

var capacitiesCmd = &cobra.Command{
	Use:   "capacities",
	Short: "List STP capacity options",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		logger.InitCLI(cfg.LogLevel, cfg.LogFormat)
		logConfig(cfg)

		if exitCode := runCapacities(os.Stdout, cfg.CapacitiesPath); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(capacitiesCmd)
}

func runCapacities(w io.Writer, path string) int {
	capacities, err := catalog.LoadCapacities(path)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		out, err := formatCapacitiesJSON(path, capacities)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		fmt.Fprintln(w, out)
	} else {
		fmt.Fprintln(w, formatCapacitiesHuman(path, capacities))
	}

	if len(capacities) == 0 {
		return 1
	}
	return 0
}

// formatCapacitiesHuman lists one capacity per line
func formatCapacitiesHuman(path string, capacities []float64) string {
	if len(capacities) == 0 {
		return "No capacity values found in " + path
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "STP Capacities (%s):", path)
	for _, c := range capacities {
		fmt.Fprintf(&sb, "\n  %s KLD", strconv.FormatFloat(c, 'f', -1, 64))
	}
	return sb.String()
}

// formatCapacitiesJSON formats the capacity options as JSON
func formatCapacitiesJSON(path string, capacities []float64) (string, error) {
	data, err := json.MarshalIndent(map[string]interface{}{
		"source":     path,
		"capacities": capacities,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding capacities: %w", err)
	}
	return string(data), nil
}
