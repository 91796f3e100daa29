// ABOUTME: Catalog command listing the loaded pump catalog
// ABOUTME: Reports skipped rows so catalog authors can fix their data

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/markalston/pump-head/internal/catalog"
	"github.com/markalston/pump-head/internal/logger"
	"github.com/markalston/pump-head/internal/tui/styles"
	"github.com/markalston/pump-head/internal/tui/widgets"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the pump catalog",
	Long:  `Load the pump catalog and list every usable pump along with any rows that were skipped.`,
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

		exitCode := runCatalog(ctx, os.Stdout, catalog.NewStore(cfg.CatalogPath))
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

// runCatalog loads and prints the catalog, returning the exit code
func runCatalog(ctx context.Context, w io.Writer, store *catalog.Store) int {
	cat, err := store.Get(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		out, err := formatCatalogJSON(cat)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		fmt.Fprintln(w, out)
	} else {
		fmt.Fprintln(w, formatCatalogHuman(cat))
	}
	return 0
}

// formatCatalogHuman formats the catalog for human readability
func formatCatalogHuman(cat *catalog.Catalog) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Pump Catalog: %s\n", cat.Source())
	fmt.Fprintf(&sb, "  Pumps:   %d\n", cat.Len())
	fmt.Fprintf(&sb, "  Skipped: %d\n", len(cat.Skipped()))

	if cat.Empty() {
		sb.WriteString("\nPump catalog is empty; no pumps can be suggested.\n")
	} else {
		sb.WriteString("\n")
		sb.WriteString(widgets.PumpTable(cat.Pumps(), styles.Muted))
		sb.WriteString("\n")
	}

	if skipped := cat.Skipped(); len(skipped) > 0 {
		sb.WriteString("\nSkipped rows:\n")
		for _, s := range skipped {
			fmt.Fprintf(&sb, "  ✗ %s\n", s)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// formatCatalogJSON formats the catalog as JSON
func formatCatalogJSON(cat *catalog.Catalog) (string, error) {
	skipped := make([]map[string]interface{}, 0, len(cat.Skipped()))
	for _, s := range cat.Skipped() {
		skipped = append(skipped, map[string]interface{}{
			"row":   s.Row,
			"field": s.Field,
			"value": s.Value,
			"error": s.Err.Error(),
		})
	}

	pumps := cat.Pumps()
	if pumps == nil {
		pumps = []catalog.PumpRecord{}
	}

	output := map[string]interface{}{
		"source":    cat.Source(),
		"loaded_at": cat.LoadedAt(),
		"pumps":     pumps,
		"skipped":   skipped,
	}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding catalog: %w", err)
	}
	return string(data), nil
}
