// ABOUTME: Root command for the pump-head CLI
// ABOUTME: Launches the interactive calculator and holds global flags

package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/markalston/pump-head/internal/catalog"
	"github.com/markalston/pump-head/internal/config"
	"github.com/markalston/pump-head/internal/logger"
	"github.com/markalston/pump-head/internal/sizing"
	"github.com/markalston/pump-head/internal/tui"
)

var (
	catalogPath    string
	capacitiesPath string
	jsonOutput     bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "pump-head",
	Short: "Pump head calculator for treated-water transfer",
	Long: `pump-head computes the total head a pump must deliver to lift treated
water from a sewage treatment plant to a building, and suggests pumps from a
catalog that can meet it.

Run without a subcommand to open the interactive calculator.

Environment Variables:
  PUMP_HEAD_CATALOG          Pump catalog file (default: pumps.csv)
  PUMP_HEAD_CAPACITIES       STP capacity options (default: stp_output_summary.xlsx)
  PUMP_HEAD_PRESSURE_FACTOR  Metres of head per kg/cm² (default: 10)
  PUMP_HEAD_FLOW_FRICTION    Flow friction coefficient (default: 0.1)
  PUMP_HEAD_PIPE_FRICTION    Pipe friction per metre (default: 0.083)
  PUMP_HEAD_PIPE_FACTOR      Pipe friction factor (default: 0.8)
  PUMP_HEAD_BAR_SCALE        Metres per bar block (default: 2)
  PUMP_HEAD_LOG_FILE         Log file while the interactive calculator runs
  LOG_LEVEL, LOG_FORMAT      Logging level and format (text or json)`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		return runTUI(ctx)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Pump catalog file (overrides PUMP_HEAD_CATALOG)")
	rootCmd.PersistentFlags().StringVar(&capacitiesPath, "capacities", "", "STP capacity options file (overrides PUMP_HEAD_CAPACITIES)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// loadConfig reads the environment and applies flag overrides (flag > env > default)
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}
	if capacitiesPath != "" {
		cfg.CapacitiesPath = capacitiesPath
	}
	return cfg, nil
}

// logConfig records settings worth knowing about once the logger is set up
func logConfig(cfg *config.Config) {
	if cfg.CustomCoefficients() {
		slog.Info("Using custom friction coefficients", "coefficients", cfg.Coefficients)
	}
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

func runTUI(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	closeLog, err := logger.InitTUI(cfg.LogFile, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer closeLog()
	logConfig(cfg)

	store := catalog.NewStore(cfg.CatalogPath)
	return tui.Run(ctx, tui.Options{
		Sizer:          sizing.New(store, cfg.Coefficients),
		Store:          store,
		CapacitiesPath: cfg.CapacitiesPath,
		BarScale:       cfg.BarScale,
	})
}
