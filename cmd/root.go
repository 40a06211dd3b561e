package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/abhisek/xoxo/internal/config"
	"github.com/abhisek/xoxo/internal/logger"
	"github.com/abhisek/xoxo/internal/match"
)

var rootCmd = &cobra.Command{
	Use:   "xoxo",
	Short: "AI dating simulation for the terminal",
	Long:  "XOXO AI: scan in, build a profile and let simulated agents find your matches.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

// cfg is the effective configuration, loaded before any command runs.
var cfg *config.Config

// Execute runs the CLI.
func Execute(ctx context.Context) error {
	defer func() { _ = logger.Close() }()
	return fang.Execute(ctx, rootCmd, fang.WithVersion(version))
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (merged over global and project config)")
	rootCmd.PersistentFlags().String("fixtures", "", "Path to a match fixture file (overrides fixtures.path)")
	rootCmd.Flags().String("profile", "", "Path to a YAML profile draft that prefills the wizard")

	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(transcriptCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSettings loads config with the --config flag and applies logging.
func loadSettings(cmd *cobra.Command) error {
	explicit, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(explicit)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("fixtures"); p != "" {
		loaded.Fixtures.Path = p
	}
	if err := logger.Default.Configure(loaded.LogLevel, loaded.LogFile); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	logger.Debug("config loaded, log level %s", logger.Default.Level())
	cfg = loaded
	return nil
}

// loadCatalog returns the fixture catalog named by config, or the
// embedded one.
func loadCatalog() (*match.Catalog, error) {
	if cfg != nil && cfg.Fixtures.Path != "" {
		return match.Load(cfg.Fixtures.Path)
	}
	return match.Default()
}
