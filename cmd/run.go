package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/xoxo/internal/app"
	"github.com/abhisek/xoxo/internal/logger"
	"github.com/abhisek/xoxo/internal/profile"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("load matches: %w", err)
	}

	opts := app.Options{Config: cfg, Catalog: catalog}

	if p, _ := cmd.Flags().GetString("profile"); p != "" {
		d, err := profile.LoadDraft(p)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		opts.Prefill = &d
		logger.Info("prefilling wizard from %s", p)
	}

	logger.Info("starting xoxo %s with %d matches", version, catalog.Len())
	return app.Run(opts)
}
