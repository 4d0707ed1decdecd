package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/winterarc/tracker/internal/app"
	"github.com/winterarc/tracker/internal/config"
	"github.com/winterarc/tracker/internal/logger"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "arc",
		Short:        "Operator tools for the Winter Arc tracker",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(MigrateCmd())
	rootCmd.AddCommand(AnalyticsCmd())
	rootCmd.AddCommand(BadgesCmd())
	rootCmd.AddCommand(StatsCmd())
	rootCmd.AddCommand(ExportCmd())
	rootCmd.AddCommand(TokenCmd())
	return rootCmd
}

// withApp runs fn against a fully wired app built from the environment.
func withApp(ctx context.Context, fn func(*app.App) error) error {
	cfg := config.Load()

	flush := logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)
	defer flush()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer a.Close()

	return fn(a)
}

// parseAt reads the --at flag. Empty means now.
func parseAt(at string) (time.Time, error) {
	if at == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at must be an RFC3339 timestamp: %w", err)
	}
	return t.UTC(), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
