package cmd

import (
	"github.com/spf13/cobra"
	"github.com/winterarc/tracker/internal/app"
	"github.com/winterarc/tracker/internal/dates"
)

func AnalyticsCmd() *cobra.Command {
	var userID, at string

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Print a user's streaks and arc statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseAt(at)
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app.App) error {
				data, err := a.AnalyticsService.Analytics(cmd.Context(), userID, now)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), data)
			})
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id")
	cmd.Flags().StringVar(&at, "at", "", "Evaluate as of this RFC3339 time (default now)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func BadgesCmd() *cobra.Command {
	var userID, at string

	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Print the badge catalog with a user's earned flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseAt(at)
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app.App) error {
				badges, err := a.AnalyticsService.Badges(cmd.Context(), userID, now)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), badges)
			})
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id")
	cmd.Flags().StringVar(&at, "at", "", "Evaluate as of this RFC3339 time (default now)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func StatsCmd() *cobra.Command {
	var userID, at, date string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard numbers for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseAt(at)
			if err != nil {
				return err
			}
			if date == "" {
				date = dates.Format(now)
			}
			return withApp(cmd.Context(), func(a *app.App) error {
				stats, err := a.AnalyticsService.Stats(cmd.Context(), userID, date, now)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), stats)
			})
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id")
	cmd.Flags().StringVar(&date, "date", "", "Selected day, YYYY-MM-DD (default the day of --at)")
	cmd.Flags().StringVar(&at, "at", "", "Evaluate as of this RFC3339 time (default now)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
