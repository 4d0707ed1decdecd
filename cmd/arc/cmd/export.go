package cmd

import (
	"github.com/spf13/cobra"
	"github.com/winterarc/tracker/internal/app"
)

func ExportCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a user's records, uploading them when a bucket is configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseAt("")
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app.App) error {
				result, err := a.ExportService.Export(cmd.Context(), userID, now)
				if err != nil {
					return err
				}
				if result.Data != nil {
					return printJSON(cmd.OutOrStdout(), result.Data)
				}
				return printJSON(cmd.OutOrStdout(), result)
			})
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
