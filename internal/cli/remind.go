package cli

import (
	"antenna_ops/internal/app"
	"antenna_ops/internal/domain/entities"
	"fmt"

	"github.com/spf13/cobra"
)

func newRemindCmd(build AppFactory) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run the task reminder check and log what fires",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, build, func(a *app.App) error {
				day := a.Store.Today()
				if date != "" {
					day = entities.Date(date)
					if !day.Valid() {
						return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
					}
				}
				due, err := a.Reminders.CheckReminders(cmd.Context(), day)
				for _, n := range due {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", n.Key, n.Title)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d reminder(s) for %s\n", len(due), day)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Check as of this date (YYYY-MM-DD) instead of today")
	return cmd
}
