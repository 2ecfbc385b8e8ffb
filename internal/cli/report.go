package cli

import (
	"antenna_ops/internal/app"
	"antenna_ops/internal/views"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newReportCmd(build AppFactory) *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the weekly or monthly summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := views.ParsePeriod(period)
			if err != nil {
				return err
			}
			return withApp(cmd, build, func(a *app.App) error {
				rep, err := views.BuildReport(a.Store.Snapshot(), p, a.Store.Today())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintf(tw, "Report Period\t%s\n", rep.Period)
				fmt.Fprintf(tw, "Window\tafter %s through %s\n", rep.Cutoff, rep.Today)
				fmt.Fprintf(tw, "Completed Orders\t%d\n", len(rep.CompletedOrders))
				fmt.Fprintf(tw, "Active Orders\t%d\n", len(rep.ActiveOrders))
				fmt.Fprintf(tw, "Total Contacts\t%d\n", rep.TotalContacts)
				fmt.Fprintf(tw, "Total Trainings\t%d\n", rep.TotalTrainings)
				fmt.Fprintf(tw, "Total Letters\t%d\n", rep.TotalLetters)
				fmt.Fprintf(tw, "Revenue\t%s\n", views.FormatETB(rep.TotalRevenue))
				fmt.Fprintf(tw, "Payments Received\t%s\n", views.FormatETB(rep.TotalPaymentsReceived))
				for _, c := range rep.MachineTypeCounts {
					fmt.Fprintf(tw, "  %s\t%d\n", c.Label, c.Count)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().StringVarP(&period, "period", "p", "weekly", "weekly or monthly")
	return cmd
}
