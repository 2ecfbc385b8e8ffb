package cli

import (
	"antenna_ops/internal/adapter/http/routes"
	"antenna_ops/internal/app"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCmd(build AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API with the live notification hub",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := build(ctx, app.Options{Live: true, Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			defer a.Close()
			return routes.Run(ctx, a)
		},
	}
}
