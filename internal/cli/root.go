// Package cli is the opsctl operator command line.
package cli

import (
	"antenna_ops/internal/app"
	"antenna_ops/internal/config"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// AppFactory builds the wired app for one command run.
type AppFactory func(ctx context.Context, opts app.Options) (*app.App, error)

// FromConfig loads configuration and builds the app from it.
func FromConfig(ctx context.Context, opts app.Options) (*app.App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return app.New(ctx, cfg, opts)
}

// NewRootCmd returns the opsctl command tree.
func NewRootCmd(build AppFactory) *cobra.Command {
	root := &cobra.Command{
		Use:   "opsctl",
		Short: "Antenna operations dashboard - operator CLI",
		Long: `opsctl works on the same store as the API server.

It can serve the HTTP API, export reports and lists, run the reminder
check for today and import a browser storage export.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newServeCmd(build),
		newExportCmd(build),
		newRemindCmd(build),
		newImportCmd(build),
		newReportCmd(build),
	)
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd(FromConfig).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withApp builds the app, runs fn and releases the backend.
func withApp(cmd *cobra.Command, build AppFactory, fn func(a *app.App) error) (err error) {
	a, err := build(cmd.Context(), app.Options{Out: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(a)
}
