package cli

import (
	"antenna_ops/internal/app"
	"antenna_ops/internal/usecase"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newImportCmd(build AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Load a browser storage export into the store",
		Long: `Load a JSON object keyed by slot name (orders, history, contacts,
trainings, letters, tasks, products, machineTypes). Listed slots replace the
stored ones after the usual repairs; the rest are kept. Records without an id
get a UUID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, build, func(a *app.App) error {
				snap, slots, err := usecase.DecodeImport(data, a.Store.Snapshot(), uuid.NewString)
				if err != nil {
					return err
				}
				if len(slots) == 0 {
					return fmt.Errorf("%s has no known slots", args[0])
				}
				if err := a.Store.Replace(cmd.Context(), snap, slots...); err != nil {
					return fmt.Errorf("persist import: %w", err)
				}
				for _, slot := range slots {
					fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", slot)
				}
				return nil
			})
		},
	}
}
