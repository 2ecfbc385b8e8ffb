package cli

import (
	"antenna_ops/internal/app"
	"antenna_ops/internal/export"
	"antenna_ops/internal/views"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// Export formats.
const (
	formatCSV  = "csv"
	formatPDF  = "pdf"
	formatXLSX = "xlsx"
)

type exportOptions struct {
	format string
	period string
	out    string
}

// exportJob renders one export. name has no extension.
type exportJob struct {
	name   string
	render func(w io.Writer) error
}

func newExportCmd(build AppFactory) *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "export <report|contacts|trainings|orders|history>",
		Short: "Write a report or list export to a file",
		Long: `Write an export the way the dashboard downloads it.

report supports csv, pdf and xlsx; the lists are csv only. Without --out the
file is written to the working directory under its download name. Use
--out - for stdout.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"report", "contacts", "trainings", "orders", "history"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, build, func(a *app.App) error {
				job, err := opts.job(a, args[0])
				if err != nil {
					return err
				}
				return opts.write(cmd, job)
			})
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatCSV, "Output format: csv, pdf or xlsx")
	cmd.Flags().StringVarP(&opts.period, "period", "p", "weekly", "Report period: weekly or monthly")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output path, - for stdout")
	return cmd
}

func (o *exportOptions) job(a *app.App, kind string) (exportJob, error) {
	snap := a.Store.Snapshot()
	today := a.Store.Today().String()
	if kind != "report" && o.format != formatCSV {
		return exportJob{}, fmt.Errorf("%s export supports csv only", kind)
	}

	switch kind {
	case "report":
		period, err := views.ParsePeriod(o.period)
		if err != nil {
			return exportJob{}, err
		}
		rep, err := views.BuildReport(snap, period, a.Store.Today())
		if err != nil {
			return exportJob{}, err
		}
		name := "report-" + strings.ToLower(string(rep.Period)) + "-" + today
		now := a.Store.Now()
		switch o.format {
		case formatCSV:
			return exportJob{name, func(w io.Writer) error { return export.WriteReportCSV(w, rep, now) }}, nil
		case formatPDF:
			return exportJob{name, func(w io.Writer) error { return a.Renderer.WriteReportPDF(w, rep, now) }}, nil
		case formatXLSX:
			return exportJob{name, func(w io.Writer) error { return export.WriteReportXLSX(w, rep, now) }}, nil
		}
		return exportJob{}, fmt.Errorf("unknown format %q", o.format)
	case "contacts":
		return exportJob{"contacts_leads_export_" + today, func(w io.Writer) error { return export.WriteContactsCSV(w, snap.Contacts) }}, nil
	case "trainings":
		return exportJob{"training_history_" + today, func(w io.Writer) error { return export.WriteTrainingHistoryCSV(w, snap.Trainings) }}, nil
	case "orders":
		return exportJob{"pending_orders_" + today, func(w io.Writer) error { return export.WriteOrdersCSV(w, snap.Orders) }}, nil
	case "history":
		return exportJob{"order_history_" + today, func(w io.Writer) error { return export.WriteHistoryCSV(w, snap.History) }}, nil
	}
	return exportJob{}, fmt.Errorf("unknown export %q", kind)
}

func (o *exportOptions) write(cmd *cobra.Command, job exportJob) error {
	var buf bytes.Buffer
	if err := job.render(&buf); err != nil {
		return fmt.Errorf("render %s: %w", job.name, err)
	}
	if o.out == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	path := o.out
	if path == "" {
		path = job.name + "." + o.format
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", path, buf.Len())
	return nil
}
