package cli

import (
	"antenna_ops/internal/app"
	"antenna_ops/internal/config"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// badgerFactory builds apps over one on-disk badger directory so runs share state.
func badgerFactory(t *testing.T) AppFactory {
	t.Helper()
	dir := t.TempDir()
	return func(ctx context.Context, opts app.Options) (*app.App, error) {
		cfg := &config.Config{
			App:     config.AppConfig{Timezone: "UTC", IDStrategy: config.IDStrategyTimestamp, RecentFilesLimit: 8},
			Storage: config.StorageConfig{Backend: config.BackendBadger, Badger: config.BadgerConfig{Path: dir}},
			Notify:  config.NotifyConfig{DedupSize: 16},
		}
		return app.New(ctx, cfg, opts)
	}
}

func run(t *testing.T, build AppFactory, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(build)
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExportCmd(t *testing.T) {
	build := badgerFactory(t)
	dir := t.TempDir()

	t.Run("contacts csv to stdout", func(t *testing.T) {
		out, err := run(t, build, "export", "contacts", "-o", "-")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out, "Category,Name,Phone,Address,Product Interest,Lead Status,Notes\n") {
			t.Fatalf("unexpected csv %q", out)
		}
	})

	t.Run("report workbook", func(t *testing.T) {
		path := filepath.Join(dir, "report.xlsx")
		out, err := run(t, build, "export", "report", "--format", "xlsx", "--period", "monthly", "-o", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Wrote "+path) {
			t.Fatalf("unexpected output %q", out)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if !bytes.HasPrefix(data, []byte("PK")) {
			t.Fatalf("xlsx should be a zip archive")
		}
	})

	t.Run("report pdf", func(t *testing.T) {
		out, err := run(t, build, "export", "report", "-f", "pdf", "-o", "-")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out, "%PDF-") {
			t.Fatalf("expected a pdf")
		}
	})

	errCases := map[string][]string{
		"lists are csv only": {"export", "contacts", "-f", "pdf"},
		"unknown export":     {"export", "invoices"},
		"bad period":         {"export", "report", "-p", "yearly"},
		"bad format":         {"export", "report", "-f", "docx"},
	}
	for name, args := range errCases {
		t.Run(name, func(t *testing.T) {
			if _, err := run(t, build, args...); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestImportCmd(t *testing.T) {
	build := badgerFactory(t)
	file := filepath.Join(t.TempDir(), "backup.json")
	data := `{"contacts":"[{\"name\":\"Meron Alemu\",\"phone\":\"0977\",\"type\":\"Lead\"}]","machineTypes":["Grain Mill"]}`
	if err := os.WriteFile(file, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := run(t, build, "import", file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Imported contacts\nImported machineTypes\n" {
		t.Fatalf("unexpected output %q", out)
	}

	csv, err := run(t, build, "export", "contacts", "-o", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "Lead,Meron Alemu,0977,,,New,\n"; !strings.HasSuffix(csv, want) || strings.Count(csv, "\n") != 2 {
		t.Fatalf("imported contacts should replace the slot, got %q", csv)
	}

	t.Run("no known slots", func(t *testing.T) {
		empty := filepath.Join(t.TempDir(), "empty.json")
		os.WriteFile(empty, []byte(`{"theme":"dark"}`), 0o644)
		if _, err := run(t, build, "import", empty); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := run(t, build, "import", filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestRemindCmd(t *testing.T) {
	build := badgerFactory(t)
	file := filepath.Join(t.TempDir(), "tasks.json")
	data := `{"tasks":[{"id":"k1","title":"Call supplier","dueDate":"2024-07-20","priority":"High","status":"To Do","reminder":"2_days_before"}]}`
	if err := os.WriteFile(file, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := run(t, build, "import", file); err != nil {
		t.Fatalf("import: %v", err)
	}

	out, err := run(t, build, "remind", "--date", "2024-07-18")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "k1  Task Reminder: Call supplier\n1 reminder(s) for 2024-07-18\n" {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := run(t, build, "remind", "--date", "18/07/2024"); err == nil {
		t.Fatalf("expected error for a bad date")
	}
}

func TestReportCmd(t *testing.T) {
	out, err := run(t, badgerFactory(t), "report", "--period", "monthly")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Report Period") || !strings.Contains(out, "Monthly") || !strings.Contains(out, "ETB") {
		t.Fatalf("unexpected report %q", out)
	}
}
