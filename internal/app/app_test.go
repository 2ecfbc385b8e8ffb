package app

import (
	"antenna_ops/internal/config"
	"antenna_ops/internal/domain/entities"
	"bytes"
	"context"
	"strings"
	"testing"
)

func testConfig(backend string) *config.Config {
	return &config.Config{
		App:     config.AppConfig{Timezone: "UTC", IDStrategy: config.IDStrategyTimestamp, RecentFilesLimit: 8},
		Storage: config.StorageConfig{Backend: backend},
		Notify:  config.NotifyConfig{DedupSize: 16},
	}
}

func TestNew(t *testing.T) {
	t.Run("memory backend starts from the sample dataset", func(t *testing.T) {
		a, err := New(context.Background(), testConfig(config.BackendMemory), Options{Out: &bytes.Buffer{}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer a.Close()
		snap := a.Store.Snapshot()
		if len(snap.Orders) == 0 || len(snap.MachineTypes) != len(entities.DefaultMachineTypes) {
			t.Fatalf("expected sample data, got %d orders and %d machine types", len(snap.Orders), len(snap.MachineTypes))
		}
		if a.Hub != nil {
			t.Fatalf("hub should only exist in live mode")
		}
	})

	t.Run("badger in memory persists mutations", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		cfg := testConfig(config.BackendBadger)
		a, err := New(ctx, cfg, Options{Live: true, Out: &bytes.Buffer{}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer a.Close()
		if a.Hub == nil {
			t.Fatalf("live mode should wire the hub")
		}
		go a.Hub.Run(ctx)
		c, err := a.Contacts.AddContact(context.Background(), entities.Contact{Name: "Almaz", Type: entities.ContactTypeLead})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := a.Store.LastError(); err != nil {
			t.Fatalf("persist failed: %v", err)
		}
		if got, _ := a.Contacts.GetByID(context.Background(), c.ID); got.LeadStatus != entities.LeadStatusNew {
			t.Fatalf("unexpected contact %+v", got)
		}
	})

	t.Run("reminders are logged", func(t *testing.T) {
		var out bytes.Buffer
		a, err := New(context.Background(), testConfig(config.BackendMemory), Options{Out: &out})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer a.Close()
		today := a.Store.Today()
		if _, err := a.Tasks.AddTask(context.Background(), entities.TaskDraft{Title: "Ship order", DueDate: today,
			Reminder: entities.ReminderOnDueDate}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "Ship order") {
			t.Fatalf("expected reminder in log output, got %q", out.String())
		}
	})

	t.Run("start reports tasks stored by an earlier run", func(t *testing.T) {
		cfg := testConfig(config.BackendBadger)
		cfg.Storage.Badger.Path = t.TempDir()

		first, err := New(context.Background(), cfg, Options{Out: &bytes.Buffer{}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := first.Tasks.AddTask(context.Background(), entities.TaskDraft{Title: "Renew permit", DueDate: first.Store.Today(),
			Reminder: entities.ReminderOnDueDate}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := first.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}

		var out bytes.Buffer
		second, err := New(context.Background(), cfg, Options{Out: &out})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer second.Close()
		if out.Len() != 0 {
			t.Fatalf("expected no output before start, got %q", out.String())
		}
		second.Start(context.Background())
		if !strings.Contains(out.String(), "Renew permit") {
			t.Fatalf("expected startup reminder in log output, got %q", out.String())
		}
	})

	t.Run("bad time zone", func(t *testing.T) {
		cfg := testConfig(config.BackendMemory)
		cfg.App.Timezone = "Mars/Olympus"
		if _, err := New(context.Background(), cfg, Options{}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		if _, err := New(context.Background(), testConfig("floppy"), Options{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
