package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Server.Addr != ":8080" || cfg.Storage.Backend != BackendBadger || cfg.App.RecentFilesLimit != 8 || cfg.Notify.DedupSize != 256 {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("file and env override", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("HOME", t.TempDir())
		yaml := "storage:\n  backend: redis\n  redis:\n    addr: cache:6379\napp:\n  id_strategy: uuid\n"
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		t.Setenv("ANTENNA_SERVER_ADDR", ":9090")
		t.Setenv("ANTENNA_EXPORT_FONT_PATH", "/fonts/NotoSansEthiopic.ttf")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Storage.Backend != BackendRedis || cfg.Storage.Redis.Addr != "cache:6379" || cfg.App.IDStrategy != IDStrategyUUID {
			t.Fatalf("file values not applied: %+v", cfg)
		}
		if cfg.Server.Addr != ":9090" {
			t.Fatalf("env override not applied, addr=%s", cfg.Server.Addr)
		}
		if cfg.Export.FontPath != "/fonts/NotoSansEthiopic.ttf" {
			t.Fatalf("font path override not applied: %q", cfg.Export.FontPath)
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())
		t.Setenv("ANTENNA_STORAGE_BACKEND", "floppy")

		if _, err := LoadConfig(); err == nil {
			t.Fatalf("expected validation error")
		}
	})
}

func TestValidate(t *testing.T) {
	cfg := Config{
		App:     AppConfig{IDStrategy: IDStrategyTimestamp, RecentFilesLimit: 8},
		Storage: StorageConfig{Backend: BackendPostgres},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected missing dsn error")
	}
	cfg.Storage.Postgres.DSN = "postgres://localhost/antenna"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
