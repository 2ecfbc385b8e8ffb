package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	App     AppConfig     `mapstructure:"app"`
	Storage StorageConfig `mapstructure:"storage"`
	Notify  NotifyConfig  `mapstructure:"notify"`
	Export  ExportConfig  `mapstructure:"export"`
}

type ServerConfig struct {
	Addr      string `mapstructure:"addr"`
	RateLimit string `mapstructure:"rate_limit"`
}

type AppConfig struct {
	Timezone         string `mapstructure:"timezone"`
	IDStrategy       string `mapstructure:"id_strategy"`
	RecentFilesLimit int    `mapstructure:"recent_files_limit"`
}

type StorageConfig struct {
	Backend  string         `mapstructure:"backend"`
	Badger   BadgerConfig   `mapstructure:"badger"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type BadgerConfig struct {
	Path string `mapstructure:"path"`
}

type DynamoDBConfig struct {
	Table    string `mapstructure:"table"`
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

type NotifyConfig struct {
	DedupSize int `mapstructure:"dedup_size"`
}

// ExportConfig points at a TTF font with Ethiopic glyphs. Without one, PDFs fall back to
// a core font and Amharic lines are left out.
type ExportConfig struct {
	FontPath string `mapstructure:"font_path"`
}

// Storage backends.
const (
	BackendBadger   = "badger"
	BackendDynamoDB = "dynamodb"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// ID strategies.
const (
	IDStrategyTimestamp = "timestamp"
	IDStrategyUUID      = "uuid"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate_limit", "120-M")
	v.SetDefault("app.timezone", "Local")
	v.SetDefault("app.id_strategy", IDStrategyTimestamp)
	v.SetDefault("app.recent_files_limit", 8)
	v.SetDefault("storage.backend", BackendBadger)
	v.SetDefault("storage.badger.path", "./data/badger")
	v.SetDefault("storage.dynamodb.table", "dashboard_slots")
	v.SetDefault("storage.dynamodb.region", "us-east-1")
	v.SetDefault("storage.dynamodb.endpoint", "")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.prefix", "antenna:")
	v.SetDefault("storage.postgres.dsn", "")
	v.SetDefault("notify.dedup_size", 256)
	v.SetDefault("export.font_path", "")
}

// LoadConfig loads configuration from config.yaml and ANTENNA_* environment variables.
// A missing config file is fine; defaults apply.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("$HOME/.antenna/")

	// ANTENNA_STORAGE_BACKEND overrides storage.backend
	v.SetEnvPrefix("ANTENNA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendBadger, BackendDynamoDB, BackendRedis, BackendPostgres, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	switch c.App.IDStrategy {
	case IDStrategyTimestamp, IDStrategyUUID:
	default:
		return fmt.Errorf("unknown id strategy %q", c.App.IDStrategy)
	}
	if c.Storage.Backend == BackendPostgres && c.Storage.Postgres.DSN == "" {
		return errors.New("storage.postgres.dsn is required for the postgres backend")
	}
	if c.App.RecentFilesLimit <= 0 {
		return errors.New("app.recent_files_limit must be positive")
	}
	return nil
}
