// Package config loads collector configuration from an optional YAML file
// with MC_-prefixed environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mclog/mclog-go/internal/serverdir"
)

var ErrInvalidValue = errors.New("invalid value")

// Config is the full collector configuration. Zero-valued path fields are
// resolved against the server directory layout.
type Config struct {
	// Server paths
	ServerDir     string `yaml:"server_dir"`
	LogFile       string `yaml:"log_file"`       // defaults to <server_dir>/logs/latest.log
	StatsDir      string `yaml:"stats_dir"`      // defaults to <server_dir>/world/stats
	UsercacheFile string `yaml:"usercache_file"` // defaults to <server_dir>/usercache.json

	// Collector
	CollectInterval time.Duration `yaml:"collect_interval"`
	OffsetFile      string        `yaml:"offset_file"`

	// Sink
	PostgresDSN string `yaml:"postgres_dsn"`
	DBSchema    string `yaml:"db_schema"`

	// Reporting
	SentryDSN string `yaml:"sentry_dsn"`
}

// Default returns the configuration used when neither file nor environment
// says otherwise.
func Default() Config {
	return Config{
		ServerDir:       serverdir.DefaultServerDir,
		CollectInterval: 2 * time.Minute,
		OffsetFile:      ".log_offset",
		DBSchema:        "mclog",
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then MC_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.CollectInterval <= 0 {
		return Config{}, fmt.Errorf("%w: collect_interval must be positive, got %v", ErrInvalidValue, cfg.CollectInterval)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(serverdir.EnvServerDir); v != "" {
		cfg.ServerDir = v
	}
	if v := os.Getenv("MC_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("MC_STATS_DIR"); v != "" {
		cfg.StatsDir = v
	}
	if v := os.Getenv("MC_USERCACHE_FILE"); v != "" {
		cfg.UsercacheFile = v
	}
	if v := os.Getenv("MC_COLLECT_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: MC_COLLECT_INTERVAL (%s)", ErrInvalidValue, v)
		}
		cfg.CollectInterval = interval
	}
	if v := os.Getenv("MC_OFFSET_FILE"); v != "" {
		cfg.OffsetFile = v
	}
	if v := os.Getenv("MC_POSTGRES_DSN"); v != "" {
		cfg.PostgresDSN = v
	}
	if v := os.Getenv("MC_DB_SCHEMA"); v != "" {
		cfg.DBSchema = v
	}
	if v := os.Getenv("MC_SENTRY_DSN"); v != "" {
		cfg.SentryDSN = v
	}
	return nil
}

// ValidateServerDir checks that the server directory exists whenever any
// path still resolves through the conventional layout beneath it. A fully
// explicit path configuration never touches the server directory, so it is
// not checked.
func (c Config) ValidateServerDir() error {
	if c.LogFile != "" && c.StatsDir != "" && c.UsercacheFile != "" {
		return nil
	}
	_, err := serverdir.Find(c.ServerDir)
	return err
}

// ResolvedLogFile returns the log file path, defaulting to the conventional
// location under the server directory.
func (c Config) ResolvedLogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return serverdir.For(c.ServerDir).LogFile
}

// ResolvedStatsDir returns the stats directory path.
func (c Config) ResolvedStatsDir() string {
	if c.StatsDir != "" {
		return c.StatsDir
	}
	return serverdir.For(c.ServerDir).StatsDir
}

// ResolvedUsercacheFile returns the usercache path.
func (c Config) ResolvedUsercacheFile() string {
	if c.UsercacheFile != "" {
		return c.UsercacheFile
	}
	return serverdir.For(c.ServerDir).UsercacheFile
}

// ResolvedOffsetFile returns the offset file path. Relative paths are kept
// relative to the working directory, matching how the collector has always
// been run.
func (c Config) ResolvedOffsetFile() string {
	return filepath.Clean(c.OffsetFile)
}
