// Package config loads gofind settings from defaults, an optional YAML file
// and GOFIND_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/taigrr/gofind/internal/output"
	"github.com/taigrr/gofind/internal/types"
)

// EnvPrefix is the prefix for environment overrides, e.g. GOFIND_LOG_LEVEL.
const EnvPrefix = "GOFIND"

// Config holds settings that are not part of the find expression itself.
type Config struct {
	Format   string             `mapstructure:"format"`
	LogLevel string             `mapstructure:"log_level"`
	Quiet    bool               `mapstructure:"quiet"`
	Filters  types.FilterConfig `mapstructure:"filters"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:   string(output.FormatLines),
		LogLevel: "warn",
	}
}

// Load reads configuration. An explicit path must exist; without one the file
// gofind.yaml is looked up in $XDG_CONFIG_HOME/gofind (or ~/.config/gofind) and
// silently skipped when absent.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("format", def.Format)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("quiet", def.Quiet)
	v.SetDefault("filters.type", "")
	v.SetDefault("filters.name", "")
	v.SetDefault("filters.iname", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("gofind")
		v.SetConfigType("yaml")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if _, err := output.ParseFormat(cfg.Format); err != nil {
		return Config{}, err
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "gofind")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gofind")
}
