package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"legion/internal/launcher"
)

const (
	envPrefix        = "LEGION"
	envHome          = "LEGION_HOME"
	keyStorePath     = "store_path"
	keyLaunchMode    = "launch_mode"
	keyLogLevel      = "log_level"
	appDirName       = "legion"
	defaultStoreFile = "profiles.json"
)

// Config aggregates the settings shared by the CLI and the TUI.
type Config struct {
	StorePath  string
	LaunchMode launcher.Mode
	LogLevel   slog.Level
}

// Load builds a Config from an optional config file (json, yaml or toml)
// plus LEGION_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Config{
		StorePath:  DefaultStorePath(),
		LaunchMode: launcher.ModeShell,
		LogLevel:   slog.LevelInfo,
	}

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// DefaultStorePath resolves where profiles live when nothing is configured.
// Order of precedence (first wins):
// 1) $LEGION_HOME/profiles.json
// 2) <user config dir>/legion/profiles.json ($XDG_CONFIG_HOME, ~/.config, %AppData%)
// 3) ./profiles.json
func DefaultStorePath() string {
	if home := os.Getenv(envHome); home != "" {
		return filepath.Join(home, defaultStoreFile)
	}
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, appDirName, defaultStoreFile)
	}
	return defaultStoreFile
}

func loadFromFile(path string, cfg *Config) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	if s := strings.TrimSpace(v.GetString(keyStorePath)); s != "" {
		cfg.StorePath = expandHome(s)
	}
	if s := v.GetString(keyLaunchMode); s != "" {
		mode, err := launcher.ParseMode(s)
		if err != nil {
			return fmt.Errorf("parse %s: %w", keyLaunchMode, err)
		}
		cfg.LaunchMode = mode
	}
	if s := v.GetString(keyLogLevel); s != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(s)); err != nil {
			return fmt.Errorf("parse %s: %w", keyLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if s := strings.TrimSpace(v.GetString(keyStorePath)); s != "" {
		cfg.StorePath = expandHome(s)
	}
	if s := v.GetString(keyLaunchMode); s != "" {
		if mode, err := launcher.ParseMode(s); err == nil {
			cfg.LaunchMode = mode
		} else {
			slog.Warn("ignoring invalid environment value", "var", envName(keyLaunchMode), "value", s, "error", err)
		}
	}
	if s := v.GetString(keyLogLevel); s != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(s)); err == nil {
			cfg.LogLevel = lvl
		} else {
			slog.Warn("ignoring invalid environment value", "var", envName(keyLogLevel), "value", s, "error", err)
		}
	}
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(key)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
