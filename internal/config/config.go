package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	Timezone   string
	PageSize   int `mapstructure:"page_size"`
	Graph      string
}

// LogConfig holds diagnostic settings. DebugPath empty means silent.
type LogConfig struct {
	DebugPath string `mapstructure:"debug_path"`
}

// Load reads configuration from file and env. Env var overrides use prefix CONTENTDECK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "contentdeck", "contentdeck.db"))
	v.SetDefault("ui.date_format", "2006-01-02 15:04")
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("ui.page_size", 10)
	v.SetDefault("ui.graph", "")
	v.SetDefault("log.debug_path", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CONTENTDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "contentdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CONTENTDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.PageSize <= 0 {
		c.UI.PageSize = 10
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Preferences edited inside the TUI land here.
func Save(cfg Config) error {
	path := os.Getenv("CONTENTDECK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "contentdeck", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("ui.page_size", cfg.UI.PageSize)
	v.Set("ui.graph", cfg.UI.Graph)
	v.Set("log.debug_path", cfg.Log.DebugPath)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
