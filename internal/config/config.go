// Package config loads the toolkit configuration with viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. GUI_WINDOW_WIDTH.
const EnvPrefix = "GUI"

// Config is the full toolkit configuration.
type Config struct {
	Window    WindowConfig    `mapstructure:"window" yaml:"window"`
	Text      TextConfig      `mapstructure:"text" yaml:"text"`
	Layout    LayoutConfig    `mapstructure:"layout" yaml:"layout"`
	Resources ResourcesConfig `mapstructure:"resources" yaml:"resources"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
}

// WindowConfig is the default window size in CSS pixels.
type WindowConfig struct {
	Width       float32 `mapstructure:"width" yaml:"width"`
	Height      float32 `mapstructure:"height" yaml:"height"`
	HidpiFactor float32 `mapstructure:"hidpi_factor" yaml:"hidpi_factor"`
}

// TextConfig controls font lookup and default text metrics.
type TextConfig struct {
	DefaultFontFamily string   `mapstructure:"default_font_family" yaml:"default_font_family"`
	DefaultFontSize   float32  `mapstructure:"default_font_size" yaml:"default_font_size"`
	FontDirs          []string `mapstructure:"font_dirs" yaml:"font_dirs"`
}

// LayoutConfig bounds the layout pipeline.
type LayoutConfig struct {
	MaxIFrameDepth int `mapstructure:"max_iframe_depth" yaml:"max_iframe_depth"`
}

// ResourcesConfig controls resource garbage collection.
type ResourcesConfig struct {
	GCAfterFrame bool `mapstructure:"gc_after_frame" yaml:"gc_after_frame"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	AddSource  bool   `mapstructure:"add_source" yaml:"add_source"`
	Name       string `mapstructure:"name" yaml:"name"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.hidpi_factor", 1.0)

	v.SetDefault("text.default_font_family", "sans-serif")
	v.SetDefault("text.default_font_size", 16)
	v.SetDefault("text.font_dirs", []string{})

	v.SetDefault("layout.max_iframe_depth", 8)

	v.SetDefault("resources.gc_after_frame", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.add_source", false)
	v.SetDefault("log.name", "gui")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)
}

// NewDefaultConfig returns a configuration populated with the defaults.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewViper returns a viper instance with defaults, environment binding and,
// if path is set, that config file. Without a path it searches for gui.yaml
// in the working directory and $HOME/.config/gui.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gui")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/gui")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (a missing file is not an error), applies
// environment overrides and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative")
	}
	if c.Window.HidpiFactor <= 0 {
		return fmt.Errorf("window.hidpi_factor must be positive")
	}
	if c.Text.DefaultFontSize <= 0 {
		return fmt.Errorf("text.default_font_size must be positive")
	}
	if c.Layout.MaxIFrameDepth < 1 {
		return fmt.Errorf("layout.max_iframe_depth must be at least 1")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
