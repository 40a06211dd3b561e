// Package config provides centralized configuration management using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/xoxo/internal/logger"
)

// Config holds all configuration values for xoxo.
type Config struct {
	LogLevel string         `mapstructure:"log_level"`
	LogFile  string         `mapstructure:"log_file"`
	Progress ProgressConfig `mapstructure:"progress"`
	Scan     ScanConfig     `mapstructure:"scan"`
	Wizard   WizardConfig   `mapstructure:"wizard"`
	Export   ExportConfig   `mapstructure:"export"`
	Fixtures FixturesConfig `mapstructure:"fixtures"`
}

// ProgressConfig tunes the matching animation.
type ProgressConfig struct {
	Step            int           `mapstructure:"step"`
	TickInterval    time.Duration `mapstructure:"tick_interval"`
	CompletionDelay time.Duration `mapstructure:"completion_delay"`
}

type ScanConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

type WizardConfig struct {
	Strict bool `mapstructure:"strict"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// FixturesConfig points at a match list that replaces the embedded one.
type FixturesConfig struct {
	Path string `mapstructure:"path"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		LogLevel: "info",
		Progress: ProgressConfig{
			Step:            5,
			TickInterval:    150 * time.Millisecond,
			CompletionDelay: 500 * time.Millisecond,
		},
		Scan:   ScanConfig{Delay: 2 * time.Second},
		Export: ExportConfig{Dir: "."},
	}
}

var envKeys = []string{
	"log_level",
	"log_file",
	"progress.step",
	"progress.tick_interval",
	"progress.completion_delay",
	"scan.delay",
	"wizard.strict",
	"export.dir",
	"fixtures.path",
}

// Load loads configuration with full precedence:
// ENV vars > explicit file > project config > XDG global config > defaults
func Load(explicit string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("xoxo")

	d := Defaults()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("progress.step", d.Progress.Step)
	v.SetDefault("progress.tick_interval", d.Progress.TickInterval)
	v.SetDefault("progress.completion_delay", d.Progress.CompletionDelay)
	v.SetDefault("scan.delay", d.Scan.Delay)
	v.SetDefault("wizard.strict", d.Wizard.Strict)
	v.SetDefault("export.dir", d.Export.Dir)
	v.SetDefault("fixtures.path", d.Fixtures.Path)

	v.SetEnvPrefix("XOXO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range envKeys {
		env := "XOXO_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	loaded := false
	for _, path := range []string{GlobalPath(), ProjectPath()} {
		if !fileExists(path) {
			continue
		}
		v.SetConfigFile(path)
		var err error
		if loaded {
			err = v.MergeInConfig()
		} else {
			err = v.ReadInConfig()
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		loaded = true
		logger.Debug("loaded config from %s", path)
	}

	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", explicit, err)
		}
		logger.Debug("loaded config from %s", explicit)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the app cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Progress.Step <= 0 {
		errs = append(errs, fmt.Errorf("progress.step must be positive, got %d", c.Progress.Step))
	}
	if c.Progress.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("progress.tick_interval must be positive, got %s", c.Progress.TickInterval))
	}
	if c.Progress.CompletionDelay < 0 {
		errs = append(errs, fmt.Errorf("progress.completion_delay must not be negative, got %s", c.Progress.CompletionDelay))
	}
	if c.Scan.Delay < 0 {
		errs = append(errs, fmt.Errorf("scan.delay must not be negative, got %s", c.Scan.Delay))
	}
	if c.Export.Dir == "" {
		errs = append(errs, errors.New("export.dir must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/xoxo/xoxo.yml or $XDG_CONFIG_HOME/xoxo/xoxo.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "xoxo", "xoxo.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "xoxo", "xoxo.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "xoxo.yml"
}

// fileConfig is the on-disk layout. Durations are written in
// time.Duration string form so the file stays readable.
type fileConfig struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	Progress struct {
		Step            int    `yaml:"step"`
		TickInterval    string `yaml:"tick_interval"`
		CompletionDelay string `yaml:"completion_delay"`
	} `yaml:"progress"`
	Scan struct {
		Delay string `yaml:"delay"`
	} `yaml:"scan"`
	Wizard struct {
		Strict bool `yaml:"strict"`
	} `yaml:"wizard"`
	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`
	Fixtures struct {
		Path string `yaml:"path"`
	} `yaml:"fixtures"`
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var f fileConfig
	f.LogLevel = cfg.LogLevel
	f.LogFile = cfg.LogFile
	f.Progress.Step = cfg.Progress.Step
	f.Progress.TickInterval = cfg.Progress.TickInterval.String()
	f.Progress.CompletionDelay = cfg.Progress.CompletionDelay.String()
	f.Scan.Delay = cfg.Scan.Delay.String()
	f.Wizard.Strict = cfg.Wizard.Strict
	f.Export.Dir = cfg.Export.Dir
	f.Fixtures.Path = cfg.Fixtures.Path

	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// Write writes cfg to path, creating parent directories.
func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	return Write(GlobalPath(), cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return Write(ProjectPath(), cfg)
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
