// Package config loads game settings from an optional YAML file, then lets
// environment variables override them.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"pixelshooter/pkg/game/progression"
)

// Defaults for the SSH floor explorer
const (
	DefaultSSHHost     = "::"
	DefaultSSHPort     = "2222"
	DefaultHostKeyPath = ".ssh/pixelshooter_host_key"
)

// Config holds every user-tunable setting
type Config struct {
	TotalFloors int     `yaml:"total_floors"`
	StartFloor  int     `yaml:"start_floor"`
	Seed        int64   `yaml:"seed"`
	WindowScale float64 `yaml:"window_scale"`
	CatalogPath string  `yaml:"catalog_path"`
	LogLevel    string  `yaml:"log_level"`

	LocaleDir string `yaml:"locale_dir"`
	Language  string `yaml:"language"`

	SSHHost     string `yaml:"ssh_host"`
	SSHPort     string `yaml:"ssh_port"`
	HostKeyPath string `yaml:"host_key_path"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		TotalFloors: progression.DefaultTotalFloors,
		StartFloor:  1,
		WindowScale: 1,
		LogLevel:    "info",
		LocaleDir:   "locales",
		Language:    "en_GB",
		SSHHost:     DefaultSSHHost,
		SSHPort:     DefaultSSHPort,
		HostKeyPath: DefaultHostKeyPath,
	}
}

// Decode reads YAML settings over the defaults. Unknown keys are an error.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Load reads settings from path, then applies environment overrides. A
// missing file is not an error; the defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			cfg, err = Decode(f)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			log.Debug("no config file, using defaults", "path", path)
		default:
			return nil, fmt.Errorf("opening config: %w", err)
		}
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from PIXELSHOOTER_* and SSH_* variables
func (c *Config) ApplyEnv() {
	c.TotalFloors = GetEnvInt("PIXELSHOOTER_TOTAL_FLOORS", c.TotalFloors)
	c.StartFloor = GetEnvInt("PIXELSHOOTER_START_FLOOR", c.StartFloor)
	if seed, err := strconv.ParseInt(GetEnv("PIXELSHOOTER_SEED", ""), 10, 64); err == nil {
		c.Seed = seed
	}
	c.CatalogPath = GetEnv("PIXELSHOOTER_CATALOG", c.CatalogPath)
	c.LogLevel = GetEnv("PIXELSHOOTER_LOG_LEVEL", c.LogLevel)
	c.LocaleDir = GetEnv("PIXELSHOOTER_LOCALE_DIR", c.LocaleDir)
	c.Language = GetEnv("PIXELSHOOTER_LANG", c.Language)
	c.SSHHost = GetEnv("SSH_HOST", c.SSHHost)
	c.SSHPort = GetEnv("SSH_PORT", c.SSHPort)
	c.HostKeyPath = GetEnv("SSH_HOST_KEY", c.HostKeyPath)
}

// Validate checks the settings that would break a run
func (c *Config) Validate() error {
	if c.TotalFloors < 1 {
		return fmt.Errorf("total_floors must be at least 1, got %d", c.TotalFloors)
	}
	if c.StartFloor < 1 || c.StartFloor > c.TotalFloors {
		return fmt.Errorf("start_floor %d outside 1..%d", c.StartFloor, c.TotalFloors)
	}
	if c.WindowScale <= 0 {
		return fmt.Errorf("window_scale must be positive, got %v", c.WindowScale)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the configured log level, or info if it does not parse
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
