package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Owner       string        `yaml:"owner"`
	Repo        string        `yaml:"repo"`
	Token       string        `yaml:"-"`
	PR          int           `yaml:"-"`
	MaxAge      time.Duration `yaml:"-"`
	RawMaxAge   string        `yaml:"max_age"`
	AgeBasis    string        `yaml:"age_basis"`
	CheckSuites bool          `yaml:"check_suites"`
	Format      string        `yaml:"format"`
	APIURL      string        `yaml:"api_url"`
	Log         LogConfig     `yaml:"log"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Flags carries command-line values. Non-zero fields override the file.
type Flags struct {
	Owner       string
	Repo        string
	Token       string
	PR          int
	MaxAge      string
	AgeBasis    string
	CheckSuites *bool
	Format      string
	APIURL      string
	LogLevel    string
	LogFile     string
}

// Load reads path (skipped when empty), applies flags on top, fills defaults
// and validates the result.
func Load(path string, flags Flags) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.apply(flags)

	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) apply(f Flags) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Owner, f.Owner)
	set(&c.Repo, f.Repo)
	set(&c.Token, f.Token)
	set(&c.RawMaxAge, f.MaxAge)
	set(&c.AgeBasis, f.AgeBasis)
	set(&c.Format, f.Format)
	set(&c.APIURL, f.APIURL)
	set(&c.Log.Level, f.LogLevel)
	set(&c.Log.File, f.LogFile)

	if f.PR != 0 {
		c.PR = f.PR
	}
	if f.CheckSuites != nil {
		c.CheckSuites = *f.CheckSuites
	}
}

func (c *Config) setDefaults() error {
	if c.RawMaxAge == "" {
		c.RawMaxAge = "1440h"
	}
	d, err := time.ParseDuration(c.RawMaxAge)
	if err != nil {
		return fmt.Errorf("parse max_age %q: %w", c.RawMaxAge, err)
	}
	c.MaxAge = d

	if c.AgeBasis == "" {
		c.AgeBasis = "updated"
	}
	if c.Format == "" {
		c.Format = "markdown"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	return nil
}

func (c *Config) validate() error {
	if c.Owner == "" {
		return fmt.Errorf("owner required")
	}
	if c.Repo == "" {
		return fmt.Errorf("repo required")
	}
	if c.PR < 0 {
		return fmt.Errorf("invalid pr %d", c.PR)
	}
	if c.MaxAge <= 0 {
		return fmt.Errorf("max_age must be positive, got %s", c.RawMaxAge)
	}
	switch c.AgeBasis {
	case "updated", "created":
	default:
		return fmt.Errorf("invalid age_basis %q (updated|created)", c.AgeBasis)
	}
	switch c.Format {
	case "markdown", "pretty":
	default:
		return fmt.Errorf("invalid format %q (markdown|pretty)", c.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q (debug|info|warn|error)", c.Log.Level)
	}
	return nil
}
