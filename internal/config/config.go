// Package config holds the runtime settings for the portfolio server and CLI.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// Config is the full runtime configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Paths     PathsConfig     `mapstructure:"paths"`
	Content   ContentConfig   `mapstructure:"content"`
	Site      SiteConfig      `mapstructure:"site"`
	Log       LogConfig       `mapstructure:"log"`
	Contact   ContactConfig   `mapstructure:"contact"`
	Session   SessionConfig   `mapstructure:"session"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	Dev             bool          `mapstructure:"dev"`
	Env             string        `mapstructure:"env"`
	Timeout         time.Duration `mapstructure:"timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type PathsConfig struct {
	Templates string `mapstructure:"templates"`
	Public    string `mapstructure:"public"`
	Locales   string `mapstructure:"locales"`
}

// ContentConfig points at the optional portfolio.yaml override file.
type ContentConfig struct {
	File string `mapstructure:"file"`
}

type SiteConfig struct {
	// URL is the public origin used for canonical links and JSON-LD.
	URL  string `mapstructure:"url"`
	Lang string `mapstructure:"lang"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ContactConfig selects where accepted contact messages go: "memory" keeps
// them in process, anything else is a JSONL file path.
type ContactConfig struct {
	Outbox string `mapstructure:"outbox"`
}

type SessionConfig struct {
	Key    string `mapstructure:"key"`
	Secure bool   `mapstructure:"secure"`
}

type AnalyticsConfig struct {
	GA4MeasurementID string `mapstructure:"ga4_measurement_id"`
	GTMContainerID   string `mapstructure:"gtm_container_id"`
	Debug            bool   `mapstructure:"debug"`
}

const (
	DefaultAddr            = ":8080"
	DefaultEnv             = "production"
	DefaultTimeout         = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultTemplatesDir    = "templates"
	DefaultPublicDir       = "public"
	DefaultLocalesDir      = "locales"
	DefaultContentFile     = "portfolio.yaml"
	DefaultLang            = "en"
	DefaultLogLevel        = "info"
	OutboxMemory           = "memory"
)

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			Env:             DefaultEnv,
			Timeout:         DefaultTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Paths: PathsConfig{
			Templates: DefaultTemplatesDir,
			Public:    DefaultPublicDir,
			Locales:   DefaultLocalesDir,
		},
		Content: ContentConfig{File: DefaultContentFile},
		Site:    SiteConfig{Lang: DefaultLang},
		Log:     LogConfig{Level: DefaultLogLevel},
		Contact: ContactConfig{Outbox: OutboxMemory},
	}
}

// ApplyDefaults fills zero values left by a partial config file.
func (c *Config) ApplyDefaults() {
	d := NewConfig()
	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.Env == "" {
		c.Server.Env = d.Server.Env
	}
	if c.Server.Timeout <= 0 {
		c.Server.Timeout = d.Server.Timeout
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
	if c.Paths.Templates == "" {
		c.Paths.Templates = d.Paths.Templates
	}
	if c.Paths.Public == "" {
		c.Paths.Public = d.Paths.Public
	}
	if c.Paths.Locales == "" {
		c.Paths.Locales = d.Paths.Locales
	}
	if c.Site.Lang == "" {
		c.Site.Lang = d.Site.Lang
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Contact.Outbox == "" {
		c.Contact.Outbox = d.Contact.Outbox
	}
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Site.URL != "" {
		u, err := url.Parse(c.Site.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("site.url: %q is not an absolute URL", c.Site.URL))
		}
	}
	if c.Server.Env == "production" && c.Session.Key != "" && len(c.Session.Key) < 32 {
		errs = append(errs, errors.New("session.key: must be at least 32 bytes"))
	}
	return errors.Join(errs...)
}

// IsMemoryOutbox reports whether contact messages stay in process.
func (c *Config) IsMemoryOutbox() bool {
	return strings.EqualFold(strings.TrimSpace(c.Contact.Outbox), OutboxMemory)
}
