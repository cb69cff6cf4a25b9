package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// PORTFOLIO_SERVER_ADDR.
const EnvPrefix = "PORTFOLIO"

// Loader reads configuration from defaults, an optional YAML file, the
// environment and bound command-line flags, lowest to highest precedence.
type Loader struct {
	v     *viper.Viper
	flags map[string]*pflag.Flag
}

func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return &Loader{v: v, flags: map[string]*pflag.Flag{}}
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper) {
	d := NewConfig()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.dev", d.Server.Dev)
	v.SetDefault("server.env", d.Server.Env)
	v.SetDefault("server.timeout", d.Server.Timeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("paths.templates", d.Paths.Templates)
	v.SetDefault("paths.public", d.Paths.Public)
	v.SetDefault("paths.locales", d.Paths.Locales)
	v.SetDefault("content.file", d.Content.File)
	v.SetDefault("site.url", d.Site.URL)
	v.SetDefault("site.lang", d.Site.Lang)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("contact.outbox", d.Contact.Outbox)
	v.SetDefault("session.key", "")
	v.SetDefault("session.secure", false)
	v.SetDefault("analytics.ga4_measurement_id", "")
	v.SetDefault("analytics.gtm_container_id", "")
	v.SetDefault("analytics.debug", false)
}

// BindFlag maps a config key to a command-line flag. The flag only wins when
// it was set explicitly.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("bind %s: flag is nil", key)
	}
	l.flags[key] = flag
	return l.v.BindPFlag(key, flag)
}

// explicit reports whether key was set by a source other than the defaults:
// the environment, the config file or a flag given on the command line.
func (l *Loader) explicit(key string) bool {
	env := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return true
	}
	if l.v.InConfig(key) {
		return true
	}
	f, ok := l.flags[key]
	return ok && f.Changed
}

// LoadConfig loads path (optional when empty), merges env and flags, applies
// defaults and validates.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Path: path, Message: "config file not found", Err: err}
		}
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to read config file", Err: err}
		}
	}

	cfg := NewConfig()
	if err := l.v.Unmarshal(cfg, decodeHook); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse config", Err: err}
	}

	// platform PORT is honored unless the address was configured explicitly
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" && !l.explicit("server.addr") {
		cfg.Server.Addr = ":" + port
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "configuration validation failed", Err: err}
	}
	return cfg, nil
}

func decodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// LoadError describes a failure to produce a usable Config.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	where := e.Path
	if where == "" {
		where = "config"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", where, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", where, e.Message)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load is shorthand for NewLoader().LoadConfig(path).
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}
