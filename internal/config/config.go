package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/headless/internal/errors"
)

const (
	// ConfigFileName is the default configuration file name.
	ConfigFileName = "headless.yaml"

	// EnvPrefix prefixes environment overrides.
	EnvPrefix = "HEADLESS"

	// DefaultAddress is the default HTTP listen address.
	DefaultAddress = ":8080"

	// DefaultMetricsPath is where the HTTP host exposes Prometheus metrics.
	DefaultMetricsPath = "/metrics"

	// DefaultLivePath is the websocket endpoint for live navigation.
	DefaultLivePath = "/_live"
)

// Config is the complete configuration.
type Config struct {
	Name   string       `yaml:"name" mapstructure:"name" validate:"required"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Layout LayoutConfig `yaml:"layout" mapstructure:"layout"`
}

// ServerConfig configures the HTTP host.
type ServerConfig struct {
	Address     string `yaml:"address" mapstructure:"address" validate:"required"`
	MetricsPath string `yaml:"metricsPath" mapstructure:"metricsPath" validate:"omitempty,startswith=/"`
	LivePath    string `yaml:"livePath" mapstructure:"livePath" validate:"omitempty,startswith=/"`
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human" mapstructure:"human"`
}

// LayoutConfig describes one tab layout.
type LayoutConfig struct {
	// DefaultTab is active until a path selects another tab. Empty means
	// the first tab.
	DefaultTab string `yaml:"defaultTab" mapstructure:"defaultTab"`

	// Strict makes navigations fail when the target template has a
	// parameter no value is known for.
	Strict bool `yaml:"strict" mapstructure:"strict"`

	// Defaults seed parameters on tab changes.
	Defaults map[string]string `yaml:"defaults,omitempty" mapstructure:"defaults"`

	Tabs []TabConfig `yaml:"tabs" mapstructure:"tabs" validate:"required,min=1,unique=Key,dive"`
}

// TabConfig describes one tab.
type TabConfig struct {
	Key      string `yaml:"key" mapstructure:"key" validate:"required"`
	Template string `yaml:"template" mapstructure:"template" validate:"required,route_template"`
	Title    string `yaml:"title" mapstructure:"title"`
}

// Default returns a sample configuration with two tabs sharing an id.
func Default() *Config {
	return &Config{
		Name: "demo",
		Server: ServerConfig{
			Address:     DefaultAddress,
			MetricsPath: DefaultMetricsPath,
			LivePath:    DefaultLivePath,
		},
		Log: LogConfig{Level: "info", Human: true},
		Layout: LayoutConfig{
			DefaultTab: "overview",
			Defaults:   map[string]string{"id": "1"},
			Tabs: []TabConfig{
				{Key: "overview", Template: "/items/:id/overview", Title: "Overview"},
				{Key: "history", Template: "/items/:id/history", Title: "History"},
			},
		},
	}
}

// Load reads the file at path, applies HEADLESS_* environment overrides and
// defaults, and validates the result. An empty path loads defaults and the
// environment only, which fails validation unless tabs come from elsewhere.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("server.address", DefaultAddress)
	v.SetDefault("server.metricsPath", DefaultMetricsPath)
	v.SetDefault("server.livePath", DefaultLivePath)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.human", false)
	v.SetDefault("layout.defaultTab", "")
	v.SetDefault("layout.strict", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.New("H060").
				WithDetail(err.Error()).
				WithLocation(path, 0).
				WithSuggestion("Run 'headless config init' to create a config file").
				Wrap(err)
		}
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.New("H060").
				WithDetail("parse: " + err.Error()).
				WithLocation(path, 0).
				Wrap(err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.New("H060").WithDetail("decode: " + err.Error()).Wrap(err)
	}
	if err := restoreDefaults(cfg, data); err != nil {
		return nil, errors.New("H060").WithDetail("parse: " + err.Error()).WithLocation(path, 0).Wrap(err)
	}

	if err := cfg.Validate(); err != nil {
		var herr *errors.Error
		if stderrors.As(err, &herr) && path != "" {
			herr.WithLocation(path, 0)
		}
		return nil, err
	}
	return cfg, nil
}

// restoreDefaults re-reads layout.defaults with yaml.v3: viper lowercases
// map keys, and parameter names are case-sensitive.
func restoreDefaults(cfg *Config, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	var exact struct {
		Layout struct {
			Defaults map[string]string `yaml:"defaults"`
		} `yaml:"layout"`
	}
	if err := yaml.Unmarshal(data, &exact); err != nil {
		return err
	}
	if exact.Layout.Defaults != nil {
		cfg.Layout.Defaults = exact.Layout.Defaults
	}
	return nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.New("H060").WithDetail("encode: " + err.Error()).Wrap(err)
	}
	if err := enc.Close(); err != nil {
		return errors.New("H060").Wrap(err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.New("H060").WithDetail(err.Error()).Wrap(err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.New("H060").WithDetail(err.Error()).WithLocation(path, 0).Wrap(err)
	}
	return nil
}

// Validate checks struct rules and that the default tab is registered.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return errors.New("H061").WithDetail(describe(err)).Wrap(err)
	}
	if c.Layout.DefaultTab != "" {
		for _, tab := range c.Layout.Tabs {
			if tab.Key == c.Layout.DefaultTab {
				return nil
			}
		}
		return errors.New("H061").
			WithDetail(fmt.Sprintf("defaultTab %q is not a tab key", c.Layout.DefaultTab)).
			WithSuggestion("Set layout.defaultTab to one of the keys under layout.tabs")
	}
	return nil
}

// DefaultKey returns the configured default tab, or the first tab's key.
func (l LayoutConfig) DefaultKey() string {
	if l.DefaultTab != "" || len(l.Tabs) == 0 {
		return l.DefaultTab
	}
	return l.Tabs[0].Key
}
