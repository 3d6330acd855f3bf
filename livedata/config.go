/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package livedata

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/robertalv/convex-panel-sub012/config"
)

const (
	cfgKeyRateThreshold = "rateThreshold"
	cfgKeyWindow        = "window"
	cfgKeyMaxSources    = "maxSources"
)

// Config represents a configuration for live data rate limiting.
// Configuration can be loaded in different formats (YAML, JSON) using config.Loader, viper,
// or with json.Unmarshal/yaml.Unmarshal functions directly.
type Config struct {
	// RateThreshold is the number of updates per window above which a controller
	// freezes the exposed value.
	RateThreshold int `mapstructure:"rateThreshold" yaml:"rateThreshold" json:"rateThreshold"`

	// Window is the width of the trailing interval over which the update rate is measured.
	Window config.TimeDuration `mapstructure:"window" yaml:"window" json:"window"`

	// Disabled turns off rate tracking and pausing entirely.
	Disabled bool `mapstructure:"disabled" yaml:"disabled" json:"disabled"`

	// MaxSources is the maximum number of per-source controllers kept by a Group.
	MaxSources int `mapstructure:"maxSources" yaml:"maxSources" json:"maxSources"`

	keyPrefix string
}

var _ config.Config = (*Config)(nil)
var _ config.KeyPrefixProvider = (*Config)(nil)

// ConfigOption is a type for functional options for the Config.
type ConfigOption func(*configOptions)

type configOptions struct {
	keyPrefix string
}

// WithKeyPrefix returns a ConfigOption that sets a key prefix for parsing configuration parameters.
// This prefix will be used by config.Loader.
func WithKeyPrefix(keyPrefix string) ConfigOption {
	return func(o *configOptions) {
		o.keyPrefix = keyPrefix
	}
}

// NewConfig creates a new instance of the Config.
func NewConfig(options ...ConfigOption) *Config {
	var opts configOptions
	for _, opt := range options {
		opt(&opts)
	}
	return &Config{keyPrefix: opts.keyPrefix}
}

// NewDefaultConfig creates a new instance of the Config with default values.
func NewDefaultConfig(options ...ConfigOption) *Config {
	var opts configOptions
	for _, opt := range options {
		opt(&opts)
	}
	return &Config{
		keyPrefix:     opts.keyPrefix,
		RateThreshold: DefaultRateThreshold,
		Window:        config.TimeDuration(time.Second),
		MaxSources:    DefaultGroupMaxSources,
	}
}

// KeyPrefix returns a key prefix with which all configuration parameters should be presented.
// Implements config.KeyPrefixProvider interface.
func (c *Config) KeyPrefix() string {
	return c.keyPrefix
}

// SetProviderDefaults sets default configuration values in config.DataProvider.
// Implements config.Config interface.
func (c *Config) SetProviderDefaults(dp config.DataProvider) {
	dp.SetDefault(cfgKeyRateThreshold, DefaultRateThreshold)
	dp.SetDefault(cfgKeyWindow, time.Second.String())
	dp.SetDefault(cfgKeyMaxSources, DefaultGroupMaxSources)
}

// Set sets configuration values from config.DataProvider.
// Implements config.Config interface.
func (c *Config) Set(dp config.DataProvider) error {
	if err := dp.Unmarshal(c, func(decoderConfig *mapstructure.DecoderConfig) {
		decoderConfig.DecodeHook = MapstructureDecodeHook()
	}); err != nil {
		return err
	}
	return c.Validate()
}

// Validate validates configuration.
func (c *Config) Validate() error {
	if c.RateThreshold < 0 {
		return fmt.Errorf("rate threshold should be >= 0, got %d", c.RateThreshold)
	}
	if c.Window < 0 {
		return fmt.Errorf("window should be >= 0, got %s", c.Window)
	}
	if c.MaxSources < 0 {
		return fmt.Errorf("maximum sources should be >= 0, got %d", c.MaxSources)
	}
	return nil
}

// ToOptions builds controller Options from the configuration.
// Logger, metrics collector, and callbacks are left for the caller to fill in.
func (c *Config) ToOptions() Options {
	return Options{
		RateThreshold: c.RateThreshold,
		Window:        time.Duration(c.Window),
		Disabled:      c.Disabled,
	}
}

// MapstructureDecodeHook returns a DecodeHookFunc for mapstructure to handle custom types.
func MapstructureDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}
