package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
)

// Config holds runtime settings for the narvi CLI.
//
// StoreChecksum is the default answer when a new salt is remembered; a
// salt stored without a checksum is never verified.
type Config struct {
	DatabasePath      string `validate:"required"`
	DefaultHashScheme string `validate:"required"`
	DefaultWordScheme string `validate:"required"`
	StoreChecksum     bool
	MaxAttempts       int    `validate:"gte=1"`
	LogLevel          string `validate:"oneof=debug info warn error"`
	LogFormat         string `validate:"oneof=text json"`
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "~/.narvi/narvi.db"
	c.DefaultHashScheme = "scrypt-18-8-1-512"
	c.DefaultWordScheme = "base64-16-!@-aA1"
	c.StoreChecksum = false
	c.MaxAttempts = 3
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// Options selects the external sources LoadConfig reads.
type Options struct {
	// EnvFile is read when it exists; an empty value skips it.
	EnvFile string
	// Flags holds the flags registered by RegisterFlags; nil skips them.
	Flags *pflag.FlagSet
}

var validate = validator.New()

// LoadConfig constructs a Config, applies defaults, then overlays the
// environment, the JSON file and the flags. Later sources take precedence
// over earlier ones.
func LoadConfig(opts Options) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	env, err := parseEnv(cfg, opts.EnvFile)
	if err != nil {
		return nil, err
	}

	jsonPath := env[envConfig]
	if opts.Flags != nil && opts.Flags.Changed(flagConfig) {
		jsonPath, _ = opts.Flags.GetString(flagConfig)
	}
	if err := parseJson(cfg, jsonPath); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		if err := parseFlags(cfg, opts.Flags); err != nil {
			return nil, err
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
