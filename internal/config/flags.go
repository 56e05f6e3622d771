package config

import (
	"github.com/spf13/pflag"
)

const (
	flagConfig        = "config"
	flagDatabasePath  = "db"
	flagHashScheme    = "hash-scheme"
	flagWordScheme    = "word-scheme"
	flagStoreChecksum = "store-checksum"
	flagMaxAttempts   = "max-attempts"
	flagLogLevel      = "log-level"
	flagLogFormat     = "log-format"
)

// RegisterFlags adds the configuration flags to fs. Their defaults are
// informational; parseFlags only applies flags the user set.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(flagConfig, "c", "", "JSON configuration file")
	fs.String(flagDatabasePath, d.DatabasePath, "path of the SQLite database")
	fs.String(flagHashScheme, d.DefaultHashScheme, "default hash scheme for new salts")
	fs.String(flagWordScheme, d.DefaultWordScheme, "default word scheme for new salts")
	fs.Bool(flagStoreChecksum, d.StoreChecksum, "keep a checksum for newly remembered salts")
	fs.Int(flagMaxAttempts, d.MaxAttempts, "master secret prompts before giving up")
	fs.String(flagLogLevel, d.LogLevel, "log level: debug, info, warn or error")
	fs.String(flagLogFormat, d.LogFormat, "log format: text or json")
}

// parseFlags overlays cfg with the flags that were explicitly set.
func parseFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	str := func(name string, dst *string) {
		if err == nil && fs.Changed(name) {
			*dst, err = fs.GetString(name)
		}
	}

	str(flagDatabasePath, &cfg.DatabasePath)
	str(flagHashScheme, &cfg.DefaultHashScheme)
	str(flagWordScheme, &cfg.DefaultWordScheme)
	str(flagLogLevel, &cfg.LogLevel)
	str(flagLogFormat, &cfg.LogFormat)
	if err != nil {
		return err
	}

	if fs.Changed(flagStoreChecksum) {
		if cfg.StoreChecksum, err = fs.GetBool(flagStoreChecksum); err != nil {
			return err
		}
	}
	if fs.Changed(flagMaxAttempts) {
		if cfg.MaxAttempts, err = fs.GetInt(flagMaxAttempts); err != nil {
			return err
		}
	}
	return nil
}
