package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envConfig        = "NARVI_CONFIG"
	envDatabasePath  = "NARVI_DB"
	envHashScheme    = "NARVI_HASH_SCHEME"
	envWordScheme    = "NARVI_WORD_SCHEME"
	envStoreChecksum = "NARVI_STORE_CHECKSUM"
	envMaxAttempts   = "NARVI_MAX_ATTEMPTS"
	envLogLevel      = "NARVI_LOG_LEVEL"
	envLogFormat     = "NARVI_LOG_FORMAT"
)

var envKeys = []string{
	envConfig, envDatabasePath, envHashScheme, envWordScheme,
	envStoreChecksum, envMaxAttempts, envLogLevel, envLogFormat,
}

// parseEnv overlays cfg with NARVI_* values. Values from envFile are read
// first; variables set in the process environment replace them. The file
// does not modify the process environment. The merged values are returned
// so the caller can read NARVI_CONFIG.
func parseEnv(cfg *Config, envFile string) (map[string]string, error) {
	values := map[string]string{}
	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		default:
			values = fileValues
		}
	}
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			values[k] = v
		}
	}

	if v, ok := values[envDatabasePath]; ok {
		cfg.DatabasePath = v
	}
	if v, ok := values[envHashScheme]; ok {
		cfg.DefaultHashScheme = v
	}
	if v, ok := values[envWordScheme]; ok {
		cfg.DefaultWordScheme = v
	}
	if v, ok := values[envStoreChecksum]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envStoreChecksum, err)
		}
		cfg.StoreChecksum = b
	}
	if v, ok := values[envMaxAttempts]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envMaxAttempts, err)
		}
		cfg.MaxAttempts = n
	}
	if v, ok := values[envLogLevel]; ok {
		cfg.LogLevel = v
	}
	if v, ok := values[envLogFormat]; ok {
		cfg.LogFormat = v
	}
	return values, nil
}
