package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from a zero value.
type JsonConfig struct {
	DatabasePath      *string `json:"database_path"`
	DefaultHashScheme *string `json:"default_hash_scheme"`
	DefaultWordScheme *string `json:"default_word_scheme"`
	StoreChecksum     *bool   `json:"store_checksum"`
	MaxAttempts       *int    `json:"max_attempts"`
	LogLevel          *string `json:"log_level"`
	LogFormat         *string `json:"log_format"`
}

// parseJson overlays cfg with the keys present in the JSON file at path.
// An empty path loads nothing.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	setIf(&cfg.DatabasePath, jc.DatabasePath)
	setIf(&cfg.DefaultHashScheme, jc.DefaultHashScheme)
	setIf(&cfg.DefaultWordScheme, jc.DefaultWordScheme)
	setIf(&cfg.StoreChecksum, jc.StoreChecksum)
	setIf(&cfg.MaxAttempts, jc.MaxAttempts)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
