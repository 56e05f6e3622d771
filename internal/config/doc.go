// Package config loads runtime configuration for the narvi CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: a .env file (see parseEnv), then NARVI_* variables from
//     the process environment, which win over the file.
//  3. Optional JSON file (see parseJson) named by --config or NARVI_CONFIG.
//  4. Command-line flags (see parseFlags), applied only when set.
//
// Supported flags
//
//	-c, --config string        JSON configuration file
//	    --db string            path of the SQLite database
//	    --hash-scheme string   default hash scheme for new salts
//	    --word-scheme string   default word scheme for new salts
//	    --store-checksum       keep a checksum for newly remembered salts
//	    --max-attempts int     master secret prompts before giving up
//	    --log-level string     debug, info, warn or error
//	    --log-format string    text or json
//
// # JSON schema
//
// Keys are snake_case; absent keys leave the earlier value in place:
//
//	{
//	  "database_path": "~/.narvi/narvi.db",
//	  "default_hash_scheme": "scrypt-18-8-1-512",
//	  "default_word_scheme": "base64-16-!@-aA1",
//	  "store_checksum": false,
//	  "max_attempts": 3,
//	  "log_level": "warn",
//	  "log_format": "text"
//	}
package config
