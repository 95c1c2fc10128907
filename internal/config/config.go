// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported database/sql driver names.
const (
	// DriverMattn is the cgo SQLite driver github.com/mattn/go-sqlite3.
	DriverMattn = "sqlite3"
	// DriverModernc is the pure Go SQLite driver modernc.org/sqlite.
	DriverModernc = "sqlite"
)

// StructuredConfig is the top-level configuration container for the
// application. It aggregates all sub-configurations and is populated by
// merging values from flags, environment variables, a dotenv file, an
// optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds configuration of the local record database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Logger holds log level and destination.
	Logger Logger `envPrefix:"LOG_"`

	// UI holds console rendering preferences.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the path to a dotenv file. When empty, ".env" in the
	// working directory is read if it exists.
	// Populated via the DOTENV_FILE environment variable or the -env-file flag.
	DotEnvPath string `env:"DOTENV_FILE"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the database file path or SQLite URI (e.g. "passwords.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`

	// Driver selects the database/sql driver: "sqlite3" (mattn) or
	// "sqlite" (modernc).
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// BusyTimeout is how long SQLite waits on a locked database before
	// failing a statement (e.g. "5s"). Nil means no source has set it, so an
	// explicit zero from a higher priority source still disables the wait.
	// Env: STORAGE_DB_BUSY_TIMEOUT
	BusyTimeout *time.Duration `env:"BUSY_TIMEOUT"`
}

// Logger holds logging settings.
type Logger struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file path. Empty means "passman.log" next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// UI holds console rendering preferences. Fields are pointers so that an
// explicit false overrides true from a lower priority source.
type UI struct {
	// NoColor disables ANSI styling of console output.
	// Env: UI_NO_COLOR
	NoColor *bool `env:"NO_COLOR"`

	// RevealPasswords shows passwords in record details without toggling.
	// Env: UI_REVEAL_PASSWORDS
	RevealPasswords *bool `env:"REVEAL_PASSWORDS"`
}

// defaultConfig returns the values used for fields no source has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN:         "passwords.db",
				Driver:      DriverMattn,
				BusyTimeout: ptr(5 * time.Second),
			},
		},
		Logger: Logger{
			Level: "info",
		},
		UI: UI{
			NoColor:         ptr(false),
			RevealPasswords: ptr(false),
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. args are the command-line
// arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withDotEnv().
		withJSON().
		withDefaults().
		build()
}
