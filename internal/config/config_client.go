package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
	// Driver is the database/sql driver name.
	Driver string
	// BusyTimeout is applied as the SQLite busy timeout pragma.
	BusyTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientLogger contains parsed logging settings.
type ClientLogger struct {
	Level zerolog.Level
	File  string
}

// ClientUI contains console preferences.
type ClientUI struct {
	NoColor         bool
	RevealPasswords bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Storage contains client storage settings.
	Storage ClientStorage
	// Logger contains the log level and file.
	Logger ClientLogger
	// UI contains console rendering preferences.
	UI ClientUI
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], validates it and maps
// it to a [ClientConfig] with parsed values.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLoggerConfigs, err)
	}

	return &ClientConfig{
		Storage: ClientStorage{
			DB: ClientDB{
				DSN:         cfg.Storage.DB.DSN,
				Driver:      cfg.Storage.DB.Driver,
				BusyTimeout: deref(cfg.Storage.DB.BusyTimeout),
			},
		},
		Logger: ClientLogger{
			Level: level,
			File:  cfg.Logger.File,
		},
		UI: ClientUI{
			NoColor:         deref(cfg.UI.NoColor),
			RevealPasswords: deref(cfg.UI.RevealPasswords),
		},
	}, nil
}
