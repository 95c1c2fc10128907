// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	db := cfg.Storage.DB
	if db.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	switch db.Driver {
	case DriverMattn, DriverModernc:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	if db.BusyTimeout != nil && *db.BusyTimeout < 0 {
		return fmt.Errorf("%w: negative busy timeout", ErrInvalidStorageConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Logger.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLoggerConfigs, err)
	}

	return nil
}
