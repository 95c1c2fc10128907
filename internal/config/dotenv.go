package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultDotEnvPath is read when no dotenv path was configured.
const defaultDotEnvPath = ".env"

// parseDotEnv reads KEY=VALUE pairs from the dotenv file at path and maps
// them onto a [StructuredConfig] with the same tags used for the process
// environment. The process environment itself is left untouched.
//
// A missing file is not an error when required is false.
func parseDotEnv(path string, required bool) (*StructuredConfig, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return &StructuredConfig{}, nil
		}
		return nil, fmt.Errorf("error reading dotenv file: %w", err)
	}

	cfg := &StructuredConfig{}
	if err = env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("error parsing dotenv configs: %w", err)
	}

	return cfg, nil
}
