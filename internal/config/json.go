package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	Storage struct {
		DB struct {
			DSN         string   `json:"dsn"`
			Driver      string   `json:"driver"`
			BusyTimeout *Duration `json:"busy_timeout"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Logger struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"logger,omitempty"`

	UI struct {
		NoColor         *bool `json:"no_color"`
		RevealPasswords *bool `json:"reveal_passwords"`
	} `json:"ui,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN:         jsonCfg.Storage.DB.DSN,
				Driver:      jsonCfg.Storage.DB.Driver,
				BusyTimeout: (*time.Duration)(jsonCfg.Storage.DB.BusyTimeout),
			},
		},
		Logger: Logger{
			Level: jsonCfg.Logger.Level,
			File:  jsonCfg.Logger.File,
		},
		UI: UI{
			NoColor:         jsonCfg.UI.NoColor,
			RevealPasswords: jsonCfg.UI.RevealPasswords,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
