package config

import (
	"flag"
	"io"
	"time"
)

// parseFlags parses the command-line arguments (without the program name)
// into a [StructuredConfig].
//
// Flags:
//
//	-d database DSN (file path or SQLite URI)
//	-driver database/sql driver: sqlite3 or sqlite
//	-busy-timeout SQLite busy timeout (e.g. "5s")
//	-log-level zerolog level name
//	-log-file log file path
//	-no-color disable colored output
//	-reveal show passwords in record details
//	-c/-config json file path with configs
//	-env-file dotenv file path
//
// Only flags present in args are set on the result, so "-no-color=false"
// and "-busy-timeout 0" override other sources.
//
// On -h/-help the usage is written to output and flag.ErrHelp is returned.
func parseFlags(args []string, output io.Writer) (*StructuredConfig, error) {
	var (
		databaseDSN     string
		driver          string
		busyTimeout     time.Duration
		logLevel        string
		logFile         string
		noColor         bool
		revealPasswords bool
		jsonConfigPath  string
		dotEnvPath      string
	)

	fs := flag.NewFlagSet("passman", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver: sqlite3 or sqlite")
	fs.DurationVar(&busyTimeout, "busy-timeout", 0, "SQLite busy timeout (e.g., 5s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&revealPasswords, "reveal", false, "Show passwords in record details")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dotEnvPath, "env-file", "", "Dotenv file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: driver,
			},
		},
		Logger: Logger{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
		DotEnvPath:   dotEnvPath,
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "busy-timeout":
			cfg.Storage.DB.BusyTimeout = &busyTimeout
		case "no-color":
			cfg.UI.NoColor = &noColor
		case "reveal":
			cfg.UI.RevealPasswords = &revealPasswords
		}
	})

	return cfg, nil
}
