package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/MKhiriev/go-pass-console/internal/config"
	"github.com/MKhiriev/go-pass-console/internal/logger"
)

// NewConnectSQLite opens the SQLite database described by cfg with the
// configured driver, pins the pool to a single connection and pings it.
// A missing database file is created first.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	dsn := withBusyTimeout(cfg.DSN, cfg.Driver, cfg.BusyTimeout)
	conn, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("driver", cfg.Driver).Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// an in-memory database lives exactly as long as its connection
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error pinging DB: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("driver", cfg.Driver).Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:     conn,
		logger: log,
	}

	return db, nil
}

// withBusyTimeout appends the busy timeout setting to dsn in the syntax the
// driver understands. A zero timeout leaves dsn unchanged.
func withBusyTimeout(dsn, driver string, timeout time.Duration) string {
	if timeout <= 0 {
		return dsn
	}

	var param string
	switch driver {
	case config.DriverMattn:
		param = fmt.Sprintf("_busy_timeout=%d", timeout.Milliseconds())
	case config.DriverModernc:
		param = fmt.Sprintf("_pragma=busy_timeout(%d)", timeout.Milliseconds())
	default:
		return dsn
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}

// isInMemoryDSN reports whether dsn names an in-memory database.
func isInMemoryDSN(dsn string) bool {
	return strings.HasPrefix(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

func createLocalDBFileIfNotExists(dsn string) error {
	if isInMemoryDSN(dsn) || strings.HasPrefix(dsn, "file:") {
		return nil
	}

	dbFile := dsn
	if i := strings.Index(dbFile, "?"); i >= 0 {
		dbFile = dbFile[:i]
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}

		// if not found - create
		f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
