package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-console/internal/config"
	"github.com/MKhiriev/go-pass-console/internal/logger"
)

func Test_withBusyTimeout(t *testing.T) {
	tests := []struct {
		name    string
		dsn     string
		driver  string
		timeout time.Duration
		want    string
	}{
		{"zero timeout", "passwords.db", config.DriverMattn, 0, "passwords.db"},
		{"mattn", "passwords.db", config.DriverMattn, 5 * time.Second, "passwords.db?_busy_timeout=5000"},
		{"modernc", "passwords.db", config.DriverModernc, 250 * time.Millisecond, "passwords.db?_pragma=busy_timeout(250)"},
		{"existing query", "file:x.db?cache=shared", config.DriverMattn, time.Second, "file:x.db?cache=shared&_busy_timeout=1000"},
		{"unknown driver", "passwords.db", "postgres", time.Second, "passwords.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withBusyTimeout(tt.dsn, tt.driver, tt.timeout))
		})
	}
}

func Test_isInMemoryDSN(t *testing.T) {
	assert.True(t, isInMemoryDSN(":memory:"))
	assert.True(t, isInMemoryDSN("file:test?mode=memory&cache=shared"))
	assert.False(t, isInMemoryDSN("passwords.db"))
}

func Test_createLocalDBFileIfNotExists(t *testing.T) {
	dir := t.TempDir()

	t.Run("creates file and parent directories", func(t *testing.T) {
		path := filepath.Join(dir, "nested", "vault", "passwords.db")
		require.NoError(t, createLocalDBFileIfNotExists(path+"?_busy_timeout=10"))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.False(t, info.IsDir())
	})

	t.Run("keeps existing file content", func(t *testing.T) {
		path := filepath.Join(dir, "existing.db")
		require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

		require.NoError(t, createLocalDBFileIfNotExists(path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "data", string(content))
	})

	t.Run("in-memory is skipped", func(t *testing.T) {
		assert.NoError(t, createLocalDBFileIfNotExists(":memory:"))
	})
}

func TestNewConnectSQLite_InMemory(t *testing.T) {
	db, err := NewConnectSQLite(context.Background(), config.ClientDB{
		DSN:         ":memory:",
		Driver:      config.DriverModernc,
		BusyTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestNewConnectSQLite_UnknownDriver(t *testing.T) {
	_, err := NewConnectSQLite(context.Background(), config.ClientDB{
		DSN:    ":memory:",
		Driver: "oracle",
	}, logger.Nop())
	assert.Error(t, err)
}

func TestNewClientStorages_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwords.db")
	ctx := context.Background()

	storages, err := NewClientStorages(ctx, config.ClientStorage{
		DB: config.ClientDB{DSN: path, Driver: config.DriverModernc},
	}, logger.Nop())
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	require.NoError(t, statErr, "database file must be created")

	summaries, err := storages.RecordRepository.ListSummaries(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)

	require.NoError(t, storages.Close())
}

func TestClientStorages_Close_Nil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
	assert.NoError(t, (&ClientStorages{}).Close())
}
