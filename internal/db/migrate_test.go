package db

import (
	"path/filepath"
	"testing"

	"sthira/internal/config"
	"sthira/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrateSQLite(t *testing.T) {
	cfg := &config.Config{StoreBackend: config.BackendSQLite, SQLitePath: filepath.Join(t.TempDir(), "sthira.db")}
	db, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&domain.StoreBlob{}))
}

func TestOpen_NonSQLBackend(t *testing.T) {
	_, err := Open(&config.Config{StoreBackend: config.BackendRedis})
	assert.Error(t, err)
}
