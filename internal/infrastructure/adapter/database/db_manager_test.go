package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/time"
)

func TestManager_Migrate(t *testing.T) {
	ctx := context.Background()

	t.Run("Requires a connection", func(t *testing.T) {
		m := NewManager(DefaultConfig(filepath.Join(t.TempDir(), "default.db")), logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())

		assert.Nil(t, m.MigrationManager())
		assert.Error(t, m.Migrate(ctx))
	})

	t.Run("Records the schema version", func(t *testing.T) {
		testDB := NewTestDBManager(t, logger.NewNoopLogger())

		migrationMgr := testDB.Manager.MigrationManager()
		require.NotNil(t, migrationMgr)

		version, err := migrationMgr.GetCurrentVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, migration.CurrentSchemaVersion, version)

		require.NoError(t, testDB.Manager.Migrate(ctx))
		assert.Equal(t, int64(0), testDB.CountCards(t))
	})
}
