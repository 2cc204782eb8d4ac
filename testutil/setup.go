package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	dbsqlite "github.com/lunaria-games/mmoserver/db/sqlite"
	"github.com/lunaria-games/mmoserver/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SetupTestDB creates an in-memory SQLite DB and runs AutoMigrate.
// Each call gets its own uniquely named shared-cache database, so the
// connection pool sees one database and parallel tests stay isolated.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := dbsqlite.Open(dsn)
	require.NoError(t, err, "SetupTestDB: Open")
	require.NoError(t, model.AutoMigrate(db), "SetupTestDB: AutoMigrate")
	return db
}
