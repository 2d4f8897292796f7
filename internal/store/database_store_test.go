package store

import (
	"context"
	"os"
	"testing"

	"github.com/avc-dev/link-shortener/internal/config/db"
	"github.com/avc-dev/link-shortener/internal/migrations"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupTestDB создает тестовую базу данных для интеграционных тестов.
// Тесты пропускаются, если TEST_DATABASE_DSN не задан.
func setupTestDB(t *testing.T) (*DatabaseStore, db.Database) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	database, err := db.NewConfig(dsn).Connect(context.Background())
	require.NoError(t, err)

	// Мигратор закрывает переданный *sql.DB, пул остается рабочим
	migrator := migrations.NewMigrator(database.DB(), zap.NewNop())
	require.NoError(t, migrator.RunUp())

	t.Cleanup(database.Close)

	return NewDatabaseStore(database.Pool()), database
}

func TestDatabaseStore_Contract(t *testing.T) {
	store, database := setupTestDB(t)

	runLinkStoreContract(t, func(t *testing.T) linkStore {
		_, err := database.Pool().Exec(context.Background(), "TRUNCATE links RESTART IDENTITY")
		require.NoError(t, err)
		return store
	})
}
