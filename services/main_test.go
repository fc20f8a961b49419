package services

import (
	"testing"

	"api/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB swaps the global connection for a sqlmock-backed one for the duration
// of a test
func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn, PreferSimpleProtocol: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	previous := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = previous
		conn.Close()
	})
	return mock
}

func specialtyRows(id, organizationID string, quota int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "organization_id", "template_id", "code", "name", "quota"}).
		AddRow(id, organizationID, nil, "09.02.07", "Information systems", quota)
}

func countRows(count int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(count)
}
