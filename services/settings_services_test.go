package services

import (
	"testing"

	"api/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingRows(value string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "key", "value"}).AddRow("set-1", "base_quota", value)
}

func TestGetBaseQuotaFallsBackToDefault(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "settings" WHERE key = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	quota, err := GetBaseQuota()
	require.NoError(t, err)
	assert.Equal(t, database.DefaultBaseQuota, quota)
}

func TestGetBaseQuotaFromSetting(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "settings" WHERE key = \$1`).
		WillReturnRows(settingRows("40"))

	quota, err := GetBaseQuota()
	require.NoError(t, err)
	assert.Equal(t, 40, quota)
}

func TestGetBaseQuotaMalformedValue(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "settings" WHERE key = \$1`).
		WillReturnRows(settingRows("not-a-number"))

	quota, err := GetBaseQuota()
	require.NoError(t, err)
	assert.Equal(t, database.DefaultBaseQuota, quota)
}

func TestSetBaseQuotaCreatesSetting(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "settings" WHERE key = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "settings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("set-1"))
	mock.ExpectCommit()

	require.NoError(t, SetBaseQuota(30))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetBaseQuotaUpdatesSetting(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "settings" WHERE key = \$1`).
		WillReturnRows(settingRows("25"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "settings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, SetBaseQuota(30))
	assert.NoError(t, mock.ExpectationsWereMet())
}
