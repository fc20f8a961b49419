package services

import (
	"testing"

	"api/models"
	"api/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func organizationRows(id, name string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name"}).AddRow(id, name)
}

func TestCreateOperator(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "organizations" WHERE id = \$1`).
		WillReturnRows(organizationRows("org-1", "Колледж"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE organization_id = \$1 AND role = \$2`).
		WillReturnRows(countRows(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE login = \$1`).
		WillReturnRows(countRows(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-1"))
	mock.ExpectCommit()

	operator, password, err := CreateOperator("org-1")
	require.NoError(t, err)
	assert.Equal(t, "kolledzh", operator.Login)
	assert.Equal(t, models.RoleOperator, operator.Role)
	assert.Len(t, password, utils.GeneratedPasswordLength)
	assert.True(t, utils.CheckPassword(password, operator.PasswordHash))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOperatorLoginCollision(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "organizations" WHERE id = \$1`).
		WillReturnRows(organizationRows("org-1", "Колледж"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE organization_id = \$1 AND role = \$2`).
		WillReturnRows(countRows(0))

	// "kolledzh" is taken, the loop must move on to "kolledzh_1"
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE login = \$1`).
		WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE login = \$1`).
		WillReturnRows(countRows(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-1"))
	mock.ExpectCommit()

	operator, _, err := CreateOperator("org-1")
	require.NoError(t, err)
	assert.Equal(t, "kolledzh_1", operator.Login)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOperatorAlreadyExists(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "organizations" WHERE id = \$1`).
		WillReturnRows(organizationRows("org-1", "Колледж"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE organization_id = \$1 AND role = \$2`).
		WillReturnRows(countRows(1))

	_, _, err := CreateOperator("org-1")
	require.ErrorIs(t, err, ErrOperatorAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOperatorUnknownOrganization(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "organizations" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err := CreateOperator("missing")
	require.ErrorIs(t, err, ErrOrganizationNotFound)
}
