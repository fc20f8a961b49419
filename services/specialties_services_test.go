package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateRows(id, code, name string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "code", "name"}).AddRow(id, code, name)
}

func TestAssignTemplateUsesBaseQuota(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "specialty_templates" WHERE id = \$1`).
		WillReturnRows(templateRows("tmpl-1", "09.02.07", "Information systems"))
	mock.ExpectQuery(`SELECT \* FROM "organizations" WHERE id = \$1`).
		WillReturnRows(organizationRows("org-1", "College"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "specialties" WHERE organization_id = \$1 AND template_id = \$2`).
		WillReturnRows(countRows(0))
	mock.ExpectQuery(`SELECT \* FROM "settings" WHERE key = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}).AddRow("set-1", "base_quota", "30"))
	mock.ExpectQuery(`INSERT INTO "specialties"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("spec-1"))
	mock.ExpectCommit()

	specialty, err := AssignTemplate("tmpl-1", "org-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 30, specialty.Quota)
	assert.Equal(t, "09.02.07", specialty.Code)
	assert.Equal(t, "Information systems", specialty.Name)
	require.NotNil(t, specialty.TemplateID)
	assert.Equal(t, "tmpl-1", *specialty.TemplateID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignTemplateExplicitQuota(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "specialty_templates" WHERE id = \$1`).
		WillReturnRows(templateRows("tmpl-1", "09.02.07", "Information systems"))
	mock.ExpectQuery(`SELECT \* FROM "organizations" WHERE id = \$1`).
		WillReturnRows(organizationRows("org-1", "College"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "specialties" WHERE organization_id = \$1 AND template_id = \$2`).
		WillReturnRows(countRows(0))
	mock.ExpectQuery(`INSERT INTO "specialties"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("spec-1"))
	mock.ExpectCommit()

	quota := 50
	specialty, err := AssignTemplate("tmpl-1", "org-1", &quota)
	require.NoError(t, err)
	assert.Equal(t, 50, specialty.Quota)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignTemplateAlreadyAssigned(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "specialty_templates" WHERE id = \$1`).
		WillReturnRows(templateRows("tmpl-1", "09.02.07", "Information systems"))
	mock.ExpectQuery(`SELECT \* FROM "organizations" WHERE id = \$1`).
		WillReturnRows(organizationRows("org-1", "College"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "specialties" WHERE organization_id = \$1 AND template_id = \$2`).
		WillReturnRows(countRows(1))
	mock.ExpectRollback()

	_, err := AssignTemplate("tmpl-1", "org-1", nil)
	require.ErrorIs(t, err, ErrTemplateAlreadyAssigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTemplatePropagatesToSpecialties(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "specialty_templates" WHERE id = \$1`).
		WillReturnRows(templateRows("tmpl-1", "09.02.07", "Information systems"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "specialty_templates" WHERE code = \$1 AND id <> \$2`).
		WillReturnRows(countRows(0))
	mock.ExpectExec(`UPDATE "specialty_templates" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "specialties" SET`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	code := "09.02.08"
	name := "Applied informatics"
	template, err := UpdateTemplate("tmpl-1", &code, &name)
	require.NoError(t, err)
	assert.Equal(t, "09.02.08", template.Code)
	assert.Equal(t, "Applied informatics", template.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTemplateDuplicateCode(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "specialty_templates" WHERE id = \$1`).
		WillReturnRows(templateRows("tmpl-1", "09.02.07", "Information systems"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "specialty_templates" WHERE code = \$1 AND id <> \$2`).
		WillReturnRows(countRows(1))
	mock.ExpectRollback()

	code := "09.02.08"
	_, err := UpdateTemplate("tmpl-1", &code, nil)
	require.ErrorIs(t, err, ErrDuplicateCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetSpecialtyQuotaAllowsLowering(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "specialties" WHERE id = \$1`).
		WillReturnRows(specialtyRows("spec-1", "org-1", 25))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "specialties" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	specialty, err := SetSpecialtyQuota("spec-1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, specialty.Quota)
	assert.NoError(t, mock.ExpectationsWereMet())
}
