package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmitStudentSuccess(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "specialties" WHERE id = \$1 AND organization_id = \$2.*FOR UPDATE`).
		WillReturnRows(specialtyRows("spec-1", "org-1", 25))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students" WHERE specialty_id = \$1`).
		WillReturnRows(countRows(10))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students" WHERE certificate_number = \$1`).
		WillReturnRows(countRows(0))
	mock.ExpectQuery(`INSERT INTO "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("student-1"))
	mock.ExpectCommit()

	student, err := AdmitStudent("org-1", AdmitStudentInput{
		SpecialtyID:       "spec-1",
		FirstName:         "Ivan",
		LastName:          "Petrov",
		CertificateNumber: "123-456",
	})
	require.NoError(t, err)
	assert.Equal(t, "student-1", student.ID)
	assert.Equal(t, "spec-1", student.SpecialtyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdmitStudentQuotaExceeded(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "specialties" WHERE id = \$1 AND organization_id = \$2.*FOR UPDATE`).
		WillReturnRows(specialtyRows("spec-1", "org-1", 2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students" WHERE specialty_id = \$1`).
		WillReturnRows(countRows(2))
	mock.ExpectRollback()

	_, err := AdmitStudent("org-1", AdmitStudentInput{
		SpecialtyID:       "spec-1",
		FirstName:         "Ivan",
		LastName:          "Petrov",
		CertificateNumber: "123-456",
	})
	var quotaErr *QuotaExceededError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, 2, quotaErr.Current)
	assert.Equal(t, 2, quotaErr.Quota)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdmitStudentDuplicateCertificate(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "specialties" WHERE id = \$1 AND organization_id = \$2.*FOR UPDATE`).
		WillReturnRows(specialtyRows("spec-1", "org-1", 25))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students" WHERE specialty_id = \$1`).
		WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students" WHERE certificate_number = \$1`).
		WillReturnRows(countRows(1))
	mock.ExpectRollback()

	_, err := AdmitStudent("org-1", AdmitStudentInput{
		SpecialtyID:       "spec-1",
		FirstName:         "Ivan",
		LastName:          "Petrov",
		CertificateNumber: "123-456",
	})
	require.ErrorIs(t, err, ErrDuplicateCertificate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdmitStudentUnknownSpecialty(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "specialties" WHERE id = \$1 AND organization_id = \$2.*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := AdmitStudent("org-1", AdmitStudentInput{SpecialtyID: "missing", CertificateNumber: "1"})
	require.ErrorIs(t, err, ErrSpecialtyNotFound)
}
