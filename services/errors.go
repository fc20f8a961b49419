package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Typed failures surfaced by the enrollment core. Handlers map each of these to a
// stable HTTP status so callers can discriminate causes without parsing messages.
var (
    ErrOrganizationNotFound  = errors.New("organization not found")
    ErrTemplateNotFound      = errors.New("specialty template not found")
    ErrSpecialtyNotFound     = errors.New("specialty not found")
    ErrStudentNotFound       = errors.New("student not found")
    ErrOperatorNotFound      = errors.New("operator not found")
    ErrDuplicateCertificate  = errors.New("student with this certificate number already exists")
    ErrDuplicateCode         = errors.New("template with this code already exists")
    ErrTemplateAlreadyAssigned = errors.New("template is already assigned to this organization")
    ErrOperatorAlreadyExists = errors.New("organization already has an operator account")
    ErrProvisioningFailed    = errors.New("failed to provision a unique operator login")
)

// QuotaExceededError reports a rejected admission together with the occupancy the
// caller can display
type QuotaExceededError struct {
    Current int
    Quota   int
}

func (e *QuotaExceededError) Error() string {
    return fmt.Sprintf("quota exceeded. Current: %d, Quota: %d", e.Current, e.Quota)
}

// isUniqueViolation reports whether err is a Postgres unique constraint violation,
// optionally restricted to a named constraint
func isUniqueViolation(err error, constraint string) bool {
    var pgErr *pgconn.PgError
    if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
        return false
    }
    return constraint == "" || pgErr.ConstraintName == constraint
}
