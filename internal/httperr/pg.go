package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// exclusion_violation: the buffered-interval constraint on inspections
const pgExclusionViolation = "23P01"

// IsExclusionConflict reports whether err comes from the Postgres
// exclusion constraint guarding overlapping inspection slots.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation
	}
	return false
}
