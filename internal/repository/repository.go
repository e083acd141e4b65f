package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres SQLSTATE for unique constraint failures
const uniqueViolation = "23505"

// isSQLState reports whether err carries the given Postgres SQLSTATE
func isSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// isUniqueViolation reports whether err is a unique constraint violation,
// so repositories can translate it to their conflict sentinel.
func isUniqueViolation(err error) bool {
	return isSQLState(err, uniqueViolation)
}
