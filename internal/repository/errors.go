package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrForeignKeyViolation = "23503"
	PgErrUniqueViolation     = "23505"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsConflict нарушение уникальности или внешнего ключа.
func IsConflict(err error) bool {
	return IsPgErrorWithCode(err, PgErrUniqueViolation) ||
		IsPgErrorWithCode(err, PgErrForeignKeyViolation)
}
