package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL error classes relevant to the repositories. Conflict detection
// deliberately lives here, in the storage backend, not in handler code.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeForeignKeyViolation  = "23503"
	codeUniqueViolation      = "23505"
)

func isConflict(err error) bool {
	return hasCode(err, codeSerializationFailure) || hasCode(err, codeDeadlockDetected)
}

func isForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

func isUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

func hasCode(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}
