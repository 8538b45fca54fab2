package postgres

import (
	"strings"

	domainerrors "orgs/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") || strings.Contains(errMsg, "23503")
}

// fixtureError converts an insert failure into a domain error naming the rejected table.
func fixtureError(err error, table string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrInvalidArgument.WithDetails("duplicate key in " + table)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrInvalidArgument.WithDetails("dangling reference in " + table)
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert into "+table)
	}
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
