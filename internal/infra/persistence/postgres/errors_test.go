package postgres

import (
	"testing"

	domainerrors "orgs/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\tmp`, escapeLike(`c:\tmp`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestFixtureError(t *testing.T) {
	err := fixtureError(gorm.ErrDuplicatedKey, "buildings")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	assert.ErrorContains(t, err, "duplicate key in buildings")

	err = fixtureError(errors.New(`insert or update violates foreign key constraint "fk"`), "organizations")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	assert.ErrorContains(t, err, "dangling reference in organizations")

	err = fixtureError(assert.AnError, "activities")
	var appErr domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.ErrorIs(t, err, assert.AnError)
}
