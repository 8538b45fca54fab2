package repository

import (
	"context"

	"orgs/internal/domain/entity"
	"orgs/internal/errors"

	"github.com/paulmach/orb"
)

// Domain-specific errors for building persistence.
var (
	// ErrBuildingNotFound is returned when a building is not found.
	ErrBuildingNotFound = errors.New("building not found")
)

// BuildingRepository defines the interface for building read operations.
type BuildingRepository interface {
	// FindBuildingByID retrieves a building by its ID.
	// Returns ErrBuildingNotFound if it does not exist.
	FindBuildingByID(ctx context.Context, id int64) (*entity.Building, error)

	// FindBuildingsInBound returns buildings whose coordinates lie inside the bound, edges included,
	// ordered by ID. It is the coarse pre-filter for geo searches.
	FindBuildingsInBound(ctx context.Context, bound orb.Bound) ([]*entity.Building, error)
}
