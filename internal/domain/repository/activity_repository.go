package repository

import (
	"context"

	"orgs/internal/domain/entity"
	"orgs/internal/errors"
)

// Domain-specific errors for activity persistence.
var (
	// ErrActivityNotFound is returned when an activity is not found.
	ErrActivityNotFound = errors.New("activity not found")
)

// ActivityRepository defines the interface for activity read operations.
type ActivityRepository interface {
	// FindActivityByID retrieves an activity by its ID.
	// Returns ErrActivityNotFound if it does not exist.
	FindActivityByID(ctx context.Context, id int64) (*entity.Activity, error)

	// ListActivities returns the whole activity table as parent-id adjacency rows.
	ListActivities(ctx context.Context) ([]*entity.Activity, error)
}
