package service

import "context"

// ActivityIndex resolves activity closures: an activity plus its descendants
// within the tree depth bound.
type ActivityIndex interface {
	// Closure returns the sorted IDs of the activity and its descendants.
	// Returns repository.ErrActivityNotFound for unknown IDs.
	Closure(ctx context.Context, activityID int64) ([]int64, error)
}
