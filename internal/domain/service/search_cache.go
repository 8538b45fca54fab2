package service

import (
	"context"
	"time"
)

// SearchCache stores serialized search results keyed by their normalized filter.
type SearchCache interface {
	// Get returns the cached payload and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores payload under key for ttl.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
