// Package delivery defines the entry points that expose the use cases to the outside world.
package delivery

import "context"

// Delivery is a long-running server started by the application.
type Delivery interface {
	// Serve blocks until ctx is cancelled or the server fails.
	Serve(ctx context.Context) error
}
