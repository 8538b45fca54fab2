// Package lifecycle holds process-wide start and stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks and graceful shutdown.
const DefaultTimeout = 10 * time.Second
