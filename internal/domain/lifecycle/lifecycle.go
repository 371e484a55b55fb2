// Package lifecycle holds shared constants for component start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of infrastructure
// components (HTTP server, database pings).
const DefaultTimeout = 10 * time.Second
