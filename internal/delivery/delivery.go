// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import "context"

// Delivery is a long-running transport surface, started by the application
// lifecycle and stopped through its shutdown hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
