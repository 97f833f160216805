package ports

import "context"

// Contract for sending a route instruction to a driver.
type Notifier interface {
	// Return a human-readable confirmation of the sent instruction.
	Notify(ctx context.Context, driver string, route string) (string, error)
}
