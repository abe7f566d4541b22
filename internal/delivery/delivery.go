// Package delivery defines the contract every inbound adapter fulfills.
package delivery

import "context"

// Delivery is a long-running inbound adapter (e.g. the HTTP server).
type Delivery interface {
	// Serve blocks until the adapter stops or the context is cancelled.
	Serve(ctx context.Context) error
}
