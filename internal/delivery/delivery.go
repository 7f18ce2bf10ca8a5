// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running server (HTTP, worker, ...) started by main.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
