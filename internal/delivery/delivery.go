// Package delivery defines the long-running entry points started by the fx applications.
package delivery

import "context"

// Delivery is a server or loop that runs until its context is cancelled or it is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
