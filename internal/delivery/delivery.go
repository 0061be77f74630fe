// Package delivery defines the contract every transport surface of the
// application satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// entrypoint and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
