// Package delivery defines the transport entry points started by cmd binaries.
package delivery

import "context"

// Delivery is a long running server (HTTP API, push worker).
type Delivery interface {
	Serve(ctx context.Context) error
}
