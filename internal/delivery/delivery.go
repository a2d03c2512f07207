// Package delivery defines the entry points that serve requests.
package delivery

import "context"

// Delivery is a long-running transport such as the HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
