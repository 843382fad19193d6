package server

import "context"

// Server defines the lifecycle contract for the servers managed by this
// package.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns an error only when serving failed.
	Run(ctx context.Context) error
}
