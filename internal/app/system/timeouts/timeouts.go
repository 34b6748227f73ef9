// Package timeouts holds the shared context deadlines for database-touching
// operations that run outside a request's own deadline.
package timeouts

import "time"

const (
	short = 5 * time.Second
)

// Short returns the deadline for single-document lookups, such as the
// per-request admin session fetch and health-check pings.
func Short() time.Duration {
	return short
}
