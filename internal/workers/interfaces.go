// Package workers runs background jobs of the profile server next to the
// transport servers.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthReporter receives the outcome of each health check.
type HealthReporter interface {
	SetServing(serving bool)
}
