package driving

import "context"

// DiscoveryScheduler drives periodic incremental refresh and periodic
// full re-discovery.
type DiscoveryScheduler interface {
	// Start begins both timers after the bootstrap delay.
	// It blocks until the context is cancelled or Stop is called.
	Start(ctx context.Context) error

	// Stop cancels both timers as a unit and waits for in-flight
	// passes to finish.
	Stop() error
}
