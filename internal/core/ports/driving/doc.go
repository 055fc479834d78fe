// Package driving defines the interfaces through which collaborators
// drive the engine: source observers hand it raw captures, consumers
// read ranked search results and insights, and the scheduler triggers
// re-scans.
package driving
