package services

import (
	"sync"
	"time"

	"github.com/probe-labs/scout-cli/internal/core/domain"
)

// StatusTracker aggregates indexing outcomes.
//
// TotalContent is never tracked here: it is recomputed from the live
// primary index at snapshot time, which keeps the counter drift-free.
// The outcome counters increment monotonically until Reset.
type StatusTracker struct {
	mu          sync.RWMutex
	indexed     int
	pending     int
	failed      int
	lastIndexed *time.Time
}

// NewStatusTracker creates a zeroed tracker.
func NewStatusTracker() *StatusTracker {
	return &StatusTracker{}
}

// Record registers one ingestion outcome.
func (t *StatusTracker) Record(outcome domain.IndexOutcome) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch outcome {
	case domain.OutcomeIndexed:
		t.indexed++
		now := time.Now()
		t.lastIndexed = &now
	case domain.OutcomePending:
		t.pending++
	case domain.OutcomeFailed:
		t.failed++
	}
}

// Snapshot returns the current status. totalContent is the live primary
// index size supplied by the caller.
func (t *StatusTracker) Snapshot(totalContent int) domain.IndexingStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()

	status := domain.IndexingStatus{
		TotalContent:   totalContent,
		IndexedContent: t.indexed,
		PendingContent: t.pending,
		FailedContent:  t.failed,
	}
	if t.lastIndexed != nil {
		last := *t.lastIndexed
		status.LastIndexed = &last
	}
	return status
}

// Reset zeroes the counters at the start of a full-discovery pass.
func (t *StatusTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.indexed = 0
	t.pending = 0
	t.failed = 0
	t.lastIndexed = nil
}
