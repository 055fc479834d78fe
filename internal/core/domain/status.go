package domain

import "time"

// IndexOutcome is the result of one ingestion attempt.
type IndexOutcome string

const (
	// OutcomeIndexed marks a committed record.
	OutcomeIndexed IndexOutcome = "indexed"
	// OutcomePending marks a capture queued but not yet committed.
	OutcomePending IndexOutcome = "pending"
	// OutcomeFailed marks an ingestion that errored during
	// classify/enrich/commit.
	OutcomeFailed IndexOutcome = "failed"
)

// IndexingStatus holds process-wide indexing counters.
// TotalContent is always recomputed from the live primary index at
// snapshot time; the remaining counters increment per outcome and reset
// at the start of each full-discovery pass.
type IndexingStatus struct {
	// TotalContent is the live primary index size.
	TotalContent int `json:"total_content"`

	// IndexedContent counts committed records since the last reset.
	IndexedContent int `json:"indexed_content"`

	// PendingContent counts queued captures since the last reset.
	PendingContent int `json:"pending_content"`

	// FailedContent counts failed ingestions since the last reset.
	FailedContent int `json:"failed_content"`

	// LastIndexed is the time of the most recent commit, nil before
	// the first one.
	LastIndexed *time.Time `json:"last_indexed,omitempty"`
}
