package driven

import (
	"context"

	"github.com/probe-labs/scout-cli/internal/core/domain"
)

// ContentStore is the primary index of content records.
type ContentStore interface {
	// Save stores or replaces a record under its ID.
	Save(ctx context.Context, record *domain.ContentRecord) error

	// Get retrieves a record by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.ContentRecord, error)

	// HasTextSource reports whether any record shares the given
	// (text, source) pair. This is the deduplication lookup; semantics
	// must match a full scan over List.
	HasTextSource(ctx context.Context, text string, source domain.Source) (bool, error)

	// Delete removes a record by ID. Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id string) error

	// List returns all records in the store.
	List(ctx context.Context) ([]domain.ContentRecord, error)

	// Count returns the live store size.
	Count(ctx context.Context) (int, error)

	// Clear removes all records.
	Clear(ctx context.Context) error
}
