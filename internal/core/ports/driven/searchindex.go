package driven

import (
	"context"

	"github.com/probe-labs/scout-cli/internal/core/domain"
)

// SearchIndex is the denormalised, queryable projection of the primary
// index. It must contain an entry iff the primary index contains the
// corresponding record.
type SearchIndex interface {
	// Upsert stores or replaces the entry for its ID.
	Upsert(ctx context.Context, entry domain.SearchEntry) error

	// Delete removes the entry for a record ID.
	Delete(ctx context.Context, id string) error

	// Query returns IDs of entries whose searchable text contains the
	// lowercased query as a substring and which pass every supplied
	// filter, paired with their relevance scores, sorted descending.
	// The sort is stable. Returns an empty slice when nothing matches.
	Query(ctx context.Context, query string, filters domain.SearchFilters) ([]ScoredID, error)

	// All returns every entry in the projection.
	All(ctx context.Context) ([]domain.SearchEntry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}

// ScoredID pairs a record identity with its query relevance.
type ScoredID struct {
	// ID is the record identity.
	ID string

	// Relevance is the summed per-query-word occurrence count.
	Relevance int
}
