package driven

import (
	"context"

	"github.com/probe-labs/scout-cli/internal/core/domain"
)

// RelationshipGraph maintains directed edges between record identities.
type RelationshipGraph interface {
	// Add appends a record's relationships to its adjacency list.
	// Edges are deduplicated per (type, target); re-adding the same
	// record is therefore safe across re-scans.
	Add(ctx context.Context, id string, relationships []domain.Relationship) error

	// Neighbors returns the ordered adjacency list for a record ID.
	// Returns an empty slice, never nil, for unknown IDs.
	Neighbors(ctx context.Context, id string) ([]domain.Relationship, error)

	// Remove drops a record's adjacency list.
	Remove(ctx context.Context, id string) error

	// Stats aggregates the graph. recordCount is the primary index size;
	// the average divides total edges by it (0 when recordCount is 0).
	Stats(ctx context.Context, recordCount int) (domain.RelationshipStats, error)

	// All returns the full adjacency, keyed by record ID.
	All(ctx context.Context) (map[string][]domain.Relationship, error)

	// Clear removes all adjacency lists.
	Clear(ctx context.Context) error
}
