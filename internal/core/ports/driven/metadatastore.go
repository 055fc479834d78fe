package driven

import (
	"context"

	"github.com/probe-labs/scout-cli/internal/core/domain"
)

// MetadataStore holds the typed enrichment computed for each record.
type MetadataStore interface {
	// Save stores or replaces the enrichment for a record ID.
	Save(ctx context.Context, id string, enrichment domain.Enrichment) error

	// Get retrieves the enrichment for a record ID.
	// Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.Enrichment, error)

	// Delete removes the enrichment for a record ID.
	Delete(ctx context.Context, id string) error

	// All returns every stored enrichment keyed by record ID.
	All(ctx context.Context) (map[string]domain.Enrichment, error)

	// Clear removes all enrichments.
	Clear(ctx context.Context) error
}
