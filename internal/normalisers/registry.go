package normalisers

import (
	"context"
	"fmt"

	"github.com/probe-labs/scout-cli/internal/core/domain"
	"github.com/probe-labs/scout-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry maps capture provenances to their normalisers.
type Registry struct {
	normalisers map[domain.Source]driven.Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		normalisers: make(map[domain.Source]driven.Normaliser),
	}
}

// Register adds a normaliser under its source.
func (r *Registry) Register(n driven.Normaliser) {
	r.normalisers[n.Source()] = n
}

// Build dispatches the raw event to the normaliser for its source.
func (r *Registry) Build(ctx context.Context, raw *domain.RawEvent, source domain.Source) (*domain.ContentRecord, error) {
	n, ok := r.normalisers[source]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedSource, source)
	}
	return n.Build(ctx, raw)
}
