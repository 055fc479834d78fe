package memory

import (
	"context"
	"sync"

	"github.com/probe-labs/scout-cli/internal/core/domain"
	"github.com/probe-labs/scout-cli/internal/core/ports/driven"
)

// Ensure MetadataStore implements the interface.
var _ driven.MetadataStore = (*MetadataStore)(nil)

// MetadataStore is an in-memory implementation of driven.MetadataStore.
type MetadataStore struct {
	mu          sync.RWMutex
	enrichments map[string]domain.Enrichment
}

// NewMetadataStore creates a new in-memory metadata store.
func NewMetadataStore() *MetadataStore {
	return &MetadataStore{
		enrichments: make(map[string]domain.Enrichment),
	}
}

// Save stores or replaces the enrichment for a record ID.
func (s *MetadataStore) Save(_ context.Context, id string, enrichment domain.Enrichment) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enrichments[id] = enrichment
	return nil
}

// Get retrieves the enrichment for a record ID.
func (s *MetadataStore) Get(_ context.Context, id string) (*domain.Enrichment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	enrichment, ok := s.enrichments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &enrichment, nil
}

// Delete removes the enrichment for a record ID.
func (s *MetadataStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.enrichments, id)
	return nil
}

// All returns every stored enrichment keyed by record ID.
func (s *MetadataStore) All(_ context.Context) (map[string]domain.Enrichment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.Enrichment, len(s.enrichments))
	for id, e := range s.enrichments {
		out[id] = e
	}
	return out, nil
}

// Clear removes all enrichments.
func (s *MetadataStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enrichments = make(map[string]domain.Enrichment)
	return nil
}
