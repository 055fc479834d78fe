package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/probe-labs/scout-cli/internal/core/domain"
	"github.com/probe-labs/scout-cli/internal/core/ports/driven"
)

// Ensure SearchIndex implements the interface.
var _ driven.SearchIndex = (*SearchIndex)(nil)

// SearchIndex is an in-memory implementation of driven.SearchIndex.
//
// Matching is an exact contiguous-substring check against the
// precomputed searchable text; relevance is the sum of per-query-word
// occurrence counts. Searchable text is stored lowercased, so a plain
// strings.Count per word is equivalent to a global case-insensitive
// pattern match.
type SearchIndex struct {
	mu      sync.RWMutex
	entries map[string]domain.SearchEntry
	// order preserves insertion order for stable ranking ties.
	order []string
}

// NewSearchIndex creates a new in-memory search index.
func NewSearchIndex() *SearchIndex {
	return &SearchIndex{
		entries: make(map[string]domain.SearchEntry),
	}
}

// Upsert stores or replaces the entry for its ID.
func (s *SearchIndex) Upsert(_ context.Context, entry domain.SearchEntry) error {
	if entry.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[entry.ID]; !ok {
		s.order = append(s.order, entry.ID)
	}
	s.entries[entry.ID] = entry
	return nil
}

// Delete removes the entry for a record ID.
func (s *SearchIndex) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return nil
	}
	delete(s.entries, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Query returns matching IDs with relevance scores, sorted descending.
func (s *SearchIndex) Query(_ context.Context, query string, filters domain.SearchFilters) ([]driven.ScoredID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lowered := strings.ToLower(strings.TrimSpace(query))
	words := strings.Fields(lowered)

	results := make([]driven.ScoredID, 0)
	for _, id := range s.order {
		entry := s.entries[id]
		if !passesFilters(entry, filters) {
			continue
		}
		// Eligibility: the whole query as a contiguous substring.
		if lowered == "" || !strings.Contains(entry.SearchableText, lowered) {
			continue
		}
		relevance := 0
		for _, word := range words {
			relevance += strings.Count(entry.SearchableText, word)
		}
		results = append(results, driven.ScoredID{ID: id, Relevance: relevance})
	}

	// Stable sort keeps insertion order among equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
	return results, nil
}

// All returns every entry in the projection.
func (s *SearchIndex) All(_ context.Context) ([]domain.SearchEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]domain.SearchEntry, 0, len(s.entries))
	for _, id := range s.order {
		entries = append(entries, s.entries[id])
	}
	return entries, nil
}

// Clear removes all entries.
func (s *SearchIndex) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]domain.SearchEntry)
	s.order = nil
	return nil
}

func passesFilters(entry domain.SearchEntry, filters domain.SearchFilters) bool {
	if filters.Category != "" && entry.Category != filters.Category {
		return false
	}
	if filters.Priority != "" && entry.Priority != filters.Priority {
		return false
	}
	if filters.Type != "" && entry.Type != filters.Type {
		return false
	}
	return true
}
