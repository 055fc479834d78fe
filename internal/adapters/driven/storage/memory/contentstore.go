package memory

import (
	"context"
	"sync"

	"github.com/probe-labs/scout-cli/internal/core/domain"
	"github.com/probe-labs/scout-cli/internal/core/ports/driven"
)

// Ensure ContentStore implements the interface.
var _ driven.ContentStore = (*ContentStore)(nil)

// textSourceKey is the secondary index key for duplicate detection.
type textSourceKey struct {
	text   string
	source domain.Source
}

// ContentStore is an in-memory implementation of driven.ContentStore.
// A secondary index keyed by (text, source) makes the duplicate lookup
// O(1) while preserving the scan semantics exactly.
type ContentStore struct {
	mu      sync.RWMutex
	records map[string]domain.ContentRecord
	byText  map[textSourceKey]map[string]struct{}
}

// NewContentStore creates a new in-memory content store.
func NewContentStore() *ContentStore {
	return &ContentStore{
		records: make(map[string]domain.ContentRecord),
		byText:  make(map[textSourceKey]map[string]struct{}),
	}
}

// Save stores or replaces a record under its ID.
func (s *ContentStore) Save(_ context.Context, record *domain.ContentRecord) error {
	if record == nil || record.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.records[record.ID]; ok {
		s.unindexLocked(old)
	}
	s.records[record.ID] = *record
	s.indexLocked(*record)
	return nil
}

// Get retrieves a record by ID.
func (s *ContentStore) Get(_ context.Context, id string) (*domain.ContentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// HasTextSource reports whether any record shares the (text, source) pair.
func (s *ContentStore) HasTextSource(_ context.Context, text string, source domain.Source) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byText[textSourceKey{text: text, source: source}]
	return len(ids) > 0, nil
}

// Delete removes a record by ID. Absent IDs are a no-op.
func (s *ContentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[id]
	if !ok {
		return nil
	}
	s.unindexLocked(record)
	delete(s.records, id)
	return nil
}

// List returns all records in the store.
func (s *ContentStore) List(_ context.Context) ([]domain.ContentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]domain.ContentRecord, 0, len(s.records))
	for id := range s.records {
		records = append(records, s.records[id])
	}
	return records, nil
}

// Count returns the live store size.
func (s *ContentStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Clear removes all records.
func (s *ContentStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]domain.ContentRecord)
	s.byText = make(map[textSourceKey]map[string]struct{})
	return nil
}

func (s *ContentStore) indexLocked(record domain.ContentRecord) {
	key := textSourceKey{text: record.Text, source: record.Source}
	ids, ok := s.byText[key]
	if !ok {
		ids = make(map[string]struct{})
		s.byText[key] = ids
	}
	ids[record.ID] = struct{}{}
}

func (s *ContentStore) unindexLocked(record domain.ContentRecord) {
	key := textSourceKey{text: record.Text, source: record.Source}
	if ids, ok := s.byText[key]; ok {
		delete(ids, record.ID)
		if len(ids) == 0 {
			delete(s.byText, key)
		}
	}
}
