// Package storage builds content records from persisted key/value changes.
package storage

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/probe-labs/scout-cli/internal/core/domain"
	"github.com/probe-labs/scout-cli/internal/core/ports/driven"
	"github.com/probe-labs/scout-cli/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// namespace prefixes every storage-derived identity.
const namespace = "storage"

// Normaliser handles persisted key/value captures.
type Normaliser struct{}

// New creates a storage-capture normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Source returns the provenance this normaliser handles.
func (n *Normaliser) Source() domain.Source {
	return domain.SourceStorage
}

// Build produces a candidate record from a key/value change.
// Identity derives from the namespace prefix plus the store key.
func (n *Normaliser) Build(_ context.Context, raw *domain.RawEvent) (*domain.ContentRecord, error) {
	if raw == nil || raw.Key == "" {
		return nil, domain.ErrInvalidInput
	}

	value := strings.TrimSpace(raw.Value)
	record := &domain.ContentRecord{
		ID:          normalisers.NamespaceFingerprint(namespace, raw.Key),
		Type:        valueType(value),
		Title:       raw.Key,
		Description: "Persisted value change",
		Text:        value,
		Metadata: map[string]string{
			"key":        raw.Key,
			"store_kind": raw.StoreKind,
		},
		Timestamp: time.Now(),
		Source:    domain.SourceStorage,
	}
	return record, nil
}

func valueType(value string) domain.ContentType {
	if value != "" && json.Valid([]byte(value)) {
		return domain.ContentTypeData
	}
	return domain.ContentTypeText
}
