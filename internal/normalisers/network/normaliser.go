// Package network builds content records from observed network responses.
package network

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

// namespace prefixes every network-derived identity.
const namespace = "ajax"

// Normaliser handles network response captures.
type Normaliser struct{}

// New creates a network-capture normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Source returns the provenance this normaliser handles.
func (n *Normaliser) Source() domain.Source {
	return domain.SourceAJAX
}

// Build produces a candidate record from a network response.
// Identity derives from the namespace prefix plus the response URL.
func (n *Normaliser) Build(_ context.Context, raw *domain.RawEvent) (*domain.ContentRecord, error) {
	if raw == nil || raw.URL == "" {
		return nil, domain.ErrInvalidInput
	}

	payload := strings.TrimSpace(raw.Payload)
	title := responseTitle(raw.URL)
	if title == "" && payload == "" {
		return nil, domain.ErrNoContent
	}

	record := &domain.ContentRecord{
		ID:          normalisers.NamespaceFingerprint(namespace, raw.URL),
		Type:        payloadType(payload),
		Title:       title,
		Description: "Captured network response",
		Text:        payload,
		Metadata: map[string]string{
			"url": raw.URL,
		},
		Relationships: []domain.Relationship{
			{Type: domain.RelationLink, Target: raw.URL},
		},
		Timestamp: time.Now(),
		Source:    domain.SourceAJAX,
	}
	return record, nil
}

// responseTitle derives a title from the last URL path segment.
func responseTitle(url string) string {
	trimmed := strings.TrimRight(url, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 && idx < len(trimmed)-1 {
		trimmed = trimmed[idx+1:]
	}
	// Strip query strings from the segment
	if idx := strings.Index(trimmed, "?"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return trimmed
}

// payloadType classifies JSON payloads as structured data.
func payloadType(payload string) domain.ContentType {
	if payload == "" {
		return domain.ContentTypeText
	}
	if json.Valid([]byte(payload)) {
		return domain.ContentTypeData
	}
	return domain.ContentTypeText
}
