// Package dom builds content records from captured page structure.
package dom

import (
	"context"
	"strings"
	"time"

	"github.com/probe-labs/scout-cli/internal/core/domain"
	"github.com/probe-labs/scout-cli/internal/core/ports/driven"
	"github.com/probe-labs/scout-cli/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// tagTypes maps element tags to content types. Tags not listed
// default to text.
var tagTypes = map[string]domain.ContentType{
	"img":    domain.ContentTypeImage,
	"svg":    domain.ContentTypeImage,
	"video":  domain.ContentTypeVideo,
	"audio":  domain.ContentTypeAudio,
	"a":      domain.ContentTypeLink,
	"pre":    domain.ContentTypeCode,
	"code":   domain.ContentTypeCode,
	"table":  domain.ContentTypeData,
	"iframe": domain.ContentTypeDocument,
}

// Normaliser handles structural (page) captures.
type Normaliser struct{}

// New creates a structural-capture normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Source returns the provenance this normaliser handles.
func (n *Normaliser) Source() domain.Source {
	return domain.SourceDOM
}

// Build produces a candidate record from a structural capture.
// Identity is the element fingerprint; relationships capture structural
// containment and link references at build time.
func (n *Normaliser) Build(_ context.Context, raw *domain.RawEvent) (*domain.ContentRecord, error) {
	if raw == nil || raw.Element == nil {
		return nil, domain.ErrInvalidInput
	}
	el := raw.Element

	title := extractTitle(el)
	text := strings.TrimSpace(el.Text)
	if title == "" && text == "" {
		return nil, domain.ErrNoContent
	}

	record := &domain.ContentRecord{
		ID:            normalisers.Fingerprint(el),
		Type:          elementType(el),
		Title:         title,
		Description:   el.Attributes["aria-description"],
		Text:          text,
		Metadata:      elementMetadata(el),
		Relationships: elementRelationships(el),
		Timestamp:     time.Now(),
		Source:        domain.SourceDOM,
	}
	return record, nil
}

// extractTitle prefers the element's title field, then title-like
// attributes.
func extractTitle(el *domain.RawElement) string {
	if el.Title != "" {
		return el.Title
	}
	for _, attr := range []string{"title", "aria-label", "alt", "name"} {
		if v := el.Attributes[attr]; v != "" {
			return v
		}
	}
	return ""
}

func elementType(el *domain.RawElement) domain.ContentType {
	if t, ok := tagTypes[strings.ToLower(el.Tag)]; ok {
		return t
	}
	return domain.ContentTypeText
}

func elementMetadata(el *domain.RawElement) map[string]string {
	meta := make(map[string]string, len(el.Attributes)+2)
	for k, v := range el.Attributes {
		meta[k] = v
	}
	meta["tag"] = el.Tag
	if el.ID != "" {
		meta["element_id"] = el.ID
	}
	if el.Class != "" {
		meta["element_class"] = el.Class
	}
	return meta
}

// elementRelationships captures containment edges for the parent and
// children, and link edges for every reference found in the element.
func elementRelationships(el *domain.RawElement) []domain.Relationship {
	var rels []domain.Relationship
	if el.Parent != nil {
		rels = append(rels, domain.Relationship{
			Type:   domain.RelationParent,
			Target: normalisers.Fingerprint(el.Parent),
		})
	}
	for i := range el.Children {
		rels = append(rels, domain.Relationship{
			Type:   domain.RelationChild,
			Target: normalisers.Fingerprint(&el.Children[i]),
		})
	}
	for _, link := range el.Links {
		if link == "" {
			continue
		}
		rels = append(rels, domain.Relationship{
			Type:   domain.RelationLink,
			Target: link,
		})
	}
	return rels
}
