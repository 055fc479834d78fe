package domain

import "time"

// Source identifies the provenance of a captured record.
type Source string

const (
	// SourceDOM marks content captured from page structure.
	SourceDOM Source = "dom"
	// SourceAJAX marks content captured from network responses.
	SourceAJAX Source = "ajax"
	// SourceStorage marks content captured from persisted key/value changes.
	SourceStorage Source = "storage"
)

// Valid returns true if the source is one of the known provenances.
func (s Source) Valid() bool {
	switch s {
	case SourceDOM, SourceAJAX, SourceStorage:
		return true
	}
	return false
}

// ContentType describes the kind of content a record holds.
type ContentType string

const (
	ContentTypeText      ContentType = "text"
	ContentTypeImage     ContentType = "image"
	ContentTypeVideo     ContentType = "video"
	ContentTypeAudio     ContentType = "audio"
	ContentTypeDocument  ContentType = "document"
	ContentTypeCode      ContentType = "code"
	ContentTypeData      ContentType = "data"
	ContentTypeLink      ContentType = "link"
	ContentTypeDashboard ContentType = "dashboard"
	ContentTypeService   ContentType = "service"
	ContentTypeMetric    ContentType = "metric"
	ContentTypeUser      ContentType = "user"
	ContentTypeSystem    ContentType = "system"
)

// RelationType describes the direction and meaning of a graph edge.
type RelationType string

const (
	// RelationParent points at the structural container of a record.
	RelationParent RelationType = "parent"
	// RelationChild points at a structurally contained record.
	RelationChild RelationType = "child"
	// RelationLink points at a referenced identity or URL.
	RelationLink RelationType = "link"
)

// Relationship is a directed edge from a record to a target identity or URL.
type Relationship struct {
	// Type is the edge kind (parent, child, link).
	Type RelationType `json:"type"`

	// Target is the identity of the related record, or a raw URL for links.
	Target string `json:"target"`
}

// ContentRecord represents one canonical unit of discovered content.
// It is the engine's primary entity: built from a raw capture, classified,
// enriched, and projected into the search index.
type ContentRecord struct {
	// ID is the deterministic identity derived from the capture's
	// structural and textual fingerprint. The same input always yields
	// the same ID.
	ID string `json:"id"`

	// Type is the kind of content.
	Type ContentType `json:"type"`

	// Title is the human-readable title. May be empty.
	Title string `json:"title,omitempty"`

	// Description is a short summary. May be empty.
	Description string `json:"description,omitempty"`

	// Text is the captured text content. A record is only materialised
	// if at least one of Title or Text is non-empty.
	Text string `json:"text,omitempty"`

	// Metadata holds free-form source-specific attributes (element
	// attributes, response headers, store names). Derived metadata lives
	// in the typed Enrichment, not here.
	Metadata map[string]string `json:"metadata,omitempty"`

	// Relationships are the directed edges captured at build time.
	Relationships []Relationship `json:"relationships,omitempty"`

	// Timestamp is the capture time.
	Timestamp time.Time `json:"timestamp"`

	// Source is the capture provenance.
	Source Source `json:"source"`

	// Classification is attached after the classification step.
	Classification Classification `json:"classification"`

	// SearchableText is the lowercased join of title, description, text
	// and tags, attached after the search-optimisation step.
	SearchableText string `json:"searchable_text,omitempty"`
}

// HasContent returns true if the record carries enough text to be indexed.
func (r *ContentRecord) HasContent() bool {
	return r.Title != "" || r.Text != ""
}
