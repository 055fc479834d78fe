package domain

import "time"

// SearchEntry is the denormalised projection of a record for query time.
// It is derived, never edited directly, and always rebuilt from its
// ContentRecord.
type SearchEntry struct {
	// ID matches the projected record's identity.
	ID string `json:"id"`

	// Title is the record title.
	Title string `json:"title,omitempty"`

	// Description is the record description.
	Description string `json:"description,omitempty"`

	// Text is the record text.
	Text string `json:"text,omitempty"`

	// Type is the record's content type, carried for filtering.
	Type ContentType `json:"type"`

	// Category is the classified category.
	Category Category `json:"category"`

	// Priority is the classified priority.
	Priority Priority `json:"priority"`

	// Tags are the classification tags.
	Tags []string `json:"tags,omitempty"`

	// SearchableText is the lowercased join of title, description,
	// text and tags. All matching and ranking runs against this field.
	SearchableText string `json:"searchable_text"`

	// Timestamp is the record's capture time.
	Timestamp time.Time `json:"timestamp"`
}

// SearchFilters are optional equality constraints on a query.
// A record is eligible only if it passes all supplied filters.
type SearchFilters struct {
	// Category restricts results to one category when non-empty.
	Category Category `json:"category,omitempty"`

	// Priority restricts results to one priority when non-empty.
	Priority Priority `json:"priority,omitempty"`

	// Type restricts results to one content type when non-empty.
	Type ContentType `json:"type,omitempty"`
}

// SearchResult is a single ranked hit.
type SearchResult struct {
	// Record is the matched content record.
	Record ContentRecord `json:"record"`

	// Relevance is the sum of per-query-word occurrence counts within
	// the record's searchable text.
	Relevance int `json:"relevance"`
}
