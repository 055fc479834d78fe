package domain

import "time"

// RelationshipStats aggregates the relationship graph.
type RelationshipStats struct {
	// TotalEdges is the number of edges across all adjacency lists.
	TotalEdges int `json:"total_edges"`

	// CountsByType breaks edges down by relation type.
	CountsByType map[RelationType]int `json:"counts_by_type,omitempty"`

	// AverageEdgesPerRecord divides total edges by total records
	// (not graph keys). Zero records yields 0.
	AverageEdgesPerRecord float64 `json:"average_edges_per_record"`
}

// Insights is the aggregate view over the whole index.
type Insights struct {
	// Status is the current indexing status snapshot.
	Status IndexingStatus `json:"status"`

	// ByType counts records per content type.
	ByType map[ContentType]int `json:"by_type,omitempty"`

	// ByCategory counts records per classified category.
	ByCategory map[Category]int `json:"by_category,omitempty"`

	// ByPriority counts records per classified priority.
	ByPriority map[Priority]int `json:"by_priority,omitempty"`

	// Relationships aggregates the relationship graph.
	Relationships RelationshipStats `json:"relationships"`

	// Recommendations are fixed-heuristic suggestions derived from the
	// distributions above.
	Recommendations []string `json:"recommendations,omitempty"`
}

// Snapshot is a full serialisable dump of all four engine stores plus
// insights. The engine itself persists nothing; snapshots exist for
// external persistence and observability.
type Snapshot struct {
	// ID uniquely identifies this export.
	ID string `json:"id"`

	// CreatedAt is when the snapshot was taken.
	CreatedAt time.Time `json:"created_at"`

	// Records is the primary index contents.
	Records []ContentRecord `json:"records"`

	// Enrichments is the metadata store contents, keyed by record ID.
	Enrichments map[string]Enrichment `json:"enrichments"`

	// Graph is the relationship adjacency, keyed by record ID.
	Graph map[string][]Relationship `json:"graph"`

	// Entries is the search projection contents.
	Entries []SearchEntry `json:"entries"`

	// Insights is the aggregate view at snapshot time.
	Insights Insights `json:"insights"`
}
