package memory

import (
	"context"
	"sync"

	"github.com/probe-labs/scout-cli/internal/core/domain"
	"github.com/probe-labs/scout-cli/internal/core/ports/driven"
)

// Ensure Graph implements the interface.
var _ driven.RelationshipGraph = (*Graph)(nil)

// Graph is an in-memory implementation of driven.RelationshipGraph.
// Edges are deduplicated per (type, target): re-indexing the same record
// across repeated scans keeps its adjacency list stable instead of
// growing monotonically. The first occurrence of an edge fixes its
// position in the ordered list.
type Graph struct {
	mu        sync.RWMutex
	adjacency map[string][]domain.Relationship
}

// NewGraph creates a new in-memory relationship graph.
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string][]domain.Relationship),
	}
}

// Add appends a record's relationships to its adjacency list,
// skipping edges already present.
func (g *Graph) Add(_ context.Context, id string, relationships []domain.Relationship) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if len(relationships) == 0 {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	existing := g.adjacency[id]
	for _, rel := range relationships {
		if containsEdge(existing, rel) {
			continue
		}
		existing = append(existing, rel)
	}
	g.adjacency[id] = existing
	return nil
}

// Neighbors returns the ordered adjacency list for a record ID.
func (g *Graph) Neighbors(_ context.Context, id string) ([]domain.Relationship, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := g.adjacency[id]
	out := make([]domain.Relationship, len(edges))
	copy(out, edges)
	return out, nil
}

// Remove drops a record's adjacency list.
func (g *Graph) Remove(_ context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.adjacency, id)
	return nil
}

// Stats aggregates the graph. The average divides total edges by the
// supplied record count, not by the number of graph keys; zero records
// yields 0.
func (g *Graph) Stats(_ context.Context, recordCount int) (domain.RelationshipStats, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := domain.RelationshipStats{
		CountsByType: make(map[domain.RelationType]int),
	}
	for _, edges := range g.adjacency {
		stats.TotalEdges += len(edges)
		for _, rel := range edges {
			stats.CountsByType[rel.Type]++
		}
	}
	if recordCount > 0 {
		stats.AverageEdgesPerRecord = float64(stats.TotalEdges) / float64(recordCount)
	}
	return stats, nil
}

// All returns the full adjacency, keyed by record ID.
func (g *Graph) All(_ context.Context) (map[string][]domain.Relationship, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string][]domain.Relationship, len(g.adjacency))
	for id, edges := range g.adjacency {
		cp := make([]domain.Relationship, len(edges))
		copy(cp, edges)
		out[id] = cp
	}
	return out, nil
}

// Clear removes all adjacency lists.
func (g *Graph) Clear(_ context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.adjacency = make(map[string][]domain.Relationship)
	return nil
}

func containsEdge(edges []domain.Relationship, rel domain.Relationship) bool {
	for _, e := range edges {
		if e.Type == rel.Type && e.Target == rel.Target {
			return true
		}
	}
	return false
}
