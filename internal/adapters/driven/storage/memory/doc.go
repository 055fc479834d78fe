// Package memory provides the in-memory implementations of the four
// engine-owned stores: the primary content index, the metadata store,
// the relationship graph, and the search projection.
//
// The engine holds the only references to these stores. All state lives
// in process memory; durability comes from exported snapshots, not from
// the stores themselves.
package memory
