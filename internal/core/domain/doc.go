// Package domain defines the core business entities for Scout.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ContentRecord: A canonical, deduplicated unit of discovered content
//   - Classification: Heuristic category/priority/tag assignment
//   - Relationship: A directed edge between record identities
//   - SearchEntry: The denormalised search projection of a record
//   - RawEvent: An opaque capture from a source observer
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
