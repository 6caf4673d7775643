// Package domain defines the core business entities for Maele.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Proverb: A single proverb record with derived keywords
//   - Input: Raw field values before normalisation
//
// plus the pure functions that normalise records, detect duplicates and
// query an in-memory record set.
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
