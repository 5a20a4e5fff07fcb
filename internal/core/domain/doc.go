// Package domain defines the core business entities for Stowage.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - VaultFile: A stored file with category and merge flags
//   - FlatMapping: The ordered key/value set all parsers converge on
//   - IdentifierPair: One editable key/value entry with substitution status
//   - MergeSession: The per-target state machine for a data merge
//   - DeviceInfo: Fields recovered by the enrichment lookup
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
