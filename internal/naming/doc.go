// Package naming implements the domain layer for the naming template engine.
//
// This package follows the same layering rules as the rest of the codebase:
//   - Contains only pure Go code (no file I/O, no UI, no databases)
//   - Defines the persisted entity types (Project, Element, NameSet) and the
//     transient Selection value object
//   - Implements domain logic: schema migration, template sequencing,
//     preview rendering, and combinatorial name generation
//
// # Core Types
//
// Project is the single persisted unit: a set of Elements (named slots, each
// with an ordered vocabulary of Terms) plus a set of NameSets (named, ordered
// templates over those slots with a delimiter and filter metadata).
//
// Generator expands one NameSet into the full cross-product of its slots'
// terms. The enumeration order is an external contract: odometer order with
// the last template slot varying fastest, so exported lists read grouped by
// their leading slot. TotalCount is computed with big.Int so astronomically
// large templates never silently wrap, and is available before any tuple is
// produced so callers can refuse oversized exports up front.
//
// # Migration
//
// Migrate accepts project documents written by any historical version of the
// tool. Legacy key names (presets, wildcards, categories) are renamed
// structurally after parsing, never by text substitution, so user data that
// happens to contain a legacy key name survives intact.
package naming
