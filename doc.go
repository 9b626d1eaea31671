// Package treewrap provides a uniform abstraction for reading,
// classifying, iterating, and optionally mutating JSON-like document
// trees that live inside externally-owned representations.
//
// # Overview
//
// A document tree may be backed by any concrete representation: this
// repository's own irtree nodes, an ordered YAML decoding, an ordered
// JSON document, or anything else that can answer a small capability
// set. Higher-level logic (for example, a schema-driven component that
// populates default values) works against the Adapter interface and
// behaves identically over every backing, whether that backing is
// read-only or mutable.
//
// # Adapters
//
// An Adapter is a non-owning handle to one position in a tree. It
// classifies the value there as exactly one Kind and offers typed
// getters that report presence with an ok flag rather than failing.
// An adapter may be unbound (wrapping no position at all); an unbound
// adapter reads as null/empty and never fails.
//
// Mutable extends Adapter with setters and mutable container access.
// A representation that cannot be written simply does not implement
// Mutable; that absence is the capability marker the write protocol
// dispatches on.
//
// # Containers and traversal
//
// Array and Object are lightweight iterable views constructed from an
// adapter. Construction over a bound position of the wrong kind fails
// with ErrTypeMismatch; construction over an unbound position yields
// an empty container. Traversal is exposed as lazy sequences (Elems,
// Members) producing fresh adapter values, and as positional cursors
// (ArrayCursor, ObjectCursor) when bidirectional stepping is needed.
//
// # Frozen values
//
// Freeze deep-copies the value under an adapter into an owned Frozen
// snapshot with no reference to the source tree. Frozen values may be
// stored indefinitely, cloned, compared against adapters from any
// representation, and written back into mutable destinations of any
// representation.
//
// # Writing
//
// Assign materializes a source value into a destination adapter. If
// the destination does not implement Mutable the call is a defined
// no-op; otherwise the source is recursively copied. Composite
// destinations are merged additively: members or elements present in
// the destination but absent from the source survive. Assign only
// fails when the source exceeds the configured depth ceiling.
package treewrap
