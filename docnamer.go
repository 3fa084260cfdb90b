// Package docnamer recovers method and constructor parameter names from
// generated Javadoc pages. It is a fallback source of parameter names for
// reflection-based tools when no richer metadata (debug symbols, explicit
// annotations) is available: given a callable descriptor, it locates the
// documentation page for the declaring type in a zip archive, a directory
// tree, or a remote HTTP-served tree, then parses the page markup to
// recover the declared parameter names in order.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, zip/, sqlite/).
package docnamer
