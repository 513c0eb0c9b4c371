// Package locid provides a client library and CLI for the Library of
// Congress Linked Data Service (id.loc.gov). It fetches linked-data
// entities as framed JSON-LD, searches the service's full-text index with
// transparent result paging, and maps concept-scheme names to their
// canonical identifiers.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, jsongold/).
package locid
