// Package ponsdict provides a word lookup client for the PONS online
// dictionary. It builds the dictionary URL for a word and language pair,
// fetches the page, and extracts the translated terms from its markup.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, slog/).
package ponsdict
