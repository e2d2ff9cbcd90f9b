// Package index analyzes the search-index metadata document stored in an
// archive (the meta.json blob, or the same arrays embedded in the directory).
//
// The document carries a "schema" array describing the declared fields and a
// "segments" array describing the index segments. Every field read has a
// typed default: a missing or mistyped value never produces an error.
package index
