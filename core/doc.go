// Package puffin inspects Puffin ("PFA1") archives held in memory.
//
// An archive stores opaque blobs followed by a JSON directory that lists
// each blob's offset, length, type and properties:
//
//	PFA1 | blob 0 | ... | blob N-1 | PFA1 | {"blobs":[...]} | size | flags | PFA1
//
// The directory has no length field the inspector trusts. It is found by
// scanning the last 10,000 bytes for the `{"blobs"` marker and balancing
// braces forward from there. Every step degrades gracefully: a foreign
// header, a missing directory, or a blob whose range falls outside the
// archive is reported as data and never stops the rest of the inspection.
//
// Blobs are interpreted by tag: "meta.json" blobs are parsed as the search
// index metadata (schema fields and segment document counts), ".term" blobs
// are scanned for printable tokens, and everything else is passed through.
//
// The package never performs I/O and never writes archives.
package puffin
