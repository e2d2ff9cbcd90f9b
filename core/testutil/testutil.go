// Package testutil builds Puffin archives for tests.
package testutil

import (
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Magic is the archive magic used by the builder.
const Magic = "PFA1"

// TestBlob describes a blob to place in a test archive.
type TestBlob struct {
	Tag   string
	Type  string
	Data  []byte
	Codec string

	// Properties are merged with the blob_tag property.
	Properties map[string]any
}

// Options tweaks the archive layout produced by BuildArchive.
type Options struct {
	// Extra top-level directory keys, e.g. "schema" or "segments".
	Extra map[string]any

	// OmitFooter drops the size, flags and trailing magic.
	OmitFooter bool
}

// BuildArchive assembles an archive containing blobs and returns it with the
// offset at which the directory starts.
func BuildArchive(tb testing.TB, blobs []TestBlob, opts Options) (data []byte, dirStart int) {
	tb.Helper()

	data = []byte(Magic)
	entries := make([]map[string]any, 0, len(blobs))
	for _, b := range blobs {
		props := map[string]any{"blob_tag": b.Tag}
		for k, v := range b.Properties {
			props[k] = v
		}
		entry := map[string]any{
			"type":       b.Type,
			"fields":     []int{},
			"offset":     len(data),
			"length":     len(b.Data),
			"properties": props,
		}
		if b.Codec != "" {
			entry["compression-codec"] = b.Codec
		}
		entries = append(entries, entry)
		data = append(data, b.Data...)
	}

	data = append(data, Magic...)
	dirStart = len(data)
	payload := BuildDirectory(tb, entries, opts.Extra)
	data = append(data, payload...)
	if opts.OmitFooter {
		return data, dirStart
	}
	data = binary.LittleEndian.AppendUint32(data, uint32(len(payload))) //nolint:gosec // test payloads are small
	data = binary.LittleEndian.AppendUint32(data, 0)
	data = append(data, Magic...)
	return data, dirStart
}

// BuildDirectory serializes a directory document whose first key is "blobs".
func BuildDirectory(tb testing.TB, entries []map[string]any, extra map[string]any) []byte {
	tb.Helper()

	blobsJSON, err := json.Marshal(entries)
	require.NoError(tb, err)
	out := append([]byte(`{"blobs":`), blobsJSON...)
	for k, v := range extra {
		key, err := json.Marshal(k)
		require.NoError(tb, err)
		val, err := json.Marshal(v)
		require.NoError(tb, err)
		out = append(out, ',')
		out = append(out, key...)
		out = append(out, ':')
		out = append(out, val...)
	}
	return append(out, '}')
}

// MetaJSON returns an index metadata document with the given segments.
func MetaJSON(tb testing.TB, segments map[string]uint64) []byte {
	tb.Helper()

	segs := make([]map[string]any, 0, len(segments))
	for id, n := range segments {
		segs = append(segs, map[string]any{"segment_id": id, "max_doc": n})
	}
	doc := map[string]any{
		"schema": []map[string]any{
			{"name": "body", "type": "text", "options": map[string]any{
				"indexing": map[string]any{"record": "position", "tokenizer": "default"},
				"stored":   false,
			}},
			{"name": "_timestamp", "type": "i64", "options": map[string]any{
				"indexing": nil, "stored": true,
			}},
		},
		"segments": segs,
		"opstamp":  0,
	}
	out, err := json.Marshal(doc)
	require.NoError(tb, err)
	return out
}
