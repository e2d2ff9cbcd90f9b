package puffin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/puffin/core/testutil"
)

func TestLocateDirectory(t *testing.T) {
	t.Parallel()

	t.Run("exact range regardless of trailer", func(t *testing.T) {
		t.Parallel()
		buf := []byte(`PFA1` + `{"blobs":{"x":1}}` + "\x00\x7d\x7b garbage }")
		r, ok := LocateDirectory(buf, nil)
		require.True(t, ok)
		assert.Equal(t, Range{Start: 4, End: 21}, r)
		assert.Equal(t, `{"blobs":{"x":1}}`, string(buf[r.Start:r.End]))
		assert.Equal(t, 17, r.Len())
	})

	t.Run("no marker", func(t *testing.T) {
		t.Parallel()
		_, ok := LocateDirectory([]byte(`PFA1{"blob":[]}`), nil)
		assert.False(t, ok)
	})

	t.Run("marker only beyond tail window", func(t *testing.T) {
		t.Parallel()
		buf := append([]byte(`PFA1{"blobs":[]}`), bytes.Repeat([]byte{0xAB}, 10000)...)
		_, ok := LocateDirectory(buf, nil)
		assert.False(t, ok)
	})

	t.Run("unbalanced", func(t *testing.T) {
		t.Parallel()
		_, ok := LocateDirectory([]byte(`PFA1{"blobs":[{}`), nil)
		assert.False(t, ok)
	})

	t.Run("brace scanner stops inside strings", func(t *testing.T) {
		t.Parallel()
		buf := []byte(`{"blobs":[],"properties":{"note":"}"}}`)
		r, ok := LocateDirectory(buf, BraceScanner{})
		require.True(t, ok)
		assert.Equal(t, `{"blobs":[],"properties":{"note":"}"}`, string(buf[r.Start:r.End]))

		r, ok = LocateDirectory(buf, QuoteAwareScanner{})
		require.True(t, ok)
		assert.Equal(t, string(buf), string(buf[r.Start:r.End]))
	})
}

func TestDecodeDirectory(t *testing.T) {
	t.Parallel()

	t.Run("descriptors in order", func(t *testing.T) {
		t.Parallel()
		blobs := []testutil.TestBlob{
			{Tag: "seg0/meta.json", Type: "tantivy-meta", Data: []byte(`{}`)},
			{Tag: "seg0/abc.term", Type: "tantivy-term", Data: []byte("xyz\x00")},
			{Tag: "seg0/abc.idx", Type: "tantivy-idx", Data: []byte{9, 9}, Codec: "zstd",
				Properties: map[string]any{"rows": 3}},
		}
		data, dirStart := testutil.BuildArchive(t, blobs, testutil.Options{})
		r, ok := LocateDirectory(data, nil)
		require.True(t, ok)
		assert.Equal(t, dirStart, r.Start)

		dir, err := DecodeDirectory(data, r)
		require.NoError(t, err)
		require.Equal(t, len(blobs), dir.Len())

		var tags []string
		for i, d := range dir.All() {
			assert.Equal(t, i, d.Index)
			tags = append(tags, d.Tag)
		}
		assert.Equal(t, []string{"seg0/meta.json", "seg0/abc.term", "seg0/abc.idx"}, tags)

		first := dir.Blobs[0]
		assert.Equal(t, "tantivy-meta", first.Kind)
		assert.Equal(t, uint64(4), first.Offset)
		assert.Equal(t, uint64(2), first.Length)
		assert.Equal(t, []int64{}, first.Fields)

		last := dir.Blobs[2]
		assert.Equal(t, "zstd", last.CompressionCodec)
		assert.Equal(t, "3", last.Properties["rows"])
		assert.Equal(t, "seg0/abc.idx", last.Properties["blob_tag"])
		assert.False(t, dir.HasSchema)
		assert.False(t, dir.HasSegments)
	})

	t.Run("missing and mistyped descriptor fields", func(t *testing.T) {
		t.Parallel()
		buf := []byte(`{"blobs":[{"offset":-1,"length":"5","properties":{"blob_tag":7}},3,{"type":"t","snapshot-id":9,"sequence-number":2}]}`)
		dir, err := DecodeDirectory(buf, Range{Start: 0, End: len(buf)})
		require.NoError(t, err)
		require.Equal(t, 3, dir.Len())
		assert.Equal(t, BlobDescriptor{Index: 0, Properties: map[string]string{"blob_tag": "7"}}, dir.Blobs[0])
		assert.Equal(t, BlobDescriptor{Index: 1}, dir.Blobs[1])
		assert.Equal(t, BlobDescriptor{Index: 2, Kind: "t", SnapshotID: 9, SequenceNumber: 2}, dir.Blobs[2])
	})

	t.Run("blobs not an array", func(t *testing.T) {
		t.Parallel()
		buf := []byte(`{"blobs":{"x":1}}`)
		dir, err := DecodeDirectory(buf, Range{Start: 0, End: len(buf)})
		require.NoError(t, err)
		assert.Equal(t, 0, dir.Len())
	})

	t.Run("embedded schema and segments", func(t *testing.T) {
		t.Parallel()
		data, _ := testutil.BuildArchive(t, nil, testutil.Options{Extra: map[string]any{
			"schema":     []any{map[string]any{"name": "body", "type": "text"}},
			"segments":   []any{map[string]any{"segment_id": "s1", "max_doc": 4}},
			"properties": map[string]any{"created-by": "test"},
		}})
		dir, ok, err := Open(data).Directory()
		require.NoError(t, err)
		require.True(t, ok)
		require.NotNil(t, dir)
		assert.True(t, dir.HasSchema)
		assert.Equal(t, []SchemaEntry{{Name: "body", Type: "text"}}, dir.Schema)
		assert.Equal(t, map[string]string{"created-by": "test"}, dir.Properties)

		analysis, ok := dir.Embedded()
		require.True(t, ok)
		assert.Equal(t, uint64(4), analysis.TotalDocuments)
	})

	t.Run("archive directory absent or undecodable", func(t *testing.T) {
		t.Parallel()
		dir, ok, err := Open([]byte("PFA1 no directory here")).Directory()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, dir)

		dir, ok, err = Open([]byte(`PFA1{"blobs":[1,}`)).Directory()
		assert.True(t, ok)
		require.ErrorIs(t, err, ErrMalformedDirectory)
		assert.Nil(t, dir)
	})

	t.Run("invalid utf8", func(t *testing.T) {
		t.Parallel()
		buf := []byte("{\"blobs\":[\"\xff\"]}")
		_, err := DecodeDirectory(buf, Range{Start: 0, End: len(buf)})
		assert.ErrorIs(t, err, ErrInvalidUTF8)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		buf := []byte(`{"blobs":[1,,2]}`)
		_, err := DecodeDirectory(buf, Range{Start: 0, End: len(buf)})
		assert.ErrorIs(t, err, ErrMalformedDirectory)
	})

	t.Run("range outside buffer", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeDirectory([]byte(`{}`), Range{Start: 0, End: 10})
		assert.ErrorIs(t, err, ErrMalformedDirectory)
	})
}
