package puffin

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/meigma/puffin/core/internal/blobtype"
	"github.com/meigma/puffin/core/internal/format"
	"github.com/meigma/puffin/core/internal/index"
	"github.com/meigma/puffin/core/internal/jsonval"
	"github.com/meigma/puffin/core/internal/locate"
)

// Range is a half-open byte range [Start, End) within the archive.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Scanner finds the end of the directory object once its start is known.
type Scanner = locate.Scanner

// BraceScanner balances braces byte by byte without skipping string
// literals. It is the default.
type BraceScanner = locate.Brace

// QuoteAwareScanner ignores braces that appear inside JSON strings.
type QuoteAwareScanner = locate.QuoteAware

// LocateDirectory finds the trailing directory document. Only the last
// 10,000 bytes are searched for its opening marker. A nil scanner uses
// BraceScanner.
//
// ok is false when no directory could be found; this is not an error.
func LocateDirectory(buf []byte, s Scanner) (Range, bool) {
	start, end, ok := locate.Find(buf, s)
	if !ok {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// Directory is the decoded trailing directory of an archive.
type Directory struct {
	// Range is where the directory was found in the archive.
	Range Range

	// Blobs lists the blob descriptors in emission order.
	Blobs []BlobDescriptor

	// Properties holds the directory-level properties, if any.
	Properties map[string]string

	// Schema and Segments are set when the directory itself embeds the
	// index metadata arrays.
	Schema      []SchemaEntry
	HasSchema   bool
	Segments    []SegmentEntry
	HasSegments bool

	// Document is the full parsed directory.
	Document any
}

// Len returns the number of blob descriptors.
func (d *Directory) Len() int {
	return len(d.Blobs)
}

// All returns an iterator over the blob descriptors in directory order.
func (d *Directory) All() iter.Seq2[int, BlobDescriptor] {
	return func(yield func(int, BlobDescriptor) bool) {
		for i, b := range d.Blobs {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Embedded returns the index analysis of the schema and segments arrays
// embedded in the directory. ok is false when neither is present.
func (d *Directory) Embedded() (IndexAnalysis, bool) {
	if !d.HasSchema && !d.HasSegments {
		return IndexAnalysis{}, false
	}
	return IndexAnalysis{
		Schema:         d.Schema,
		HasSchema:      d.HasSchema,
		Segments:       d.Segments,
		HasSegments:    d.HasSegments,
		TotalDocuments: index.TotalDocuments(d.Segments),
	}, true
}

// DecodeDirectory parses the directory document found at r.
//
// It returns ErrInvalidUTF8 or ErrMalformedDirectory when the bytes cannot be
// decoded. Missing blobs, schema, or segments arrays are not errors.
func DecodeDirectory(buf []byte, r Range) (*Directory, error) {
	if r.Start < 0 || r.End > len(buf) || r.Start > r.End {
		return nil, fmt.Errorf("%w: range [%d, %d) outside archive of %d bytes",
			ErrMalformedDirectory, r.Start, r.End, len(buf))
	}
	raw := buf[r.Start:r.End]
	if !utf8.Valid(raw) {
		return nil, ErrInvalidUTF8
	}
	doc, err := jsonval.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDirectory, err)
	}
	obj, ok := jsonval.Object(doc)
	if !ok {
		return nil, fmt.Errorf("%w: not a JSON object", ErrMalformedDirectory)
	}

	dir := &Directory{Range: r, Document: doc}
	if blobs, ok := jsonval.Array(obj[format.KeyBlobs]); ok {
		dir.Blobs = make([]BlobDescriptor, 0, len(blobs))
		for i, b := range blobs {
			dir.Blobs = append(dir.Blobs, decodeDescriptor(i, b))
		}
	}
	dir.Properties = properties(obj[format.KeyProperties])

	embedded := index.Analyze(doc)
	dir.Schema, dir.HasSchema = embedded.Schema, embedded.HasSchema
	dir.Segments, dir.HasSegments = embedded.Segments, embedded.HasSegments
	return dir, nil
}

func decodeDescriptor(i int, v any) BlobDescriptor {
	d := blobtype.BlobDescriptor{
		Index:            i,
		Tag:              jsonval.String(jsonval.Path(v, format.KeyProperties, format.KeyBlobTag), ""),
		Kind:             jsonval.String(jsonval.Path(v, format.KeyType), ""),
		Offset:           jsonval.Uint(jsonval.Path(v, format.KeyOffset), 0),
		Length:           jsonval.Uint(jsonval.Path(v, format.KeyLength), 0),
		CompressionCodec: jsonval.String(jsonval.Path(v, format.KeyCompressionCodec), ""),
		SnapshotID:       jsonval.Int(jsonval.Path(v, format.KeySnapshotID), 0),
		SequenceNumber:   jsonval.Int(jsonval.Path(v, format.KeySequenceNumber), 0),
		Properties:       properties(jsonval.Path(v, format.KeyProperties)),
	}
	if fields, ok := jsonval.Array(jsonval.Path(v, format.KeyFields)); ok {
		d.Fields = make([]int64, 0, len(fields))
		for _, f := range fields {
			d.Fields = append(d.Fields, jsonval.Int(f, 0))
		}
	}
	return d
}

func properties(v any) map[string]string {
	obj, ok := jsonval.Object(v)
	if !ok {
		return nil
	}
	props := make(map[string]string, len(obj))
	for k, val := range obj {
		props[k] = jsonval.Text(val)
	}
	return props
}
