package index

import (
	"fmt"
	"unicode/utf8"

	"github.com/meigma/puffin/core/internal/blobtype"
	"github.com/meigma/puffin/core/internal/format"
	"github.com/meigma/puffin/core/internal/jsonval"
	"github.com/meigma/puffin/core/internal/sizing"
)

const unknown = "unknown"

// Analysis is the result of analyzing an index metadata document.
type Analysis struct {
	// Schema lists the declared fields in declaration order.
	Schema []blobtype.SchemaEntry

	// HasSchema reports whether the document carried a schema array.
	HasSchema bool

	// Segments lists the index segments in document order.
	Segments []blobtype.SegmentEntry

	// HasSegments reports whether the document carried a segments array.
	HasSegments bool

	// TotalDocuments is the saturating sum of all segment document counts.
	TotalDocuments uint64
}

// Empty reports whether the index holds no documents.
func (a Analysis) Empty() bool {
	return a.TotalDocuments == 0
}

// Analyze extracts schema and segment information from a decoded document.
// A document without either array yields a zero Analysis.
func Analyze(doc any) Analysis {
	var a Analysis
	if fields, ok := jsonval.Array(jsonval.Path(doc, format.KeySchema)); ok {
		a.HasSchema = true
		a.Schema = Schema(fields)
	}
	if segments, ok := jsonval.Array(jsonval.Path(doc, format.KeySegments)); ok {
		a.HasSegments = true
		a.Segments = Segments(segments)
		a.TotalDocuments = TotalDocuments(a.Segments)
	}
	return a
}

// AnalyzeJSON parses data as a JSON object and analyzes it.
// It returns the parsed document alongside the analysis.
func AnalyzeJSON(data []byte) (Analysis, any, error) {
	if !utf8.Valid(data) {
		return Analysis{}, nil, blobtype.ErrInvalidUTF8
	}
	doc, err := jsonval.Decode(data)
	if err != nil {
		return Analysis{}, nil, fmt.Errorf("%w: %v", blobtype.ErrMalformedMetadata, err)
	}
	if !jsonval.IsObject(doc) {
		return Analysis{}, nil, fmt.Errorf("%w: not a JSON object", blobtype.ErrMalformedMetadata)
	}
	return Analyze(doc), doc, nil
}

// Schema converts the entries of a schema array.
func Schema(fields []any) []blobtype.SchemaEntry {
	out := make([]blobtype.SchemaEntry, 0, len(fields))
	for _, field := range fields {
		out = append(out, blobtype.SchemaEntry{
			Name:    jsonval.String(jsonval.Path(field, "name"), unknown),
			Type:    jsonval.String(jsonval.Path(field, "type"), unknown),
			Indexed: jsonval.IsObject(jsonval.Path(field, "options", "indexing")),
			Stored:  jsonval.Bool(jsonval.Path(field, "options", "stored"), false),
		})
	}
	return out
}

// Segments converts the entries of a segments array.
func Segments(segments []any) []blobtype.SegmentEntry {
	out := make([]blobtype.SegmentEntry, 0, len(segments))
	for _, seg := range segments {
		out = append(out, blobtype.SegmentEntry{
			SegmentID:     jsonval.String(jsonval.Path(seg, "segment_id"), unknown),
			DocumentCount: jsonval.Uint(jsonval.Path(seg, "max_doc"), 0),
		})
	}
	return out
}

// TotalDocuments sums the document counts of segments, saturating at the
// maximum uint64 value.
func TotalDocuments(segments []blobtype.SegmentEntry) uint64 {
	var total uint64
	for _, seg := range segments {
		total = sizing.SaturatingAdd(total, seg.DocumentCount)
	}
	return total
}
