package puffin

import (
	"github.com/meigma/puffin/core/internal/blobtype"
	"github.com/meigma/puffin/core/internal/index"
)

// Re-export types from internal packages for the public API.
type (
	// BlobDescriptor describes one blob listed in the directory.
	BlobDescriptor = blobtype.BlobDescriptor

	// SchemaEntry describes one declared index field.
	SchemaEntry = blobtype.SchemaEntry

	// SegmentEntry describes one index segment.
	SegmentEntry = blobtype.SegmentEntry

	// IndexAnalysis summarizes the index metadata document.
	IndexAnalysis = index.Analysis

	// RangeError reports a blob descriptor whose range does not fit the archive.
	RangeError = blobtype.RangeError

	// ProgressEvent represents a progress update during inspection.
	ProgressEvent = blobtype.ProgressEvent

	// ProgressStage identifies the current phase of an inspection.
	ProgressStage = blobtype.ProgressStage

	// ProgressFunc receives progress updates during inspection.
	ProgressFunc = blobtype.ProgressFunc
)

// Re-export progress stage constants.
const (
	StageLoading    = blobtype.StageLoading
	StageLocating   = blobtype.StageLocating
	StageDecoding   = blobtype.StageDecoding
	StageExtracting = blobtype.StageExtracting
	StageAnalyzing  = blobtype.StageAnalyzing
)

// Sentinel errors re-exported from internal/blobtype.
var (
	// ErrOutOfRange is returned when a blob descriptor addresses bytes outside the archive.
	ErrOutOfRange = blobtype.ErrOutOfRange

	// ErrSizeOverflow is returned when byte counts exceed supported limits.
	ErrSizeOverflow = blobtype.ErrSizeOverflow

	// ErrInvalidUTF8 is returned when embedded text is not valid UTF-8.
	ErrInvalidUTF8 = blobtype.ErrInvalidUTF8

	// ErrMalformedDirectory is returned when the directory cannot be parsed.
	ErrMalformedDirectory = blobtype.ErrMalformedDirectory

	// ErrMalformedMetadata is returned when a metadata blob cannot be parsed.
	ErrMalformedMetadata = blobtype.ErrMalformedMetadata

	// ErrDecompression is returned when blob decompression fails.
	ErrDecompression = blobtype.ErrDecompression

	// ErrUnsupportedCodec is returned for compression codecs that cannot be decoded.
	ErrUnsupportedCodec = blobtype.ErrUnsupportedCodec
)
