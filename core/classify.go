package puffin

import (
	"strings"

	"github.com/meigma/puffin/core/internal/codec"
	"github.com/meigma/puffin/core/internal/format"
	"github.com/meigma/puffin/core/internal/terms"
)

// Class identifies how a blob's content is interpreted.
type Class uint8

const (
	// ClassOpaqueBinary blobs are passed through uninterpreted.
	ClassOpaqueBinary Class = iota

	// ClassStructuredMetadata blobs hold the JSON index metadata document.
	ClassStructuredMetadata

	// ClassTermDictionary blobs hold a binary term dictionary.
	ClassTermDictionary
)

func (c Class) String() string {
	switch c {
	case ClassOpaqueBinary:
		return "binary"
	case ClassStructuredMetadata:
		return "metadata"
	case ClassTermDictionary:
		return "terms"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Classify decides how a blob is interpreted from substrings of its tag.
// A "meta.json" tag wins over a ".term" tag.
func Classify(d BlobDescriptor) Class {
	switch {
	case strings.Contains(d.Tag, format.MetadataTagMarker):
		return ClassStructuredMetadata
	case strings.Contains(d.Tag, format.TermTagMarker):
		return ClassTermDictionary
	default:
		return ClassOpaqueBinary
	}
}

// ExtractTerms returns the printable ASCII runs of at least three bytes in
// data. Runs are emitted only when a non-printable byte ends them.
func ExtractTerms(data []byte) []string {
	return terms.Extract(data)
}

// CodecSupported reports whether blobs declaring codec can be decompressed.
// The empty codec means the blob is stored raw.
func CodecSupported(codecName string) bool {
	return codec.Supported(codecName)
}
