// Package format holds the fixed constants of the Puffin archive layout.
//
// An archive is laid out as:
//
//	Magic | blob 0 | ... | blob N-1 | Magic | directory JSON | payload size | flags | Magic
//
// Only the leading magic and the directory JSON are needed for inspection.
// The directory is found by scanning for DirectoryMarker near the end of the
// archive rather than trusting the footer payload size.
package format

const (
	// Magic is the 4-byte marker at offset 0 (and at the end of the footer).
	Magic = "PFA1"

	// MagicSize is the length of Magic in bytes.
	MagicSize = 4

	// DirectoryMarker is the serialized prefix of the directory object.
	DirectoryMarker = `{"blobs"`

	// TailWindow is how many trailing bytes are searched for DirectoryMarker.
	TailWindow = 10000

	// PrintableMin and PrintableMax bound the printable ASCII range, inclusive.
	PrintableMin = 32
	PrintableMax = 126

	// MinTermLength is the shortest printable run reported as a term.
	MinTermLength = 3

	// FooterSize is the size of the fixed footer tail: payload size (4),
	// flags (4) and the trailing magic (4).
	FooterSize = 12
)

// Blob tag markers used for classification.
const (
	MetadataTagMarker = "meta.json"
	TermTagMarker     = ".term"
)

// Directory and metadata JSON keys.
const (
	KeyBlobs            = "blobs"
	KeyProperties       = "properties"
	KeyBlobTag          = "blob_tag"
	KeyType             = "type"
	KeyOffset           = "offset"
	KeyLength           = "length"
	KeyCompressionCodec = "compression-codec"
	KeyFields           = "fields"
	KeySnapshotID       = "snapshot-id"
	KeySequenceNumber   = "sequence-number"
	KeySchema           = "schema"
	KeySegments         = "segments"
)

// Compression codec names recognised in blob descriptors.
const (
	CodecNone = ""
	CodecZstd = "zstd"
	CodecLZ4  = "lz4"
)
