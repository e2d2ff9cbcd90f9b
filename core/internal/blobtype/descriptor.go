// Package blobtype defines the types shared by the core package and its
// internal packages. This avoids import cycles between them.
package blobtype

// BlobDescriptor describes one blob listed in the archive directory.
type BlobDescriptor struct {
	// Index is the position of the descriptor in the directory's blob array.
	Index int

	// Tag is the blob label taken from properties.blob_tag. It may embed a
	// file-name-like suffix (e.g. "seg0.term") used for classification.
	Tag string

	// Kind is the blob type declared by the writer.
	Kind string

	// Offset is the byte offset of the blob from the start of the archive.
	Offset uint64

	// Length is the stored size of the blob in bytes.
	Length uint64

	// CompressionCodec names the codec applied to the blob ("" when stored raw).
	CompressionCodec string

	// Fields lists the field ids the blob was computed from.
	Fields []int64

	// SnapshotID and SequenceNumber identify the table state the blob belongs to.
	SnapshotID     int64
	SequenceNumber int64

	// Properties holds the descriptor's free-form properties. Non-string
	// values are kept as compact JSON text.
	Properties map[string]string
}

// SchemaEntry describes one field declared in the index metadata.
type SchemaEntry struct {
	Name    string
	Type    string
	Indexed bool
	Stored  bool
}

// SegmentEntry describes one index segment.
type SegmentEntry struct {
	SegmentID     string
	DocumentCount uint64
}
