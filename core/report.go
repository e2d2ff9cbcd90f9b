package puffin

import (
	"github.com/opencontainers/go-digest"
)

// Report is everything an inspection could determine about one archive.
//
// Partial failures are recorded as data: a missing directory leaves
// Directory nil, a directory that fails to decode sets DirectoryErr, and
// per-blob failures are kept on the corresponding BlobReport.
type Report struct {
	// Source names the inspected archive, if known.
	Source string

	// Size is the archive size in bytes.
	Size int

	// Data is the inspected archive buffer. It aliases the bytes passed to
	// Open and must not be modified.
	Data []byte

	// Digest is the digest of the whole archive.
	Digest digest.Digest

	// Header is the result of the leading magic check.
	Header HeaderResult

	// Footer describes the fixed footer tail.
	Footer FooterResult

	// DirectoryRange is where the directory was found, or nil.
	DirectoryRange *Range

	// Directory is the decoded directory, or nil.
	Directory *Directory

	// DirectoryErr is set when a directory was found but could not be decoded.
	DirectoryErr error

	// Blobs holds one entry per directory descriptor, in directory order.
	Blobs []BlobReport

	// Index is the index metadata analysis, or nil when no metadata was found.
	Index *IndexAnalysis

	// IndexSource is the tag of the metadata blob the analysis came from, or
	// "directory" when it came from arrays embedded in the directory.
	//
	// Metadata blobs that cannot be extracted or decoded are skipped, so the
	// analysis may come from a later metadata blob than the first one listed,
	// or from the directory when every metadata blob is unreadable.
	IndexSource string
}

// BlobReport is the inspection result for one blob.
type BlobReport struct {
	Descriptor BlobDescriptor

	// Class is how the blob content was interpreted.
	Class Class

	// Blob is the raw extracted view. It is zero when extraction failed.
	Blob ExtractedBlob

	// Digest is the digest of the raw blob bytes.
	Digest digest.Digest

	// Content is the decompressed blob content; it aliases Blob.Data when
	// the blob is stored raw.
	Content []byte

	// Terms holds the tokens recovered from a term dictionary blob.
	Terms []string

	// Document is the parsed metadata document of a metadata blob.
	Document any

	// Index is the analysis of a metadata blob's document.
	Index *IndexAnalysis

	// Err is set when the blob could not be extracted or interpreted.
	Err error
}

// OK reports whether the blob was extracted and interpreted without error.
func (b *BlobReport) OK() bool {
	return b.Err == nil
}

// DirectoryFound reports whether a directory byte range was located.
func (r *Report) DirectoryFound() bool {
	return r.DirectoryRange != nil
}

// Failed returns the reports of blobs that could not be extracted or interpreted.
func (r *Report) Failed() []BlobReport {
	var out []BlobReport
	for _, b := range r.Blobs {
		if b.Err != nil {
			out = append(out, b)
		}
	}
	return out
}
