package puffin

import puffincore "github.com/meigma/puffin/core"

// --- Re-exports from core ---

// Report is everything an inspection could determine about one archive.
type Report = puffincore.Report

// BlobReport is the inspection result for one blob.
type BlobReport = puffincore.BlobReport

// Directory is the decoded trailing directory of an archive.
type Directory = puffincore.Directory

// BlobDescriptor describes one blob listed in the directory.
type BlobDescriptor = puffincore.BlobDescriptor

// SchemaEntry describes one declared index field.
type SchemaEntry = puffincore.SchemaEntry

// SegmentEntry describes one index segment.
type SegmentEntry = puffincore.SegmentEntry

// IndexAnalysis summarizes the index metadata document.
type IndexAnalysis = puffincore.IndexAnalysis

// HeaderResult is the outcome of the leading magic check.
type HeaderResult = puffincore.HeaderResult

// FooterResult describes the fixed footer tail.
type FooterResult = puffincore.FooterResult

// Range is a half-open byte range within an archive.
type Range = puffincore.Range

// Class identifies how a blob's content is interpreted.
type Class = puffincore.Class

// Scanner finds the end of the directory object.
type Scanner = puffincore.Scanner

// Class constants.
const (
	ClassOpaqueBinary       = puffincore.ClassOpaqueBinary
	ClassStructuredMetadata = puffincore.ClassStructuredMetadata
	ClassTermDictionary     = puffincore.ClassTermDictionary
)

// BraceScanner balances braces without skipping string contents. It is the default.
type BraceScanner = puffincore.BraceScanner

// QuoteAwareScanner ignores braces inside JSON strings.
type QuoteAwareScanner = puffincore.QuoteAwareScanner

// CodecSupported reports whether blobs declaring codec can be decompressed.
func CodecSupported(codec string) bool {
	return puffincore.CodecSupported(codec)
}

// IsOutOfRange reports whether err describes a blob outside the archive.
func IsOutOfRange(err error) bool {
	return puffincore.IsOutOfRange(err)
}
