package blobtype

// ProgressEvent represents a progress update while an archive is loaded and inspected.
type ProgressEvent struct {
	// Stage identifies the current phase of the inspection.
	Stage ProgressStage

	// Source identifies the archive being processed (path or URL).
	Source string

	// Tag is the blob currently being processed, if applicable.
	Tag string

	// BytesDone is the number of bytes loaded so far.
	BytesDone uint64

	// BytesTotal is the total archive size.
	// Zero indicates the total is unknown.
	BytesTotal uint64

	// BlobsDone is the number of blobs processed.
	BlobsDone int

	// BlobsTotal is the number of blobs listed in the directory.
	BlobsTotal int
}

// ProgressStage identifies the current phase of an inspection.
type ProgressStage uint8

// Progress stages for loading and inspection.
const (
	// StageLoading indicates archive bytes are being read into memory.
	StageLoading ProgressStage = iota

	// StageLocating indicates the directory is being searched for.
	StageLocating

	// StageDecoding indicates the directory is being decoded.
	StageDecoding

	// StageExtracting indicates blobs are being extracted and interpreted.
	StageExtracting

	// StageAnalyzing indicates the index metadata is being analyzed.
	StageAnalyzing
)

// String returns the string representation of the stage.
func (s ProgressStage) String() string {
	switch s {
	case StageLoading:
		return "loading"
	case StageLocating:
		return "locating directory"
	case StageDecoding:
		return "decoding directory"
	case StageExtracting:
		return "extracting"
	case StageAnalyzing:
		return "analyzing index"
	default:
		return "unknown"
	}
}

// ProgressFunc receives progress updates during inspection.
// Implementations must be safe for concurrent calls.
type ProgressFunc func(ProgressEvent)
