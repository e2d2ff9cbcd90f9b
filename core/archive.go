package puffin

import (
	"errors"
	"log/slog"

	"github.com/opencontainers/go-digest"

	"github.com/meigma/puffin/core/internal/codec"
	"github.com/meigma/puffin/core/internal/index"
	"github.com/meigma/puffin/core/internal/locate"
)

// Archive provides read-only inspection of an archive held in memory.
//
// The buffer passed to Open is retained; callers must not modify it while
// the Archive or any view derived from it is in use. An Archive is safe for
// concurrent use.
type Archive struct {
	data           []byte
	scanner        Scanner
	decompress     bool
	maxDecodedSize uint64
	decoder        *codec.Decoder
	progress       ProgressFunc
	source         string
	logger         *slog.Logger
}

// log returns the logger, falling back to a discard logger if nil.
func (a *Archive) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.logger
}

// Open wraps data for inspection. It performs no parsing.
func Open(data []byte, opts ...Option) *Archive {
	a := &Archive{
		data:           data,
		scanner:        locate.Brace{},
		decompress:     true,
		maxDecodedSize: codec.DefaultMaxDecodedSize,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.decoder = codec.NewDecoder(a.maxDecodedSize)
	return a
}

// Bytes returns the archive buffer.
func (a *Archive) Bytes() []byte {
	return a.data
}

// Size returns the archive size in bytes.
func (a *Archive) Size() int {
	return len(a.data)
}

// Header checks the leading magic bytes.
func (a *Archive) Header() HeaderResult {
	return CheckHeader(a.data)
}

// Footer inspects the fixed footer tail.
func (a *Archive) Footer() FooterResult {
	return CheckFooter(a.data)
}

// Directory locates and decodes the trailing directory.
//
// ok is false when no directory is found. A directory that is found but
// cannot be decoded returns ok true, a nil Directory and the decode error.
func (a *Archive) Directory() (dir *Directory, ok bool, err error) {
	r, ok := LocateDirectory(a.data, a.scanner)
	if !ok {
		return nil, false, nil
	}
	dir, err = DecodeDirectory(a.data, r)
	return dir, true, err
}

// Inspect runs the full pipeline: header and footer checks, directory
// location and decoding, then extraction and interpretation of every blob.
// It never fails; everything that goes wrong is recorded in the Report.
func (a *Archive) Inspect() *Report {
	log := a.log().With("source", a.source)
	rep := &Report{
		Source: a.source,
		Size:   len(a.data),
		Data:   a.data,
		Digest: digest.FromBytes(a.data),
		Header: a.Header(),
		Footer: a.Footer(),
	}
	if rep.Header.Mismatch() {
		log.Debug("header mismatch", "observed", rep.Header.Observed)
	}

	a.emit(ProgressEvent{Stage: StageLocating})
	r, ok := LocateDirectory(a.data, a.scanner)
	if !ok {
		log.Debug("directory not found")
		return rep
	}
	rep.DirectoryRange = &r
	log.Debug("directory located", "start", r.Start, "end", r.End)

	a.emit(ProgressEvent{Stage: StageDecoding})
	dir, err := DecodeDirectory(a.data, r)
	if err != nil {
		log.Warn("directory undecodable", "error", err)
		rep.DirectoryErr = err
		return rep
	}
	rep.Directory = dir

	rep.Blobs = make([]BlobReport, 0, dir.Len())
	for i, d := range dir.All() {
		a.emit(ProgressEvent{Stage: StageExtracting, Tag: d.Tag, BlobsDone: i, BlobsTotal: dir.Len()})
		br := a.inspectBlob(d)
		if br.Err != nil {
			log.Warn("blob not interpreted", "index", i, "tag", d.Tag, "error", br.Err)
		}
		rep.Blobs = append(rep.Blobs, br)
	}

	a.emit(ProgressEvent{Stage: StageAnalyzing, BlobsDone: dir.Len(), BlobsTotal: dir.Len()})
	a.analyze(rep)
	return rep
}

// InspectBlob extracts and interprets a single blob.
func (a *Archive) InspectBlob(d BlobDescriptor) BlobReport {
	return a.inspectBlob(d)
}

func (a *Archive) inspectBlob(d BlobDescriptor) BlobReport {
	br := BlobReport{Descriptor: d, Class: Classify(d)}
	blob, err := Extract(a.data, d)
	if err != nil {
		br.Err = err
		return br
	}
	br.Blob = blob
	br.Digest = digest.FromBytes(blob.Data)

	content := blob.Data
	if a.decompress {
		content, err = a.decoder.Decode(d.CompressionCodec, blob.Data)
		if err != nil {
			br.Err = err
			return br
		}
	}
	br.Content = content

	switch br.Class {
	case ClassStructuredMetadata:
		analysis, doc, err := index.AnalyzeJSON(content)
		if err != nil {
			br.Err = err
			return br
		}
		br.Document = doc
		br.Index = &analysis
	case ClassTermDictionary:
		br.Terms = ExtractTerms(content)
	case ClassOpaqueBinary:
	}
	return br
}

// analyze fills in the index analysis from the first decodable metadata
// blob, falling back to arrays embedded in the directory.
func (a *Archive) analyze(rep *Report) {
	for i := range rep.Blobs {
		br := &rep.Blobs[i]
		if br.Index == nil {
			continue
		}
		rep.Index = br.Index
		rep.IndexSource = br.Descriptor.Tag
		a.log().Debug("index analyzed", "source", a.source, "blob", br.Descriptor.Tag,
			"segments", len(br.Index.Segments), "documents", br.Index.TotalDocuments)
		return
	}
	if rep.Directory == nil {
		return
	}
	if analysis, ok := rep.Directory.Embedded(); ok {
		rep.Index = &analysis
		rep.IndexSource = "directory"
	}
}

func (a *Archive) emit(ev ProgressEvent) {
	if a.progress == nil {
		return
	}
	ev.Source = a.source
	a.progress(ev)
}

// IsOutOfRange reports whether err describes a blob outside the archive.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}
