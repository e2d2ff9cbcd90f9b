package puffin

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// loadChunkSize is the read granularity used while loading an archive.
const loadChunkSize = 1 << 20

// ByteSource provides random access to archive bytes.
//
// Implementations must be safe for concurrent ReadAt calls.
type ByteSource interface {
	io.ReaderAt
	Size() int64
	SourceID() string
}

// rangeReader is implemented by sources that can stream a byte range with a
// caller-supplied context, such as core/http.Source.
type rangeReader interface {
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
}

// fileSource wraps *os.File to implement ByteSource.
// os.File has ReadAt but not Size, so the size is cached at construction.
type fileSource struct {
	file     *os.File
	size     int64
	sourceID string
}

// newFileSource creates a fileSource from an open file.
func newFileSource(f *os.File) (*fileSource, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat archive: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("stat archive: %s is a directory", f.Name())
	}
	return &fileSource{file: f, size: info.Size(), sourceID: fileSourceID(f.Name(), info)}, nil
}

// ReadAt implements io.ReaderAt.
func (fs *fileSource) ReadAt(p []byte, off int64) (int, error) {
	return fs.file.ReadAt(p, off)
}

// Size returns the total size of the file.
func (fs *fileSource) Size() int64 {
	return fs.size
}

// SourceID returns a stable identifier for the file content.
func (fs *fileSource) SourceID() string {
	return fs.sourceID
}

func fileSourceID(path string, info os.FileInfo) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	return fmt.Sprintf("file:%s:%d:%d", absPath, info.Size(), info.ModTime().UnixNano())
}

// load reads the whole source into memory in chunks, honouring the size
// limit and checking ctx between chunks.
func (in *Inspector) load(ctx context.Context, name string, src ByteSource) ([]byte, error) {
	size := src.Size()
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrSizeOverflow, size)
	}
	if in.maxArchiveSize > 0 && uint64(size) > in.maxArchiveSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrArchiveTooLarge, size, in.maxArchiveSize)
	}
	if uint64(size) > uint64(maxInt) {
		return nil, fmt.Errorf("%w: %d bytes", ErrSizeOverflow, size)
	}

	rr, streaming := src.(rangeReader)
	buf := make([]byte, int(size))
	total := uint64(size)
	var off int64
	for off < size {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n := min(int64(loadChunkSize), size-off)
		chunk := buf[off : off+n]
		if streaming {
			if err := readRange(ctx, rr, chunk, off); err != nil {
				return nil, err
			}
		} else if _, err := src.ReadAt(chunk, off); err != nil && err != io.EOF {
			return nil, fmt.Errorf("read archive at %d: %w", off, err)
		}
		off += n
		in.emit(ProgressEvent{
			Stage:      StageLoading,
			Source:     name,
			BytesDone:  uint64(off),
			BytesTotal: total,
		})
	}
	in.log().Debug("archive loaded", "source", name, "id", src.SourceID(), "size", size)
	return buf, nil
}

func readRange(ctx context.Context, rr rangeReader, dst []byte, off int64) error {
	rc, err := rr.ReadRange(ctx, off, int64(len(dst)))
	if err != nil {
		return fmt.Errorf("read archive range at %d: %w", off, err)
	}
	defer rc.Close()
	if _, err := io.ReadFull(rc, dst); err != nil {
		return fmt.Errorf("read archive range at %d: %w", off, err)
	}
	return nil
}

const maxInt = int(^uint(0) >> 1)
