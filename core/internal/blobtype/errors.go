package blobtype

import (
	"errors"
	"fmt"
)

// Sentinel errors for archive inspection.
var (
	// ErrOutOfRange is returned when a blob descriptor addresses bytes outside the archive.
	ErrOutOfRange = errors.New("puffin: blob out of range")

	// ErrSizeOverflow is returned when byte counts exceed supported limits.
	ErrSizeOverflow = errors.New("puffin: size overflow")

	// ErrInvalidUTF8 is returned when embedded text is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("puffin: invalid UTF-8")

	// ErrMalformedDirectory is returned when the directory is not a JSON object.
	ErrMalformedDirectory = errors.New("puffin: malformed directory")

	// ErrMalformedMetadata is returned when a metadata blob is not a JSON object.
	ErrMalformedMetadata = errors.New("puffin: malformed metadata")

	// ErrDecompression is returned when blob decompression fails.
	ErrDecompression = errors.New("puffin: decompression failed")

	// ErrUnsupportedCodec is returned for compression codecs the inspector cannot decode.
	ErrUnsupportedCodec = errors.New("puffin: unsupported compression codec")
)

// RangeError describes a blob descriptor whose byte range does not fit the archive.
type RangeError struct {
	Tag    string
	Offset uint64
	Length uint64
	Size   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("puffin: blob %q range [%d, +%d) exceeds archive size %d", e.Tag, e.Offset, e.Length, e.Size)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
