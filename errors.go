package puffin

import (
	"errors"

	puffincore "github.com/meigma/puffin/core"
	puffinhttp "github.com/meigma/puffin/core/http"
)

// Errors re-exported from core.
var (
	// ErrOutOfRange is returned when a blob descriptor addresses bytes outside the archive.
	ErrOutOfRange = puffincore.ErrOutOfRange

	// ErrSizeOverflow is returned when byte counts exceed supported limits.
	ErrSizeOverflow = puffincore.ErrSizeOverflow

	// ErrInvalidUTF8 is returned when embedded text is not valid UTF-8.
	ErrInvalidUTF8 = puffincore.ErrInvalidUTF8

	// ErrMalformedDirectory is returned when the directory cannot be parsed.
	ErrMalformedDirectory = puffincore.ErrMalformedDirectory

	// ErrMalformedMetadata is returned when a metadata blob cannot be parsed.
	ErrMalformedMetadata = puffincore.ErrMalformedMetadata

	// ErrDecompression is returned when blob decompression fails.
	ErrDecompression = puffincore.ErrDecompression

	// ErrUnsupportedCodec is returned for compression codecs that cannot be decoded.
	ErrUnsupportedCodec = puffincore.ErrUnsupportedCodec
)

// Errors re-exported from core/http.
var (
	// ErrRangeUnsupported is returned when a server ignores Range headers.
	ErrRangeUnsupported = puffinhttp.ErrRangeUnsupported
)

// Sentinel errors specific to loading archives.
var (
	// ErrArchiveTooLarge is returned when an archive exceeds the configured size limit.
	ErrArchiveTooLarge = errors.New("puffin: archive too large")

	// ErrInvalidOption is returned when an option is given an unusable value.
	ErrInvalidOption = errors.New("puffin: invalid option")
)
