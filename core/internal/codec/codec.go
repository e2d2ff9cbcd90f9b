// Package codec decompresses blobs stored with a compression codec.
package codec

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/meigma/puffin/core/internal/blobtype"
	"github.com/meigma/puffin/core/internal/format"
	"github.com/meigma/puffin/core/internal/sizing"
)

// DefaultMaxDecodedSize is the default limit on a decompressed blob (256MB).
const DefaultMaxDecodedSize = 256 << 20

// Decoder decompresses blob content. It is safe for concurrent use.
type Decoder struct {
	pool           sync.Pool
	maxDecodedSize uint64
}

// NewDecoder creates a Decoder that refuses to produce more than
// maxDecodedSize bytes per blob. A limit of 0 disables the check.
func NewDecoder(maxDecodedSize uint64) *Decoder {
	d := &Decoder{maxDecodedSize: maxDecodedSize}
	d.pool.New = func() any {
		dec, err := d.newZstd(nil)
		if err != nil {
			return nil
		}
		return dec
	}
	return d
}

// Supported reports whether codec can be decoded. The empty codec means the
// blob is stored raw.
func Supported(codec string) bool {
	switch codec {
	case format.CodecNone, format.CodecZstd, format.CodecLZ4:
		return true
	default:
		return false
	}
}

// Decode returns the decompressed form of data. Raw blobs are returned as-is
// without copying.
func (d *Decoder) Decode(codec string, data []byte) ([]byte, error) {
	switch codec {
	case format.CodecNone:
		return data, nil
	case format.CodecZstd:
		return d.decodeZstd(data)
	case format.CodecLZ4:
		return d.readAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return nil, fmt.Errorf("%w: %q", blobtype.ErrUnsupportedCodec, codec)
	}
}

func (d *Decoder) decodeZstd(data []byte) ([]byte, error) {
	dec, release, err := d.getZstd(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", blobtype.ErrDecompression, err)
	}
	defer release()
	return d.readAll(dec)
}

func (d *Decoder) readAll(r io.Reader) ([]byte, error) {
	out, err := sizing.ReadAllWithLimit(r, d.maxDecodedSize, blobtype.ErrSizeOverflow)
	if err != nil {
		if err == blobtype.ErrSizeOverflow {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", blobtype.ErrDecompression, err)
	}
	return out, nil
}

// getZstd returns a pooled decoder reading from r and its release function.
func (d *Decoder) getZstd(r io.Reader) (*zstd.Decoder, func(), error) {
	dec, ok := d.pool.Get().(*zstd.Decoder)
	if !ok || dec == nil {
		dec, err := d.newZstd(r)
		if err != nil {
			return nil, nil, err
		}
		return dec, dec.Close, nil
	}
	if err := dec.Reset(r); err != nil {
		dec.Close()
		fresh, err := d.newZstd(r)
		if err != nil {
			return nil, nil, err
		}
		return fresh, fresh.Close, nil
	}
	return dec, func() {
		_ = dec.Reset(nil) //nolint:errcheck // clearing state before pool return
		d.pool.Put(dec)
	}, nil
}

func (d *Decoder) newZstd(r io.Reader) (*zstd.Decoder, error) {
	opts := []zstd.DOption{zstd.WithDecoderConcurrency(1)}
	if d.maxDecodedSize != 0 {
		opts = append(opts, zstd.WithDecoderMaxMemory(d.maxDecodedSize))
	}
	return zstd.NewReader(r, opts...)
}
