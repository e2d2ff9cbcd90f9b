package puffin

import (
	"bytes"
	"encoding/binary"

	"github.com/meigma/puffin/core/internal/format"
)

// HeaderResult is the outcome of checking the leading magic bytes.
type HeaderResult struct {
	// Valid reports whether the archive starts with the PFA1 magic.
	Valid bool

	// Observed holds the first bytes of the archive (at most four). It is
	// shorter than four bytes only when the archive is.
	Observed []byte
}

// Mismatch reports whether the header did not match the magic.
func (h HeaderResult) Mismatch() bool {
	return !h.Valid
}

// CheckHeader compares the first four bytes of buf with the archive magic.
// It never fails: short buffers produce a mismatch carrying whatever bytes
// were present.
func CheckHeader(buf []byte) HeaderResult {
	n := min(len(buf), format.MagicSize)
	observed := bytes.Clone(buf[:n])
	if observed == nil {
		observed = []byte{}
	}
	return HeaderResult{
		Valid:    n == format.MagicSize && string(observed) == format.Magic,
		Observed: observed,
	}
}

// FooterResult describes the fixed footer tail, when one is present.
//
// The footer is informational only; the directory is located by scanning,
// not by trusting PayloadSize.
type FooterResult struct {
	// Present reports whether the archive ends with the magic bytes.
	Present bool

	// PayloadSize is the declared size of the footer payload.
	PayloadSize uint32

	// Flags holds the footer flag bits.
	Flags uint32

	// Consistent reports whether the magic that should open the footer is
	// found where PayloadSize says it is.
	Consistent bool
}

// Compressed reports whether the footer payload flag marks it as compressed.
func (f FooterResult) Compressed() bool {
	return f.Flags&1 != 0
}

// CheckFooter inspects the last FooterSize bytes of buf.
func CheckFooter(buf []byte) FooterResult {
	if len(buf) < format.FooterSize+format.MagicSize {
		return FooterResult{}
	}
	tail := buf[len(buf)-format.FooterSize:]
	if string(tail[8:]) != format.Magic {
		return FooterResult{}
	}
	res := FooterResult{
		Present:     true,
		PayloadSize: binary.LittleEndian.Uint32(tail[0:4]),
		Flags:       binary.LittleEndian.Uint32(tail[4:8]),
	}
	// Footer layout: Magic | payload | size | flags | Magic.
	if uint64(res.PayloadSize)+uint64(format.FooterSize)+uint64(format.MagicSize) <= uint64(len(buf)) {
		payloadStart := uint64(len(buf)) - uint64(format.FooterSize) - uint64(res.PayloadSize)
		res.Consistent = string(buf[payloadStart-uint64(format.MagicSize):payloadStart]) == format.Magic
	}
	return res
}
