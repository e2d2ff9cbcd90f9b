package puffin

import (
	"github.com/meigma/puffin/core/internal/sizing"
)

// ExtractedBlob is a view of one blob's bytes inside the archive buffer.
//
// Data aliases the archive buffer and must be treated as immutable.
type ExtractedBlob struct {
	Start uint64
	End   uint64
	Data  []byte
}

// Len returns the number of bytes in the blob.
func (b ExtractedBlob) Len() int {
	return len(b.Data)
}

// Extract returns the bytes addressed by d.
//
// If offset+length overflows or exceeds the buffer, Extract returns a
// *RangeError matching ErrOutOfRange. It never panics.
func Extract(buf []byte, d BlobDescriptor) (ExtractedBlob, error) {
	end, ok := sizing.AddUint64(d.Offset, d.Length)
	if !ok || end > uint64(len(buf)) {
		return ExtractedBlob{}, &RangeError{
			Tag:    d.Tag,
			Offset: d.Offset,
			Length: d.Length,
			Size:   len(buf),
		}
	}
	return ExtractedBlob{
		Start: d.Offset,
		End:   end,
		Data:  buf[d.Offset:end],
	}, nil
}
