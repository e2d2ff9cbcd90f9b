// Package locate finds the trailing directory document inside an archive
// buffer that carries no trustworthy length prefix for it.
package locate

import (
	"bytes"

	"github.com/meigma/puffin/core/internal/format"
)

// Scanner finds the end of a JSON object that begins at start.
//
// End returns the exclusive end offset of the object and true, or false if
// the object is never closed.
type Scanner interface {
	End(buf []byte, start int) (int, bool)
}

// Brace is the default Scanner. It balances '{' and '}' bytes without
// understanding string literals, so a brace inside a quoted value shifts the
// boundary it reports.
type Brace struct{}

// End implements Scanner.
func (Brace) End(buf []byte, start int) (int, bool) {
	if start < 0 || start >= len(buf) {
		return 0, false
	}
	depth := 0
	for i, b := range buf[start:] {
		switch b {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return start + i + 1, true
			}
		}
	}
	return 0, false
}

// QuoteAware is a stricter Scanner that skips braces inside JSON string
// literals, honouring backslash escapes.
type QuoteAware struct{}

// End implements Scanner.
func (QuoteAware) End(buf []byte, start int) (int, bool) {
	if start < 0 || start >= len(buf) {
		return 0, false
	}
	depth := 0
	inString := false
	escaped := false
	for i, b := range buf[start:] {
		if inString {
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				inString = false
			}
			continue
		}
		switch b {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return start + i + 1, true
			}
		}
	}
	return 0, false
}

// FindMarker returns the absolute offset of the first DirectoryMarker within
// the last TailWindow bytes of buf.
func FindMarker(buf []byte) (int, bool) {
	base := 0
	if len(buf) > format.TailWindow {
		base = len(buf) - format.TailWindow
	}
	pos := bytes.Index(buf[base:], []byte(format.DirectoryMarker))
	if pos < 0 {
		return 0, false
	}
	return base + pos, true
}

// Find locates the directory document in buf using s to find its end.
// It returns the half-open range [start, end).
func Find(buf []byte, s Scanner) (start, end int, ok bool) {
	if s == nil {
		s = Brace{}
	}
	start, ok = FindMarker(buf)
	if !ok {
		return 0, 0, false
	}
	end, ok = s.End(buf, start)
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}
