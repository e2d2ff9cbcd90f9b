// Package terms recovers candidate text tokens from term-dictionary blobs
// whose binary encoding is not otherwise understood.
package terms

import (
	"unicode/utf8"

	"github.com/meigma/puffin/core/internal/format"
)

// Extract returns the printable ASCII runs of at least MinTermLength bytes
// found in data, in order of appearance.
//
// A run is only emitted when a non-printable byte terminates it. A run that
// reaches the end of data is dropped.
func Extract(data []byte) []string {
	var (
		tokens []string
		start  = -1
	)
	for i, b := range data {
		if isPrintable(b) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if run := data[start:i]; len(run) >= format.MinTermLength && utf8.Valid(run) {
				tokens = append(tokens, string(run))
			}
			start = -1
		}
	}
	return tokens
}

func isPrintable(b byte) bool {
	return b >= format.PrintableMin && b <= format.PrintableMax
}
