package puffin

import (
	"log/slog"
)

// Option configures an Archive.
type Option func(*Archive)

// WithLogger sets the logger used during inspection.
// By default, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Archive) {
		a.logger = logger
	}
}

// WithScanner replaces the scanner used to find the end of the directory.
// The default is BraceScanner.
func WithScanner(s Scanner) Option {
	return func(a *Archive) {
		if s != nil {
			a.scanner = s
		}
	}
}

// WithDecompression controls whether blobs declaring a compression codec are
// decompressed before interpretation (default: true).
func WithDecompression(enabled bool) Option {
	return func(a *Archive) {
		a.decompress = enabled
	}
}

// WithMaxDecodedSize limits the size of a decompressed blob.
// Set limit to 0 to disable the limit.
func WithMaxDecodedSize(limit uint64) Option {
	return func(a *Archive) {
		a.maxDecodedSize = limit
	}
}

// WithProgress sets a callback that receives progress events.
func WithProgress(fn ProgressFunc) Option {
	return func(a *Archive) {
		a.progress = fn
	}
}

// WithSourceName labels the archive in logs and progress events.
func WithSourceName(name string) Option {
	return func(a *Archive) {
		a.source = name
	}
}
