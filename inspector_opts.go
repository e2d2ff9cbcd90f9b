package puffin

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
)

// Option configures an Inspector.
type Option func(*Inspector) error

// WithLogger sets a logger for the inspector.
// The logger is propagated to every archive inspection.
// If nil, a discard logger is used (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(in *Inspector) error {
		in.logger = logger
		return nil
	}
}

// WithProgress sets a callback that receives loading and inspection progress.
// The callback must be safe for concurrent use when InspectAll is used.
func WithProgress(fn ProgressFunc) Option {
	return func(in *Inspector) error {
		in.progress = fn
		return nil
	}
}

// WithScanner replaces the scanner used to find the end of the directory.
// The default is BraceScanner.
func WithScanner(s Scanner) Option {
	return func(in *Inspector) error {
		in.scanner = s
		return nil
	}
}

// WithDecompression controls whether compressed blobs are decoded before
// interpretation (default: true).
func WithDecompression(enabled bool) Option {
	return func(in *Inspector) error {
		in.decompress = enabled
		return nil
	}
}

// WithMaxDecodedSize limits the size of a decompressed blob.
// Set limit to 0 to disable the limit.
func WithMaxDecodedSize(limit uint64) Option {
	return func(in *Inspector) error {
		in.maxDecodedSize = limit
		in.decodedSizeSet = true
		return nil
	}
}

// WithMaxArchiveSize limits the size of archives that will be loaded
// (default: DefaultMaxArchiveSize). Set limit to 0 to disable the limit.
func WithMaxArchiveSize(limit uint64) Option {
	return func(in *Inspector) error {
		in.maxArchiveSize = limit
		return nil
	}
}

// WithConcurrency sets how many archives InspectAll processes at once
// (default: GOMAXPROCS).
func WithConcurrency(n int) Option {
	return func(in *Inspector) error {
		if n < 1 {
			return fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrInvalidOption, n)
		}
		in.concurrency = n
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for remote archives.
func WithHTTPClient(client *nethttp.Client) Option {
	return func(in *Inspector) error {
		if client == nil {
			return fmt.Errorf("%w: nil HTTP client", ErrInvalidOption)
		}
		in.httpClient = client
		return nil
	}
}

// WithHTTPHeaders adds headers sent with every remote request.
func WithHTTPHeaders(headers nethttp.Header) Option {
	return func(in *Inspector) error {
		for key, values := range headers {
			for _, v := range values {
				in.httpHeaders.Add(key, v)
			}
		}
		return nil
	}
}
