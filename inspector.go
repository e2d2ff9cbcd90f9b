package puffin

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	puffincore "github.com/meigma/puffin/core"
	puffinhttp "github.com/meigma/puffin/core/http"
)

// DefaultMaxArchiveSize is the default limit on archive size (1 GiB).
const DefaultMaxArchiveSize uint64 = 1 << 30

// Inspector loads archives and runs the inspection pipeline over them.
//
// An Inspector is safe for concurrent use once constructed.
type Inspector struct {
	logger         *slog.Logger
	progress       ProgressFunc
	scanner        Scanner
	decompress     bool
	maxDecodedSize uint64
	decodedSizeSet bool
	maxArchiveSize uint64
	concurrency    int
	httpClient     *nethttp.Client
	httpHeaders    nethttp.Header
}

// New creates an Inspector with the given options.
func New(opts ...Option) (*Inspector, error) {
	in := &Inspector{
		decompress:     true,
		maxArchiveSize: DefaultMaxArchiveSize,
		concurrency:    runtime.GOMAXPROCS(0),
		httpHeaders:    nethttp.Header{},
	}
	for _, opt := range opts {
		if err := opt(in); err != nil {
			return nil, err
		}
	}
	return in, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (in *Inspector) log() *slog.Logger {
	if in.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return in.logger
}

func (in *Inspector) emit(ev ProgressEvent) {
	if in.progress != nil {
		in.progress(ev)
	}
}

// archiveOptions translates the Inspector configuration for core.
func (in *Inspector) archiveOptions(name string) []puffincore.Option {
	opts := []puffincore.Option{
		puffincore.WithLogger(in.logger),
		puffincore.WithDecompression(in.decompress),
		puffincore.WithSourceName(name),
	}
	if in.scanner != nil {
		opts = append(opts, puffincore.WithScanner(in.scanner))
	}
	if in.decodedSizeSet {
		opts = append(opts, puffincore.WithMaxDecodedSize(in.maxDecodedSize))
	}
	if in.progress != nil {
		opts = append(opts, puffincore.WithProgress(in.progress))
	}
	return opts
}

// InspectBytes inspects an archive already held in memory.
// name labels the archive in the report, logs and progress events.
func (in *Inspector) InspectBytes(name string, data []byte) (*Report, error) {
	if in.maxArchiveSize > 0 && uint64(len(data)) > in.maxArchiveSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrArchiveTooLarge, len(data), in.maxArchiveSize)
	}
	return puffincore.Open(data, in.archiveOptions(name)...).Inspect(), nil
}

// InspectSource loads an archive from src and inspects it.
func (in *Inspector) InspectSource(ctx context.Context, name string, src ByteSource) (*Report, error) {
	data, err := in.load(ctx, name, src)
	if err != nil {
		return nil, err
	}
	return puffincore.Open(data, in.archiveOptions(name)...).Inspect(), nil
}

// InspectFile loads the archive at path and inspects it.
func (in *Inspector) InspectFile(ctx context.Context, path string) (*Report, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	src, err := newFileSource(f)
	if err != nil {
		return nil, err
	}
	return in.InspectSource(ctx, path, src)
}

// InspectURL loads a remote archive with HTTP range requests and inspects it.
// The server must honour Range headers.
func (in *Inspector) InspectURL(ctx context.Context, rawURL string) (*Report, error) {
	opts := []puffinhttp.Option{puffinhttp.WithHeaders(in.httpHeaders)}
	if in.httpClient != nil {
		opts = append(opts, puffinhttp.WithClient(in.httpClient))
	}
	src, err := puffinhttp.NewSource(ctx, rawURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("open remote archive: %w", err)
	}
	return in.InspectSource(ctx, rawURL, src)
}

// Inspect inspects target, which is either an http(s) URL or a local path.
func (in *Inspector) Inspect(ctx context.Context, target string) (*Report, error) {
	if IsRemote(target) {
		return in.InspectURL(ctx, target)
	}
	return in.InspectFile(ctx, target)
}

// Result pairs an inspection target with its outcome.
type Result struct {
	// Target is the path or URL that was inspected.
	Target string

	// Report is the inspection report; nil when Err is set.
	Report *Report

	// Err is the load failure, if any.
	Err error
}

// InspectAll inspects targets in parallel, bounded by the configured
// concurrency. Results are returned in target order. A failure to load one
// target does not stop the others.
//
// The returned error is non-nil only when ctx is cancelled; targets that were
// not started carry ctx's error in their Result.
func (in *Inspector) InspectAll(ctx context.Context, targets []string) ([]Result, error) {
	results := make([]Result, len(targets))
	var g errgroup.Group
	g.SetLimit(in.concurrency)
	for i, target := range targets {
		results[i].Target = target
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			rep, err := in.Inspect(ctx, target)
			if err != nil {
				in.log().Warn("inspection failed", "target", target, "error", err)
			}
			results[i].Report = rep
			results[i].Err = err
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // workers record errors per result
	return results, ctx.Err()
}

// IsRemote reports whether target names an http or https URL.
func IsRemote(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
