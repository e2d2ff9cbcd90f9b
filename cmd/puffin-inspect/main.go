// puffin-inspect prints what it can determine about Puffin ("PFA1")
// archives: header and footer status, the trailing directory, every blob
// with a preview of its content, and an analysis of the index metadata.
//
// Usage:
//
//	puffin-inspect [flags] <path-or-url>...
//
// Arguments that are http or https URLs are read with range requests; all
// others are local files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"

	"github.com/meigma/puffin"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type config struct {
	format       string
	logLevel     string
	logFormat    string
	maxSize      uint64
	maxDecoded   uint64
	parallel     int
	quoteAware   bool
	noDecompress bool
	headers      []string
	preview      int
	dumpBytes    int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, targets, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, cfg.logLevel, cfg.logFormat)
	if err != nil {
		return err
	}

	opts, err := cfg.inspectorOptions(logger)
	if err != nil {
		return err
	}
	in, err := puffin.New(opts...)
	if err != nil {
		return err
	}

	results, err := in.InspectAll(ctx, targets)
	if err != nil {
		return err
	}

	if err := render(stdout, cfg, results); err != nil {
		return err
	}

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d archives could not be loaded", failed, len(results))
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (*config, []string, error) {
	cfg := &config{}
	fs := pflag.NewFlagSet("puffin-inspect", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&cfg.format, "format", "f", formatText, "output format: text, json or yaml")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")
	fs.Uint64Var(&cfg.maxSize, "max-size", puffin.DefaultMaxArchiveSize, "maximum archive size in bytes (0 for no limit)")
	fs.Uint64Var(&cfg.maxDecoded, "max-decoded-size", 256<<20, "maximum decompressed blob size in bytes (0 for no limit)")
	fs.IntVarP(&cfg.parallel, "parallel", "p", 4, "number of archives inspected at once")
	fs.BoolVar(&cfg.quoteAware, "quote-aware", false, "ignore braces inside JSON strings when locating the directory")
	fs.BoolVar(&cfg.noDecompress, "no-decompress", false, "interpret compressed blobs without decoding them")
	fs.StringArrayVarP(&cfg.headers, "header", "H", nil, "extra HTTP header for remote archives (KEY=VALUE, repeatable)")
	fs.IntVar(&cfg.preview, "preview", 32, "number of blob bytes shown in hex previews")
	fs.IntVar(&cfg.dumpBytes, "dump", 128, "number of leading archive bytes shown in the hex dump")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: puffin-inspect [flags] <path-or-url>...\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return nil, nil, errors.New("no archives given")
	}
	switch cfg.format {
	case formatText, formatJSON, formatYAML:
	default:
		return nil, nil, fmt.Errorf("unknown format %q", cfg.format)
	}
	if cfg.preview < 0 || cfg.dumpBytes < 0 {
		return nil, nil, errors.New("--preview and --dump must not be negative")
	}
	return cfg, fs.Args(), nil
}

func (cfg *config) inspectorOptions(logger *slog.Logger) ([]puffin.Option, error) {
	headers, err := parseHeaders(cfg.headers)
	if err != nil {
		return nil, err
	}
	opts := []puffin.Option{
		puffin.WithLogger(logger),
		puffin.WithMaxArchiveSize(cfg.maxSize),
		puffin.WithMaxDecodedSize(cfg.maxDecoded),
		puffin.WithConcurrency(cfg.parallel),
		puffin.WithDecompression(!cfg.noDecompress),
		puffin.WithHTTPHeaders(headers),
	}
	if cfg.quoteAware {
		opts = append(opts, puffin.WithScanner(puffin.QuoteAwareScanner{}))
	}
	return opts, nil
}

func parseHeaders(values []string) (http.Header, error) {
	headers := http.Header{}
	for _, v := range values {
		key, value, ok := strings.Cut(v, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid header %q: want KEY=VALUE", v)
		}
		headers.Add(key, strings.TrimSpace(value))
	}
	return headers, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
