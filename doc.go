// Package puffin inspects Puffin ("PFA1") archives: the sealed containers a
// search engine writes to hold its index files as opaque blobs behind a
// trailing JSON directory.
//
// This package loads archives from local files or HTTP servers and runs the
// read-only inspection pipeline from the core subpackage over them. For
// inspection of bytes already in memory without any I/O, use the core
// package directly.
//
// # Quick Start
//
// Inspect a local archive:
//
//	in, err := puffin.New(puffin.WithLogger(slog.Default()))
//	if err != nil {
//	    return err
//	}
//	rep, err := in.InspectFile(ctx, "740263305421835878456d4.ttv")
//	if err != nil {
//	    return err
//	}
//	if rep.Index != nil {
//	    fmt.Println("documents:", rep.Index.TotalDocuments)
//	}
//
// Inspect a remote archive with HTTP range requests:
//
//	rep, err := in.InspectURL(ctx, "https://example.com/index.ttv")
//
// Inspect many archives in parallel:
//
//	results, err := in.InspectAll(ctx, []string{"a.ttv", "https://example.com/b.ttv"})
//
// Load failures (missing files, HTTP errors, size limits) are the only
// errors returned. Everything that goes wrong inside an archive is reported
// in the returned [Report].
package puffin
