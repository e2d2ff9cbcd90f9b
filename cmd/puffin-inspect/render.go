package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/meigma/puffin"
)

const previewWrap = 16

func render(w io.Writer, cfg *config, results []puffin.Result) error {
	switch cfg.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newViews(results, cfg.preview))
	case formatYAML:
		return encodeYAML(w, newViews(results, cfg.preview))
	default:
		tw := &textWriter{w: w, preview: cfg.preview, dump: cfg.dumpBytes}
		for _, res := range results {
			tw.result(res)
		}
		return tw.err
	}
}

// textWriter renders reports in the human-readable layout. The first write
// error is kept and later writes are skipped.
type textWriter struct {
	w       io.Writer
	preview int
	dump    int
	err     error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) result(res puffin.Result) {
	t.printf("\nFile: %s\n", res.Target)
	if res.Err != nil {
		t.printf("Error: %v\n", res.Err)
		return
	}
	rep := res.Report
	t.printf("Size: %d bytes (%.2f KB)\n", rep.Size, float64(rep.Size)/1024)
	t.printf("Digest: %s\n\n", rep.Digest)

	switch {
	case rep.Header.Valid:
		t.printf("Valid Puffin Archive Format v1\n\n")
	case rep.Header.Mismatch():
		t.printf("Header: % X (expected PFA1)\n\n", rep.Header.Observed)
	}
	if rep.Footer.Present {
		t.printf("Footer: payload %d bytes, flags %#x, consistent: %t\n\n",
			rep.Footer.PayloadSize, rep.Footer.Flags, rep.Footer.Consistent)
	}

	if rep.DirectoryErr != nil {
		t.printf("Directory at %d-%d could not be decoded: %v\n",
			rep.DirectoryRange.Start, rep.DirectoryRange.End, rep.DirectoryErr)
	}
	if rep.Directory != nil {
		t.index(rep)
		t.blobs(rep)
		t.printf("\nFull Metadata:\n%s\n", prettyJSON(rep.Directory.Document))
	}
	t.hexDump(rep)
}

func (t *textWriter) index(rep *puffin.Report) {
	a := rep.Index
	if a == nil {
		return
	}
	t.printf("Index Analysis (from %s):\n\n", rep.IndexSource)
	if a.HasSchema {
		t.printf("Fields defined:\n")
		for _, f := range a.Schema {
			t.printf("  - %s (type: %s, indexed: %t, stored: %t)\n", f.Name, f.Type, f.Indexed, f.Stored)
		}
	}
	if a.HasSegments {
		t.printf("\nSegments:\n")
		for _, s := range a.Segments {
			t.printf("  - %s (%d documents)\n", s.SegmentID, s.DocumentCount)
		}
		t.printf("\nTotal documents: %d\n", a.TotalDocuments)
		if a.Empty() {
			t.printf("Index is EMPTY - no documents indexed\n")
		} else {
			t.printf("Index contains data\n")
		}
	}
}

func (t *textWriter) blobs(rep *puffin.Report) {
	t.printf("\nEmbedded Files:\n\n")
	for _, br := range rep.Blobs {
		d := br.Descriptor
		t.printf("%d. %s (%d bytes at offset %d)\n", d.Index+1, orUnknown(d.Tag), d.Length, d.Offset)
		t.printf("   Type: %s\n", orUnknown(d.Kind))
		if d.CompressionCodec != "" {
			if puffin.CodecSupported(d.CompressionCodec) {
				t.printf("   Codec: %s\n", d.CompressionCodec)
			} else {
				t.printf("   Codec: %s (not supported)\n", d.CompressionCodec)
			}
		}
		switch {
		case puffin.IsOutOfRange(br.Err):
			t.printf("   Invalid offset/length!\n")
		case br.Class == puffin.ClassStructuredMetadata && br.Document != nil:
			t.printf("   Content: %s\n", prettyJSON(br.Document))
		case br.Class == puffin.ClassStructuredMetadata:
			t.printf("   Content not readable: %v\n", br.Err)
		case br.Class == puffin.ClassTermDictionary:
			t.printf("   Preview: %s\n", hexPreview(br.Blob.Data, t.preview, false))
			if br.Err != nil {
				t.printf("   Content not readable: %v\n", br.Err)
			} else if len(br.Terms) > 0 {
				t.printf("   Terms found: %s\n", strings.Join(br.Terms, ", "))
			}
		default:
			t.printf("   Preview: %s\n", hexPreview(br.Blob.Data, t.preview, true))
			if br.Err != nil {
				t.printf("   Content not readable: %v\n", br.Err)
			}
		}
		t.printf("\n")
	}
}

func (t *textWriter) hexDump(rep *puffin.Report) {
	if t.dump == 0 || rep.Size == 0 {
		return
	}
	raw := rep.Data
	n := min(t.dump, len(raw))
	t.printf("\nHex (first %d bytes):\n%s", n, hex.Dump(raw[:n]))
}

// hexPreview formats up to limit bytes as space-separated hex, wrapping every
// 16 bytes under the "Preview: " label.
func hexPreview(data []byte, limit int, withRemainder bool) string {
	var b strings.Builder
	n := min(limit, len(data))
	for i := range n {
		if i > 0 && i%previewWrap == 0 {
			b.WriteString("\n            ")
		}
		fmt.Fprintf(&b, "%02x ", data[i])
	}
	if withRemainder && len(data) > n {
		fmt.Fprintf(&b, "... (%d more bytes)", len(data)-n)
	}
	return strings.TrimRight(b.String(), " ")
}

func prettyJSON(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(out)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
