package main

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/meigma/puffin"
)

// reportView is the machine-readable form of one inspection result.
type reportView struct {
	Target    string         `json:"target" yaml:"target"`
	Error     string         `json:"error,omitempty" yaml:"error,omitempty"`
	Size      int            `json:"size,omitempty" yaml:"size,omitempty"`
	Digest    string         `json:"digest,omitempty" yaml:"digest,omitempty"`
	Header    *headerView    `json:"header,omitempty" yaml:"header,omitempty"`
	Footer    *footerView    `json:"footer,omitempty" yaml:"footer,omitempty"`
	Directory *directoryView `json:"directory,omitempty" yaml:"directory,omitempty"`
	Index     *indexView     `json:"index,omitempty" yaml:"index,omitempty"`
	Blobs     []blobView     `json:"blobs,omitempty" yaml:"blobs,omitempty"`
}

type headerView struct {
	Valid    bool   `json:"valid" yaml:"valid"`
	Observed string `json:"observed" yaml:"observed"`
}

type footerView struct {
	PayloadSize uint32 `json:"payload_size" yaml:"payload_size"`
	Flags       uint32 `json:"flags" yaml:"flags"`
	Consistent  bool   `json:"consistent" yaml:"consistent"`
}

type directoryView struct {
	Start      int               `json:"start" yaml:"start"`
	End        int               `json:"end" yaml:"end"`
	Error      string            `json:"error,omitempty" yaml:"error,omitempty"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type indexView struct {
	Source         string        `json:"source" yaml:"source"`
	Schema         []schemaView  `json:"schema,omitempty" yaml:"schema,omitempty"`
	Segments       []segmentView `json:"segments,omitempty" yaml:"segments,omitempty"`
	TotalDocuments uint64        `json:"total_documents" yaml:"total_documents"`
	Empty          bool          `json:"empty" yaml:"empty"`
}

type schemaView struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Indexed bool   `json:"indexed" yaml:"indexed"`
	Stored  bool   `json:"stored" yaml:"stored"`
}

type segmentView struct {
	SegmentID     string `json:"segment_id" yaml:"segment_id"`
	DocumentCount uint64 `json:"documents" yaml:"documents"`
}

type blobView struct {
	Index      int               `json:"index" yaml:"index"`
	Tag        string            `json:"tag" yaml:"tag"`
	Type       string            `json:"type" yaml:"type"`
	Class      string            `json:"class" yaml:"class"`
	Offset     uint64            `json:"offset" yaml:"offset"`
	Length     uint64            `json:"length" yaml:"length"`
	Codec      string            `json:"codec,omitempty" yaml:"codec,omitempty"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
	Digest     string            `json:"digest,omitempty" yaml:"digest,omitempty"`
	Preview    string            `json:"preview,omitempty" yaml:"preview,omitempty"`
	Terms      []string          `json:"terms,omitempty" yaml:"terms,omitempty"`
	Content    any               `json:"content,omitempty" yaml:"content,omitempty"`
	Error      string            `json:"error,omitempty" yaml:"error,omitempty"`
}

func newViews(results []puffin.Result, preview int) []reportView {
	views := make([]reportView, 0, len(results))
	for _, res := range results {
		views = append(views, newView(res, preview))
	}
	return views
}

func newView(res puffin.Result, preview int) reportView {
	v := reportView{Target: res.Target}
	if res.Err != nil {
		v.Error = res.Err.Error()
		return v
	}
	rep := res.Report
	v.Size = rep.Size
	v.Digest = rep.Digest.String()
	v.Header = &headerView{Valid: rep.Header.Valid, Observed: hex.EncodeToString(rep.Header.Observed)}
	if rep.Footer.Present {
		v.Footer = &footerView{
			PayloadSize: rep.Footer.PayloadSize,
			Flags:       rep.Footer.Flags,
			Consistent:  rep.Footer.Consistent,
		}
	}
	if rep.DirectoryRange != nil {
		v.Directory = &directoryView{Start: rep.DirectoryRange.Start, End: rep.DirectoryRange.End}
		if rep.DirectoryErr != nil {
			v.Directory.Error = rep.DirectoryErr.Error()
		}
		if rep.Directory != nil {
			v.Directory.Properties = rep.Directory.Properties
		}
	}
	if a := rep.Index; a != nil {
		iv := &indexView{Source: rep.IndexSource, TotalDocuments: a.TotalDocuments, Empty: a.Empty()}
		for _, f := range a.Schema {
			iv.Schema = append(iv.Schema, schemaView(f))
		}
		for _, s := range a.Segments {
			iv.Segments = append(iv.Segments, segmentView(s))
		}
		v.Index = iv
	}
	for _, br := range rep.Blobs {
		v.Blobs = append(v.Blobs, newBlobView(br, preview))
	}
	return v
}

func newBlobView(br puffin.BlobReport, preview int) blobView {
	d := br.Descriptor
	bv := blobView{
		Index:      d.Index,
		Tag:        d.Tag,
		Type:       d.Kind,
		Class:      br.Class.String(),
		Offset:     d.Offset,
		Length:     d.Length,
		Codec:      d.CompressionCodec,
		Properties: d.Properties,
		Terms:      br.Terms,
		Content:    plain(br.Document),
	}
	if br.Digest != "" {
		bv.Digest = br.Digest.String()
	}
	if br.Class != puffin.ClassStructuredMetadata {
		bv.Preview = hex.EncodeToString(br.Blob.Data[:min(preview, len(br.Blob.Data))])
	}
	if br.Err != nil {
		bv.Error = br.Err.Error()
	}
	return bv
}

// plain converts json.Number values so that YAML renders them as numbers.
func plain(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(string(x), 10, 64); err == nil {
			return u
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return string(x)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = plain(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	default:
		return v
	}
}

func encodeYAML(w io.Writer, views []reportView) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(views); err != nil {
		return err
	}
	return enc.Close()
}
