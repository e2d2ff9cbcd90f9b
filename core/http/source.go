// Package http loads archives from HTTP servers using range requests.
package http //nolint:revive // intentional naming for domain clarity

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strconv"
	"strings"
)

// ErrRangeUnsupported is returned when the server ignores Range headers.
var ErrRangeUnsupported = errors.New("range requests not supported")

// Source provides random access to a remote archive via HTTP range requests.
// It satisfies io.ReaderAt and reports the archive size.
type Source struct {
	url                   string
	client                *nethttp.Client
	headers               nethttp.Header
	size                  int64
	etag                  string
	lastModified          string
	useConditionalHeaders bool
}

// Option configures a Source.
type Option func(*Source)

// WithClient sets the HTTP client used for requests.
func WithClient(client *nethttp.Client) Option {
	return func(s *Source) {
		s.client = client
	}
}

// WithHeaders sets additional headers on each request.
func WithHeaders(headers nethttp.Header) Option {
	return func(s *Source) {
		if headers == nil {
			return
		}
		s.headers = headers.Clone()
	}
}

// WithHeader sets a single header on each request.
func WithHeader(key, value string) Option {
	return func(s *Source) {
		if s.headers == nil {
			s.headers = make(nethttp.Header)
		}
		s.headers.Set(key, value)
	}
}

// WithConditionalHeaders makes range reads conditional on the ETag or
// Last-Modified value observed when the Source was created, so a changed
// archive is not read as a mix of old and new bytes.
func WithConditionalHeaders() Option {
	return func(s *Source) {
		s.useConditionalHeaders = true
	}
}

// NewSource creates a Source for url. It probes the server to learn the
// archive size and confirm range support.
func NewSource(ctx context.Context, url string, opts ...Option) (*Source, error) {
	s := &Source{
		url:    url,
		client: nethttp.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = nethttp.DefaultClient
	}

	if err := s.probe(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// URL returns the archive URL.
func (s *Source) URL() string {
	return s.url
}

// Size returns the archive size in bytes.
func (s *Source) Size() int64 {
	return s.size
}

// SourceID returns a stable identifier for the remote content.
func (s *Source) SourceID() string {
	if s.etag != "" {
		return fmt.Sprintf("url:%s|etag:%s", s.url, s.etag)
	}
	if s.lastModified != "" {
		return fmt.Sprintf("url:%s|mod:%s|size:%d", s.url, s.lastModified, s.size)
	}
	return fmt.Sprintf("url:%s|size:%d", s.url, s.size)
}

// ReadRange returns a reader for the byte range [off, off+length), clamped
// to the archive size. An offset at or past the end returns io.EOF. The
// caller must close the returned reader.
func (s *Source) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if length < 0 {
		return nil, fmt.Errorf("read range length %d: negative length", length)
	}
	if off < 0 {
		return nil, fmt.Errorf("read range %d: negative offset", off)
	}
	if length == 0 {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}
	if off >= s.size {
		return io.NopCloser(bytes.NewReader(nil)), io.EOF
	}
	length = min(length, s.size-off)

	resp, err := s.get(ctx, off, off+length-1)
	if err != nil {
		return nil, err
	}
	if err := checkRangeStatus(resp); err != nil {
		drain(resp.Body)
		if errors.Is(err, io.EOF) {
			return io.NopCloser(bytes.NewReader(nil)), io.EOF
		}
		return nil, err
	}
	return &rangeReadCloser{
		body:   resp.Body,
		reader: io.LimitReader(resp.Body, length),
	}, nil
}

// ReadAt implements io.ReaderAt. If fewer bytes than len(p) remain, it
// returns the bytes read along with io.EOF.
func (s *Source) ReadAt(p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	rc, err := s.ReadRange(context.Background(), off, int64(len(p)))
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	expected := len(p)
	if remaining := s.size - off; remaining < int64(expected) {
		expected = int(remaining)
	}
	n, err := io.ReadFull(rc, p[:expected])
	if err != nil {
		return n, err
	}
	if expected < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// get issues a range GET, retrying without conditional headers when the
// server rejects them.
func (s *Source) get(ctx context.Context, off, end int64) (*nethttp.Response, error) {
	resp, err := s.rangeRequest(ctx, off, end, true)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == nethttp.StatusPreconditionFailed && s.hasConditionalHeaders() {
		drain(resp.Body)
		return s.rangeRequest(ctx, off, end, false)
	}
	return resp, nil
}

func checkRangeStatus(resp *nethttp.Response) error {
	switch resp.StatusCode {
	case nethttp.StatusPartialContent:
		return nil
	case nethttp.StatusRequestedRangeNotSatisfiable:
		return io.EOF
	case nethttp.StatusOK:
		return ErrRangeUnsupported
	default:
		return fmt.Errorf("range request failed: %s", resp.Status)
	}
}

// probe learns the archive size and validators. It tries HEAD first and
// then confirms with a one-byte range request.
func (s *Source) probe(ctx context.Context) error {
	headSize := int64(-1)
	if req, err := s.newRequest(ctx, nethttp.MethodHead, false); err == nil {
		if resp, err := s.client.Do(req); err == nil {
			if resp.StatusCode == nethttp.StatusOK {
				headSize = resp.ContentLength
				s.etag = resp.Header.Get("ETag")
				s.lastModified = resp.Header.Get("Last-Modified")
			}
			drain(resp.Body)
		}
	}

	resp, err := s.rangeRequest(ctx, 0, 0, false)
	if err != nil {
		return err
	}
	defer drain(resp.Body)

	if resp.StatusCode != nethttp.StatusPartialContent {
		if resp.StatusCode == nethttp.StatusOK {
			return ErrRangeUnsupported
		}
		return fmt.Errorf("range probe failed: %s", resp.Status)
	}
	crange := resp.Header.Get("Content-Range")
	if crange == "" {
		return errors.New("range probe missing Content-Range")
	}
	size, err := parseContentRange(crange)
	if err != nil {
		return err
	}
	if headSize > 0 && headSize != size {
		return fmt.Errorf("content size mismatch: head=%d range=%d", headSize, size)
	}
	s.size = size
	if s.etag == "" {
		s.etag = resp.Header.Get("ETag")
	}
	if s.lastModified == "" {
		s.lastModified = resp.Header.Get("Last-Modified")
	}
	return nil
}

// newRequest creates a request with the configured headers and, for GETs,
// optional conditional headers.
func (s *Source) newRequest(ctx context.Context, method string, withConditions bool) (*nethttp.Request, error) {
	req, err := nethttp.NewRequestWithContext(ctx, method, s.url, nethttp.NoBody)
	if err != nil {
		return nil, err
	}
	for key, values := range s.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if req.Header.Get("Accept-Encoding") == "" {
		req.Header.Set("Accept-Encoding", "identity")
	}
	if method == nethttp.MethodGet && withConditions && s.useConditionalHeaders {
		if s.etag != "" && req.Header.Get("If-Match") == "" {
			req.Header.Set("If-Match", s.etag)
		}
		if s.lastModified != "" && req.Header.Get("If-Unmodified-Since") == "" {
			req.Header.Set("If-Unmodified-Since", s.lastModified)
		}
	}
	return req, nil
}

func (s *Source) rangeRequest(ctx context.Context, off, end int64, withConditions bool) (*nethttp.Response, error) {
	req, err := s.newRequest(ctx, nethttp.MethodGet, withConditions)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", off, end))
	return s.client.Do(req)
}

func (s *Source) hasConditionalHeaders() bool {
	return s.useConditionalHeaders && (s.etag != "" || s.lastModified != "")
}

// drain discards the rest of body and closes it so the connection can be reused.
func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body) //nolint:errcheck // best-effort drain for connection reuse
	_ = body.Close()
}

// rangeReadCloser limits reads to the requested range and drains the body on close.
type rangeReadCloser struct {
	body   io.ReadCloser
	reader io.Reader
}

func (r *rangeReadCloser) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

func (r *rangeReadCloser) Close() error {
	_, _ = io.Copy(io.Discard, r.body) //nolint:errcheck // best-effort drain for connection reuse
	return r.body.Close()
}

// parseContentRange extracts the total size from a "bytes start-end/size"
// Content-Range value.
func parseContentRange(value string) (int64, error) {
	value = strings.TrimSpace(value)
	rest, ok := strings.CutPrefix(value, "bytes ")
	if !ok {
		return 0, fmt.Errorf("invalid Content-Range %q", value)
	}
	_, total, ok := strings.Cut(rest, "/")
	if !ok || total == "*" {
		return 0, fmt.Errorf("invalid Content-Range %q", value)
	}
	size, err := strconv.ParseInt(total, 10, 64)
	if err != nil || size < 0 {
		return 0, fmt.Errorf("invalid Content-Range %q", value)
	}
	return size, nil
}
