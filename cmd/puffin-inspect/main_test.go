package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/meigma/puffin/core/testutil"
)

func writeTestArchive(t *testing.T) string {
	t.Helper()
	data, _ := testutil.BuildArchive(t, []testutil.TestBlob{
		{Tag: "idx/meta.json", Type: "tantivy", Data: testutil.MetaJSON(t, map[string]uint64{"seg-a": 4, "seg-b": 8})},
		{Tag: "idx/seg-a.term", Type: "tantivy", Data: []byte("gold\x00silver\x00")},
		{Tag: "idx/seg-a.store", Type: "tantivy", Data: bytes.Repeat([]byte{0xab}, 40)},
	}, testutil.Options{})
	path := filepath.Join(t.TempDir(), "index.ttv")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunText(t *testing.T) {
	t.Parallel()

	path := writeTestArchive(t)
	out, _, err := runCLI(t, path)
	require.NoError(t, err)

	for _, want := range []string{
		"File: " + path,
		"Valid Puffin Archive Format v1",
		"Index Analysis (from idx/meta.json)",
		"  - body (type: text, indexed: true, stored: false)",
		"  - _timestamp (type: i64, indexed: false, stored: true)",
		"Total documents: 12",
		"Index contains data",
		"1. idx/meta.json",
		"Terms found: gold, silver",
		"... (8 more bytes)",
		"Full Metadata:",
		"Hex (first 128 bytes):",
		"00000000  50 46 41 31",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRunJSON(t *testing.T) {
	t.Parallel()

	path := writeTestArchive(t)
	out, _, err := runCLI(t, "--format", "json", path)
	require.NoError(t, err)

	var views []reportView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 1)
	v := views[0]
	assert.Equal(t, path, v.Target)
	require.NotNil(t, v.Header)
	assert.True(t, v.Header.Valid)
	require.NotNil(t, v.Index)
	assert.Equal(t, uint64(12), v.Index.TotalDocuments)
	require.Len(t, v.Blobs, 3)
	assert.Equal(t, "metadata", v.Blobs[0].Class)
	assert.NotNil(t, v.Blobs[0].Content)
	assert.Equal(t, []string{"gold", "silver"}, v.Blobs[1].Terms)
	assert.Len(t, v.Blobs[2].Preview, 64)
}

func TestRunYAML(t *testing.T) {
	t.Parallel()

	path := writeTestArchive(t)
	out, _, err := runCLI(t, "-f", "yaml", "--preview", "4", path)
	require.NoError(t, err)

	var views []reportView
	require.NoError(t, yaml.Unmarshal([]byte(out), &views))
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Index)
	assert.Equal(t, uint64(12), views[0].Index.TotalDocuments)
	assert.Equal(t, "abababab", views[0].Blobs[2].Preview)
}

func TestRunLoadFailure(t *testing.T) {
	t.Parallel()

	path := writeTestArchive(t)
	missing := filepath.Join(t.TempDir(), "missing.ttv")
	out, _, err := runCLI(t, path, missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "Total documents: 12")
	assert.Contains(t, out, "File: "+missing)
}

func TestRunFlagErrors(t *testing.T) {
	t.Parallel()

	path := writeTestArchive(t)
	tests := []struct {
		name string
		args []string
	}{
		{name: "no targets", args: nil},
		{name: "bad format", args: []string{"--format", "xml", path}},
		{name: "bad log level", args: []string{"--log-level", "loud", path}},
		{name: "bad log format", args: []string{"--log-format", "xml", path}},
		{name: "bad header", args: []string{"--header", "novalue", path}},
		{name: "bad parallel", args: []string{"--parallel", "0", path}},
		{name: "negative preview", args: []string{"--preview", "-1", path}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := runCLI(t, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	_, stderr, err := runCLI(t, "--help")
	require.ErrorIs(t, err, pflag.ErrHelp)
	assert.Contains(t, stderr, "Usage: puffin-inspect")
}

func TestParseHeaders(t *testing.T) {
	t.Parallel()

	h, err := parseHeaders([]string{"Authorization=Bearer abc", "X-Trace = 1", "X-Trace=2"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", h.Get("Authorization"))
	assert.Equal(t, []string{"1", "2"}, h.Values("X-Trace"))
}

func TestHexPreview(t *testing.T) {
	t.Parallel()

	data := make([]byte, 20)
	for i := range data {
		data[i] = byte(i)
	}
	got := hexPreview(data, 18, true)
	assert.Equal(t, "00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f \n            10 11 ... (2 more bytes)", got)
	assert.Equal(t, "00 01", hexPreview(data[:2], 32, true))
	assert.Empty(t, hexPreview(nil, 32, true))
}
