package puffin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want Class
	}{
		{tag: "meta.json", want: ClassStructuredMetadata},
		{tag: "segment.term.meta.json", want: ClassStructuredMetadata},
		{tag: "7f3a/abc.term", want: ClassTermDictionary},
		{tag: "segment_03.term.gz", want: ClassTermDictionary},
		{tag: "abc.idx", want: ClassOpaqueBinary},
		{tag: "", want: ClassOpaqueBinary},
		{tag: "meta.jso", want: ClassOpaqueBinary},
		{tag: "terms", want: ClassOpaqueBinary},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(BlobDescriptor{Tag: tt.tag}))
		})
	}
}

func TestClassifyIgnoresKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ClassOpaqueBinary, Classify(BlobDescriptor{Tag: "x.bin", Kind: "meta.json"}))
}

func TestClassString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "metadata", ClassStructuredMetadata.String())
	assert.Equal(t, "terms", ClassTermDictionary.String())
	assert.Equal(t, "binary", ClassOpaqueBinary.String())
	assert.Equal(t, "unknown", Class(42).String())

	text, err := ClassTermDictionary.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "terms", string(text))
}

func TestExtractTerms(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"cde"}, ExtractTerms([]byte("ab\x00cde\x00f\x00ghi")))
	assert.Equal(t, []string{"cde", "ghi"}, ExtractTerms([]byte("ab\x00cde\x00f\x00ghi\x00")))
	assert.Empty(t, ExtractTerms([]byte("\x00\x01\x02")))
}

func TestCodecSupported(t *testing.T) {
	t.Parallel()

	for _, c := range []string{"", "zstd", "lz4"} {
		assert.True(t, CodecSupported(c), c)
	}
	for _, c := range []string{"snappy", "gzip", "ZSTD"} {
		assert.False(t, CodecSupported(c), c)
	}
}
