package jsonval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(tb testing.TB, s string) any {
	tb.Helper()
	v, err := Decode([]byte(s))
	require.NoError(tb, err)
	return v
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("trailing data rejected", func(t *testing.T) {
		t.Parallel()
		_, err := Decode([]byte(`{"a":1} {"b":2}`))
		assert.ErrorIs(t, err, ErrTrailingData)
	})

	t.Run("trailing whitespace allowed", func(t *testing.T) {
		t.Parallel()
		_, err := Decode([]byte("{\"a\":1}\n  "))
		assert.NoError(t, err)
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()
		_, err := Decode([]byte(`{"a":`))
		assert.Error(t, err)
	})
}

func TestLookups(t *testing.T) {
	t.Parallel()

	doc := mustDecode(t, `{
		"name": "body",
		"count": 18446744073709551615,
		"neg": -3,
		"frac": 1.5,
		"flag": true,
		"options": {"indexing": {"record": "position"}, "stored": "yes"},
		"list": [1, 2]
	}`)

	assert.Equal(t, "body", String(Path(doc, "name"), "unknown"))
	assert.Equal(t, "unknown", String(Path(doc, "count"), "unknown"))
	assert.Equal(t, uint64(18446744073709551615), Uint(Path(doc, "count"), 0))
	assert.Equal(t, uint64(0), Uint(Path(doc, "neg"), 0))
	assert.Equal(t, uint64(0), Uint(Path(doc, "frac"), 0))
	assert.Equal(t, int64(-3), Int(Path(doc, "neg"), 0))
	assert.True(t, Bool(Path(doc, "flag"), false))
	assert.False(t, Bool(Path(doc, "options", "stored"), false))
	assert.True(t, IsObject(Path(doc, "options", "indexing")))
	assert.False(t, IsObject(Path(doc, "list")))
	assert.Nil(t, Path(doc, "name", "deeper"))
	assert.Nil(t, Path(doc, "missing", "deeper"))
	assert.Equal(t, "[1,2]", Text(Path(doc, "list")))
	assert.Equal(t, "body", Text(Path(doc, "name")))
}
