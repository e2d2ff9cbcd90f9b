package terms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  []string
	}{
		{
			name:  "trailing run without boundary is dropped",
			input: []byte("ab\x00cde\x00f\x00ghi"),
			want:  []string{"cde"},
		},
		{
			name:  "trailing boundary emits last run",
			input: []byte("ab\x00cde\x00f\x00ghi\x00"),
			want:  []string{"cde", "ghi"},
		},
		{
			name:  "printable bounds are inclusive",
			input: []byte{' ', '~', 'a', 0x7f, 0x1f, 'x', 'y', 'z', 0x80, 'q', 'r', 0x0a},
			want:  []string{" ~a", "xyz"},
		},
		{
			name:  "high bytes split runs",
			input: []byte("hello\xffworld\x01"),
			want:  []string{"hello", "world"},
		},
		{
			name:  "empty input",
			input: nil,
			want:  nil,
		},
		{
			name:  "only short runs",
			input: []byte("ab\x00c\x00de\x00"),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Extract(tt.input))
		})
	}
}
