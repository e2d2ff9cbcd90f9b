package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizes(t *testing.T) {
	t.Parallel()

	assert.Len(t, Magic, MagicSize)
	assert.Equal(t, 12, FooterSize)

	// Offsets in the footer check are uint64 arithmetic.
	var size uint64 = 2
	assert.Equal(t, uint64(18), size+FooterSize+MagicSize)
}
