package patternfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferAppendAndString(t *testing.T) {
	b := NewBuffer()
	b.AppendString("hello ")
	b.AppendByte('w')
	b.AppendBytes([]byte("orld"))
	assert.Equal(t, "hello world", b.String())
	assert.Equal(t, 11, b.Len())
}

func TestBufferGrowsPastInlineStorage(t *testing.T) {
	b := NewBuffer()
	big := make([]byte, inlineBufferSize+1024)
	for i := range big {
		big[i] = 'x'
	}
	b.AppendBytes(big)
	require.False(t, b.Failed())
	assert.Equal(t, len(big), b.Len())
	assert.Equal(t, string(big), b.String())
}

func TestBufferInsertSpacesShiftsTrailingContent(t *testing.T) {
	b := NewBuffer()
	b.AppendString("Book")
	b.InsertSpaces(0, 2)
	assert.Equal(t, "  Book", b.String())
}

func TestBufferTruncateDiscardsTail(t *testing.T) {
	b := NewBuffer()
	b.AppendString("DejaVu Sans")
	b.Truncate(6)
	assert.Equal(t, "DejaVu", b.String())
}

func TestBufferStickyFailedBitLatchesFurtherAppendsAsNoOps(t *testing.T) {
	old := MaxBufferBytes
	MaxBufferBytes = 4
	defer func() { MaxBufferBytes = old }()

	b := NewBuffer()
	b.AppendString("abcd")
	require.False(t, b.Failed())
	b.AppendByte('e')
	assert.True(t, b.Failed())
	assert.Equal(t, "abcd", b.String(), "no-op append must not produce truncated-but-valid-looking output beyond the cap")
}
