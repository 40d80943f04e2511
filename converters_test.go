package patternfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCescape(t *testing.T) {
	got := cescape(nil, []byte(`a\b"c`))
	assert.Equal(t, `a\\b\"c`, string(got))
}

func TestShescapeAlwaysQuotedAndNeverUnquotedSingleQuote(t *testing.T) {
	got := string(shescape(nil, []byte(`it's a test`)))
	require.True(t, len(got) >= 2)
	assert.Equal(t, byte('\''), got[0])
	assert.Equal(t, byte('\''), got[len(got)-1])
	assert.Equal(t, `'it'\''s a test'`, got)
}

func TestXMLEscapeIdempotentWithoutSpecialChars(t *testing.T) {
	in := "plain text, no specials"
	once := string(xmlescape(nil, []byte(in)))
	twice := string(xmlescape(nil, []byte(once)))
	assert.Equal(t, once, twice)
	assert.Equal(t, in, once)
}

func TestXMLEscapeReplacesAmpLtGt(t *testing.T) {
	got := string(xmlescape(nil, []byte(`<a & b>`)))
	assert.Equal(t, "&lt;a &amp; b&gt;", got)
}

func TestDeleteCharsDropsListedBytes(t *testing.T) {
	c := NewCursor([]byte(`(aeiou)`))
	out, err := deleteChars(c, nil, []byte("DejaVu Sans"))
	require.Nil(t, err)
	assert.Equal(t, "DjV Sns", string(out))
}

func TestEscapeCharsInsertsFirstCharBeforeMatches(t *testing.T) {
	c := NewCursor([]byte(`(\,)`)) // escape chars: a single comma, written as the escape "\," which decodes to ','
	out, err := escapeChars(c, nil, []byte("a,b,c"))
	require.Nil(t, err)
	assert.Equal(t, `a,,b,,c`, string(out))
}

func TestTranslateMapsFromByteToSameIndexOfTo(t *testing.T) {
	c := NewCursor([]byte(`(aeiou,AEIOU)`))
	out, err := translateChars(c, nil, []byte("family"))
	require.Nil(t, err)
	assert.Equal(t, "fAmIly", string(out))
}

func TestTranslateToShorterThanFromReusesLastByte(t *testing.T) {
	c := NewCursor([]byte(`(abc,X)`))
	out, err := translateChars(c, nil, []byte("cabbage"))
	require.Nil(t, err)
	assert.Equal(t, "XXXXXge", string(out))
}

func TestUnknownConverterIsSemanticError(t *testing.T) {
	c := NewCursor(nil)
	_, err := convert(c, "bogus", nil, []byte("x"))
	require.NotNil(t, err)
	assert.Equal(t, SemanticError, err.Kind)
	assert.Equal(t, `unknown converter "bogus"`, err.Message)
}
