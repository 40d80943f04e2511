package patternfmt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestPattern() *Pattern {
	p := NewPattern()
	p.Add("family", StringValue("DejaVu Sans"))
	p.Add("size", DoubleValue(10))
	p.Add("size", DoubleValue(12))
	p.Add("style", StringValue("Book"))
	return p
}

func TestPatternLookupAndCount(t *testing.T) {
	p := buildTestPattern()

	vl, ok := p.Lookup("size")
	require.True(t, ok)
	assert.Equal(t, 2, len(vl))
	assert.Equal(t, 2, p.CountValues("size"))
	assert.Equal(t, 0, p.CountValues("nonexistent"))

	_, ok = p.Lookup("nonexistent")
	assert.False(t, ok)
}

func TestPatternDuplicateIsIndependent(t *testing.T) {
	p := buildTestPattern()
	dup := p.Duplicate()
	dup.Delete("style")

	_, stillThere := p.Lookup("style")
	assert.True(t, stillThere, "deleting from the duplicate must not affect the original")

	_, goneFromDup := dup.Lookup("style")
	assert.False(t, goneFromDup)
}

func TestPatternFilterKeepsOnlyNamedKeysInOrder(t *testing.T) {
	p := buildTestPattern()
	sub := p.Filter("style", "family")

	assert.Equal(t, []string{"family", "style"}, sub.Keys())

	if diff := cmp.Diff(ValueList{StringValue("DejaVu Sans")}, mustLookup(t, sub, "family")); diff != "" {
		t.Errorf("family mismatch (-want +got):\n%s", diff)
	}
	_, hasSize := sub.Lookup("size")
	assert.False(t, hasSize)
}

func TestPatternFilterOfUnknownKeyIsEmptyNotError(t *testing.T) {
	p := buildTestPattern()
	sub := p.Filter("nope")
	assert.Empty(t, sub.Keys())
}

func mustLookup(t *testing.T, p *Pattern, key string) ValueList {
	t.Helper()
	vl, ok := p.Lookup(key)
	require.True(t, ok)
	return vl
}

func TestValueListUnparseJoinsWithSeparator(t *testing.T) {
	vl := ValueList{StringValue("a"), StringValue("b"), StringValue("c")}
	assert.Equal(t, "a,b,c", string(vl.Unparse(nil, ',')))
	assert.Equal(t, "a b c", string(vl.Unparse(nil, 0)))
}

func TestDoubleValueTrimsTrailingZero(t *testing.T) {
	vl := ValueList{DoubleValue(10.0), DoubleValue(12.5)}
	assert.Equal(t, "10 12.5", string(vl.Unparse(nil, 0)))
}
