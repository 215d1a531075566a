package flatten_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confdiff/confdiff/dialect"
	"github.com/confdiff/confdiff/flatten"
	"github.com/confdiff/confdiff/ir"
	"github.com/confdiff/confdiff/normalize"
)

func TestFlatten_Basic(t *testing.T) {
	doc := ir.ParseGeneric([]byte("interface Ethernet1\n  description old\n"))
	lines := flatten.Flatten(doc, dialect.Generic(), normalize.Options{})
	require.Len(t, lines, 2)
	assert.Equal(t, ir.Path{0}, lines[0].Path)
	assert.Equal(t, ir.Path{0, 0}, lines[1].Path)
	assert.Equal(t, "description old", lines[1].Normalized)
}

func TestFlatten_DropsIgnoredLines(t *testing.T) {
	doc := ir.ParseGeneric([]byte("! note\ninterface X\n"))
	opts := normalize.NewOptions(normalize.IgnoreComments)
	lines := flatten.Flatten(doc, dialect.Generic(), opts)
	require.Len(t, lines, 1)
	assert.Equal(t, "interface X", lines[0].Normalized)
}

func TestFlatten_OccurrenceKeyDisambiguatesDuplicates(t *testing.T) {
	doc := ir.ParseGeneric([]byte("shutdown\nshutdown\n"))
	lines := flatten.Flatten(doc, dialect.Generic(), normalize.Options{})
	require.Len(t, lines, 2)
	assert.Equal(t, lines[0].ContentKey, lines[1].ContentKey)
	assert.NotEqual(t, lines[0].OccurrenceKey, lines[1].OccurrenceKey)
}

func TestFlatten_KeyHint(t *testing.T) {
	doc := ir.Parse([]byte("interface Ethernet1\n  description old\n"), dialect.EOS())
	lines := flatten.Flatten(doc, dialect.EOS(), normalize.Options{})
	require.Len(t, lines, 2)
	assert.True(t, lines[0].HasKeyHint)
	assert.Equal(t, "interface Ethernet1", lines[0].KeyHint)
	assert.False(t, lines[1].HasKeyHint)
}

func TestFlatten_Deterministic(t *testing.T) {
	doc := ir.ParseGeneric([]byte("a\n  b\n    c\nd\n"))
	l1 := flatten.Flatten(doc, dialect.Generic(), normalize.Options{})
	l2 := flatten.Flatten(doc, dialect.Generic(), normalize.Options{})
	assert.Equal(t, l1, l2)
}
