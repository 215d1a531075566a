package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/confdiff/confdiff/ir"
	"github.com/confdiff/confdiff/normalize"
)

func TestApply_IgnoreComments(t *testing.T) {
	o := normalize.NewOptions(normalize.IgnoreComments)
	_, drop := normalize.Apply(o, ir.Comment, "! note")
	assert.True(t, drop)

	_, drop = normalize.Apply(o, ir.Content, "interface X")
	assert.False(t, drop)
}

func TestApply_IgnoreBlankLines(t *testing.T) {
	o := normalize.NewOptions(normalize.IgnoreBlankLines)
	_, drop := normalize.Apply(o, ir.Blank, "   ")
	assert.True(t, drop)
}

func TestApply_TrimTrailingWhitespace(t *testing.T) {
	o := normalize.NewOptions(normalize.TrimTrailingWhitespace)
	s, drop := normalize.Apply(o, ir.Content, "description foo  \t")
	assert.False(t, drop)
	assert.Equal(t, "description foo", s)
}

func TestApply_NormalizeLeadingWhitespace(t *testing.T) {
	o := normalize.NewOptions(normalize.NormalizeLeadingWhitespace)
	s, _ := normalize.Apply(o, ir.Content, "\t\tdescription foo")
	assert.Equal(t, "  description foo", s)
}

func TestApply_CollapseInternalWhitespace(t *testing.T) {
	o := normalize.NewOptions(normalize.CollapseInternalWhitespace)
	s, _ := normalize.Apply(o, ir.Content, "  description   foo\tbar")
	assert.Equal(t, "  description foo bar", s)
}

func TestOptions_AppliedIsCanonicalOrder(t *testing.T) {
	o := normalize.NewOptions(
		normalize.CollapseInternalWhitespace,
		normalize.IgnoreComments,
		normalize.TrimTrailingWhitespace,
	)
	assert.Equal(t, []normalize.Step{
		normalize.IgnoreComments,
		normalize.TrimTrailingWhitespace,
		normalize.CollapseInternalWhitespace,
	}, o.Applied())
}
