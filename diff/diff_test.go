package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confdiff/confdiff/dialect"
	"github.com/confdiff/confdiff/diff"
	"github.com/confdiff/confdiff/ir"
	"github.com/confdiff/confdiff/normalize"
)

var strictProfile = dialect.Profile{
	Name:           "strict",
	CommentMarkers: []string{"!"},
	Tokenize: func(raw string) (string, []string, bool) {
		if len(raw) >= 9 && raw[:9] == "interface" {
			return "interface", nil, true
		}
		return "", nil, false
	},
	KeyHint: func(string, string, []string) (string, bool) { return "", false },
}

func ordered() diff.OrderPolicyConfig {
	return diff.OrderPolicyConfig{Policy: diff.Ordered}
}

func unordered() diff.OrderPolicyConfig {
	return diff.OrderPolicyConfig{Policy: diff.Unordered}
}

func keyedStable() diff.OrderPolicyConfig {
	return diff.OrderPolicyConfig{Policy: diff.KeyedStable}
}

func TestDocuments_IdentityHasNoChanges(t *testing.T) {
	src := []byte("interface Ethernet1\n  description foo\n  shutdown\n")
	a := ir.ParseGeneric(src)
	b := ir.ParseGeneric(src)

	d := diff.Documents(a, b, normalize.Options{}, ordered())
	assert.False(t, d.HasChanges)
	assert.Empty(t, d.Edits)
}

func TestDocuments_Deterministic(t *testing.T) {
	a := ir.ParseGeneric([]byte("interface Ethernet1\n  description foo\n"))
	b := ir.ParseGeneric([]byte("interface Ethernet1\n  description bar\n"))

	d1 := diff.Documents(a, b, normalize.Options{}, ordered())
	d2 := diff.Documents(a, b, normalize.Options{}, ordered())
	assert.Equal(t, d1, d2)
}

func TestDocuments_DescriptionChangeIsReplace(t *testing.T) {
	a := ir.ParseGeneric([]byte("interface Ethernet1\n  description old\n"))
	b := ir.ParseGeneric([]byte("interface Ethernet1\n  description new\n"))

	d := diff.Documents(a, b, normalize.Options{}, ordered())
	require.Len(t, d.Edits, 1)
	e := d.Edits[0]
	assert.Equal(t, diff.Replace, e.Kind)
	require.Len(t, e.LeftLines, 1)
	require.Len(t, e.RightLines, 1)
	assert.Equal(t, "description old", e.LeftLines[0].Normalized)
	assert.Equal(t, "description new", e.RightLines[0].Normalized)
	assert.Equal(t, 1, d.Stats.Replaces)
	assert.Equal(t, 1, d.Stats.Any())
}

func TestDocuments_StatsSumEqualsEditCount(t *testing.T) {
	a := ir.ParseGeneric([]byte("one\ntwo\nthree\n"))
	b := ir.ParseGeneric([]byte("one\nTWO\nfour\n"))

	d := diff.Documents(a, b, normalize.Options{}, ordered())
	assert.Equal(t, len(d.Edits), d.Stats.Any())
}

func TestDocuments_OrderedArgumentSwapInvertsKinds(t *testing.T) {
	a := ir.ParseGeneric([]byte("a\nb\nc\n"))
	b := ir.ParseGeneric([]byte("a\nb\nX\nc\n"))

	forward := diff.Documents(a, b, normalize.Options{}, ordered())
	backward := diff.Documents(b, a, normalize.Options{}, ordered())

	require.Equal(t, len(forward.Edits), len(backward.Edits))
	for i, e := range forward.Edits {
		other := backward.Edits[i]
		switch e.Kind {
		case diff.Insert:
			assert.Equal(t, diff.Delete, other.Kind)
		case diff.Delete:
			assert.Equal(t, diff.Insert, other.Kind)
		case diff.Replace:
			assert.Equal(t, diff.Replace, other.Kind)
		}
	}
}

func TestDocuments_AnchorsResolveInRespectiveDocuments(t *testing.T) {
	a := ir.ParseGeneric([]byte("interface Ethernet1\n  description old\n"))
	b := ir.ParseGeneric([]byte("interface Ethernet1\n  description new\n"))

	d := diff.Documents(a, b, normalize.Options{}, ordered())
	for _, e := range d.Edits {
		if e.LeftAnchor != nil {
			_, ok := a.Resolve(e.LeftAnchor.Path)
			assert.True(t, ok)
		}
		if e.RightAnchor != nil {
			_, ok := b.Resolve(e.RightAnchor.Path)
			assert.True(t, ok)
		}
	}
}

func TestDocuments_UnorderedPermutationHasNoChanges(t *testing.T) {
	a := ir.ParseGeneric([]byte("interface Ethernet1\n  shutdown\ninterface Ethernet2\n  shutdown\n"))
	b := ir.ParseGeneric([]byte("interface Ethernet2\n  shutdown\ninterface Ethernet1\n  shutdown\n"))

	d := diff.Documents(a, b, normalize.Options{}, unordered())
	assert.False(t, d.HasChanges)
	assert.Empty(t, d.Edits)

	ordDiff := diff.Documents(a, b, normalize.Options{}, ordered())
	assert.True(t, ordDiff.HasChanges)
}

func TestDocuments_KeyedStableReorderMatchesByKeyHint(t *testing.T) {
	a := ir.Parse([]byte("interface Ethernet1\n  description one\ninterface Ethernet2\n  description two\n"), dialect.EOS())
	b := ir.Parse([]byte("interface Ethernet2\n  description two\ninterface Ethernet1\n  description one\n"), dialect.EOS())

	d := diff.Documents(a, b, normalize.Options{}, keyedStable())
	assert.False(t, d.HasChanges)
}

func TestDocuments_BlockDemotedToLineIsDetectedAsChange(t *testing.T) {
	a := ir.ParseGeneric([]byte("interface Ethernet1\n  description old\n"))
	b := ir.ParseGeneric([]byte("interface Ethernet1\n"))

	d := diff.Documents(a, b, normalize.Options{}, ordered())
	require.True(t, d.HasChanges)
	require.Len(t, d.Edits, 1)

	e := d.Edits[0]
	assert.Equal(t, diff.Replace, e.Kind)
	require.Len(t, e.LeftLines, 2)
	assert.Equal(t, "interface Ethernet1", e.LeftLines[0].Normalized)
	assert.Equal(t, "description old", e.LeftLines[1].Normalized)
	require.Len(t, e.RightLines, 1)
	assert.Equal(t, "interface Ethernet1", e.RightLines[0].Normalized)
}

func TestDocuments_UnknownConstructProducesFinding(t *testing.T) {
	a := ir.Parse([]byte("interface Ethernet1\ntotally-unrecognized line here\n"), strictProfile)
	b := ir.Parse([]byte("interface Ethernet1\ntotally-unrecognized line here\n"), strictProfile)

	d := diff.Documents(a, b, normalize.Options{}, ordered())
	var found bool
	for _, f := range d.Findings {
		if f.Code == diff.UnknownUnparsedConstruct {
			found = true
		}
	}
	assert.True(t, found)
}
