package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func keys(ss ...string) []uint64 {
	out := make([]uint64, len(ss))
	for i, s := range ss {
		out[i] = hashLine(s)
	}
	return out
}

func kindsOf(ops []atomOp) []opKind {
	out := make([]opKind, len(ops))
	for i, op := range ops {
		out[i] = op.kind
	}
	return out
}

func TestMyersSES_Identical(t *testing.T) {
	ops := myersSES(keys("a", "b", "c"), keys("a", "b", "c"))
	for _, op := range ops {
		assert.Equal(t, opKeep, op.kind)
	}
}

func TestMyersSES_Empty(t *testing.T) {
	assert.Nil(t, myersSES(nil, nil))
}

func TestMyersSES_PureInsert(t *testing.T) {
	ops := myersSES(keys("a", "c"), keys("a", "b", "c"))
	assert.Equal(t, []opKind{opKeep, opInsert, opKeep}, kindsOf(ops))
}

func TestMyersSES_PureDelete(t *testing.T) {
	ops := myersSES(keys("a", "b", "c"), keys("a", "c"))
	assert.Equal(t, []opKind{opKeep, opDelete, opKeep}, kindsOf(ops))
}

func TestMyersSES_TieBreakPrefersDeleteBeforeInsert(t *testing.T) {
	// a single-element replace: a->x has no common subsequence, so the
	// shortest edit script is exactly one delete and one insert. The
	// deterministic tie-break requires the delete to be emitted first.
	ops := myersSES(keys("a"), keys("x"))
	assert.Equal(t, []opKind{opDelete, opInsert}, kindsOf(ops))
}

func TestMyersSES_ConsumesAllInput(t *testing.T) {
	a := keys("a", "b", "c", "d")
	b := keys("a", "x", "c", "y", "d")
	ops := myersSES(a, b)

	var li, ri int
	for _, op := range ops {
		switch op.kind {
		case opKeep:
			assert.Equal(t, li, op.li)
			assert.Equal(t, ri, op.ri)
			li++
			ri++
		case opDelete:
			assert.Equal(t, li, op.li)
			li++
		case opInsert:
			assert.Equal(t, ri, op.ri)
			ri++
		}
	}
	assert.Equal(t, len(a), li)
	assert.Equal(t, len(b), ri)
}
