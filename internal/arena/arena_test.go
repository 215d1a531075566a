package arena_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/confdiff/confdiff/internal/arena"
)

func TestToken_Format(t *testing.T) {
	var zero arena.Token

	var a arena.ByteArena
	a.WriteString("foo")
	foo := a.Take()

	a.WriteString("foo bar baz")
	fbb := a.Take()

	for _, tc := range []struct {
		name  string
		token arena.Token
		verb  string
		out   string
	}{
		{"zero %s", zero, "%s", "!(ERROR token has no arena)"},
		{"zero %q", zero, "%q", "!(ERROR token has no arena)"},
		{"zero %v", zero, "%v", "!(ERROR token has no arena)"},

		{"foo %s", foo, "%s", "foo"},
		{"foo %q", foo, "%q", `"foo"`},
		{"foo %v", foo, "%v", "foo"},

		{"fbb %s", fbb, "%s", "foo bar baz"},
		{"fbb %q", fbb, "%q", `"foo bar baz"`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, fmt.Sprintf(tc.verb, tc.token))
		})
	}
}

func TestByteArena_TakeIsContiguous(t *testing.T) {
	var a arena.ByteArena
	a.WriteString("one ")
	one := a.Take()
	a.WriteString("two ")
	two := a.Take()
	a.WriteString("three")
	three := a.Take()

	assert.Equal(t, "one ", one.Text())
	assert.Equal(t, "two ", two.Text())
	assert.Equal(t, "three", three.Text())
	assert.Equal(t, 4, one.Len())
	assert.False(t, one.Empty())

	var empty arena.Token
	assert.True(t, empty.Empty())
}

func TestToken_Slice(t *testing.T) {
	var a arena.ByteArena
	a.WriteString("hello world")
	tok := a.Take()

	assert.Equal(t, "hello", tok.Slice(0, 5).Text())
	assert.Equal(t, "world", tok.Slice(6, -1).Text())
	assert.Equal(t, "lo wo", tok.Slice(3, 8).Text())
}

func TestToken_SlicePanicsOnOutOfRange(t *testing.T) {
	var a arena.ByteArena
	a.WriteString("hi")
	tok := a.Take()
	assert.Panics(t, func() { tok.Slice(0, 10) })
}

func TestByteArena_Reset(t *testing.T) {
	var a arena.ByteArena
	a.WriteString("stale")
	a.Reset()
	a.WriteString("fresh")
	tok := a.Take()
	assert.Equal(t, "fresh", tok.Text())
}
