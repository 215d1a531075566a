package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confdiff/confdiff/dialect"
)

func TestGeneric_Tokenize(t *testing.T) {
	p := dialect.Generic()
	head, args, ok := p.Tokenize("interface Ethernet1")
	require.True(t, ok)
	assert.Equal(t, "interface", head)
	assert.Equal(t, []string{"Ethernet1"}, args)

	_, _, ok = p.Tokenize("   ")
	assert.False(t, ok)
}

func TestGeneric_IsComment(t *testing.T) {
	p := dialect.Generic()
	assert.True(t, p.IsComment("! a note"))
	assert.True(t, p.IsComment("  # also a note"))
	assert.False(t, p.IsComment("interface X"))
}

func TestEOS_KeyHint(t *testing.T) {
	p := dialect.EOS()
	head, args, ok := p.Tokenize("interface Ethernet1")
	require.True(t, ok)
	hint, ok := p.KeyHint("interface Ethernet1", head, args)
	require.True(t, ok)
	assert.Equal(t, "interface Ethernet1", hint)

	head, args, ok = p.Tokenize("description foo")
	require.True(t, ok)
	_, ok = p.KeyHint("description foo", head, args)
	assert.False(t, ok)
}

func TestJunos_KeyHint(t *testing.T) {
	p := dialect.Junos()

	head, args, ok := p.Tokenize("ge-0/0/0 {")
	require.True(t, ok)
	hint, ok := p.KeyHint("ge-0/0/0 {", head, args)
	require.True(t, ok)
	assert.Equal(t, "ge-0/0/0", hint)

	head, args, ok = p.Tokenize("set system host-name foo")
	require.True(t, ok)
	hint, ok = p.KeyHint("set system host-name foo", head, args)
	require.True(t, ok)
	assert.Equal(t, "system host-name", hint)
}

func TestRegistry_Lookup(t *testing.T) {
	for _, name := range dialect.Names() {
		p, err := dialect.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
	}

	_, err := dialect.Lookup("does-not-exist")
	assert.Error(t, err)
}
