package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/cgen/internal/types"
)

func TestRegistry_UpgradeOnly(t *testing.T) {
	r := NewRegistry()
	r.Register(types.List(types.Int), false)
	assert.Empty(t, r.RequiredDeclarations())
	assert.False(t, r.HasActual())

	r.Register(types.List(types.Int), true)
	assert.Len(t, r.RequiredDeclarations(), 1)
	assert.True(t, r.HasActual())

	// Re-registering speculative must not downgrade an actual entry.
	r.Register(types.List(types.Int), false)
	assert.True(t, r.HasActual())
}

func TestRegistry_InsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(types.Set(types.Str), true)
	r.Register(types.List(types.Int), true)
	r.Register(types.Set(types.Str), true)

	decls := r.RequiredDeclarations()
	require.Len(t, decls, 2)
	assert.Equal(t, "set<str>", decls[0].Type.String())
	assert.Equal(t, "list<int>", decls[1].Type.String())
}

func TestRegistry_RequiredHeaders_FixedOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(types.Dict(types.Str, types.Int), true)
	r.Register(types.List(types.Int), true)

	headers := r.RequiredHeaders()
	assert.Equal(t, []string{"containers/vector.h", "containers/hashmap.h"}, headers)
}

func TestRegistry_Reset(t *testing.T) {
	r := NewRegistry()
	r.Register(types.List(types.Int), true)
	require.True(t, r.HasActual())

	r.Reset()
	assert.False(t, r.HasActual())
	assert.Empty(t, r.RequiredDeclarations())
}

func TestRegistry_IgnoresScalars(t *testing.T) {
	r := NewRegistry()
	inst := r.Register(types.Int, true)
	assert.Nil(t, inst)
}
