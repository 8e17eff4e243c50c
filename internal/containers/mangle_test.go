package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/cgen/internal/types"
)

func TestCTypeName_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   *types.Type
		want string
	}{
		{"int", types.Int, "int32_t"},
		{"float", types.Float, "double"},
		{"bool", types.Bool, "bool"},
		{"str", types.Str, "cstr"},
		{"none", types.None, "void"},
		{"record", types.RecordT("Point"), "Point"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CTypeName(tt.in))
		})
	}
}

func TestCTypeName_Containers(t *testing.T) {
	assert.Equal(t, "vec_int32", CTypeName(types.List(types.Int)))
	assert.Equal(t, "hset_cstr", CTypeName(types.Set(types.Str)))
	assert.Equal(t, "hmap_cstr_int32", CTypeName(types.Dict(types.Str, types.Int)))
}

func TestDeclMacro(t *testing.T) {
	assert.Equal(t, "declare_vec(vec_int32, int32)", DeclMacro(types.List(types.Int)))
	assert.Equal(t, "declare_hset(hset_cstr, cstr)", DeclMacro(types.Set(types.Str)))
	assert.Equal(t, "declare_hmap(hmap_cstr_int32, cstr, int32)", DeclMacro(types.Dict(types.Str, types.Int)))
}

func TestHeaderFor(t *testing.T) {
	assert.Equal(t, "containers/vector.h", HeaderFor(types.List(types.Int)))
	assert.Equal(t, "containers/hashmap.h", HeaderFor(types.Dict(types.Str, types.Int)))
	assert.Equal(t, "containers/hashset.h", HeaderFor(types.Set(types.Int)))
	assert.Equal(t, "", HeaderFor(types.Int))
}
