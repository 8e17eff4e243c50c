package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/cgen/internal/types"
)

func TestConstructors_CarryType(t *testing.T) {
	it := &IRType{Src: types.Int, CName: "int32_t"}

	n := NewName(it, "x")
	assert.Same(t, it, n.Type())

	b := NewBinary(it, "+", n, NewLitInt(it, 1))
	assert.Equal(t, "+", b.Op)
	assert.Same(t, it, b.Type())
}

func TestSubscript_CarriesDerivedVarName(t *testing.T) {
	elemT := &IRType{Src: types.Int, CName: "int32_t"}
	listT := &IRType{Src: types.List(types.Int), CName: "vec_int32"}

	c := NewName(listT, "numbers")
	idx := NewLitInt(elemT, 0)
	sub := NewSubscript(elemT, c, idx, "numbers")

	assert.Equal(t, "numbers", sub.VarName)
	assert.Same(t, c, sub.Container)
	assert.Same(t, elemT, sub.Type())
}

func TestIRModule_HoldsRecordsAndFuncs(t *testing.T) {
	mod := &IRModule{
		Records: []*IRRecord{{Name: "Point", Mutable: false, Fields: []IRField{
			{Name: "x", Type: types.Int},
			{Name: "y", Type: types.Int},
		}}},
		Funcs: []*IRFunction{{Name: "origin", ReturnType: types.RecordT("Point")}},
	}
	assert.Len(t, mod.Records, 1)
	assert.Equal(t, "Point", mod.Records[0].Name)
	assert.Len(t, mod.Funcs, 1)
}
