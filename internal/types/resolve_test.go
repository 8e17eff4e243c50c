package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/cgen/internal/ast"
	"github.com/sunholo/cgen/internal/diag"
)

func te(name string, args ...*ast.TypeExpr) *ast.TypeExpr {
	return &ast.TypeExpr{Name: name, Args: args}
}

func TestResolve_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   *ast.TypeExpr
		want *Type
	}{
		{"int", te("int"), Int},
		{"float", te("float"), Float},
		{"bool", te("bool"), Bool},
		{"str", te("str"), Str},
		{"none", te("none"), None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := &diag.Bag{}
			got := Resolve(tt.in, map[string]bool{}, bag)
			assert.False(t, bag.HasErrors())
			assert.True(t, Equal(tt.want, got))
		})
	}
}

func TestResolve_Containers(t *testing.T) {
	bag := &diag.Bag{}
	got := Resolve(te("list", te("int")), map[string]bool{}, bag)
	require.False(t, bag.HasErrors())
	assert.Equal(t, "list<int>", got.String())

	bag = &diag.Bag{}
	got = Resolve(te("dict", te("str"), te("int")), map[string]bool{}, bag)
	require.False(t, bag.HasErrors())
	assert.Equal(t, "dict<str,int>", got.String())
}

func TestResolve_Record(t *testing.T) {
	bag := &diag.Bag{}
	got := Resolve(te("Point"), map[string]bool{"Point": true}, bag)
	require.False(t, bag.HasErrors())
	assert.Equal(t, "Point", got.String())
}

func TestResolve_UnknownName(t *testing.T) {
	bag := &diag.Bag{}
	Resolve(te("Nope"), map[string]bool{}, bag)
	assert.True(t, bag.HasErrors())
}

func TestResolve_NestedContainerRejected(t *testing.T) {
	bag := &diag.Bag{}
	Resolve(te("list", te("list", te("int"))), map[string]bool{}, bag)
	assert.True(t, bag.HasErrors())
}

func TestResolve_RecordElementContainerRejected(t *testing.T) {
	bag := &diag.Bag{}
	Resolve(te("list", te("Point")), map[string]bool{"Point": true}, bag)
	assert.True(t, bag.HasErrors(), "list<Point> must be rejected: container declarations always precede record typedefs in emitted output")
}
