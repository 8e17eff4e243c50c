package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/cgen/internal/ast"
)

func fn(name string, params []ast.Param, ret *ast.TypeExpr, body []ast.Stmt) *ast.FuncDecl {
	return &ast.FuncDecl{Name: name, Params: params, ReturnType: ret, Body: body}
}

func TestAnalyze_SimpleFunction(t *testing.T) {
	mod := &ast.Module{
		Funcs: []*ast.FuncDecl{
			fn("add",
				[]ast.Param{{Name: "a", Type: te("int")}, {Name: "b", Type: te("int")}},
				te("int"),
				[]ast.Stmt{
					&ast.Return{Value: &ast.Binary{Op: "+", Left: &ast.Name{Value: "a"}, Right: &ast.Name{Value: "b"}}},
				}),
		},
	}

	res, bag := Analyze(mod)
	require.False(t, bag.HasErrors(), bag.Error())
	sig := res.FuncSigs["add"]
	require.NotNil(t, sig)
	assert.True(t, Equal(Int, sig.Return))
	assert.Len(t, sig.Params, 2)
}

func TestAnalyze_ReturnTypeMismatch(t *testing.T) {
	mod := &ast.Module{
		Funcs: []*ast.FuncDecl{
			fn("bad", nil, te("int"), []ast.Stmt{
				&ast.Return{Value: &ast.LitStr{Value: "nope"}},
			}),
		},
	}
	_, bag := Analyze(mod)
	assert.True(t, bag.HasErrors())
}

func TestAnalyze_RecordFieldContainerIsSpeculativeOnly(t *testing.T) {
	mod := &ast.Module{
		Records: []*ast.RecordDecl{
			{Name: "Box", Mutable: true, Fields: []ast.RecordField{
				{Name: "items", Type: te("list", te("int"))},
			}},
		},
		Funcs: []*ast.FuncDecl{
			fn("make", nil, te("Box"), []ast.Stmt{
				&ast.Return{Value: &ast.RecordCtor{Name: "Box", Args: []ast.Expr{
					&ast.ContainerLit{Kind: "list"},
				}}},
			}),
		},
	}
	res, bag := Analyze(mod)
	require.False(t, bag.HasErrors(), bag.Error())

	found := false
	for _, u := range res.Usage.Entries() {
		if u.Type.String() == "list<int>" {
			found = true
			assert.False(t, u.Actual, "a container only ever seen as a record field must stay speculative")
		}
	}
	assert.True(t, found)
}

func TestAnalyze_VarDeclNumericWideningAllowed(t *testing.T) {
	mod := &ast.Module{
		Funcs: []*ast.FuncDecl{
			fn("f", nil, nil, []ast.Stmt{
				&ast.VarDecl{Name: "x", Type: te("float"), Init: &ast.LitInt{Value: 1}},
			}),
		},
	}
	_, bag := Analyze(mod)
	assert.False(t, bag.HasErrors(), bag.Error())
}
