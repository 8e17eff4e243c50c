package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/cgen/internal/containers"
	"github.com/sunholo/cgen/internal/core"
	"github.com/sunholo/cgen/internal/elaborate"
	"github.com/sunholo/cgen/internal/parser"
	"github.com/sunholo/cgen/internal/types"
)

func intType() *core.IRType   { return &core.IRType{Src: types.Int, CName: "int32_t"} }
func floatType() *core.IRType { return &core.IRType{Src: types.Float, CName: "double"} }

// TestRenderExpr_PrecedenceParenthesizesLowerPrecedenceChild exercises
// the precedence table directly: `(a + b) * c` must keep its
// parentheses, but `a * b + c` must not gain any.
func TestRenderExpr_PrecedenceParenthesizesLowerPrecedenceChild(t *testing.T) {
	e := &Emitter{}
	a := core.NewName(intType(), "a")
	b := core.NewName(intType(), "b")
	c := core.NewName(intType(), "c")

	add := core.NewBinary(intType(), "+", a, b)
	mul := core.NewBinary(intType(), "*", add, c)
	assert.Equal(t, "(a + b) * c", e.renderExpr(mul, 0))

	mulFirst := core.NewBinary(intType(), "*", a, b)
	addSecond := core.NewBinary(intType(), "+", mulFirst, c)
	assert.Equal(t, "a * b + c", e.renderExpr(addSecond, 0))
}

func TestRenderExpr_CastWrapsUnaryPrecedenceOperand(t *testing.T) {
	e := &Emitter{}
	x := core.NewName(intType(), "x")
	cast := core.NewCast(floatType(), floatType(), x)
	assert.Equal(t, "(double)x", e.renderExpr(cast, 0))
}

func TestRenderRecordCtor_MutableRecordCallsMakeConstructor(t *testing.T) {
	e := &Emitter{recordMutable: map[string]bool{"Box": true, "Point": false}}
	one := core.NewLitInt(intType(), 1)

	mutable := core.NewRecordCtor(&core.IRType{Src: types.RecordT("Box"), CName: "Box"}, "Box", []core.IRExpr{one})
	assert.Equal(t, "make_Box(1)", e.renderRecordCtor(mutable))

	immutable := core.NewRecordCtor(&core.IRType{Src: types.RecordT("Point"), CName: "Point"}, "Point", []core.IRExpr{one})
	assert.Equal(t, "(Point){1}", e.renderRecordCtor(immutable))
}

// TestEmit_ContainerDeclOrderMatchesRegistryOrder exercises Emit end
// to end via the parser, analyzer and elaborator, confirming the declare_* macro lines appear
// in first-actually-used order (spec.md §4.5) ahead of the functions.
func TestEmit_ContainerDeclOrderMatchesRegistryOrder(t *testing.T) {
	src := `def build() -> int:
    names: set<str> = {}
    counts: list<int> = []
    names.add("a")
    counts.append(1)
    return len(counts)
`
	mod, bag := parser.New([]byte(src), "<test>").Parse()
	require.False(t, bag.HasErrors(), bag.Error())
	tyRes, tyBag := types.Analyze(mod)
	require.False(t, tyBag.HasErrors(), tyBag.Error())
	reg := containers.NewRegistry()
	irMod, irBag := elaborate.New(tyRes, reg).Lower(mod)
	require.False(t, irBag.HasErrors(), irBag.Error())
	out := Emit(irMod, reg, mod.Imports)

	setIdx := indexOf(t, out, "declare_hset(hset_cstr, cstr)")
	listIdx := indexOf(t, out, "declare_vec(vec_int32, int32)")
	fnIdx := indexOf(t, out, "int32_t build(")
	assert.Less(t, setIdx, listIdx)
	assert.Less(t, listIdx, fnIdx)
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	t.Fatalf("substring %q not found", needle)
	return -1
}
