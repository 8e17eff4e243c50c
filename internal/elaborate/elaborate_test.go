package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/cgen/internal/containers"
	"github.com/sunholo/cgen/internal/core"
	"github.com/sunholo/cgen/internal/parser"
	"github.com/sunholo/cgen/internal/types"
)

func lower(t *testing.T, src string) (*core.IRModule, *containers.Registry) {
	t.Helper()
	p := parser.New([]byte(src), "<test>")
	mod, bag := p.Parse()
	require.False(t, bag.HasErrors(), bag.Error())

	tyRes, tyBag := types.Analyze(mod)
	require.False(t, tyBag.HasErrors(), tyBag.Error())

	reg := containers.NewRegistry()
	e := New(tyRes, reg)
	ir, irBag := e.Lower(mod)
	require.False(t, irBag.HasErrors(), irBag.Error())
	return ir, reg
}

func TestLower_ListAppendDerivesVariableName(t *testing.T) {
	src := `def build() -> int:
    numbers: list<int> = []
    numbers.append(10)
    return len(numbers)
`
	ir, reg := lower(t, src)
	require.Len(t, ir.Funcs, 1)
	fn := ir.Funcs[0]

	// Decl, ExprStmt(push), Return
	require.Len(t, fn.Body, 3)
	decl, ok := fn.Body[0].(*core.Decl)
	require.True(t, ok)
	assert.Equal(t, "numbers", decl.Name)

	push, ok := fn.Body[1].(*core.ExprStmt)
	require.True(t, ok)
	mc, ok := push.X.(*core.MethodCall)
	require.True(t, ok)
	assert.Equal(t, "numbers_push", mc.RuntimeFn)
	assert.Equal(t, core.MethodListAppend, mc.Tag)

	assert.True(t, reg.HasActual())
}

func TestLower_RecordFieldContainerStaysSpeculative(t *testing.T) {
	src := `mutable record Box:
    items: list<int>

def makeBox() -> Box:
    return Box(1)
`
	_, reg := lower(t, src)
	assert.False(t, reg.HasActual(), "a container only reachable through a record field must not force a declaration")
}

func TestLower_NumericWideningInsertsCast(t *testing.T) {
	src := `def f() -> float:
    x: int = 1
    y: float = 2.0
    return x + y
`
	ir, _ := lower(t, src)
	fn := ir.Funcs[0]
	ret, ok := fn.Body[len(fn.Body)-1].(*core.Return)
	require.True(t, ok)
	bin, ok := ret.Value.(*core.Binary)
	require.True(t, ok)
	_, leftIsCast := bin.Left.(*core.Cast)
	assert.True(t, leftIsCast, "int operand mixed with float must be wrapped in an explicit Cast")
}

func TestLower_ComprehensionDesugarsToForRangeWithFilter(t *testing.T) {
	src := `def squaresOfEvens() -> int:
    squares: set<int> = {x * x for x in range(5) if x % 2 == 0}
    return len(squares)
`
	ir, reg := lower(t, src)
	fn := ir.Funcs[0]
	require.Len(t, fn.Body, 3)

	loop, ok := fn.Body[1].(*core.ForRange)
	require.True(t, ok)
	assert.Equal(t, "x", loop.Var)
	require.Len(t, loop.Body, 1)
	ifst, ok := loop.Body[0].(*core.If)
	require.True(t, ok)
	require.Len(t, ifst.Then, 1)

	assert.True(t, reg.HasActual())
}
