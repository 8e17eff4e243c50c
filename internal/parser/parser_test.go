package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SimpleFunction(t *testing.T) {
	src := `def add(a: int, b: int) -> int:
    return a + b
`
	p := New([]byte(src), "<test>")
	mod, bag := p.Parse()
	require.False(t, bag.HasErrors(), bag.Error())
	require.Len(t, mod.Funcs, 1)

	fn := mod.Funcs[0]
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, "int", fn.Params[0].Type.Name)
	assert.Equal(t, "int", fn.ReturnType.Name)
}

func TestParse_ContainerTypeAnnotation(t *testing.T) {
	src := `def f() -> int:
    numbers: list<int> = []
    return len(numbers)
`
	p := New([]byte(src), "<test>")
	mod, bag := p.Parse()
	require.False(t, bag.HasErrors(), bag.Error())
	require.Len(t, mod.Funcs, 1)
}

func TestParse_DictTypeAnnotationCarriesTwoArgs(t *testing.T) {
	src := `def f(m: dict<str, int>) -> int:
    return len(m)
`
	p := New([]byte(src), "<test>")
	mod, bag := p.Parse()
	require.False(t, bag.HasErrors(), bag.Error())

	ty := mod.Funcs[0].Params[0].Type
	assert.Equal(t, "dict", ty.Name)
	require.Len(t, ty.Args, 2)
	assert.Equal(t, "str", ty.Args[0].Name)
	assert.Equal(t, "int", ty.Args[1].Name)
}

func TestParse_RecordDeclaration(t *testing.T) {
	src := `mutable record Point:
    x: int
    y: int

def origin() -> Point:
    return Point(0, 0)
`
	p := New([]byte(src), "<test>")
	mod, bag := p.Parse()
	require.False(t, bag.HasErrors(), bag.Error())
	require.Len(t, mod.Records, 1)

	rec := mod.Records[0]
	assert.Equal(t, "Point", rec.Name)
	assert.True(t, rec.Mutable)
	require.Len(t, rec.Fields, 2)
	assert.Equal(t, "x", rec.Fields[0].Name)
}

func TestParse_ImmutableRecordDeclaration(t *testing.T) {
	src := `immutable record Point:
    x: int
    y: int
`
	p := New([]byte(src), "<test>")
	mod, bag := p.Parse()
	require.False(t, bag.HasErrors(), bag.Error())
	require.Len(t, mod.Records, 1)
	assert.False(t, mod.Records[0].Mutable)
}

func TestParse_Import(t *testing.T) {
	src := "import math\n\ndef f() -> int:\n    return 1\n"
	p := New([]byte(src), "<test>")
	mod, bag := p.Parse()
	require.False(t, bag.HasErrors(), bag.Error())
	require.Len(t, mod.Imports, 1)
	assert.Equal(t, "math", mod.Imports[0].Name)
}

func TestParse_UnexpectedTokenReportsDiagnostic(t *testing.T) {
	src := "def f(:\n"
	p := New([]byte(src), "<test>")
	_, bag := p.Parse()
	assert.True(t, bag.HasErrors())
}
