package pipeline

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) Result {
	t.Helper()
	res, err := Run(Config{}, Source{Code: src, Filename: "<test>"})
	require.NoError(t, err, strings.Join(diagStrings(res), "\n"))
	return res
}

func diagStrings(res Result) []string {
	var out []string
	for _, d := range res.Diagnostics {
		out = append(out, d.String())
	}
	return out
}

// TestScenario1_ScalarOnly matches spec.md's "scalar-only module"
// scenario: no container usage anywhere should pull in no container
// headers.
func TestScenario1_ScalarOnly(t *testing.T) {
	src := `def add(a: int, b: int) -> int:
    return a + b

def factorial(n: int) -> int:
    result: int = 1
    while n > 1:
        result = result * n
        n = n - 1
    return result
`
	res := run(t, src)
	assert.Contains(t, res.C, "#include <stdio.h>")
	assert.Contains(t, res.C, "#include <stdbool.h>")
	assert.Contains(t, res.C, "int32_t add(int32_t a, int32_t b)")
	assert.Contains(t, res.C, "int32_t factorial(int32_t n)")
	assert.NotContains(t, res.C, "containers/vector.h")
	assert.NotContains(t, res.C, "declare_vec")
}

// TestScenario2_ListUsage matches the list-usage scenario: append
// twice then return len().
func TestScenario2_ListUsage(t *testing.T) {
	src := `def build() -> int:
    numbers: list<int> = []
    numbers.append(10)
    numbers.append(20)
    return len(numbers)
`
	res := run(t, src)
	assert.Contains(t, res.C, `#include "containers/vector.h"`)
	assert.Contains(t, res.C, "declare_vec(vec_int32, int32)")
	assert.Contains(t, res.C, "vec_int32 numbers;")
	assert.Contains(t, res.C, "numbers = (vec_int32){0};")
	assert.Contains(t, res.C, "numbers_push(&numbers, 10)")
	assert.Contains(t, res.C, "numbers_push(&numbers, 20)")
	assert.Contains(t, res.C, "numbers_size(&numbers)")
}

// TestScenario3_RecordWithContainerField matches the record-with-
// speculative-field scenario: the container must not be declared.
func TestScenario3_RecordWithContainerField(t *testing.T) {
	src := `mutable record Box:
    items: list<int>

def makeBox() -> Box:
    return Box(1)
`
	res := run(t, src)
	assert.Contains(t, res.C, "typedef struct {")
	assert.Contains(t, res.C, "vec_int32 items;")
	assert.Contains(t, res.C, "Box make_Box(")
	assert.NotContains(t, res.C, "declare_vec")
	assert.NotContains(t, res.C, `#include "containers/vector.h"`)
}

// TestScenario4_SetComprehension matches the filtered set-comprehension
// scenario.
func TestScenario4_SetComprehension(t *testing.T) {
	src := `def squaresOfEvens() -> int:
    squares: set<int> = {x * x for x in range(5) if x % 2 == 0}
    return len(squares)
`
	res := run(t, src)
	assert.Contains(t, res.C, "hset_int32 squares;")
	assert.Contains(t, res.C, "squares = (hset_int32){0};")
	assert.Contains(t, res.C, "for (int32_t x = 0; x < 5; x += 1) {")
	assert.Contains(t, res.C, "if (x % 2 == 0) {")
	assert.Contains(t, res.C, "squares_insert(&squares, x * x)")
}

// TestScenario6_ParameterMutation matches the parameter-mutation
// scenario: the emitted parameter carries no const qualifier.
func TestScenario6_ParameterMutation(t *testing.T) {
	src := `def f(n: int) -> int:
    result: int = 1
    while n > 1:
        result = result * n
        n = n - 1
    return result
`
	res := run(t, src)
	assert.Contains(t, res.C, "int32_t f(int32_t n)")
	assert.NotContains(t, res.C, "const int32_t n")
	assert.Contains(t, res.C, "n = n - 1;")
}

// TestScenario5_StringMethod matches the string-method scenario:
// `.split()` lowers to a runtime str_split call and its list<str>
// result pulls in the vector container.
func TestScenario5_StringMethod(t *testing.T) {
	src := `def words(line: str) -> int:
    parts: list<str> = line.split(",")
    return len(parts)
`
	res := run(t, src)
	assert.Contains(t, res.C, `str_split(line, ",")`)
	assert.Contains(t, res.C, `#include "containers/vector.h"`)
	assert.Contains(t, res.C, "declare_vec(vec_cstr, cstr)")
}

// TestPipeline_DeterministicOutput matches spec.md §8's determinism
// property: translating the same source twice must produce
// byte-identical C, independent of any map-iteration ordering.
func TestPipeline_DeterministicOutput(t *testing.T) {
	src := `def squaresOfEvens() -> int:
    squares: set<int> = {x * x for x in range(5) if x % 2 == 0}
    counts: dict<str, int> = {}
    return len(squares)
`
	first := run(t, src)
	second := run(t, src)
	if diff := cmp.Diff(first.C, second.C); diff != "" {
		t.Errorf("translation is not deterministic (-first +second):\n%s", diff)
	}
}

func TestPipeline_ParseErrorReportsPhase(t *testing.T) {
	res, err := Run(Config{}, Source{Code: "def f(:\n", Filename: "<test>"})
	require.Error(t, err)
	assert.Equal(t, PhaseParse, res.Phase)
}
