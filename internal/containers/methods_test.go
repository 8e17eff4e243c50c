package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/cgen/internal/core"
)

func TestDerivedOpName(t *testing.T) {
	assert.Equal(t, "numbers_push", DerivedOpName("numbers", "push"))
	assert.Equal(t, "seen_insert", DerivedOpName("seen", "insert"))
}

func TestContainerOp_List(t *testing.T) {
	suffix, tag, ok := ContainerOp(true, false, "append")
	assert.True(t, ok)
	assert.Equal(t, "push", suffix)
	assert.Equal(t, core.MethodListAppend, tag)
}

func TestContainerOp_Set(t *testing.T) {
	suffix, tag, ok := ContainerOp(false, false, "discard")
	assert.True(t, ok)
	assert.Equal(t, "erase", suffix)
	assert.Equal(t, core.MethodSetDiscard, tag)
}

func TestContainerOp_Unknown(t *testing.T) {
	_, _, ok := ContainerOp(true, false, "nope")
	assert.False(t, ok)
}

func TestStringOp(t *testing.T) {
	fn, tag, ok := StringOp("split")
	assert.True(t, ok)
	assert.Equal(t, "str_split", fn)
	assert.Equal(t, core.MethodStrSplit, tag)
}
