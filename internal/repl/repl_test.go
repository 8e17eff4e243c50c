package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate_ValidSourcePrintsC(t *testing.T) {
	r := NewWithVersion("test")
	var out bytes.Buffer
	r.translate("def add(a: int, b: int) -> int:\n    return a + b\n", &out)
	assert.Contains(t, out.String(), "int32_t add(int32_t a, int32_t b)")
}

func TestTranslate_InvalidSourcePrintsDiagnostics(t *testing.T) {
	r := NewWithVersion("test")
	var out bytes.Buffer
	r.translate("def f(:\n", &out)
	assert.Contains(t, out.String(), "translation failed")
}

func TestHandleCommand_History(t *testing.T) {
	r := NewWithVersion("test")
	r.history = []string{"def f() -> int:\n    return 1\n"}
	var out bytes.Buffer
	r.handleCommand(":history", &out)
	assert.Contains(t, out.String(), "1:")
	assert.Contains(t, out.String(), "return 1")
}

func TestHandleCommand_ResetClearsHistory(t *testing.T) {
	r := NewWithVersion("test")
	r.history = []string{"something"}
	var out bytes.Buffer
	r.handleCommand(":reset", &out)
	assert.Empty(t, r.history)
	assert.Contains(t, out.String(), "history cleared")
}

func TestHandleCommand_UnknownPrintsError(t *testing.T) {
	r := NewWithVersion("test")
	var out bytes.Buffer
	r.handleCommand(":bogus", &out)
	assert.Contains(t, out.String(), "unknown command")
}

func TestNewWithVersion_DefaultsWhenEmpty(t *testing.T) {
	r := NewWithVersion("")
	assert.Equal(t, "dev", r.version)
}
