package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSource_ReturnsFileContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.src")
	require.NoError(t, os.WriteFile(path, []byte("def f() -> int:\n    return 1\n"), 0o644))

	got := readSource(path)
	assert.Equal(t, "def f() -> int:\n    return 1\n", got)
}
