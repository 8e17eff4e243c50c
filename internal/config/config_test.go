package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultConfig(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)
	assert.True(t, s.AllowsImport("math"))
	assert.True(t, s.AllowsImport("dataclasses"))
	assert.False(t, s.AllowsImport("os"))
	require.Len(t, s.Containers, 3)
	assert.Equal(t, "vec_", s.Containers[0].Prefix)
}

func TestLoadFile_OperatorOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cgen.yaml")
	doc := `
allowed_imports:
  - name: re
    header: ""
containers:
  - kind: list
    prefix: vec_
    header: containers/vector.h
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, s.AllowsImport("re"))
	assert.False(t, s.AllowsImport("math"))
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_RejectsMissingAllowedImports(t *testing.T) {
	_, err := parse([]byte("containers:\n  - kind: list\n    prefix: vec_\n    header: containers/vector.h\n"))
	assert.ErrorContains(t, err, "allowed_imports")
}

func TestParse_RejectsMissingContainers(t *testing.T) {
	_, err := parse([]byte("allowed_imports:\n  - name: math\n    header: <math.h>\n"))
	assert.ErrorContains(t, err, "containers")
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := parse([]byte("not: valid: yaml: ["))
	assert.Error(t, err)
}
