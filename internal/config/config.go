// Package config loads the translator's bounded import allow-list and
// container-type-mapping table (spec.md §4.4, §6) from a YAML
// document, the way the teacher's internal/eval_harness/spec.go loads
// benchmark specs: os.ReadFile + yaml.Unmarshal into a typed struct,
// with a handful of required-field checks after unmarshaling.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ImportSpec is one entry of the import allow-list: an importable
// module name and, if it maps onto a C standard header, that header
// (spec.md §6 — "dataclasses" and "typing" have no header, they are
// validation-only).
type ImportSpec struct {
	Name   string `yaml:"name"`
	Header string `yaml:"header"`
}

// ContainerMapping is one row of spec.md §4.4's container-type table:
// the source kind, its emitted C name prefix, and the container-library
// header declaring its declare_* macro.
type ContainerMapping struct {
	Kind   string `yaml:"kind"`
	Prefix string `yaml:"prefix"`
	Header string `yaml:"header"`
}

// Spec is the full configuration document.
type Spec struct {
	AllowedImports []ImportSpec       `yaml:"allowed_imports"`
	Containers     []ContainerMapping `yaml:"containers"`
}

// defaultYAML mirrors the tables hard-coded in internal/parser
// (allowedImports) and internal/containers (CTypeName/HeaderFor) as
// human-editable data that LoadFile can replace. The parser, registry
// and emitter use their own hard-coded tables and do not read this
// package, so an override here does not change translation.
var defaultYAML = []byte(`
allowed_imports:
  - name: math
    header: <math.h>
  - name: dataclasses
    header: ""
  - name: typing
    header: ""
containers:
  - kind: list
    prefix: vec_
    header: containers/vector.h
  - kind: set
    prefix: hset_
    header: containers/hashset.h
  - kind: dict
    prefix: hmap_
    header: containers/hashmap.h
`)

// Load parses the built-in default configuration.
func Load() (*Spec, error) {
	return parse(defaultYAML)
}

// LoadFile reads and parses an operator-supplied override of the
// default configuration.
func LoadFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if len(s.AllowedImports) == 0 {
		return nil, fmt.Errorf("config missing required field: allowed_imports")
	}
	if len(s.Containers) == 0 {
		return nil, fmt.Errorf("config missing required field: containers")
	}
	return &s, nil
}

// AllowsImport reports whether name is present in the allow-list.
func (s *Spec) AllowsImport(name string) bool {
	for _, i := range s.AllowedImports {
		if i.Name == name {
			return true
		}
	}
	return false
}
