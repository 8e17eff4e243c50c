// Package core defines the typed intermediate representation of
// spec.md §4.3: a tagged-variant tree of modules, records, functions,
// statements, and expressions, each carrying a resolved C type.
// Grounded on the teacher's internal/core/core.go CoreNode embedding +
// private-marker-method pattern (coreExpr()), extended here with an
// IRStmt hierarchy since the translation target is imperative C rather
// than the teacher's expression-only ANF IR.
package core

import "github.com/sunholo/cgen/internal/types"

// IRModule is the root of the lowered IR: records and functions only.
// Includes and container declarations are not stored here; the emitter
// reads them from the Container Registry (§4.5) and the module's imports.
type IRModule struct {
	Records []*IRRecord
	Funcs   []*IRFunction
}

// IRRecord is a lowered record declaration (spec.md §4.4).
type IRRecord struct {
	Name    string
	Mutable bool
	Fields  []IRField
}

// IRField is one (name, type) pair of a lowered record.
type IRField struct {
	Name string
	Type *types.Type
}

// IRFunction is a lowered function definition.
type IRFunction struct {
	Name       string
	Params     []IRParam
	ReturnType *types.Type
	Body       []IRStmt
}

// IRParam is one lowered function parameter.
type IRParam struct {
	Name string
	Type *types.Type
}

// IRType pairs a resolved source-language Type with its emitted C
// spelling (a scalar keyword, a record struct name, or a mangled
// container type name from internal/containers) so the emitter never
// has to re-derive mangling rules from the IR.
type IRType struct {
	Src   *types.Type
	CName string
}

