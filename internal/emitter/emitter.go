// Package emitter implements the Emitter of spec.md §4.6: it consumes
// the frozen IR and container Registry and renders deterministic,
// formatted C11 source text — header block (includes, container
// declarations, record typedefs), then function definitions. Grounded
// on janpfeifer/go-highway's cmd/hwygen/c_ast_translator.go
// (bytes.Buffer + indent int + recursive per-node-kind emit* methods,
// precedence-aware parenthesization) and the teacher's
// internal/core/core.go String()-dispatch-per-type rendering idiom.
package emitter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sunholo/cgen/internal/ast"
	"github.com/sunholo/cgen/internal/containers"
	"github.com/sunholo/cgen/internal/core"
)

// importHeaders maps an allow-listed import (spec.md §6) to the
// standard-library header it pulls in. "dataclasses" and "typing" are
// no-ops at emission time (validation-only, per spec.md §6).
var importHeaders = map[string]string{
	"math": "<math.h>",
}

// Emitter renders one IRModule to C source text.
type Emitter struct {
	buf           bytes.Buffer
	indent        int
	recordMutable map[string]bool
}

// Emit renders mod to formatted C11 source, given the frozen container
// Registry and the module's import directives (spec.md §4.6).
func Emit(mod *core.IRModule, reg *containers.Registry, imports []*ast.Import) string {
	e := &Emitter{recordMutable: map[string]bool{}}
	for _, r := range mod.Records {
		e.recordMutable[r.Name] = r.Mutable
	}
	e.emitIncludes(reg, imports)
	e.emitContainerDecls(reg)
	for _, r := range mod.Records {
		e.emitRecord(r)
	}
	for _, fn := range mod.Funcs {
		e.emitFunc(fn)
	}
	return e.buf.String()
}

func (e *Emitter) writef(format string, args ...interface{}) {
	fmt.Fprintf(&e.buf, format, args...)
}

func (e *Emitter) pad() string {
	return strings.Repeat("    ", e.indent)
}

// emitIncludes renders step 1 and 2 of spec.md §4.6's output layout:
// the fixed includes (stdio.h, stdbool.h, the hand-written support
// runtime's header — always present, since `str` is a core scalar
// type, see DESIGN.md), any standard headers triggered by import
// directives, and — only if the registry reports at least one
// actually-used container (§8's minimality property) — the
// container-library headers.
func (e *Emitter) emitIncludes(reg *containers.Registry, imports []*ast.Import) {
	e.writef("#include <stdio.h>\n")
	e.writef("#include <stdbool.h>\n")
	e.writef("#include \"cgen_runtime.h\"\n")
	for _, imp := range imports {
		if h, ok := importHeaders[imp.Name]; ok {
			e.writef("#include %s\n", h)
		}
	}
	if reg.HasActual() {
		for _, h := range reg.RequiredHeaders() {
			e.writef("#include \"%s\"\n", h)
		}
	}
	e.writef("\n")
}

// emitContainerDecls renders step 3: one declare_* macro line per
// actually-used instantiation, in registry order (spec.md §4.5).
func (e *Emitter) emitContainerDecls(reg *containers.Registry) {
	decls := reg.RequiredDeclarations()
	if len(decls) == 0 {
		return
	}
	for _, inst := range decls {
		e.writef("%s\n", inst.Decl)
	}
	e.writef("\n")
}

// emitRecord renders step 4: the typedef struct, plus a constructor
// function for mutable records (spec.md §4.4's record-flavor
// semantics).
func (e *Emitter) emitRecord(r *core.IRRecord) {
	e.writef("typedef struct {\n")
	for _, f := range r.Fields {
		e.writef("    %s %s;\n", containers.CTypeName(f.Type), f.Name)
	}
	e.writef("} %s;\n", r.Name)
	if r.Mutable {
		e.emitConstructor(r)
	}
	e.writef("\n")
}

func (e *Emitter) emitConstructor(r *core.IRRecord) {
	e.writef("%s make_%s(", r.Name, r.Name)
	for i, f := range r.Fields {
		if i > 0 {
			e.writef(", ")
		}
		e.writef("%s %s", containers.CTypeName(f.Type), f.Name)
	}
	e.writef(") {\n")
	e.writef("    %s v;\n", r.Name)
	for _, f := range r.Fields {
		e.writef("    v.%s = %s;\n", f.Name, f.Name)
	}
	e.writef("    return v;\n")
	e.writef("}\n")
}
