package emitter

import (
	"github.com/sunholo/cgen/internal/containers"
	"github.com/sunholo/cgen/internal/core"
)

// emitFunc renders step 5: a function definition. Parameters carry no
// `const` qualifier — spec.md §8 Scenario 6 requires parameters to
// remain writable inside the body.
func (e *Emitter) emitFunc(fn *core.IRFunction) {
	e.writef("%s %s(", containers.CTypeName(fn.ReturnType), fn.Name)
	for i, p := range fn.Params {
		if i > 0 {
			e.writef(", ")
		}
		e.writef("%s %s", containers.CTypeName(p.Type), p.Name)
	}
	if len(fn.Params) == 0 {
		e.writef("void")
	}
	e.writef(") {\n")
	e.indent = 1
	e.emitStmts(fn.Body)
	e.indent = 0
	e.writef("}\n\n")
}
