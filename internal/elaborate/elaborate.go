// Package elaborate implements the IR Builder of spec.md §4.3: it
// lowers the surface ast.Module into the typed internal/core IR,
// desugaring comprehensions, normalizing method calls into the
// canonical (receiver-kind × method-tag) form of spec.md §9, and
// inserting explicit numeric-widening casts. Grounded on the teacher's
// internal/elaborate/{elaborate,expressions,patterns}.go one-file-per-
// concern lowering-pass structure; the teacher's own surface-to-Core
// lowering (there: pattern matches and dictionary elaboration; here:
// comprehension desugaring and container/string call normalization)
// shares the same "allocate fresh temporaries where needed" shape.
package elaborate

import (
	"fmt"

	"github.com/sunholo/cgen/internal/ast"
	"github.com/sunholo/cgen/internal/containers"
	"github.com/sunholo/cgen/internal/core"
	"github.com/sunholo/cgen/internal/diag"
	"github.com/sunholo/cgen/internal/types"
)

// Elaborator lowers a validated, type-checked surface module to IR. It
// consults the analyzer's Result for record/function shapes and the
// container Registry (shared with the pipeline) to register any
// instantiation discovered only during lowering — comprehension
// temporaries chief among them (spec.md §2's data-flow: "Container
// registry: constructed incrementally during phase B... and phase C").
type Elaborator struct {
	tyRes    *types.Result
	registry *containers.Registry
	bag      *diag.Bag

	tempN   int
	hoisted []core.IRStmt
}

// New creates an Elaborator over the analyzer's Result, registering
// into reg as lowering discovers new actually-used instantiations.
func New(tyRes *types.Result, reg *containers.Registry) *Elaborator {
	return &Elaborator{tyRes: tyRes, registry: reg, bag: &diag.Bag{}}
}

// Lower runs the IR Builder over mod, returning the typed IRModule and
// the elaborator's diagnostic bag. No lowering step adds diagnostics
// to it, so the returned bag is always empty.
func (e *Elaborator) Lower(mod *ast.Module) (*core.IRModule, *diag.Bag) {
	out := &core.IRModule{}
	for _, r := range mod.Records {
		out.Records = append(out.Records, e.lowerRecord(r))
	}
	for _, fn := range mod.Funcs {
		out.Funcs = append(out.Funcs, e.lowerFunc(fn))
	}
	return out, e.bag
}

func (e *Elaborator) lowerRecord(r *ast.RecordDecl) *core.IRRecord {
	ir := &core.IRRecord{Name: r.Name, Mutable: r.Mutable}
	fields := e.tyRes.RecordFields[r.Name]
	for _, f := range r.Fields {
		ir.Fields = append(ir.Fields, core.IRField{Name: f.Name, Type: fields[f.Name]})
	}
	return ir
}

func (e *Elaborator) lowerFunc(fn *ast.FuncDecl) *core.IRFunction {
	sig := e.tyRes.FuncSigs[fn.Name]
	ir := &core.IRFunction{Name: fn.Name, ReturnType: sig.Return}
	env := types.NewEnv()
	for i, p := range fn.Params {
		ir.Params = append(ir.Params, core.IRParam{Name: p.Name, Type: sig.Params[i]})
		env.Define(p.Name, sig.Params[i])
	}
	ir.Body = e.lowerBlock(env, fn.Body)
	return ir
}

func (e *Elaborator) lowerBlock(env *types.Env, stmts []ast.Stmt) []core.IRStmt {
	var out []core.IRStmt
	for _, s := range stmts {
		out = append(out, e.lowerStmt(env, s)...)
	}
	return out
}

// newTemp allocates a fresh compiler-generated name for a hoisted
// comprehension temporary (spec.md §4.3).
func (e *Elaborator) newTemp() string {
	e.tempN++
	return fmt.Sprintf("__tmp%d", e.tempN)
}

// irType builds an IRType, registering container instantiations as
// actually-used (this is the phase-C registration spec.md §2 and §4.5
// describe happening alongside phase B's).
func (e *Elaborator) irType(t *types.Type) *core.IRType {
	if t.IsContainer() {
		e.registry.Register(t, true)
	}
	return &core.IRType{Src: t, CName: containers.CTypeName(t)}
}
