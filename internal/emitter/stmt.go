package emitter

import (
	"github.com/sunholo/cgen/internal/containers"
	"github.com/sunholo/cgen/internal/core"
	"github.com/sunholo/cgen/internal/types"
)

// emitStmts renders a statement list at the current indent level
// (spec.md §4.6: one `;`-terminated statement per line, 4-space
// indentation per level).
func (e *Emitter) emitStmts(stmts []core.IRStmt) {
	for _, s := range stmts {
		e.emitStmt(s)
	}
}

func (e *Emitter) emitStmt(s core.IRStmt) {
	switch st := s.(type) {
	case *core.Decl:
		e.emitDecl(st)
	case *core.Assign:
		e.emitAssign(st)
	case *core.AugAssign:
		e.writef("%s%s %s= %s;\n", e.pad(), e.renderExpr(st.Target, 0), st.Op, e.renderExpr(st.Value, 0))
	case *core.If:
		e.emitIf(st)
	case *core.While:
		e.writef("%swhile (%s) {\n", e.pad(), e.renderExpr(st.Cond, 0))
		e.indent++
		e.emitStmts(st.Body)
		e.indent--
		e.writef("%s}\n", e.pad())
	case *core.ForRange:
		e.emitForRange(st)
	case *core.ForEach:
		e.emitForEach(st)
	case *core.Return:
		if st.Value == nil {
			e.writef("%sreturn;\n", e.pad())
		} else {
			e.writef("%sreturn %s;\n", e.pad(), e.renderExpr(st.Value, 0))
		}
	case *core.Assert:
		e.writef("%sassert(%s);\n", e.pad(), e.renderExpr(st.Cond, 0))
	case *core.ExprStmt:
		e.writef("%s%s;\n", e.pad(), e.renderExpr(st.X, 0))
	case *core.Block:
		e.emitStmts(st.Stmts)
	}
}

// emitDecl renders step 5's local-declaration rule: a plain scalar or
// record local gets a single combined `T name = init;` line; a
// container-typed local is always declared zero-initialized and
// assigned separately, `T name; name = (T){0};`, matching spec.md §8
// Scenario 2's expected two-line form.
func (e *Emitter) emitDecl(d *core.Decl) {
	if _, isLit := d.Init.(*core.ContainerLit); isLit {
		e.writef("%s%s %s;\n", e.pad(), containers.CTypeName(d.Type.Src), d.Name)
		e.writef("%s%s = %s;\n", e.pad(), d.Name, e.renderExpr(d.Init, 0))
		return
	}
	if d.Init == nil {
		e.writef("%s%s %s;\n", e.pad(), containers.CTypeName(d.Type.Src), d.Name)
		return
	}
	e.writef("%s%s %s = %s;\n", e.pad(), containers.CTypeName(d.Type.Src), d.Name, e.renderExpr(d.Init, 0))
}

// emitAssign renders an Assign; a dict-subscript target lowers to the
// dictionary's insert runtime call instead of a C `=` (spec.md §4.4's
// dict insert row), since `*fn_at(...)` is not addressable the way a
// list element is for in-place hashmap insertion.
func (e *Emitter) emitAssign(a *core.Assign) {
	if sub, ok := a.Target.(*core.Subscript); ok && sub.Container.Type().Src.Kind == types.KDict {
		fn := containers.DerivedOpName(sub.VarName, "insert")
		e.writef("%s%s(&%s, %s, %s);\n", e.pad(), fn, e.renderExpr(sub.Container, atomPrec), e.renderExpr(sub.Index, 0), e.renderExpr(a.Value, 0))
		return
	}
	e.writef("%s%s = %s;\n", e.pad(), e.renderExpr(a.Target, 0), e.renderExpr(a.Value, 0))
}

func (e *Emitter) emitIf(st *core.If) {
	e.writef("%sif (%s) {\n", e.pad(), e.renderExpr(st.Cond, 0))
	e.indent++
	e.emitStmts(st.Then)
	e.indent--
	if len(st.Else) == 0 {
		e.writef("%s}\n", e.pad())
		return
	}
	// A single nested If in Else renders as `else if` (elif-chain
	// desugaring, internal/elaborate's lowerIf); anything else renders
	// as a plain `else` block.
	if len(st.Else) == 1 {
		if inner, ok := st.Else[0].(*core.If); ok {
			e.writef("%s} else ", e.pad())
			e.emitElseIf(inner)
			return
		}
	}
	e.writef("%s} else {\n", e.pad())
	e.indent++
	e.emitStmts(st.Else)
	e.indent--
	e.writef("%s}\n", e.pad())
}

func (e *Emitter) emitElseIf(st *core.If) {
	e.writef("if (%s) {\n", e.renderExpr(st.Cond, 0))
	e.indent++
	e.emitStmts(st.Then)
	e.indent--
	if len(st.Else) == 0 {
		e.writef("%s}\n", e.pad())
		return
	}
	if len(st.Else) == 1 {
		if inner, ok := st.Else[0].(*core.If); ok {
			e.writef("%s} else ", e.pad())
			e.emitElseIf(inner)
			return
		}
	}
	e.writef("%s} else {\n", e.pad())
	e.indent++
	e.emitStmts(st.Else)
	e.indent--
	e.writef("%s}\n", e.pad())
}

func (e *Emitter) emitForRange(st *core.ForRange) {
	e.writef("%sfor (int32_t %s = %s; %s < %s; %s += %s) {\n",
		e.pad(), st.Var, e.renderExpr(st.Start, 0),
		st.Var, e.renderExpr(st.End, 0),
		st.Var, e.renderExpr(st.Step, 0))
	e.indent++
	e.emitStmts(st.Body)
	e.indent--
	e.writef("%s}\n", e.pad())
}

// emitForEach renders the container library's iteration macro form,
// rebinding the element into a plain local at the top of the loop
// body (spec.md §4.4/§4.6).
func (e *Emitter) emitForEach(st *core.ForEach) {
	elemC := containers.CTypeName(st.ElemType.Src)
	e.writef("%sfor (%s_iter __it = %s_begin(&%s); !%s_done(&__it); %s_next(&__it)) {\n",
		e.pad(), st.ContainerVar, st.ContainerVar, st.ContainerVar, st.ContainerVar, st.ContainerVar)
	e.indent++
	e.writef("%s%s %s = *%s_deref(&__it);\n", e.pad(), elemC, st.Var, st.ContainerVar)
	e.emitStmts(st.Body)
	e.indent--
	e.writef("%s}\n", e.pad())
}
