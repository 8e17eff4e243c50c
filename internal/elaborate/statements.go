package elaborate

import (
	"github.com/sunholo/cgen/internal/ast"
	"github.com/sunholo/cgen/internal/core"
	"github.com/sunholo/cgen/internal/types"
)

var augOp = map[string]string{"+": "+", "-": "-", "*": "*", "/": "/", "%": "%"}

// lowerStmt lowers one surface statement to a slice of IR statements —
// ordinarily length 1, but longer when a nested comprehension or list
// literal or slice must be hoisted into preceding Decl/loop statements
// (spec.md §4.3).
func (e *Elaborator) lowerStmt(env *types.Env, s ast.Stmt) []core.IRStmt {
	switch st := s.(type) {
	case *ast.VarDecl:
		return e.lowerVarDecl(env, st)
	case *ast.Assign:
		return e.wrapHoisted(func() core.IRStmt {
			target := e.lowerExpr(env, st.Target)
			value := e.lowerExpr(env, st.Value)
			return &core.Assign{Target: target, Value: value}
		})
	case *ast.AugAssign:
		return e.wrapHoisted(func() core.IRStmt {
			target := e.lowerExpr(env, st.Target)
			value := e.lowerExpr(env, st.Value)
			return &core.AugAssign{Op: augOp[st.Op], Target: target, Value: value}
		})
	case *ast.If:
		return []core.IRStmt{e.lowerIf(env, st)}
	case *ast.While:
		return e.wrapHoisted(func() core.IRStmt {
			cond := e.lowerExpr(env, st.Cond)
			return &core.While{Cond: cond, Body: e.lowerBlock(env.Child(), st.Body)}
		})
	case *ast.ForRange:
		return e.wrapHoisted(func() core.IRStmt {
			inner := env.Child()
			inner.Define(st.Var, types.Int)
			start := e.lowerExpr(env, st.Start)
			end := e.lowerExpr(env, st.End)
			var step core.IRExpr
			if st.Step != nil {
				step = e.lowerExpr(env, st.Step)
			} else {
				step = core.NewLitInt(e.irType(types.Int), 1)
			}
			return &core.ForRange{Var: st.Var, Start: start, End: end, Step: step, Body: e.lowerBlock(inner, st.Body)}
		})
	case *ast.ForEach:
		return e.wrapHoisted(func() core.IRStmt {
			iterType := e.exprType(env, st.Iterable)
			iterExpr := e.lowerExpr(env, st.Iterable)
			inner := env.Child()
			var elemType *types.Type
			switch iterType.Kind {
			case types.KList, types.KSet, types.KDict:
				elemType = iterType.Elem[0]
			default:
				elemType = &types.Type{Kind: types.KUnknown}
			}
			inner.Define(st.Var, elemType)
			return &core.ForEach{
				Var:          st.Var,
				ElemType:     e.irType(elemType),
				ContainerVar: varNameOf(env, st.Iterable, iterType),
				Container:    iterExpr,
				Body:         e.lowerBlock(inner, st.Body),
			}
		})
	case *ast.Return:
		return e.wrapHoisted(func() core.IRStmt {
			if st.Value == nil {
				return &core.Return{}
			}
			return &core.Return{Value: e.lowerExpr(env, st.Value)}
		})
	case *ast.Assert:
		return e.wrapHoisted(func() core.IRStmt {
			return &core.Assert{Cond: e.lowerExpr(env, st.Cond)}
		})
	case *ast.ExprStmt:
		return e.wrapHoisted(func() core.IRStmt {
			return &core.ExprStmt{X: e.lowerExpr(env, st.X)}
		})
	default:
		return nil
	}
}

// wrapHoisted resets the hoisted-statement accumulator, runs build
// (which may append to it via lowerExpr's comprehension/list-literal/
// slice paths), and returns the hoisted prefix followed by the built
// statement.
func (e *Elaborator) wrapHoisted(build func() core.IRStmt) []core.IRStmt {
	e.hoisted = nil
	s := build()
	out := append(e.hoisted, s)
	e.hoisted = nil
	return out
}

// lowerVarDecl special-cases a container literal or comprehension
// initializer: rather than hoisting into a compiler-generated
// temporary and aliasing it, the declared name itself becomes the
// container being built, matching spec.md §8 Scenario 2 and Scenario
// 4 exactly (the emitted name is the source name, never a temp).
func (e *Elaborator) lowerVarDecl(env *types.Env, st *ast.VarDecl) []core.IRStmt {
	declared := e.tyResolveVarType(st)
	env.Define(st.Name, declared)

	switch init := st.Init.(type) {
	case *ast.ContainerLit:
		decl := &core.Decl{Name: st.Name, Type: e.irType(declared), Init: e.zeroLit(declared)}
		if len(init.Elems) == 0 {
			return []core.IRStmt{decl}
		}
		return append([]core.IRStmt{decl}, e.buildContainerInserts(env, st.Name, declared, init)...)
	case *ast.Comprehension:
		decl := &core.Decl{Name: st.Name, Type: e.irType(declared), Init: e.zeroLit(declared)}
		loop := e.buildComprehensionLoop(env, st.Name, declared, init)
		return []core.IRStmt{decl, loop}
	case *ast.Slice:
		return e.wrapHoisted(func() core.IRStmt {
			// The slice's own hoisting already declares a temp; alias it
			// to the VarDecl's name instead of double-declaring.
			return e.lowerSliceIntoVar(env, st.Name, declared, init)
		})
	default:
		return e.wrapHoisted(func() core.IRStmt {
			var ival core.IRExpr
			if st.Init != nil {
				ival = e.lowerExpr(env, st.Init)
			}
			return &core.Decl{Name: st.Name, Type: e.irType(declared), Init: ival}
		})
	}
}

// lowerSliceIntoVar is lowerSliceHoisted specialized to declare the
// result directly under the VarDecl's own name.
func (e *Elaborator) lowerSliceIntoVar(env *types.Env, name string, t *types.Type, x *ast.Slice) core.IRStmt {
	decl := &core.Decl{Name: name, Type: e.irType(t), Init: e.zeroLit(t)}
	e.hoisted = append(e.hoisted, decl)

	ct := e.exprType(env, x.Container)
	srcVar := varNameOf(env, x.Container, ct)
	var low core.IRExpr
	if x.Low != nil {
		low = e.lowerExpr(env, x.Low)
	} else {
		low = core.NewLitInt(e.irType(types.Int), 0)
	}
	var high core.IRExpr
	if x.High != nil {
		high = e.lowerExpr(env, x.High)
	} else {
		high = core.NewCall(e.irType(types.Int), srcVar+"_size", []core.IRExpr{addrOf(core.NewName(e.irType(ct), srcVar))})
	}
	elemType := t.Elem[0]
	idxVar := e.newTemp()
	elemRef := core.NewSubscript(e.irType(elemType), e.lowerExpr(env, x.Container), core.NewName(e.irType(types.Int), idxVar), srcVar)
	pushFn := name + "_push"
	push := &core.ExprStmt{X: core.NewMethodCall(e.irType(types.None), addrOf(core.NewName(e.irType(t), name)), core.MethodListAppend, pushFn, []core.IRExpr{elemRef})}
	body := []core.IRStmt{push}
	if x.High != nil {
		size := core.NewCall(e.irType(types.Int), srcVar+"_size", []core.IRExpr{addrOf(core.NewName(e.irType(ct), srcVar))})
		cond := core.NewBinary(e.irType(types.Bool), "<", core.NewName(e.irType(types.Int), idxVar), size)
		body = []core.IRStmt{&core.If{Cond: cond, Then: body}}
	}
	return &core.ForRange{Var: idxVar, Start: low, End: high, Step: core.NewLitInt(e.irType(types.Int), 1), Body: body}
}

func (e *Elaborator) lowerIf(env *types.Env, st *ast.If) core.IRStmt {
	e.hoisted = nil
	cond := e.lowerExpr(env, st.Cond)
	prefix := e.hoisted
	e.hoisted = nil
	then := e.lowerBlock(env.Child(), st.Then)

	var elseStmts []core.IRStmt
	if len(st.Elif) > 0 {
		rest := &ast.If{Cond: st.Elif[0].Cond, Then: st.Elif[0].Body, Elif: st.Elif[1:], Else: st.Else}
		elseStmts = []core.IRStmt{e.lowerIf(env, rest)}
	} else if st.Else != nil {
		elseStmts = e.lowerBlock(env.Child(), st.Else)
	}
	node := &core.If{Cond: cond, Then: then, Else: elseStmts}
	if len(prefix) == 0 {
		return node
	}
	return &core.Block{Stmts: append(prefix, node)}
}

// tyResolveVarType resolves a VarDecl's declared type using the same
// scalar/container/record rules as internal/types.Resolve, but without
// re-validating (the module already passed phase B).
func (e *Elaborator) tyResolveVarType(st *ast.VarDecl) *types.Type {
	return resolveQuiet(st.Type, e.tyRes)
}

func resolveQuiet(te *ast.TypeExpr, tyRes *types.Result) *types.Type {
	if te == nil {
		return types.None
	}
	switch te.Name {
	case "int":
		return types.Int
	case "float":
		return types.Float
	case "bool":
		return types.Bool
	case "str":
		return types.Str
	case "none":
		return types.None
	case "list":
		return types.List(resolveQuiet(te.Args[0], tyRes))
	case "set":
		return types.Set(resolveQuiet(te.Args[0], tyRes))
	case "dict":
		return types.Dict(resolveQuiet(te.Args[0], tyRes), resolveQuiet(te.Args[1], tyRes))
	default:
		if _, ok := tyRes.RecordFields[te.Name]; ok {
			return types.RecordT(te.Name)
		}
		return &types.Type{Kind: types.KUnknown}
	}
}
