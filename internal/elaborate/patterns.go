package elaborate

import (
	"github.com/sunholo/cgen/internal/ast"
	"github.com/sunholo/cgen/internal/containers"
	"github.com/sunholo/cgen/internal/core"
	"github.com/sunholo/cgen/internal/types"
)

// zeroLit builds the zero-initialized container literal expression
// spec.md §4.6 requires for every declared container local ("name =
// (T){0}").
func (e *Elaborator) zeroLit(t *types.Type) core.IRExpr {
	return core.NewContainerLit(e.irType(t), kindOf(t))
}

func kindOf(t *types.Type) string {
	switch t.Kind {
	case types.KList:
		return "list"
	case types.KSet:
		return "set"
	case types.KDict:
		return "dict"
	default:
		return ""
	}
}

// insertStmt builds the single statement that inserts one element (or
// one key/value pair) into the container bound to varName, per
// spec.md §4.4's per-kind insert operation.
func (e *Elaborator) insertStmt(env *types.Env, varName string, t *types.Type, key, val ast.Expr) core.IRStmt {
	ref := core.NewName(e.irType(t), varName)
	switch t.Kind {
	case types.KList:
		fn := containers.DerivedOpName(varName, "push")
		call := core.NewMethodCall(e.irType(types.None), addrOf(ref), core.MethodListAppend, fn, []core.IRExpr{e.lowerExpr(env, val)})
		return &core.ExprStmt{X: call}
	case types.KSet:
		fn := containers.DerivedOpName(varName, "insert")
		call := core.NewMethodCall(e.irType(types.None), addrOf(ref), core.MethodSetAdd, fn, []core.IRExpr{e.lowerExpr(env, val)})
		return &core.ExprStmt{X: call}
	default: // dict: `c[k] = v` lowers to an insert call (spec.md §4.4)
		k := e.lowerExpr(env, key)
		v := e.lowerExpr(env, val)
		target := core.NewSubscript(e.irType(t.Elem[1]), ref, k, varName)
		return &core.Assign{Target: target, Value: v}
	}
}

// buildContainerInserts lowers a non-empty container literal's
// elements into a sequence of insert statements against varName,
// already declared with the zero literal.
func (e *Elaborator) buildContainerInserts(env *types.Env, varName string, t *types.Type, x *ast.ContainerLit) []core.IRStmt {
	var out []core.IRStmt
	if x.IsDict {
		for i := range x.Elems {
			out = append(out, e.insertStmt(env, varName, t, x.Keys[i], x.Elems[i]))
		}
		return out
	}
	for _, elem := range x.Elems {
		out = append(out, e.insertStmt(env, varName, t, nil, elem))
	}
	return out
}

// buildComprehensionLoop lowers a single-generator, optionally-filtered
// comprehension into a ForRange/ForEach whose body conditionally
// inserts into the container bound to varName (spec.md §4.3's
// comprehension-desugaring rule).
func (e *Elaborator) buildComprehensionLoop(env *types.Env, varName string, t *types.Type, x *ast.Comprehension) core.IRStmt {
	iterType := e.exprType(env, x.Iterable)
	inner := env.Child()
	var loopVar *types.Type
	switch iterType.Kind {
	case types.KList, types.KSet, types.KDict:
		loopVar = iterType.Elem[0]
	default:
		loopVar = &types.Type{Kind: types.KUnknown}
	}
	inner.Define(x.Var, loopVar)

	var body []core.IRStmt
	insert := e.insertStmt(inner, varName, t, x.Key, x.Elem)
	if x.Filter != nil {
		cond := e.lowerExpr(inner, x.Filter)
		body = append(body, &core.If{Cond: cond, Then: []core.IRStmt{insert}})
	} else {
		body = append(body, insert)
	}

	if rc, ok := x.Iterable.(*ast.Call); ok {
		if name, ok := rc.Callee.(*ast.Name); ok && name.Value == "range" {
			return e.buildForRange(env, x.Var, rc.Args, body)
		}
	}
	iterExpr := e.lowerExpr(env, x.Iterable)
	return &core.ForEach{
		Var:          x.Var,
		ElemType:     e.irType(loopVar),
		ContainerVar: varNameOf(env, x.Iterable, iterType),
		Container:    iterExpr,
		Body:         body,
	}
}

func (e *Elaborator) buildForRange(env *types.Env, varName string, args []ast.Expr, body []core.IRStmt) *core.ForRange {
	var start, end, step ast.Expr
	switch len(args) {
	case 1:
		end = args[0]
	case 2:
		start, end = args[0], args[1]
	default:
		start, end, step = args[0], args[1], args[2]
	}
	var startExpr core.IRExpr
	if start != nil {
		startExpr = e.lowerExpr(env, start)
	} else {
		startExpr = core.NewLitInt(e.irType(types.Int), 0)
	}
	var stepExpr core.IRExpr
	if step != nil {
		stepExpr = e.lowerExpr(env, step)
	} else {
		stepExpr = core.NewLitInt(e.irType(types.Int), 1)
	}
	return &core.ForRange{
		Var:   varName,
		Start: startExpr,
		End:   e.lowerExpr(env, end),
		Step:  stepExpr,
		Body:  body,
	}
}

// lowerContainerLitExpr hoists a non-empty container literal appearing
// in expression position (not directly a VarDecl initializer) into a
// fresh temporary declaration plus insert statements, returning a
// reference to the temporary (spec.md §4.3).
func (e *Elaborator) lowerContainerLitExpr(env *types.Env, x *ast.ContainerLit, t *types.Type) core.IRExpr {
	if len(x.Elems) == 0 {
		return e.zeroLit(t)
	}
	name := e.newTemp()
	e.hoisted = append(e.hoisted, &core.Decl{Name: name, Type: e.irType(t), Init: e.zeroLit(t)})
	e.hoisted = append(e.hoisted, e.buildContainerInserts(env, name, t, x)...)
	return core.NewTempRef(e.irType(t), name)
}

// lowerComprehensionHoisted hoists a comprehension appearing in
// expression position into a fresh temporary declaration plus its
// desugared loop, returning a reference to the temporary.
func (e *Elaborator) lowerComprehensionHoisted(env *types.Env, x *ast.Comprehension, t *types.Type) core.IRExpr {
	name := e.newTemp()
	e.hoisted = append(e.hoisted, &core.Decl{Name: name, Type: e.irType(t), Init: e.zeroLit(t)})
	e.hoisted = append(e.hoisted, e.buildComprehensionLoop(env, name, t, x))
	return core.NewTempRef(e.irType(t), name)
}

// lowerSliceHoisted lowers `c[a:b]` into a fresh temporary of the same
// container type, filled by a loop appending elements a..min(b,len)
// (spec.md §4.4's list-slice row).
func (e *Elaborator) lowerSliceHoisted(env *types.Env, x *ast.Slice, t *types.Type) core.IRExpr {
	name := e.newTemp()
	e.hoisted = append(e.hoisted, &core.Decl{Name: name, Type: e.irType(t), Init: e.zeroLit(t)})

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
	pushFn := containers.DerivedOpName(name, "push")
	push := &core.ExprStmt{X: core.NewMethodCall(e.irType(types.None), addrOf(core.NewName(e.irType(t), name)), core.MethodListAppend, pushFn, []core.IRExpr{elemRef})}
	body := []core.IRStmt{push}
	if x.High != nil {
		size := core.NewCall(e.irType(types.Int), srcVar+"_size", []core.IRExpr{addrOf(core.NewName(e.irType(ct), srcVar))})
		cond := core.NewBinary(e.irType(types.Bool), "<", core.NewName(e.irType(types.Int), idxVar), size)
		body = []core.IRStmt{&core.If{Cond: cond, Then: body}}
	}

	loop := &core.ForRange{Var: idxVar, Start: low, End: high, Step: core.NewLitInt(e.irType(types.Int), 1), Body: body}
	e.hoisted = append(e.hoisted, loop)
	return core.NewTempRef(e.irType(t), name)
}
