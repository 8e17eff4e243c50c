package elaborate

import (
	"github.com/sunholo/cgen/internal/ast"
	"github.com/sunholo/cgen/internal/containers"
	"github.com/sunholo/cgen/internal/core"
	"github.com/sunholo/cgen/internal/types"
)

// exprType re-derives an expression's resolved type during lowering.
// The module was already fully type-checked by internal/types (phase
// B); this is a lightweight, non-diagnosing re-walk so every IR node
// can carry its IRType without threading the phase-B result through
// every recursive call (spec.md §3 Invariant 1).
func (e *Elaborator) exprType(env *types.Env, ex ast.Expr) *types.Type {
	switch x := ex.(type) {
	case *ast.LitInt:
		return types.Int
	case *ast.LitFloat:
		return types.Float
	case *ast.LitBool:
		return types.Bool
	case *ast.LitStr:
		return types.Str
	case *ast.LitNone:
		return types.None
	case *ast.Name:
		if t, ok := env.Lookup(x.Value); ok {
			return t
		}
		return &types.Type{Kind: types.KUnknown}
	case *ast.Unary:
		return e.exprType(env, x.X)
	case *ast.Binary:
		return e.binaryType(env, x)
	case *ast.Subscript:
		c := e.exprType(env, x.Container)
		switch c.Kind {
		case types.KList, types.KSet:
			return c.Elem[0]
		case types.KDict:
			return c.Elem[1]
		}
		return &types.Type{Kind: types.KUnknown}
	case *ast.Slice:
		return e.exprType(env, x.Container)
	case *ast.Field:
		recv := e.exprType(env, x.Receiver)
		if recv.Kind == types.KRecord {
			return e.tyRes.RecordFields[recv.Record][x.Name]
		}
		return &types.Type{Kind: types.KUnknown}
	case *ast.Call:
		return e.callType(env, x)
	case *ast.MethodCall:
		recv := e.exprType(env, x.Receiver)
		if recv.Kind == types.KStr {
			if x.Method == "split" {
				return types.List(types.Str)
			}
			if x.Method == "find" {
				return types.Int
			}
			return types.Str
		}
		return types.None
	case *ast.ContainerLit:
		return e.containerLitType(env, x)
	case *ast.Comprehension:
		return e.comprehensionType(env, x)
	case *ast.RecordCtor:
		return types.RecordT(x.Name)
	default:
		return &types.Type{Kind: types.KUnknown}
	}
}

func (e *Elaborator) binaryType(env *types.Env, x *ast.Binary) *types.Type {
	switch x.Op {
	case "==", "!=", "<", "<=", ">", ">=", "&&", "||", "in", "not in":
		return types.Bool
	case "&", "|", "^", "<<", ">>", "%":
		return types.Int
	default:
		l := e.exprType(env, x.Left)
		r := e.exprType(env, x.Right)
		if l.Kind == types.KFloat || r.Kind == types.KFloat {
			return types.Float
		}
		return l
	}
}

func (e *Elaborator) callType(env *types.Env, x *ast.Call) *types.Type {
	name, ok := x.Callee.(*ast.Name)
	if !ok {
		return &types.Type{Kind: types.KUnknown}
	}
	switch name.Value {
	case "len", "range":
		return types.Int
	case "sqrt", "pow", "sin", "cos", "tan", "log", "log10", "exp", "floor", "ceil", "fabs":
		return types.Float
	case "abs":
		if len(x.Args) == 1 {
			return e.exprType(env, x.Args[0])
		}
		return types.Int
	}
	if sig, ok := e.tyRes.FuncSigs[name.Value]; ok {
		return sig.Return
	}
	return &types.Type{Kind: types.KUnknown}
}

func (e *Elaborator) containerLitType(env *types.Env, x *ast.ContainerLit) *types.Type {
	switch x.Kind {
	case "list":
		if len(x.Elems) > 0 {
			return types.List(e.exprType(env, x.Elems[0]))
		}
		return types.List(&types.Type{Kind: types.KUnknown})
	case "set":
		if len(x.Elems) > 0 {
			return types.Set(e.exprType(env, x.Elems[0]))
		}
		return types.Set(&types.Type{Kind: types.KUnknown})
	default:
		if len(x.Elems) > 0 {
			return types.Dict(e.exprType(env, x.Keys[0]), e.exprType(env, x.Elems[0]))
		}
		return types.Dict(&types.Type{Kind: types.KUnknown}, &types.Type{Kind: types.KUnknown})
	}
}

func (e *Elaborator) comprehensionType(env *types.Env, x *ast.Comprehension) *types.Type {
	iter := e.exprType(env, x.Iterable)
	var loopVar *types.Type
	switch iter.Kind {
	case types.KList, types.KSet, types.KDict:
		loopVar = iter.Elem[0]
	default:
		loopVar = &types.Type{Kind: types.KUnknown}
	}
	inner := env.Child()
	inner.Define(x.Var, loopVar)
	switch x.Kind {
	case "list":
		return types.List(e.exprType(inner, x.Elem))
	case "set":
		return types.Set(e.exprType(inner, x.Elem))
	default:
		return types.Dict(e.exprType(inner, x.Key), e.exprType(inner, x.Elem))
	}
}

// lowerExpr lowers a validated surface expression to an IRExpr,
// inserting explicit casts wherever int/float operands mix (spec.md
// §4.2: "Numeric widening is never implicit in emitted C") and
// normalizing container/string method calls via internal/containers'
// operation tables (spec.md §4.4, §9).
func (e *Elaborator) lowerExpr(env *types.Env, ex ast.Expr) core.IRExpr {
	t := e.exprType(env, ex)
	switch x := ex.(type) {
	case *ast.LitInt:
		return core.NewLitInt(e.irType(t), x.Value)
	case *ast.LitFloat:
		return core.NewLitFloat(e.irType(t), x.Value)
	case *ast.LitBool:
		return core.NewLitBool(e.irType(t), x.Value)
	case *ast.LitStr:
		return core.NewLitStr(e.irType(t), x.Value)
	case *ast.LitNone:
		return core.NewLitNone(e.irType(t))
	case *ast.Name:
		return core.NewName(e.irType(t), x.Value)
	case *ast.Unary:
		return core.NewUnary(e.irType(t), x.Op, e.lowerExpr(env, x.X))
	case *ast.Binary:
		return e.lowerBinary(env, x, t)
	case *ast.Subscript:
		return e.lowerSubscriptRead(env, x, t)
	case *ast.Slice:
		return e.lowerSlice(env, x, t)
	case *ast.Field:
		return core.NewField(e.irType(t), e.lowerExpr(env, x.Receiver), x.Name)
	case *ast.Call:
		return e.lowerCall(env, x, t)
	case *ast.MethodCall:
		return e.lowerMethodCall(env, x, t)
	case *ast.ContainerLit:
		return e.lowerContainerLitExpr(env, x, t)
	case *ast.Comprehension:
		return e.lowerComprehensionHoisted(env, x, t)
	case *ast.RecordCtor:
		return e.lowerRecordCtor(env, x, t)
	default:
		return core.NewLitNone(e.irType(types.None))
	}
}

// addrOf wraps recv in an IR-only `&` unary, used to pass a container
// receiver to the runtime by pointer (spec.md §4.4's operation table:
// `c.append(x)` -> `c_push(&c, x)`, `len(c)` -> `c_size(&c)`, etc.).
// This operator never appears in surface syntax; it is synthesized
// here the same way lowerContainment already synthesizes a bare `!`
// around a MethodCall result.
func addrOf(recv core.IRExpr) core.IRExpr {
	return core.NewUnary(recv.Type(), "&", recv)
}

// varNameOf returns the per-variable derived name (spec.md §9) for a
// container receiver expression: the bound name itself when the
// receiver is a simple reference, else a mangled fallback built from
// the container's C type name (the derived-name rule is only
// unambiguous for simple-name receivers).
func varNameOf(env *types.Env, recv ast.Expr, t *types.Type) string {
	if n, ok := recv.(*ast.Name); ok {
		return n.Value
	}
	return "_" + containers.CTypeName(t)
}

func (e *Elaborator) lowerSubscriptRead(env *types.Env, x *ast.Subscript, t *types.Type) core.IRExpr {
	ct := e.exprType(env, x.Container)
	c := e.lowerExpr(env, x.Container)
	idx := e.lowerExpr(env, x.Index)
	return core.NewSubscript(e.irType(t), c, idx, varNameOf(env, x.Container, ct))
}

func (e *Elaborator) lowerSlice(env *types.Env, x *ast.Slice, t *types.Type) core.IRExpr {
	// Slicing lowers to a loop at the statement level (spec.md §4.4);
	// as a bare expression (e.g. nested in a call) it lowers to a
	// reference to the container itself is not sound, so slices are
	// only supported when hoisted — see lowerSliceHoisted in
	// patterns.go, invoked from statement-level contexts.
	return e.lowerSliceHoisted(env, x, t)
}

func (e *Elaborator) lowerBinary(env *types.Env, x *ast.Binary, t *types.Type) core.IRExpr {
	if x.Op == "in" || x.Op == "not in" {
		return e.lowerContainment(env, x, t)
	}
	lt := e.exprType(env, x.Left)
	rt := e.exprType(env, x.Right)
	left := e.lowerExpr(env, x.Left)
	right := e.lowerExpr(env, x.Right)
	op := binOp(x.Op)
	dbl := &core.IRType{Src: types.Float, CName: "double"}
	if x.Op == "/" && lt.Kind == types.KInt && rt.Kind == types.KInt {
		// True division on integers: both operands cast to double
		// (spec.md §4.4: "floating division `/` maps to C `/` after
		// casting both operands to `double`").
		left = core.NewCast(dbl, dbl, left)
		right = core.NewCast(dbl, dbl, right)
		return core.NewBinary(e.irType(types.Float), "/", left, right)
	}
	if lt.IsNumeric() && rt.IsNumeric() && (lt.Kind == types.KFloat) != (rt.Kind == types.KFloat) {
		if lt.Kind == types.KInt {
			left = core.NewCast(dbl, dbl, left)
		}
		if rt.Kind == types.KInt {
			right = core.NewCast(dbl, dbl, right)
		}
	}
	return core.NewBinary(e.irType(t), op, left, right)
}

// lowerContainment lowers `x in c` / `x not in c` to the container
// registry's contains operation, per spec.md §4.4.
func (e *Elaborator) lowerContainment(env *types.Env, x *ast.Binary, t *types.Type) core.IRExpr {
	rt := e.exprType(env, x.Right)
	elem := e.lowerExpr(env, x.Left)
	recv := e.lowerExpr(env, x.Right)
	if rt.IsContainer() {
		recv = addrOf(recv)
	}
	fn := varNameOf(env, x.Right, rt) + "_contains"
	call := core.NewMethodCall(e.irType(types.Bool), recv, core.MethodUnknown, fn, []core.IRExpr{elem})
	if x.Op == "not in" {
		return core.NewUnary(e.irType(types.Bool), "!", call)
	}
	return call
}

func binOp(op string) string {
	switch op {
	case "//":
		return "/"
	default:
		return op
	}
}

func (e *Elaborator) lowerCall(env *types.Env, x *ast.Call, t *types.Type) core.IRExpr {
	var args []core.IRExpr
	for _, a := range x.Args {
		args = append(args, e.lowerExpr(env, a))
	}
	name, _ := x.Callee.(*ast.Name)
	callee := name.Value
	if callee == "len" {
		ct := e.exprType(env, x.Args[0])
		fn := varNameOf(env, x.Args[0], ct) + "_size"
		recv := args[0]
		if ct.IsContainer() {
			recv = addrOf(recv)
		}
		return core.NewCall(e.irType(t), fn, []core.IRExpr{recv})
	}
	return core.NewCall(e.irType(t), callee, args)
}

// lowerMethodCall normalizes `receiver.method(args)` into the
// canonical MethodCall(receiver, tag, runtimeFn, args) form of spec.md
// §9, using internal/containers' operation tables.
func (e *Elaborator) lowerMethodCall(env *types.Env, x *ast.MethodCall, t *types.Type) core.IRExpr {
	recvType := e.exprType(env, x.Receiver)
	recv := e.lowerExpr(env, x.Receiver)
	var args []core.IRExpr
	for _, a := range x.Args {
		args = append(args, e.lowerExpr(env, a))
	}
	if recvType.Kind == types.KStr {
		fn, tag, ok := containers.StringOp(x.Method)
		if !ok {
			fn, tag = x.Method, core.MethodUnknown
		}
		// String operations take the receiver by value, e.g.
		// `s.split(",")` -> `str_split(s, ",")` (spec.md §4.4, §6).
		return core.NewMethodCall(e.irType(t), recv, tag, fn, args)
	}
	suffix, tag, ok := containers.ContainerOp(recvType.Kind == types.KList, recvType.Kind == types.KDict, x.Method)
	if !ok {
		suffix, tag = x.Method, core.MethodUnknown
	}
	varName := varNameOf(env, x.Receiver, recvType)
	fn := containers.DerivedOpName(varName, suffix)
	// Container operations take the receiver by pointer, e.g.
	// `numbers.append(10)` -> `numbers_push(&numbers, 10)` (spec.md
	// §4.4's operation table).
	return core.NewMethodCall(e.irType(t), addrOf(recv), tag, fn, args)
}

func (e *Elaborator) lowerRecordCtor(env *types.Env, x *ast.RecordCtor, t *types.Type) core.IRExpr {
	var args []core.IRExpr
	for _, a := range x.Args {
		args = append(args, e.lowerExpr(env, a))
	}
	return core.NewRecordCtor(e.irType(t), x.Name, args)
}
