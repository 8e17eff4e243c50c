package types

import (
	"github.com/sunholo/cgen/internal/ast"
	"github.com/sunholo/cgen/internal/diag"
)

// containerMethodReturn resolves the return type of a method call on a
// container receiver, per the operation table of spec.md §4.4.
func containerMethodReturn(recv *Type, method string, bag *diag.Bag, line int) *Type {
	switch recv.Kind {
	case KList:
		switch method {
		case "append":
			return None
		default:
		}
	case KSet:
		switch method {
		case "add", "remove", "discard":
			return None
		}
	case KDict:
		switch method {
		case "remove", "discard":
			return None
		}
	}
	unresolved(bag, line, "method '"+method+"' on "+recv.String())
	return &Type{Kind: KUnknown}
}

// stringMethodReturn resolves the return type of a method call on a
// str receiver, per spec.md §4.4's fixed runtime-helper set.
func stringMethodReturn(method string, bag *diag.Bag, line int) *Type {
	switch method {
	case "upper", "lower", "strip", "replace", "join":
		return Str
	case "find":
		return Int
	case "split":
		return List(Str)
	default:
		unresolved(bag, line, "string method '"+method+"'")
		return &Type{Kind: KUnknown}
	}
}

// Infer resolves the type of an expression under env. It marks as
// actually-used the container operands of subscripts, slices, `in`
// tests and method calls, and the result of a comprehension;
// declarations, parameters and return types are marked by the call
// sites in typechecker.go.
func (a *Analyzer) Infer(env *Env, e ast.Expr) *Type {
	switch ex := e.(type) {
	case *ast.LitInt:
		return Int
	case *ast.LitFloat:
		return Float
	case *ast.LitBool:
		return Bool
	case *ast.LitStr:
		return Str
	case *ast.LitNone:
		return None
	case *ast.Name:
		if t, ok := env.Lookup(ex.Value); ok {
			return t
		}
		unresolved(a.bag, ex.Pos.Line, "name '"+ex.Value+"'")
		return &Type{Kind: KUnknown}
	case *ast.Unary:
		return a.Infer(env, ex.X)
	case *ast.Binary:
		return a.inferBinary(env, ex)
	case *ast.Subscript:
		return a.inferSubscript(env, ex)
	case *ast.Slice:
		c := a.Infer(env, ex.Container)
		if ex.Low != nil {
			a.Infer(env, ex.Low)
		}
		if ex.High != nil {
			a.Infer(env, ex.High)
		}
		a.usage.Mark(c, true)
		return c
	case *ast.Field:
		return a.inferField(env, ex)
	case *ast.Call:
		return a.inferCall(env, ex)
	case *ast.MethodCall:
		return a.inferMethodCall(env, ex)
	case *ast.ContainerLit:
		return a.inferContainerLit(env, ex)
	case *ast.Comprehension:
		return a.inferComprehension(env, ex)
	case *ast.RecordCtor:
		return a.inferRecordCtor(env, ex)
	default:
		unresolved(a.bag, e.Position().Line, "expression")
		return &Type{Kind: KUnknown}
	}
}

func (a *Analyzer) inferBinary(env *Env, ex *ast.Binary) *Type {
	l := a.Infer(env, ex.Left)
	r := a.Infer(env, ex.Right)
	switch ex.Op {
	case "==", "!=", "<", "<=", ">", ">=", "&&", "||":
		return Bool
	case "in", "not in":
		a.usage.Mark(r, true)
		return Bool
	case "%":
		if l.Kind == KFloat || r.Kind == KFloat {
			a.bag.Add(diag.New(diag.ParFloatModulo, ex.Pos.Line,
				"modulo on float operands is not supported; the source language's `%` maps to C `%`, which is undefined for floats"))
		}
		return Int
	case "&", "|", "^", "<<", ">>":
		return Int
	default: // + - * / //
		if l.Kind == KFloat || r.Kind == KFloat {
			return Float
		}
		return l
	}
}

func (a *Analyzer) inferSubscript(env *Env, ex *ast.Subscript) *Type {
	c := a.Infer(env, ex.Container)
	a.Infer(env, ex.Index)
	a.usage.Mark(c, true)
	switch c.Kind {
	case KList:
		return c.Elem[0]
	case KDict:
		return c.Elem[1]
	default:
		unresolved(a.bag, ex.Pos.Line, "subscript on non-indexable type "+c.String())
		return &Type{Kind: KUnknown}
	}
}

func (a *Analyzer) inferField(env *Env, ex *ast.Field) *Type {
	recv := a.Infer(env, ex.Receiver)
	if recv.Kind != KRecord {
		unresolved(a.bag, ex.Pos.Line, "field access on non-record type "+recv.String())
		return &Type{Kind: KUnknown}
	}
	fields := a.recordFields[recv.Record]
	if t, ok := fields[ex.Name]; ok {
		return t
	}
	unresolved(a.bag, ex.Pos.Line, "field '"+ex.Name+"' on record '"+recv.Record+"'")
	return &Type{Kind: KUnknown}
}

func (a *Analyzer) inferCall(env *Env, ex *ast.Call) *Type {
	name, ok := ex.Callee.(*ast.Name)
	if !ok {
		unresolved(a.bag, ex.Pos.Line, "call to a non-name callee")
		return &Type{Kind: KUnknown}
	}
	for _, arg := range ex.Args {
		a.Infer(env, arg)
	}
	switch name.Value {
	case "len":
		return Int
	case "range":
		return Int
	case "sqrt", "pow", "sin", "cos", "tan", "log", "log10", "exp", "floor", "ceil", "fabs":
		return Float
	case "abs":
		if len(ex.Args) == 1 {
			return a.Infer(env, ex.Args[0])
		}
		return Int
	}
	if sig, ok := a.funcSigs[name.Value]; ok {
		return sig.Return
	}
	unresolved(a.bag, ex.Pos.Line, "call to unknown function '"+name.Value+"'")
	return &Type{Kind: KUnknown}
}

func (a *Analyzer) inferMethodCall(env *Env, ex *ast.MethodCall) *Type {
	recv := a.Infer(env, ex.Receiver)
	for _, arg := range ex.Args {
		a.Infer(env, arg)
	}
	if recv.Kind == KStr {
		return stringMethodReturn(ex.Method, a.bag, ex.Pos.Line)
	}
	if recv.IsContainer() {
		a.usage.Mark(recv, true)
		return containerMethodReturn(recv, ex.Method, a.bag, ex.Pos.Line)
	}
	unresolved(a.bag, ex.Pos.Line, "method '"+ex.Method+"' on non-container, non-str receiver "+recv.String())
	return &Type{Kind: KUnknown}
}

func (a *Analyzer) inferContainerLit(env *Env, ex *ast.ContainerLit) *Type {
	switch ex.Kind {
	case "list":
		var elem *Type = &Type{Kind: KUnknown}
		for i, e := range ex.Elems {
			t := a.Infer(env, e)
			if i == 0 {
				elem = t
			}
		}
		return List(elem)
	case "set":
		var elem *Type = &Type{Kind: KUnknown}
		for i, e := range ex.Elems {
			t := a.Infer(env, e)
			if i == 0 {
				elem = t
			}
		}
		return Set(elem)
	default: // dict
		var k, v *Type = &Type{Kind: KUnknown}, &Type{Kind: KUnknown}
		for i := range ex.Elems {
			kt := a.Infer(env, ex.Keys[i])
			vt := a.Infer(env, ex.Elems[i])
			if i == 0 {
				k, v = kt, vt
			}
		}
		return Dict(k, v)
	}
}

// inferComprehension infers the type of the generated container and
// the loop-variable binding, marking the resulting instantiation
// actual since the IR builder always lowers a comprehension to a
// declared temporary (spec.md §4.3).
func (a *Analyzer) inferComprehension(env *Env, ex *ast.Comprehension) *Type {
	iter := a.Infer(env, ex.Iterable)
	inner := env.Child()
	var loopVar *Type
	switch iter.Kind {
	case KList, KSet:
		loopVar = iter.Elem[0]
	case KDict:
		loopVar = iter.Elem[0]
	default:
		loopVar = &Type{Kind: KUnknown}
	}
	inner.Define(ex.Var, loopVar)
	if ex.Filter != nil {
		a.Infer(inner, ex.Filter)
	}
	switch ex.Kind {
	case "list":
		elem := a.Infer(inner, ex.Elem)
		t := List(elem)
		a.usage.Mark(t, true)
		return t
	case "set":
		elem := a.Infer(inner, ex.Elem)
		t := Set(elem)
		a.usage.Mark(t, true)
		return t
	default:
		k := a.Infer(inner, ex.Key)
		v := a.Infer(inner, ex.Elem)
		t := Dict(k, v)
		a.usage.Mark(t, true)
		return t
	}
}

func (a *Analyzer) inferRecordCtor(env *Env, ex *ast.RecordCtor) *Type {
	for _, arg := range ex.Args {
		a.Infer(env, arg)
	}
	if !a.records[ex.Name] {
		unresolved(a.bag, ex.Pos.Line, "construction of unknown record '"+ex.Name+"'")
		return &Type{Kind: KUnknown}
	}
	return RecordT(ex.Name)
}
