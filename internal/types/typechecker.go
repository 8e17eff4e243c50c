package types

import (
	"github.com/sunholo/cgen/internal/ast"
	"github.com/sunholo/cgen/internal/diag"
)

// FuncSig is a function's resolved parameter and return types, used to
// type-check call sites (spec.md §4.2).
type FuncSig struct {
	Params []*Type
	Return *Type
}

// Analyzer implements the Type & Usage Analyzer of spec.md §4.2: a
// two-pass Collect-then-Propagate walk (Collect gathers declared
// record/function shapes; Propagate walks bodies, inferring expression
// types and classifying container usage). Grounded on the teacher's
// internal/types/typechecker.go collection/propagation split.
type Analyzer struct {
	records      map[string]bool
	recordFields map[string]map[string]*Type
	recordMut    map[string]bool
	funcSigs     map[string]*FuncSig
	usage        *UsageTable
	bag          *diag.Bag
}

// Result is everything phase C (the IR builder) needs from the
// analyzer: the module-level environment is rebuilt per-function by
// the caller (Analyze returns enough to do so), the usage table, and
// the record/function shape tables.
type Result struct {
	RecordFields map[string]map[string]*Type
	RecordMut    map[string]bool
	FuncSigs     map[string]*FuncSig
	Usage        *UsageTable
}

// Analyze runs the two-pass analysis over mod and returns the
// resolved Result plus a diagnostic bag. A non-empty bag is fatal for
// the module (spec.md §7: TypeError/UnsupportedFeatureError).
func Analyze(mod *ast.Module) (*Result, *diag.Bag) {
	a := &Analyzer{
		records:      map[string]bool{},
		recordFields: map[string]map[string]*Type{},
		recordMut:    map[string]bool{},
		funcSigs:     map[string]*FuncSig{},
		usage:        NewUsageTable(),
		bag:          &diag.Bag{},
	}
	a.collect(mod)
	a.propagate(mod)
	return &Result{
		RecordFields: a.recordFields,
		RecordMut:    a.recordMut,
		FuncSigs:     a.funcSigs,
		Usage:        a.usage,
	}, a.bag
}

// collect is pass 1: record the declared shape of every record and
// function before any body is type-checked, so forward references and
// mutually-referencing call sites resolve (spec.md §4.2 "Collection
// pass: walk the AST depth-first; for each declaration site, record
// the declared type").
func (a *Analyzer) collect(mod *ast.Module) {
	for _, r := range mod.Records {
		a.records[r.Name] = true
		a.recordMut[r.Name] = r.Mutable
	}
	for _, r := range mod.Records {
		fields := map[string]*Type{}
		for _, f := range r.Fields {
			t := Resolve(f.Type, a.records, a.bag)
			if t.IsContainer() {
				// Record fields alone do not register usage (spec.md §3
				// Invariant 2); mark speculative so the usage table still
				// records the instantiation if nothing else uses it.
				a.usage.Mark(t, false)
			}
			fields[f.Name] = t
		}
		a.recordFields[r.Name] = fields
	}
	for _, fn := range mod.Funcs {
		sig := &FuncSig{Return: Resolve(fn.ReturnType, a.records, a.bag)}
		for _, p := range fn.Params {
			sig.Params = append(sig.Params, Resolve(p.Type, a.records, a.bag))
		}
		a.funcSigs[fn.Name] = sig
	}
}

// propagate is pass 2: walk every function body with a fresh child
// environment, inferring and checking every statement (spec.md §4.2
// "Propagation pass: resolve remaining expression types by structural
// rules").
func (a *Analyzer) propagate(mod *ast.Module) {
	for _, fn := range mod.Funcs {
		env := NewEnv()
		sig := a.funcSigs[fn.Name]
		for i, p := range fn.Params {
			env.Define(p.Name, sig.Params[i])
			a.usage.Mark(sig.Params[i], true)
		}
		a.usage.Mark(sig.Return, true)
		a.checkBlock(env, fn.Body, sig.Return)
	}
}

func (a *Analyzer) checkBlock(env *Env, stmts []ast.Stmt, retType *Type) {
	for _, s := range stmts {
		a.checkStmt(env, s, retType)
	}
}

func (a *Analyzer) checkStmt(env *Env, s ast.Stmt, retType *Type) {
	switch st := s.(type) {
	case *ast.VarDecl:
		declared := Resolve(st.Type, a.records, a.bag)
		var inferred *Type
		if st.Init != nil {
			inferred = a.Infer(env, st.Init)
		}
		if declared.IsContainer() {
			a.usage.Mark(declared, true)
		}
		if inferred != nil && !typesCompatible(declared, inferred) {
			mismatch(a.bag, st.Pos.Line, st.Name, declared, inferred)
		}
		env.Define(st.Name, declared)
	case *ast.Assign:
		targetType := a.Infer(env, st.Target)
		valType := a.Infer(env, st.Value)
		if !typesCompatible(targetType, valType) {
			mismatch(a.bag, st.Pos.Line, exprName(st.Target), targetType, valType)
		}
	case *ast.AugAssign:
		a.Infer(env, st.Target)
		a.Infer(env, st.Value)
	case *ast.If:
		a.Infer(env, st.Cond)
		a.checkBlock(env.Child(), st.Then, retType)
		for _, ei := range st.Elif {
			a.Infer(env, ei.Cond)
			a.checkBlock(env.Child(), ei.Body, retType)
		}
		if st.Else != nil {
			a.checkBlock(env.Child(), st.Else, retType)
		}
	case *ast.While:
		a.Infer(env, st.Cond)
		a.checkBlock(env.Child(), st.Body, retType)
	case *ast.ForRange:
		a.Infer(env, st.Start)
		a.Infer(env, st.End)
		if st.Step != nil {
			a.Infer(env, st.Step)
		}
		inner := env.Child()
		inner.Define(st.Var, Int)
		a.checkBlock(inner, st.Body, retType)
	case *ast.ForEach:
		iter := a.Infer(env, st.Iterable)
		a.usage.Mark(iter, true)
		inner := env.Child()
		switch iter.Kind {
		case KList, KSet:
			inner.Define(st.Var, iter.Elem[0])
		case KDict:
			inner.Define(st.Var, iter.Elem[0])
		default:
			inner.Define(st.Var, &Type{Kind: KUnknown})
		}
		a.checkBlock(inner, st.Body, retType)
	case *ast.Return:
		if st.Value != nil {
			t := a.Infer(env, st.Value)
			if !typesCompatible(retType, t) {
				mismatch(a.bag, st.Pos.Line, "return", retType, t)
			}
		}
	case *ast.Assert:
		a.Infer(env, st.Cond)
	case *ast.ExprStmt:
		a.Infer(env, st.X)
	}
}

// typesCompatible allows the int/float widening spec.md §4.2 mandates
// ("Arithmetic returns the wider of its operands"); everything else
// must match exactly (no implicit narrowing, no structural subtyping),
// except that an empty container literal (`[]` or `{}`), whose element
// types are unknown, initializes any declared container type.
func typesCompatible(declared, inferred *Type) bool {
	if declared == nil || inferred == nil {
		return true
	}
	if declared.Kind == KUnknown || inferred.Kind == KUnknown {
		return true
	}
	if declared.IsNumeric() && inferred.IsNumeric() {
		return true
	}
	if declared.IsContainer() && inferred.IsContainer() && inferred.Elem[0].Kind == KUnknown {
		return true
	}
	return Equal(declared, inferred)
}

func exprName(e ast.Expr) string {
	switch x := e.(type) {
	case *ast.Name:
		return x.Value
	case *ast.Field:
		return exprName(x.Receiver) + "." + x.Name
	case *ast.Subscript:
		return exprName(x.Container) + "[...]"
	default:
		return "<expr>"
	}
}
