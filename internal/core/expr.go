package core

// IRExpr is the base interface for lowered expression nodes, each
// carrying its resolved IRType (spec.md §4.3, §3 Invariant 1: "Every
// IR binding, parameter, and expression carries exactly one resolved
// type").
type IRExpr interface {
	Type() *IRType
	irExpr()
}

type exprBase struct{ Typ *IRType }

func (e exprBase) Type() *IRType { return e.Typ }
func (exprBase) irExpr()         {}

type LitInt struct {
	exprBase
	Value int64
}

type LitFloat struct {
	exprBase
	Value float64
}

type LitBool struct {
	exprBase
	Value bool
}

type LitStr struct {
	exprBase
	Value string
}

type LitNone struct{ exprBase }

// Name is a variable or parameter reference.
type Name struct {
	exprBase
	Value string
}

// Binary is a lowered binary operator, already mapped to its C
// spelling (internal/elaborate's binOp maps `//`→`/`; `and`/`or` reach
// the IR as `&&`/`||` from the parser — Op already holds the C token).
type Binary struct {
	exprBase
	Op    string
	Left  IRExpr
	Right IRExpr
}

// Unary is a lowered unary operator (`+`, `-`, `!`, `~`), plus an
// IR-only `&` synthesized by internal/elaborate to pass a container
// receiver to the runtime by pointer (spec.md §4.4).
type Unary struct {
	exprBase
	Op string
	X  IRExpr
}

// Subscript is `*c_at(&c, i)` (read form; write form is an Assign
// target rendered specially by the emitter, spec.md §4.4). VarName is
// the per-variable derived name (spec.md §9) the emitter appends
// "_at"/"_insert" to.
type Subscript struct {
	exprBase
	Container IRExpr
	Index     IRExpr
	VarName   string
}

// Field is `r.f`.
type Field struct {
	exprBase
	Receiver IRExpr
	Name     string
}

// Call is a free function call, including runtime helpers like
// `str_split` and the math.h bindings of spec.md §6.
type Call struct {
	exprBase
	Callee string
	Args   []IRExpr
}

// MethodTag is the closed enumeration of container/string operations
// spec.md §9 calls for ("the source AST's attribute-access + call
// shape is replaced at IR-building time with a normalized MethodCall
// node where method_tag is a closed enumeration").
type MethodTag int

const (
	MethodUnknown MethodTag = iota
	MethodListAppend
	MethodSetAdd
	MethodSetRemove
	MethodSetDiscard
	MethodDictRemove
	MethodDictDiscard
	MethodStrUpper
	MethodStrLower
	MethodStrFind
	MethodStrSplit
	MethodStrStrip
	MethodStrReplace
	MethodStrJoin
)

// MethodCall is the canonical (receiver-kind × method-tag) call form
// of spec.md §9; RuntimeFn is the concrete C function the container
// registry resolved it to (e.g. "numbers_push", "str_split").
type MethodCall struct {
	exprBase
	Receiver  IRExpr
	Tag       MethodTag
	RuntimeFn string
	Args      []IRExpr
}

// Cast is an explicit numeric widening, inserted whenever an
// expression mixes int and float (spec.md §4.2: "Numeric widening is
// never implicit in emitted C").
type Cast struct {
	exprBase
	Target *IRType
	X      IRExpr
}

// Paren is an explicit parenthesization preserved from a source
// `(expr)` or inserted by the emitter for precedence (spec.md §4.6).
type Paren struct {
	exprBase
	X IRExpr
}

// RecordCtor is `make_R(args...)` for mutable records or the literal
// struct `(R){args...}` for immutable ones (spec.md §4.3, §4.4).
type RecordCtor struct {
	exprBase
	Name string
	Args []IRExpr
}

// ContainerLit is a zero-initialized container literal, optionally
// followed by a push/insert sequence built by the elaborator (empty
// literals lower directly; non-empty ones lower to a Decl + inserts,
// see internal/elaborate).
type ContainerLit struct {
	exprBase
	Kind string // "list", "set", "dict"
}

// TempRef is a reference to a compiler-generated temporary — the
// comprehension desugaring's fresh container variable (spec.md §4.3).
type TempRef struct {
	exprBase
	Name string
}
