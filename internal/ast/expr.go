package ast

// Expr is the base interface for expression nodes (spec.md §4.1).
type Expr interface {
	Node
	exprNode()
}

type exprBase struct{ Pos Pos }

func (e exprBase) Position() Pos { return e.Pos }
func (exprBase) exprNode()       {}

// LitInt is an integer literal.
type LitInt struct {
	exprBase
	Value int64
}

// LitFloat is a floating-point literal.
type LitFloat struct {
	exprBase
	Value float64
}

// LitBool is `True`/`False`.
type LitBool struct {
	exprBase
	Value bool
}

// LitStr is a string literal.
type LitStr struct {
	exprBase
	Value string
}

// LitNone is the `None` literal.
type LitNone struct{ exprBase }

// Name is an identifier reference.
type Name struct {
	exprBase
	Value string
}

// Binary is a binary arithmetic/comparison/logical/bitwise expression.
type Binary struct {
	exprBase
	Op    string
	Left  Expr
	Right Expr
}

// Unary is `+x`, `-x`, `!x`, `~x`.
type Unary struct {
	exprBase
	Op string
	X  Expr
}

// Subscript is `c[k]`.
type Subscript struct {
	exprBase
	Container Expr
	Index     Expr
}

// Slice is `c[a:b]` (list slicing, spec.md §4.4).
type Slice struct {
	exprBase
	Container Expr
	Low       Expr // nil means 0
	High      Expr // nil means len(c)
}

// Field is `r.f`.
type Field struct {
	exprBase
	Receiver Expr
	Name     string
}

// Call is a free function call: `f(args...)`.
type Call struct {
	exprBase
	Callee Expr
	Args   []Expr
}

// MethodCall is `receiver.method(args...)` — container/string methods
// and record construction calls spelled as attribute access.
type MethodCall struct {
	exprBase
	Receiver Expr
	Method   string
	Args     []Expr
}

// ContainerLit is a list/set/dict literal: `[...]`, `{...}`, `{k:v,...}`.
type ContainerLit struct {
	exprBase
	Kind     string // "list", "set", "dict"
	Elems    []Expr // list/set elements
	Keys     []Expr // dict keys (parallel to Elems as values)
	IsDict   bool
}

// Comprehension is a single-generator, optionally-filtered list/set/dict
// comprehension (spec.md §4.1, §4.3).
type Comprehension struct {
	exprBase
	Kind       string // "list", "set", "dict"
	Elem       Expr   // list/set element expr, or dict value expr
	Key        Expr   // dict key expr (nil unless Kind == "dict")
	Var        string
	Iterable   Expr
	Filter     Expr // nil if no `if` clause
}

// RecordCtor is `R(a, b, ...)` — record construction by positional args.
type RecordCtor struct {
	exprBase
	Name string
	Args []Expr
}
