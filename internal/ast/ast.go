// Package ast defines the surface AST produced by the parser for the
// source subset: an ordered sequence of imports, record declarations,
// and function definitions (spec.md §3).
package ast

import "fmt"

// Pos is a source location, one-based line and column.
type Pos struct {
	File   string
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Node is the base interface implemented by every AST node.
type Node interface {
	Position() Pos
}

// TypeExpr is the surface syntax for a type annotation: a scalar name
// ("int", "float", "bool", "str", "none"), a record name, or a
// container shape ("list"/"dict"/"set" plus element TypeExprs).
type TypeExpr struct {
	Pos  Pos
	Name string // "int","float","bool","str","none","list","dict","set", or a record name
	Args []*TypeExpr
}

func (t *TypeExpr) Position() Pos { return t.Pos }

func (t *TypeExpr) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	s := t.Name + "<"
	for i, a := range t.Args {
		if i > 0 {
			s += ","
		}
		s += a.String()
	}
	return s + ">"
}

// Module is one source file: imports, records, and functions in
// declaration order (spec.md §3).
type Module struct {
	Pos     Pos
	Imports []*Import
	Records []*RecordDecl
	Funcs   []*FuncDecl
}

func (m *Module) Position() Pos { return m.Pos }

// Import is a module-level `import name` directive (spec.md §4.1, §6).
type Import struct {
	Pos  Pos
	Name string
}

func (i *Import) Position() Pos { return i.Pos }

// RecordDecl declares a nominal product type, mutable or immutable
// (spec.md §4.4).
type RecordDecl struct {
	Pos     Pos
	Name    string
	Mutable bool
	Fields  []RecordField
}

func (r *RecordDecl) Position() Pos { return r.Pos }

// RecordField is one (name, type) pair of a record declaration.
type RecordField struct {
	Pos  Pos
	Name string
	Type *TypeExpr
}

// Param is one function parameter: a name and its declared type.
type Param struct {
	Pos  Pos
	Name string
	Type *TypeExpr
}

// FuncDecl is a top-level function definition (spec.md §3).
type FuncDecl struct {
	Pos        Pos
	Name       string
	Params     []Param
	ReturnType *TypeExpr // nil means "none"
	Body       []Stmt
}

func (f *FuncDecl) Position() Pos { return f.Pos }
