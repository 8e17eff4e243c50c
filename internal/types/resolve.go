package types

import (
	"github.com/sunholo/cgen/internal/ast"
	"github.com/sunholo/cgen/internal/diag"
)

// Resolve converts a surface TypeExpr into a resolved Type, checking
// record names against the module's known record set and rejecting
// nested containers and container-of-record element types (spec.md §9
// Open Question 1; DESIGN.md's supplementary ordering decision for
// record-element containers).
func Resolve(te *ast.TypeExpr, records map[string]bool, bag *diag.Bag) *Type {
	if te == nil {
		return None
	}
	switch te.Name {
	case "int":
		return Int
	case "float":
		return Float
	case "bool":
		return Bool
	case "str":
		return Str
	case "none":
		return None
	case "list", "set":
		if len(te.Args) != 1 {
			unresolved(bag, te.Pos.Line, "container "+te.Name+" without an element type")
			return &Type{Kind: KUnknown}
		}
		elem := resolveElem(te.Args[0], records, bag)
		if te.Name == "list" {
			return List(elem)
		}
		return Set(elem)
	case "dict":
		if len(te.Args) != 2 {
			unresolved(bag, te.Pos.Line, "dict without key/value types")
			return &Type{Kind: KUnknown}
		}
		k := resolveElem(te.Args[0], records, bag)
		v := resolveElem(te.Args[1], records, bag)
		return Dict(k, v)
	default:
		if records[te.Name] {
			return RecordT(te.Name)
		}
		unresolved(bag, te.Pos.Line, "unknown type name '"+te.Name+"'")
		return &Type{Kind: KUnknown}
	}
}

// resolveElem resolves a container element type, rejecting nested
// containers and record elements (the latter per this core's
// supplementary decision, see DESIGN.md: §4.6's fixed emission order
// places container declarations before record typedefs, which cannot
// honor §4.5's "element types precede containers" rule when the
// element is itself a record).
func resolveElem(te *ast.TypeExpr, records map[string]bool, bag *diag.Bag) *Type {
	if te == nil {
		return &Type{Kind: KUnknown}
	}
	if te.Name == "list" || te.Name == "dict" || te.Name == "set" {
		unsupported(bag, te.Pos.Line, "nested container types are not supported")
		return &Type{Kind: KUnknown}
	}
	t := Resolve(te, records, bag)
	if t.Kind == KRecord {
		unsupported(bag, te.Pos.Line,
			"container element type '"+t.Record+"' is a record; record-element containers are not supported in this core")
		return &Type{Kind: KUnknown}
	}
	return t
}
