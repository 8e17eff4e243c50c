// Package containers implements the Container & String Operation
// Mapping (spec.md §4.4) and the Container Registry (spec.md §4.5): the
// translation tables from source-level container/string operations to
// their canonical C forms, plus the registry of concrete instantiations
// discovered during analysis and lowering. Grounded on the teacher's
// internal/elaborate/dictionaries.go table-driven operation-to-runtime-
// call dispatch (there: type-class method dictionaries; here: container
// and string methods) and on janpfeifer/go-highway's
// cmd/hwygen/c_generator.go C identifier mangling conventions.
package containers

import "github.com/sunholo/cgen/internal/types"

// ScalarCName returns the emitted C type name for a scalar or record
// type (spec.md §4.4's "str" row and the record typedef rows).
func ScalarCName(t *types.Type) string {
	switch t.Kind {
	case types.KInt:
		return "int32_t"
	case types.KFloat:
		return "double"
	case types.KBool:
		return "bool"
	case types.KStr:
		return "cstr"
	case types.KNone:
		return "void"
	case types.KRecord:
		return t.Record
	default:
		return "void*"
	}
}

// elemMangle returns the short element-name fragment used inside a
// mangled container name and inside its declare_* macro's argument
// list, e.g. "int32" for int, matching spec.md §4.4's
// "declare_vec(vec_int32, int32)".
func elemMangle(t *types.Type) string {
	switch t.Kind {
	case types.KInt:
		return "int32"
	case types.KFloat:
		return "float64"
	case types.KBool:
		return "bool"
	case types.KStr:
		return "cstr"
	case types.KRecord:
		return t.Record
	default:
		return "unknown"
	}
}

// CTypeName returns the emitted C type name for any resolved Type —
// the deterministic mangling spec.md §4.4 requires ("stable across
// runs given the same inputs").
func CTypeName(t *types.Type) string {
	switch t.Kind {
	case types.KList:
		return "vec_" + elemMangle(t.Elem[0])
	case types.KSet:
		return "hset_" + elemMangle(t.Elem[0])
	case types.KDict:
		return "hmap_" + elemMangle(t.Elem[0]) + "_" + elemMangle(t.Elem[1])
	default:
		return ScalarCName(t)
	}
}

// DeclMacro returns the declare_* macro invocation for a container
// instantiation, per the table in spec.md §4.4.
func DeclMacro(t *types.Type) string {
	name := CTypeName(t)
	switch t.Kind {
	case types.KList:
		return "declare_vec(" + name + ", " + elemMangle(t.Elem[0]) + ")"
	case types.KSet:
		return "declare_hset(" + name + ", " + elemMangle(t.Elem[0]) + ")"
	case types.KDict:
		return "declare_hmap(" + name + ", " + elemMangle(t.Elem[0]) + ", " + elemMangle(t.Elem[1]) + ")"
	default:
		return ""
	}
}

// HeaderFor returns the container-library header that declares t's
// kind of instantiation.
func HeaderFor(t *types.Type) string {
	switch t.Kind {
	case types.KList:
		return "containers/vector.h"
	case types.KDict:
		return "containers/hashmap.h"
	case types.KSet:
		return "containers/hashset.h"
	default:
		return ""
	}
}
