package types

import "github.com/sunholo/cgen/internal/diag"

// Analyzer's failure modes (spec.md §4.2): UnresolvedTypeError (no rule
// produces a type), TypeMismatchError (declared vs inferred disagree),
// UnsupportedTypeError (nested container or unsupported element type).
// All three are fatal for the module (spec.md §7), so the Analyzer
// collects them in a diag.Bag like the parser but the pipeline treats
// any non-empty bag here as fatal rather than continuing to phase C.

func unresolved(bag *diag.Bag, line int, what string) {
	bag.Add(diag.New(diag.TyUnresolved, line, "cannot resolve a type for "+what))
}

func mismatch(bag *diag.Bag, line int, name string, declared, inferred *Type) {
	bag.Add(diag.New(diag.TyMismatch, line,
		"'"+name+"' is declared as "+declared.String()+" but used as "+inferred.String()))
}

func unsupported(bag *diag.Bag, line int, what string) {
	bag.Add(diag.New(diag.TyUnsupported, line, "unsupported type: "+what))
}
