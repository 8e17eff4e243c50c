package containers

import "github.com/sunholo/cgen/internal/core"

// DerivedOpName computes the per-variable derived operation identifier
// of spec.md §9 ("Per-variable derived names... treat the
// variable-name-derived operation identifier as a pure function of
// (container type, variable name, operation)"): `numbers.append(x)` on
// a variable named `numbers` becomes a call to `numbers_push`.
func DerivedOpName(varName, op string) string {
	return varName + "_" + op
}

// containerOp is the operation-name table of spec.md §4.4: source
// method name (keyed by receiver kind) to the container-library
// operation suffix and its MethodTag.
type containerOp struct {
	suffix string
	tag    core.MethodTag
}

var listOps = map[string]containerOp{
	"append": {"push", core.MethodListAppend},
}

var setOps = map[string]containerOp{
	"add":     {"insert", core.MethodSetAdd},
	"remove":  {"erase", core.MethodSetRemove},
	"discard": {"erase", core.MethodSetDiscard},
}

var dictOps = map[string]containerOp{
	"remove":  {"erase", core.MethodDictRemove},
	"discard": {"erase", core.MethodDictDiscard},
}

// stringOps maps source string methods to the fixed runtime helper
// names of spec.md §4.4/§6.
var stringOps = map[string]struct {
	runtimeFn string
	tag       core.MethodTag
}{
	"upper":   {"str_upper", core.MethodStrUpper},
	"lower":   {"str_lower", core.MethodStrLower},
	"find":    {"str_find", core.MethodStrFind},
	"split":   {"str_split", core.MethodStrSplit},
	"strip":   {"str_strip", core.MethodStrStrip},
	"replace": {"str_replace", core.MethodStrReplace},
	"join":    {"str_join", core.MethodStrJoin},
}

// ContainerOp looks up the method table for a list/set/dict receiver,
// returning (suffix, tag, ok).
func ContainerOp(receiverKindIsList, receiverKindIsDict bool, method string) (string, core.MethodTag, bool) {
	var table map[string]containerOp
	switch {
	case receiverKindIsList:
		table = listOps
	case receiverKindIsDict:
		table = dictOps
	default:
		table = setOps
	}
	op, ok := table[method]
	return op.suffix, op.tag, ok
}

// StringOp looks up a string method, returning (runtime function name,
// tag, ok).
func StringOp(method string) (string, core.MethodTag, bool) {
	op, ok := stringOps[method]
	return op.runtimeFn, op.tag, ok
}
