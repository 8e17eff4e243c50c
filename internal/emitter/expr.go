package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sunholo/cgen/internal/containers"
	"github.com/sunholo/cgen/internal/core"
)

// binPrec is the C operator precedence table used to decide whether a
// child Binary needs parenthesizing around its parent (spec.md §4.6:
// "conservative overparenthesization is allowed"). Higher binds
// tighter.
var binPrec = map[string]int{
	"*": 10, "/": 10, "%": 10,
	"+": 9, "-": 9,
	"<<": 8, ">>": 8,
	"<": 7, "<=": 7, ">": 7, ">=": 7,
	"==": 6, "!=": 6,
	"&": 5, "^": 4, "|": 3,
	"&&": 2, "||": 1,
}

const atomPrec = 100
const unaryPrec = 11

// renderExpr renders ex as C source text, inserting parentheses
// whenever a child Binary's precedence is lower than minPrec (spec.md
// §4.6's expression-rendering rule).
func (e *Emitter) renderExpr(ex core.IRExpr, minPrec int) string {
	switch x := ex.(type) {
	case *core.LitInt:
		return strconv.FormatInt(x.Value, 10)
	case *core.LitFloat:
		s := strconv.FormatFloat(x.Value, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case *core.LitBool:
		if x.Value {
			return "true"
		}
		return "false"
	case *core.LitStr:
		return strconv.Quote(x.Value)
	case *core.LitNone:
		return "NULL"
	case *core.Name:
		return x.Value
	case *core.TempRef:
		return x.Name
	case *core.Unary:
		return x.Op + e.renderExpr(x.X, unaryPrec)
	case *core.Binary:
		return e.renderBinary(x, minPrec)
	case *core.Subscript:
		return fmt.Sprintf("*%s_at(&%s, %s)", x.VarName, e.renderExpr(x.Container, atomPrec), e.renderExpr(x.Index, 0))
	case *core.Field:
		return e.renderExpr(x.Receiver, atomPrec) + "." + x.Name
	case *core.Call:
		return e.renderCall(x.Callee, x.Args)
	case *core.MethodCall:
		return e.renderMethodCall(x)
	case *core.Cast:
		return fmt.Sprintf("(%s)%s", x.Target.CName, e.renderExpr(x.X, unaryPrec))
	case *core.Paren:
		return "(" + e.renderExpr(x.X, 0) + ")"
	case *core.RecordCtor:
		return e.renderRecordCtor(x)
	case *core.ContainerLit:
		return "(" + containers.CTypeName(x.Type().Src) + "){0}"
	default:
		return "/* unsupported expr */"
	}
}

func (e *Emitter) renderBinary(b *core.Binary, minPrec int) string {
	level := binPrec[b.Op]
	left := e.renderExpr(b.Left, level)
	right := e.renderExpr(b.Right, level+1)
	s := left + " " + b.Op + " " + right
	if level < minPrec {
		return "(" + s + ")"
	}
	return s
}

func (e *Emitter) renderArgs(args []core.IRExpr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = e.renderExpr(a, 0)
	}
	return strings.Join(parts, ", ")
}

func (e *Emitter) renderCall(callee string, args []core.IRExpr) string {
	return callee + "(" + e.renderArgs(args) + ")"
}

// renderMethodCall renders the receiver ahead of the call's own
// arguments (spec.md §4.4's operation table: `numbers.append(10)` ->
// `numbers_push(&numbers, 10)`; `line.split(",")` -> `str_split(line,
// ",")`). internal/elaborate already decided whether the receiver is
// passed by address or by value when it built x.Receiver.
func (e *Emitter) renderMethodCall(x *core.MethodCall) string {
	recv := e.renderExpr(x.Receiver, atomPrec)
	if len(x.Args) == 0 {
		return x.RuntimeFn + "(" + recv + ")"
	}
	return x.RuntimeFn + "(" + recv + ", " + e.renderArgs(x.Args) + ")"
}

// renderRecordCtor renders construction as a constructor call for
// mutable records (the emitter materializes make_R) and as a literal
// struct for immutable ones (spec.md §4.3, §4.4).
func (e *Emitter) renderRecordCtor(x *core.RecordCtor) string {
	args := e.renderArgs(x.Args)
	if e.recordMutable[x.Name] {
		return "make_" + x.Name + "(" + args + ")"
	}
	return "(" + x.Name + "){" + args + "}"
}
