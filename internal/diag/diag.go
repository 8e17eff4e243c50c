// Package diag provides the centralized, phase-tagged diagnostic
// taxonomy used across the pipeline (spec.md §4.1, §7), following the
// stable error-code-registry pattern of the teacher's internal/errors
// package.
package diag

import "fmt"

// Severity distinguishes fatal diagnostics from collected-but-survivable
// ones. Only ValidationError-class diagnostics (Parser+Validator, §4.1)
// are ever non-fatal and collected in bulk; every other phase is fatal
// for the module per spec.md §7.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Phase identifies which pipeline component raised a diagnostic.
type Phase string

const (
	PhaseParser    Phase = "parser"
	PhaseTypes     Phase = "types"
	PhaseIR        Phase = "ir"
	PhaseRegistry  Phase = "registry"
	PhaseEmitter   Phase = "emitter"
	PhaseInternal  Phase = "internal"
)

// Rule codes. PAR### = Parser+Validator (spec.md §4.1). TY### = Type &
// Usage Analyzer (spec.md §4.2: UnresolvedTypeError, TypeMismatchError,
// UnsupportedTypeError). IR### = IR Builder lowering failures. REG### =
// Container Registry invariant violations (spec.md §4.5). EMT### =
// Emitter-stage failures. INT### = InternalError, an invariant broken in
// the IR or registry (spec.md §7).
const (
	ParUnexpectedToken     = "PAR001"
	ParUnclosedDelimiter   = "PAR002"
	ParBadFuncDecl         = "PAR003"
	ParBadRecordDecl       = "PAR004"
	ParBadImport           = "PAR005"
	ParMissingAnnotation   = "PAR006"
	ParUnsupportedFeature  = "PAR007"
	ParDuplicateName       = "PAR008"
	ParMissingReturn       = "PAR009"
	ParTupleSwap           = "PAR010"
	ParFloatModulo         = "PAR011"
	ParContainerField      = "PAR012"
	ParMutationOfImmutable = "PAR013"
	ParNestedContainer     = "PAR014"
	ParMultiGenerator      = "PAR015"

	TyUnresolved  = "TY001"
	TyMismatch    = "TY002"
	TyUnsupported = "TY003"

	IRUnsupported = "IR001"

	RegDowngrade = "REG001"

	EmtUnresolvedType = "EMT001"

	IntInvariant = "INT001"
)

// ruleInfo mirrors the teacher's ErrorInfo/ErrorRegistry shape: a
// stable description per code, independent of any one diagnostic's
// particular message text.
type ruleInfo struct {
	Phase       Phase
	Description string
}

var registry = map[string]ruleInfo{
	ParUnexpectedToken:     {PhaseParser, "unexpected token"},
	ParUnclosedDelimiter:   {PhaseParser, "missing closing delimiter"},
	ParBadFuncDecl:         {PhaseParser, "invalid function declaration"},
	ParBadRecordDecl:       {PhaseParser, "invalid record declaration"},
	ParBadImport:           {PhaseParser, "invalid or disallowed import"},
	ParMissingAnnotation:   {PhaseParser, "missing type annotation"},
	ParUnsupportedFeature:  {PhaseParser, "construct outside the supported subset"},
	ParDuplicateName:       {PhaseParser, "duplicate name in scope"},
	ParMissingReturn:       {PhaseParser, "not all control-flow paths return"},
	ParTupleSwap:           {PhaseParser, "tuple/multiple assignment is not supported"},
	ParFloatModulo:         {PhaseParser, "modulo on float operands is not supported"},
	ParContainerField:      {PhaseParser, "container-typed record field"},
	ParMutationOfImmutable: {PhaseParser, "field assignment on an immutable record"},
	ParNestedContainer:     {PhaseParser, "nested container types are not supported"},
	ParMultiGenerator:      {PhaseParser, "comprehensions support a single generator only"},

	TyUnresolved:  {PhaseTypes, "no rule produces a type for this expression"},
	TyMismatch:    {PhaseTypes, "declared and inferred types disagree"},
	TyUnsupported: {PhaseTypes, "nested container or unsupported element type"},

	IRUnsupported: {PhaseIR, "construct accepted by the parser but not lowerable"},

	RegDowngrade: {PhaseRegistry, "attempted to downgrade a container instantiation from actual to speculative"},

	EmtUnresolvedType: {PhaseEmitter, "no C type name is registered for this instantiation"},

	IntInvariant: {PhaseInternal, "an internal pipeline invariant was violated"},
}

// Diagnostic is one reported problem: a stable rule code, the phase
// that raised it, the source line, a human-readable message, and an
// optional suggested fix (spec.md §4.1: "a rule identifier... a
// one-line human-readable summary, the source line number, and
// optionally a suggested fix").
type Diagnostic struct {
	Code     string
	Severity Severity
	Line     int
	Message  string
	Fix      string
}

// Phase returns the registered phase for this diagnostic's code.
func (d Diagnostic) Phase() Phase {
	if info, ok := registry[d.Code]; ok {
		return info.Phase
	}
	return PhaseInternal
}

func (d Diagnostic) String() string {
	if d.Fix != "" {
		return fmt.Sprintf("%s:%d: [%s] %s (suggested fix: %s)", d.Phase(), d.Line, d.Code, d.Message, d.Fix)
	}
	return fmt.Sprintf("%s:%d: [%s] %s", d.Phase(), d.Line, d.Code, d.Message)
}

func (d Diagnostic) Error() string { return d.String() }

// New builds a Diagnostic at SeverityError.
func New(code string, line int, message string) Diagnostic {
	return Diagnostic{Code: code, Severity: SeverityError, Line: line, Message: message}
}

// WithFix attaches a suggested fix to a Diagnostic, mirroring the
// teacher's fluent `WithFix` builder on errors.Encoded.
func (d Diagnostic) WithFix(fix string) Diagnostic {
	d.Fix = fix
	return d
}

// Bag collects zero or more diagnostics in source order, mirroring the
// parser's own p.Errors() accumulation pattern in the teacher repo and
// generalized, per spec.md §7, to the whole module ("all validation
// errors in one module are collected").
type Bag struct {
	items []Diagnostic
}

// Add appends a diagnostic to the bag.
func (b *Bag) Add(d Diagnostic) { b.items = append(b.items, d) }

// Addf is a convenience constructor-and-add.
func (b *Bag) Addf(code string, line int, format string, args ...interface{}) {
	b.Add(New(code, line, fmt.Sprintf(format, args...)))
}

// HasErrors reports whether any diagnostic was collected.
func (b *Bag) HasErrors() bool { return len(b.items) > 0 }

// Items returns the collected diagnostics in source order.
func (b *Bag) Items() []Diagnostic { return b.items }

// Error implements the error interface so a Bag can be returned
// directly as an error value.
func (b *Bag) Error() string {
	s := ""
	for i, d := range b.items {
		if i > 0 {
			s += "\n"
		}
		s += d.String()
	}
	return s
}
