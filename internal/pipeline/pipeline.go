// Package pipeline wires the Parser+Validator, Type & Usage Analyzer,
// IR Builder, Container Registry, and Emitter into the single
// Parse→Analyze→Lower→Register→Emit chain of spec.md §5, giving every
// call to Run a fresh Registry so no state survives across runs
// (spec.md §4.5, §9). Grounded on the teacher's internal/pipeline/
// pipeline.go Config/Source/Result shape and its single Run(cfg, src)
// entry point, adapted from the teacher's Parse→Typecheck→Elaborate→Eval
// chain.
package pipeline

import (
	"github.com/sunholo/cgen/internal/containers"
	"github.com/sunholo/cgen/internal/diag"
	"github.com/sunholo/cgen/internal/elaborate"
	"github.com/sunholo/cgen/internal/emitter"
	"github.com/sunholo/cgen/internal/parser"
	"github.com/sunholo/cgen/internal/types"
)

// Config holds pipeline-wide options, kept as a distinct type in the
// teacher's style. Its only field, DumpIR, is not read by Run.
type Config struct {
	DumpIR bool
}

// Source is one translation unit.
type Source struct {
	Code     string
	Filename string
}

// Phase names an emitted diagnostic's originating stage, for callers
// that want to report "failed during X" without inspecting codes.
type Phase string

const (
	PhaseParse    Phase = "parse"
	PhaseAnalyze  Phase = "analyze"
	PhaseLower    Phase = "lower"
	PhaseEmit     Phase = "emit"
)

// Result is the pipeline's output: the rendered C source on success,
// or the diagnostics collected by whichever phase failed.
type Result struct {
	C           string
	Phase       Phase
	Diagnostics []diag.Diagnostic
}

// Run executes the full compilation pipeline over src. A non-nil error
// is always a *diag.Bag; callers can type-assert it to recover
// structured diagnostics, or use Result.Diagnostics directly.
func Run(cfg Config, src Source) (Result, error) {
	p := parser.New([]byte(src.Code), src.Filename)
	mod, parseBag := p.Parse()
	if parseBag.HasErrors() {
		return Result{Phase: PhaseParse, Diagnostics: parseBag.Items()}, parseBag
	}

	tyRes, tyBag := types.Analyze(mod)
	if tyBag.HasErrors() {
		return Result{Phase: PhaseAnalyze, Diagnostics: tyBag.Items()}, tyBag
	}

	reg := containers.NewRegistry()
	elab := elaborate.New(tyRes, reg)
	irMod, irBag := elab.Lower(mod)
	if irBag.HasErrors() {
		return Result{Phase: PhaseLower, Diagnostics: irBag.Items()}, irBag
	}

	out := emitter.Emit(irMod, reg, mod.Imports)
	return Result{C: out}, nil
}
