package parser

import (
	"github.com/sunholo/cgen/internal/ast"
	"github.com/sunholo/cgen/internal/diag"
)

// checkMissingReturns enforces spec.md §3 Invariant 4: a function whose
// return type is not "none" must return a value on every control-flow
// path. The check is a simple structural one (no general data-flow
// analysis): a statement list satisfies it if its last statement does,
// and an if/elif/else satisfies it only when every arm does and an
// else arm is present.
func (p *Parser) checkMissingReturns(mod *ast.Module) {
	for _, fn := range mod.Funcs {
		if fn.ReturnType == nil || fn.ReturnType.Name == "none" {
			continue
		}
		if !blockReturns(fn.Body) {
			p.bag.Add(diag.New(diag.ParMissingReturn, fn.Pos.Line,
				"function '"+fn.Name+"' has a non-none return type but does not return on every path"))
		}
	}
}

func blockReturns(stmts []ast.Stmt) bool {
	if len(stmts) == 0 {
		return false
	}
	return stmtReturns(stmts[len(stmts)-1])
}

func stmtReturns(s ast.Stmt) bool {
	switch st := s.(type) {
	case *ast.Return:
		_ = st
		return true
	case *ast.If:
		if st.Else == nil {
			return false
		}
		if !blockReturns(st.Then) || !blockReturns(st.Else) {
			return false
		}
		for _, ei := range st.Elif {
			if !blockReturns(ei.Body) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
