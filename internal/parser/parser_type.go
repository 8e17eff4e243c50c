package parser

import (
	"github.com/sunholo/cgen/internal/ast"
	"github.com/sunholo/cgen/internal/diag"
	"github.com/sunholo/cgen/internal/lexer"
)

var scalarNames = map[string]bool{
	"int": true, "float": true, "bool": true, "str": true, "none": true,
}

var containerNames = map[string]bool{
	"list": true, "dict": true, "set": true,
}

// parseType parses a type annotation: a scalar name, a record name, or
// `list<T>` / `dict<K,V>` / `set<T>` (spec.md §3). Nested containers
// are rejected here (§9 Open Question 1, resolved in DESIGN.md).
func (p *Parser) parseType() *ast.TypeExpr {
	tok, ok := p.expect(lexer.IDENT)
	if !ok {
		return nil
	}
	te := &ast.TypeExpr{Pos: ast.Pos{File: p.file, Line: tok.Line, Column: tok.Column}, Name: tok.Literal}

	if !scalarNames[tok.Literal] && !containerNames[tok.Literal] {
		// Either a record name (validated later against recordDecls) or
		// an unknown type name (reported by the type analyzer as
		// TyUnresolved, not here — the parser only enforces grammar).
		return te
	}

	if containerNames[tok.Literal] {
		if !p.at(lexer.LT) {
			p.bag.Add(diag.New(diag.ParBadFuncDecl, tok.Line,
				tok.Literal+" requires element type arguments, e.g. "+tok.Literal+"<int>"))
			return te
		}
		p.advance() // <
		te.Args = append(te.Args, p.parseNonContainerType())
		if tok.Literal == "dict" {
			p.expect(lexer.COMMA)
			te.Args = append(te.Args, p.parseNonContainerType())
		}
		p.expect(lexer.GT)
	}
	return te
}

// parseNonContainerType parses a type argument that must not itself be
// a container (nested containers are unsupported, spec.md §9).
func (p *Parser) parseNonContainerType() *ast.TypeExpr {
	tok := p.cur()
	inner := p.parseType()
	if inner != nil && containerNames[tok.Literal] {
		p.bag.Add(diag.New(diag.ParNestedContainer, tok.Line,
			"nested container types are not supported in this core"))
	}
	return inner
}
