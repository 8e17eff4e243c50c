package parser

import (
	"github.com/sunholo/cgen/internal/ast"
	"github.com/sunholo/cgen/internal/diag"
	"github.com/sunholo/cgen/internal/lexer"
)

// parseRecordDecl parses `mutable record Name: ...` / `immutable record
// Name: ...` (spec.md §4.1's "two marker forms distinguishing mutable
// vs immutable").
func (p *Parser) parseRecordDecl() *ast.RecordDecl {
	pos := p.here()
	mutable := p.at(lexer.MUTABLE)
	p.advance() // mutable|immutable
	if _, ok := p.expect(lexer.RECORD); !ok {
		p.syncToNextTopLevel()
		return nil
	}
	name, ok := p.expect(lexer.IDENT)
	if !ok {
		p.syncToNextTopLevel()
		return nil
	}
	if p.recordNames[name.Literal] {
		p.bag.Add(diag.New(diag.ParDuplicateName, name.Line,
			"record name '"+name.Literal+"' is already declared in this module"))
	}
	p.recordNames[name.Literal] = true

	rec := &ast.RecordDecl{Pos: pos, Name: name.Literal, Mutable: mutable}

	p.expect(lexer.COLON)
	p.expect(lexer.NEWLINE)
	if _, ok := p.expect(lexer.INDENT); !ok {
		return rec
	}
	seen := map[string]bool{}
	for !p.at(lexer.DEDENT) && !p.at(lexer.EOF) {
		fname, ok := p.expect(lexer.IDENT)
		if !ok {
			p.syncToNextTopLevel()
			break
		}
		p.expect(lexer.COLON)
		ftype := p.parseType()
		p.expect(lexer.NEWLINE)
		if seen[fname.Literal] {
			p.bag.Add(diag.New(diag.ParDuplicateName, fname.Line,
				"duplicate field '"+fname.Literal+"' in record '"+name.Literal+"'"))
		}
		seen[fname.Literal] = true
		rec.Fields = append(rec.Fields, ast.RecordField{
			Pos:  ast.Pos{File: p.file, Line: fname.Line, Column: fname.Column},
			Name: fname.Literal, Type: ftype,
		})
		p.skipNewlines()
	}
	p.expect(lexer.DEDENT)
	return rec
}

// parseFuncDecl parses `def name(p1: T1, ...) -> T: body` (spec.md §3,
// §4.1: "every function parameter and return value must be
// type-annotated").
func (p *Parser) parseFuncDecl() *ast.FuncDecl {
	pos := p.here()
	p.advance() // def
	name, ok := p.expect(lexer.IDENT)
	if !ok {
		p.syncToNextTopLevel()
		return nil
	}
	if p.funcNames[name.Literal] {
		p.bag.Add(diag.New(diag.ParDuplicateName, name.Line,
			"function name '"+name.Literal+"' is already declared in this module"))
	}
	p.funcNames[name.Literal] = true

	fn := &ast.FuncDecl{Pos: pos, Name: name.Literal}

	p.expect(lexer.LPAREN)
	seen := map[string]bool{}
	for !p.at(lexer.RPAREN) && !p.at(lexer.EOF) {
		pname, ok := p.expect(lexer.IDENT)
		if !ok {
			break
		}
		p.expect(lexer.COLON)
		ptype := p.parseType()
		if seen[pname.Literal] {
			p.bag.Add(diag.New(diag.ParDuplicateName, pname.Line,
				"duplicate parameter name '"+pname.Literal+"' in function '"+name.Literal+"'"))
		}
		seen[pname.Literal] = true
		fn.Params = append(fn.Params, ast.Param{
			Pos:  ast.Pos{File: p.file, Line: pname.Line, Column: pname.Column},
			Name: pname.Literal, Type: ptype,
		})
		if p.at(lexer.COMMA) {
			p.advance()
		}
	}
	p.expect(lexer.RPAREN)

	if p.at(lexer.ARROW) {
		p.advance()
		fn.ReturnType = p.parseType()
	}

	fn.Body = p.parseBlock()
	return fn
}
