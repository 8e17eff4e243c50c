package parser

import (
	"github.com/sunholo/cgen/internal/ast"
	"github.com/sunholo/cgen/internal/diag"
	"github.com/sunholo/cgen/internal/lexer"
)

var augOps = map[lexer.TokenType]string{
	lexer.PLUSEQ: "+", lexer.MINUSEQ: "-", lexer.STAREQ: "*",
	lexer.SLASHEQ: "/", lexer.PERCENTEQ: "%",
}

func (p *Parser) parseStmt() ast.Stmt {
	switch {
	case p.at(lexer.IDENT) && p.peekN(1).Type == lexer.COLON:
		return p.parseVarDecl()
	case p.at(lexer.IF):
		return p.parseIf()
	case p.at(lexer.WHILE):
		return p.parseWhile()
	case p.at(lexer.FOR):
		return p.parseFor()
	case p.at(lexer.RETURN):
		return p.parseReturn()
	case p.at(lexer.ASSERT):
		return p.parseAssert()
	default:
		return p.parseSimpleOrAssign()
	}
}

func (p *Parser) parseVarDecl() ast.Stmt {
	pos := p.here()
	name := p.advance()
	p.expect(lexer.COLON)
	typ := p.parseType()
	var init ast.Expr
	if p.at(lexer.ASSIGN) {
		p.advance()
		init = p.parseExpr()
	} else {
		p.bag.Add(diag.New(diag.ParMissingAnnotation, pos.Line,
			"variable '"+name.Literal+"' must be declared with an initializer"))
	}
	p.expect(lexer.NEWLINE)
	v := &ast.VarDecl{Name: name.Literal, Type: typ, Init: init}
	v.Pos = pos
	return v
}

func (p *Parser) parseIf() ast.Stmt {
	pos := p.here()
	p.advance() // if
	cond := p.parseExpr()
	then := p.parseBlock()
	stmt := &ast.If{Cond: cond, Then: then}
	stmt.Pos = pos
	for p.at(lexer.ELIF) {
		p.advance()
		ec := p.parseExpr()
		eb := p.parseBlock()
		stmt.Elif = append(stmt.Elif, ast.ElifClause{Cond: ec, Body: eb})
	}
	if p.at(lexer.ELSE) {
		p.advance()
		stmt.Else = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseWhile() ast.Stmt {
	pos := p.here()
	p.advance()
	cond := p.parseExpr()
	body := p.parseBlock()
	s := &ast.While{Cond: cond, Body: body}
	s.Pos = pos
	return s
}

func (p *Parser) parseFor() ast.Stmt {
	pos := p.here()
	p.advance() // for
	name, _ := p.expect(lexer.IDENT)
	p.expect(lexer.IN)

	if p.at(lexer.RANGE) {
		p.advance()
		p.expect(lexer.LPAREN)
		args := p.parseArgs(lexer.RPAREN)
		p.expect(lexer.RPAREN)
		var start, end, step ast.Expr
		switch len(args) {
		case 1:
			zero := &ast.LitInt{Value: 0}
			zero.Pos = pos
			start = zero
			end = args[0]
		case 2:
			start, end = args[0], args[1]
		case 3:
			start, end, step = args[0], args[1], args[2]
		default:
			p.bag.Add(diag.New(diag.ParBadFuncDecl, pos.Line, "range() takes 1 to 3 arguments"))
		}
		body := p.parseBlock()
		s := &ast.ForRange{Var: name.Literal, Start: start, End: end, Step: step, Body: body}
		s.Pos = pos
		return s
	}

	iter := p.parseExpr()
	body := p.parseBlock()
	s := &ast.ForEach{Var: name.Literal, Iterable: iter, Body: body}
	s.Pos = pos
	return s
}

func (p *Parser) parseReturn() ast.Stmt {
	pos := p.here()
	p.advance()
	var val ast.Expr
	if !p.at(lexer.NEWLINE) {
		val = p.parseExpr()
	}
	p.expect(lexer.NEWLINE)
	s := &ast.Return{Value: val}
	s.Pos = pos
	return s
}

func (p *Parser) parseAssert() ast.Stmt {
	pos := p.here()
	p.advance()
	cond := p.parseExpr()
	p.expect(lexer.NEWLINE)
	s := &ast.Assert{Cond: cond}
	s.Pos = pos
	return s
}

func (p *Parser) parseSimpleOrAssign() ast.Stmt {
	pos := p.here()
	first := p.parseExpr()

	if p.at(lexer.COMMA) {
		// Tuple-target / multiple-assignment shape: `x, y = y, x`.
		// spec.md §4.3: "not supported; the validator rejects them".
		for p.at(lexer.COMMA) {
			p.advance()
			p.parseExpr()
		}
		if p.at(lexer.ASSIGN) {
			p.advance()
			p.parseExpr()
			for p.at(lexer.COMMA) {
				p.advance()
				p.parseExpr()
			}
		}
		p.bag.Add(diag.New(diag.ParTupleSwap, pos.Line, "tuple assignment / multiple assignment is not supported"))
		p.expect(lexer.NEWLINE)
		return nil
	}

	if p.at(lexer.ASSIGN) {
		p.advance()
		val := p.parseExpr()
		p.expect(lexer.NEWLINE)
		if !isValidLvalue(first) {
			p.bag.Add(diag.New(diag.ParUnexpectedToken, pos.Line, "invalid assignment target"))
		}
		s := &ast.Assign{Target: first, Value: val}
		s.Pos = pos
		return s
	}

	if op, ok := augOps[p.cur().Type]; ok {
		p.advance()
		val := p.parseExpr()
		p.expect(lexer.NEWLINE)
		if !isValidLvalue(first) {
			p.bag.Add(diag.New(diag.ParUnexpectedToken, pos.Line, "invalid assignment target"))
		}
		s := &ast.AugAssign{Op: op, Target: first, Value: val}
		s.Pos = pos
		return s
	}

	p.expect(lexer.NEWLINE)
	s := &ast.ExprStmt{X: first}
	s.Pos = pos
	return s
}

func isValidLvalue(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Name, *ast.Subscript, *ast.Field:
		return true
	default:
		return false
	}
}
