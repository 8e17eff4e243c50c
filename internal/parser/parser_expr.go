package parser

import (
	"strconv"

	"github.com/sunholo/cgen/internal/ast"
	"github.com/sunholo/cgen/internal/diag"
	"github.com/sunholo/cgen/internal/lexer"
)

// parseExpr is the entry point of the expression grammar, a standard
// precedence-climbing descent: or -> and -> not -> comparison -> bitor
// -> bitxor -> bitand -> shift -> additive -> multiplicative -> unary
// -> postfix -> primary.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.at(lexer.OR) {
		pos := p.here()
		p.advance()
		right := p.parseAnd()
		left = p.binary(pos, "||", left, right)
	}
	return left
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseNot()
	for p.at(lexer.AND) {
		pos := p.here()
		p.advance()
		right := p.parseNot()
		left = p.binary(pos, "&&", left, right)
	}
	return left
}

func (p *Parser) parseNot() ast.Expr {
	if p.at(lexer.NOT) {
		pos := p.here()
		p.advance()
		x := p.parseNot()
		u := &ast.Unary{Op: "!", X: x}
		u.Pos = pos
		return u
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parseBitOr()
	for {
		pos := p.here()
		switch {
		case p.at(lexer.EQ):
			p.advance()
			left = p.binary(pos, "==", left, p.parseBitOr())
		case p.at(lexer.NEQ):
			p.advance()
			left = p.binary(pos, "!=", left, p.parseBitOr())
		case p.at(lexer.LT):
			p.advance()
			left = p.binary(pos, "<", left, p.parseBitOr())
		case p.at(lexer.LTE):
			p.advance()
			left = p.binary(pos, "<=", left, p.parseBitOr())
		case p.at(lexer.GT):
			p.advance()
			left = p.binary(pos, ">", left, p.parseBitOr())
		case p.at(lexer.GTE):
			p.advance()
			left = p.binary(pos, ">=", left, p.parseBitOr())
		case p.at(lexer.IN):
			p.advance()
			left = p.binary(pos, "in", left, p.parseBitOr())
		case p.at(lexer.NOT) && p.peekN(1).Type == lexer.IN:
			p.advance()
			p.advance()
			left = p.binary(pos, "not in", left, p.parseBitOr())
		default:
			return left
		}
	}
}

func (p *Parser) parseBitOr() ast.Expr {
	left := p.parseBitXor()
	for p.at(lexer.PIPE) {
		pos := p.here()
		p.advance()
		left = p.binary(pos, "|", left, p.parseBitXor())
	}
	return left
}

func (p *Parser) parseBitXor() ast.Expr {
	left := p.parseBitAnd()
	for p.at(lexer.CARET) {
		pos := p.here()
		p.advance()
		left = p.binary(pos, "^", left, p.parseBitAnd())
	}
	return left
}

func (p *Parser) parseBitAnd() ast.Expr {
	left := p.parseShift()
	for p.at(lexer.AMP) {
		pos := p.here()
		p.advance()
		left = p.binary(pos, "&", left, p.parseShift())
	}
	return left
}

func (p *Parser) parseShift() ast.Expr {
	left := p.parseAdditive()
	for p.at(lexer.SHL) || p.at(lexer.SHR) {
		pos := p.here()
		op := "<<"
		if p.at(lexer.SHR) {
			op = ">>"
		}
		p.advance()
		left = p.binary(pos, op, left, p.parseAdditive())
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.at(lexer.PLUS) || p.at(lexer.MINUS) {
		pos := p.here()
		op := "+"
		if p.at(lexer.MINUS) {
			op = "-"
		}
		p.advance()
		left = p.binary(pos, op, left, p.parseMultiplicative())
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for p.at(lexer.STAR) || p.at(lexer.SLASH) || p.at(lexer.DSLASH) || p.at(lexer.PERCENT) {
		pos := p.here()
		var op string
		switch p.cur().Type {
		case lexer.STAR:
			op = "*"
		case lexer.SLASH:
			op = "/"
		case lexer.DSLASH:
			op = "//"
		case lexer.PERCENT:
			op = "%"
		}
		p.advance()
		left = p.binary(pos, op, left, p.parseUnary())
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	pos := p.here()
	switch {
	case p.at(lexer.MINUS):
		p.advance()
		u := &ast.Unary{Op: "-", X: p.parseUnary()}
		u.Pos = pos
		return u
	case p.at(lexer.PLUS):
		p.advance()
		u := &ast.Unary{Op: "+", X: p.parseUnary()}
		u.Pos = pos
		return u
	case p.at(lexer.TILDE):
		p.advance()
		u := &ast.Unary{Op: "~", X: p.parseUnary()}
		u.Pos = pos
		return u
	case p.at(lexer.BANG):
		p.advance()
		u := &ast.Unary{Op: "!", X: p.parseUnary()}
		u.Pos = pos
		return u
	default:
		return p.parsePostfix()
	}
}

func (p *Parser) parsePostfix() ast.Expr {
	x := p.parsePrimary()
	for {
		pos := p.here()
		switch {
		case p.at(lexer.DOT):
			p.advance()
			name, ok := p.expect(lexer.IDENT)
			if !ok {
				return x
			}
			if p.at(lexer.LPAREN) {
				p.advance()
				args := p.parseArgs(lexer.RPAREN)
				p.expect(lexer.RPAREN)
				mc := &ast.MethodCall{Receiver: x, Method: name.Literal, Args: args}
				mc.Pos = pos
				x = mc
			} else {
				f := &ast.Field{Receiver: x, Name: name.Literal}
				f.Pos = pos
				x = f
			}
		case p.at(lexer.LBRACKET):
			p.advance()
			x = p.parseSubscriptOrSlice(pos, x)
		case p.at(lexer.LPAREN):
			p.advance()
			args := p.parseArgs(lexer.RPAREN)
			p.expect(lexer.RPAREN)
			if name, ok := x.(*ast.Name); ok && p.recordNames[name.Value] {
				rc := &ast.RecordCtor{Name: name.Value, Args: args}
				rc.Pos = pos
				x = rc
			} else {
				c := &ast.Call{Callee: x, Args: args}
				c.Pos = pos
				x = c
			}
		default:
			return x
		}
	}
}

func (p *Parser) parseSubscriptOrSlice(pos ast.Pos, recv ast.Expr) ast.Expr {
	var low ast.Expr
	if !p.at(lexer.COLON) {
		low = p.parseExpr()
	}
	if p.at(lexer.COLON) {
		p.advance()
		var high ast.Expr
		if !p.at(lexer.RBRACKET) {
			high = p.parseExpr()
		}
		p.expect(lexer.RBRACKET)
		s := &ast.Slice{Container: recv, Low: low, High: high}
		s.Pos = pos
		return s
	}
	p.expect(lexer.RBRACKET)
	sub := &ast.Subscript{Container: recv, Index: low}
	sub.Pos = pos
	return sub
}

func (p *Parser) parsePrimary() ast.Expr {
	pos := p.here()
	switch {
	case p.at(lexer.INT):
		tok := p.advance()
		lit := &ast.LitInt{Value: atoiOrZero(tok.Literal)}
		lit.Pos = pos
		return lit
	case p.at(lexer.FLOAT):
		tok := p.advance()
		v, _ := strconv.ParseFloat(tok.Literal, 64)
		lit := &ast.LitFloat{Value: v}
		lit.Pos = pos
		return lit
	case p.at(lexer.STRING):
		tok := p.advance()
		lit := &ast.LitStr{Value: tok.Literal}
		lit.Pos = pos
		return lit
	case p.at(lexer.TRUE):
		p.advance()
		lit := &ast.LitBool{Value: true}
		lit.Pos = pos
		return lit
	case p.at(lexer.FALSE):
		p.advance()
		lit := &ast.LitBool{Value: false}
		lit.Pos = pos
		return lit
	case p.at(lexer.NONE):
		p.advance()
		lit := &ast.LitNone{}
		lit.Pos = pos
		return lit
	case p.at(lexer.LEN), p.at(lexer.RANGE):
		tok := p.advance()
		p.expect(lexer.LPAREN)
		args := p.parseArgs(lexer.RPAREN)
		p.expect(lexer.RPAREN)
		c := &ast.Call{Callee: p.nameAt(pos, tok.Literal), Args: args}
		c.Pos = pos
		return c
	case p.at(lexer.IDENT):
		tok := p.advance()
		n := &ast.Name{Value: tok.Literal}
		n.Pos = pos
		return n
	case p.at(lexer.LPAREN):
		p.advance()
		x := p.parseExpr()
		p.expect(lexer.RPAREN)
		return x
	case p.at(lexer.LBRACKET):
		return p.parseListLit(pos)
	case p.at(lexer.LBRACE):
		return p.parseBraceLit(pos)
	default:
		p.bag.Add(diag.New(diag.ParUnexpectedToken, pos.Line,
			"unexpected token "+p.cur().Type.String()+" in expression"))
		p.advance()
		lit := &ast.LitNone{}
		lit.Pos = pos
		return lit
	}
}

func (p *Parser) nameAt(pos ast.Pos, s string) ast.Expr {
	n := &ast.Name{Value: s}
	n.Pos = pos
	return n
}

// parseArgs parses a comma-separated expression list up to (but not
// consuming) end.
func (p *Parser) parseArgs(end lexer.TokenType) []ast.Expr {
	var args []ast.Expr
	if p.at(end) {
		return args
	}
	args = append(args, p.parseExpr())
	for p.at(lexer.COMMA) {
		p.advance()
		if p.at(end) {
			break
		}
		args = append(args, p.parseExpr())
	}
	return args
}

// parseListLit parses `[...]`: either a list literal or a list
// comprehension (spec.md §4.1, §4.3's single-generator comprehensions).
func (p *Parser) parseListLit(pos ast.Pos) ast.Expr {
	p.advance() // [
	if p.at(lexer.RBRACKET) {
		p.advance()
		lit := &ast.ContainerLit{Kind: "list"}
		lit.Pos = pos
		return lit
	}
	first := p.parseExpr()
	if p.at(lexer.FOR) {
		c := p.parseComprehensionTail(pos, "list", nil, first)
		p.expect(lexer.RBRACKET)
		return c
	}
	lit := &ast.ContainerLit{Kind: "list", Elems: []ast.Expr{first}}
	for p.at(lexer.COMMA) {
		p.advance()
		if p.at(lexer.RBRACKET) {
			break
		}
		lit.Elems = append(lit.Elems, p.parseExpr())
	}
	lit.Pos = pos
	p.expect(lexer.RBRACKET)
	return lit
}

// parseBraceLit parses `{...}`: a set literal, a dict literal, or a set
// or dict comprehension, disambiguated by the presence of `:` after the
// first element.
func (p *Parser) parseBraceLit(pos ast.Pos) ast.Expr {
	p.advance() // {
	if p.at(lexer.RBRACE) {
		p.advance()
		lit := &ast.ContainerLit{Kind: "dict", IsDict: true}
		lit.Pos = pos
		return lit
	}
	first := p.parseExpr()
	if p.at(lexer.COLON) {
		p.advance()
		firstVal := p.parseExpr()
		if p.at(lexer.FOR) {
			c := p.parseComprehensionTail(pos, "dict", first, firstVal)
			p.expect(lexer.RBRACE)
			return c
		}
		lit := &ast.ContainerLit{Kind: "dict", IsDict: true, Keys: []ast.Expr{first}, Elems: []ast.Expr{firstVal}}
		for p.at(lexer.COMMA) {
			p.advance()
			if p.at(lexer.RBRACE) {
				break
			}
			k := p.parseExpr()
			p.expect(lexer.COLON)
			v := p.parseExpr()
			lit.Keys = append(lit.Keys, k)
			lit.Elems = append(lit.Elems, v)
		}
		lit.Pos = pos
		p.expect(lexer.RBRACE)
		return lit
	}
	if p.at(lexer.FOR) {
		c := p.parseComprehensionTail(pos, "set", nil, first)
		p.expect(lexer.RBRACE)
		return c
	}
	lit := &ast.ContainerLit{Kind: "set", Elems: []ast.Expr{first}}
	for p.at(lexer.COMMA) {
		p.advance()
		if p.at(lexer.RBRACE) {
			break
		}
		lit.Elems = append(lit.Elems, p.parseExpr())
	}
	lit.Pos = pos
	p.expect(lexer.RBRACE)
	return lit
}

// parseComprehensionTail parses `for var in iterable (if cond)?` after
// the element (and, for dict, key) expressions have already been read.
func (p *Parser) parseComprehensionTail(pos ast.Pos, kind string, key, elem ast.Expr) ast.Expr {
	p.advance() // for
	name, _ := p.expect(lexer.IDENT)
	p.expect(lexer.IN)
	iter := p.parseExpr()
	var filter ast.Expr
	if p.at(lexer.IF) {
		p.advance()
		filter = p.parseExpr()
	}
	c := &ast.Comprehension{Kind: kind, Elem: elem, Key: key, Var: name.Literal, Iterable: iter, Filter: filter}
	c.Pos = pos
	return c
}

func (p *Parser) binary(pos ast.Pos, op string, left, right ast.Expr) ast.Expr {
	b := &ast.Binary{Op: op, Left: left, Right: right}
	b.Pos = pos
	return b
}
