// Package parser implements the Parser+Validator component of spec.md
// §4.1: it consumes a token stream and produces either a surface
// ast.Module, or an ordered list of diagnostics naming the offending
// source location and the rule violated. Grounded on the teacher's
// internal/parser package, which splits grammar concerns across
// parser.go / parser_decl.go / parser_expr.go / parser_type.go /
// parser_error.go — the same file layout is used here.
package parser

import (
	"strconv"

	"github.com/sunholo/cgen/internal/ast"
	"github.com/sunholo/cgen/internal/diag"
	"github.com/sunholo/cgen/internal/lexer"
)

// allowedImports is the bounded allow-list of spec.md §6, held here as
// a closed set so the parser can reject at parse time without an
// import-time dependency on internal/config. internal/config carries
// the same list as YAML, but the parser does not read it, and the
// emitter keeps its own import-to-header table.
var allowedImports = map[string]bool{
	"math":        true,
	"dataclasses": true,
	"typing":      true,
}

// Parser consumes a flat token slice (as produced by lexer.Tokenize)
// and builds a surface ast.Module, collecting diagnostics rather than
// stopping at the first error (spec.md §4.1).
type Parser struct {
	toks []lexer.Token
	pos  int
	file string
	bag  diag.Bag

	funcNames   map[string]bool
	recordNames map[string]bool
	recordDecls map[string]*ast.RecordDecl
}

// New creates a Parser over src, already normalized by lexer.Normalize.
func New(src []byte, filename string) *Parser {
	l := lexer.New(string(src), filename)
	toks := l.Tokenize()
	p := &Parser{
		toks:        toks,
		file:        filename,
		funcNames:   map[string]bool{},
		recordNames: map[string]bool{},
		recordDecls: map[string]*ast.RecordDecl{},
	}
	for _, err := range l.Errors() {
		// lexical errors surface as PAR001
		if le, ok := err.(lexer.Error); ok {
			p.bag.Add(diag.New(diag.ParUnexpectedToken, le.Line, le.Message))
		}
	}
	return p
}

// Parse runs the parser and returns the surface module plus the
// collected diagnostic bag. A non-empty bag means the module is not
// "supported" per spec.md §4.1's contract.
func (p *Parser) Parse() (*ast.Module, *diag.Bag) {
	mod := &ast.Module{Pos: p.here()}
	p.skipNewlines()
	for !p.at(lexer.EOF) {
		switch {
		case p.at(lexer.IMPORT):
			if imp := p.parseImport(); imp != nil {
				mod.Imports = append(mod.Imports, imp)
			}
		case p.at(lexer.MUTABLE), p.at(lexer.IMMUTABLE):
			if rec := p.parseRecordDecl(); rec != nil {
				mod.Records = append(mod.Records, rec)
				p.recordDecls[rec.Name] = rec
			}
		case p.at(lexer.DEF):
			if fn := p.parseFuncDecl(); fn != nil {
				mod.Funcs = append(mod.Funcs, fn)
			}
		default:
			p.bag.Add(diag.New(diag.ParUnexpectedToken, p.cur().Line,
				"expected an import, record declaration, or function definition at module level, got "+p.cur().Type.String()))
			p.syncToNextTopLevel()
		}
		p.skipNewlines()
	}
	p.checkMissingReturns(mod)
	return mod, &p.bag
}

// --- token stream helpers ---

func (p *Parser) cur() lexer.Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return lexer.Token{Type: lexer.EOF}
}

func (p *Parser) peekN(n int) lexer.Token {
	if p.pos+n < len(p.toks) {
		return p.toks[p.pos+n]
	}
	return lexer.Token{Type: lexer.EOF}
}

func (p *Parser) here() ast.Pos {
	c := p.cur()
	return ast.Pos{File: p.file, Line: c.Line, Column: c.Column}
}

func (p *Parser) at(t lexer.TokenType) bool { return p.cur().Type == t }

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

// expect consumes the current token if it matches t, else records a
// diagnostic and returns the zero Token without advancing.
func (p *Parser) expect(t lexer.TokenType) (lexer.Token, bool) {
	if p.at(t) {
		return p.advance(), true
	}
	p.bag.Add(diag.New(diag.ParUnexpectedToken, p.cur().Line,
		"expected "+t.String()+", got "+p.cur().Type.String()))
	return lexer.Token{}, false
}

func (p *Parser) skipNewlines() {
	for p.at(lexer.NEWLINE) {
		p.advance()
	}
}

// syncToNextTopLevel recovers from an unexpected token by skipping the
// rest of the current line (up to the next NEWLINE or EOF), so later
// diagnostics in the module can still be collected.
func (p *Parser) syncToNextTopLevel() {
	for !p.at(lexer.EOF) && !p.at(lexer.NEWLINE) {
		p.advance()
	}
}

// parseBlock consumes `: NEWLINE INDENT` and returns the statement
// list up to (and consuming) the matching DEDENT.
func (p *Parser) parseBlock() []ast.Stmt {
	p.expect(lexer.COLON)
	p.expect(lexer.NEWLINE)
	if _, ok := p.expect(lexer.INDENT); !ok {
		return nil
	}
	var stmts []ast.Stmt
	for !p.at(lexer.DEDENT) && !p.at(lexer.EOF) {
		if s := p.parseStmt(); s != nil {
			stmts = append(stmts, s)
		}
		p.skipNewlines()
	}
	p.expect(lexer.DEDENT)
	return stmts
}

func (p *Parser) parseImport() *ast.Import {
	pos := p.here()
	p.advance() // import
	name, ok := p.expect(lexer.IDENT)
	if !ok {
		p.syncToNextTopLevel()
		return nil
	}
	if !allowedImports[name.Literal] {
		p.bag.Add(diag.New(diag.ParBadImport, pos.Line,
			"import of '"+name.Literal+"' is not on the allow-list (math, dataclasses, typing)"))
	}
	p.expect(lexer.NEWLINE)
	return &ast.Import{Pos: pos, Name: name.Literal}
}

func atoiOrZero(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
