package parser

import (
	"strconv"

	"tinyjava/internal/ast"
	"tinyjava/internal/diag"
	"tinyjava/internal/token"
	"tinyjava/internal/trace"
)

// parseStmt picks a statement form from the first one or two tokens.
func (p *Parser) parseStmt() (ast.Stmt, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.KwInt, token.KwBoolean:
		return p.parseDecl()
	case token.Ident:
		switch p.peekN(1).Kind {
		case token.Assign:
			return p.parseAssign()
		case token.Ident:
			return p.parseDecl()
		}
		p.advance()
		return nil, p.errorf(diag.SynExpectAssign,
			"expected '=' or a variable name after %q, found %s", tok.Text, describe(p.peek()))
	case token.KwIf:
		return p.parseIf()
	case token.KwPublic:
		return p.parseMethod()
	case token.KwReturn:
		return nil, p.errorf(diag.SynUnexpectedTopLevel, "'return' is only allowed at the end of a method body")
	default:
		return nil, p.errorf(diag.SynUnexpectedTopLevel, "expected a statement, found %s", describe(tok))
	}
}

// parseDecl: type ID ( '=' expr )? ';'
func (p *Parser) parseDecl() (ast.Stmt, bool) {
	start := p.peek()
	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "after type "+typ.Name)
	if !ok {
		return nil, false
	}
	decl := &ast.DeclStmt{Name: name.Text, Type: typ}
	if p.at(token.Assign) {
		p.advance()
		if decl.Init, ok = p.parseExpr(); !ok {
			return nil, false
		}
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "after declaration"); !ok {
		return nil, false
	}
	decl.Pos = p.posFrom(start)
	return decl, true
}

// parseAssign: ID '=' expr ';'
func (p *Parser) parseAssign() (ast.Stmt, bool) {
	name := p.advance()
	p.advance() // '='
	expr, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "after assignment"); !ok {
		return nil, false
	}
	return &ast.AssignStmt{Pos: p.posFrom(name), Name: name.Text, Expr: expr}, true
}

// parseIf: 'if' '(' expr ')' branch ( 'else' branch )?
//
// The inner if of "if (a) if (b) {} else {}" takes the else because it is
// still parsing when the else arrives.
func (p *Parser) parseIf() (*ast.IfStmt, bool) {
	start := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "after 'if'"); !ok {
		return nil, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "to close the condition"); !ok {
		return nil, false
	}
	stmt := &ast.IfStmt{Cond: cond}
	if stmt.Then, ok = p.parseBranch(); !ok {
		return nil, false
	}
	if p.at(token.KwElse) {
		p.advance()
		if stmt.Else, ok = p.parseBranch(); !ok {
			return nil, false
		}
	}
	stmt.Pos = p.posFrom(start)
	return stmt, true
}

// parseBranch: '{' stmt* '}' | if_stmt
func (p *Parser) parseBranch() (*ast.StmtList, bool) {
	if p.at(token.KwIf) {
		inner, ok := p.parseIf()
		if !ok {
			return nil, false
		}
		return &ast.StmtList{Pos: inner.Pos, Stmts: []ast.Stmt{inner}}, true
	}
	return p.parseBlock(token.EOF)
}

// parseBlock parses '{' stmt* '}'. When stop is not EOF the statement list
// also ends in front of a stop token, which the caller consumes.
func (p *Parser) parseBlock(stop token.Kind) (*ast.StmtList, bool) {
	open, ok := p.expect(token.LBrace, diag.SynExpectBlock, "to open a block")
	if !ok {
		return nil, false
	}
	list := &ast.StmtList{}
	for !p.at(token.RBrace) && (stop == token.EOF || !p.at(stop)) {
		if p.at(token.EOF) {
			return nil, p.errorf(diag.SynUnclosedBrace, "expected '}' to close the block opened on line %d, found end of file", open.Line)
		}
		stmt, ok := p.parseStmt()
		if !ok {
			return nil, false
		}
		list.Stmts = append(list.Stmts, stmt)
	}
	if stop == token.EOF {
		p.advance()
	}
	list.Pos = p.posFrom(open)
	return list, true
}

// parseMethod: 'public' type ID '(' formals? ')' '{' stmt* ret_stmt '}'
func (p *Parser) parseMethod() (ast.Stmt, bool) {
	start := p.advance()
	ret, ok := p.parseType()
	if !ok {
		return nil, false
	}
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "as the method name")
	if !ok {
		return nil, false
	}
	span := trace.Begin(p.opts.Tracer, trace.ScopeNode, "method:"+name.Text, 0)
	defer span.End("")

	method := &ast.MethodDecl{Name: name.Text, Return: ret}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "after the method name"); !ok {
		return nil, false
	}
	if !p.at(token.RParen) {
		for {
			formal, ok := p.parseFormal()
			if !ok {
				return nil, false
			}
			method.Params = append(method.Params, formal)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "to close the parameter list"); !ok {
		return nil, false
	}

	if method.Body, ok = p.parseBlock(token.KwReturn); !ok {
		return nil, false
	}
	if !p.at(token.KwReturn) {
		return nil, p.errorf(diag.SynMissingReturn, "method %q must end with a return statement", name.Text)
	}
	if method.Ret, ok = p.parseReturn(); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "after the return statement"); !ok {
		return nil, false
	}
	method.Pos = p.posFrom(start)
	span.WithExtra("params", strconv.Itoa(len(method.Params)))
	return method, true
}

// parseFormal: type ID
func (p *Parser) parseFormal() (*ast.Formal, bool) {
	start := p.peek()
	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "as the parameter name")
	if !ok {
		return nil, false
	}
	return &ast.Formal{Pos: p.posFrom(start), Name: name.Text, Type: typ}, true
}

// parseReturn: 'return' expr ';'
func (p *Parser) parseReturn() (*ast.RetStmt, bool) {
	start := p.advance()
	expr, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "after return"); !ok {
		return nil, false
	}
	return &ast.RetStmt{Pos: p.posFrom(start), Expr: expr}, true
}

// parseType: 'int' | 'boolean' | ID
func (p *Parser) parseType() (*ast.Type, bool) {
	tok := p.peek()
	if !tok.IsTypeStart() {
		return nil, p.errorf(diag.SynExpectType, "expected a type, found %s", describe(tok))
	}
	p.advance()
	return &ast.Type{Pos: ast.Pos{Line: tok.Line, Span: tok.Span}, Name: tok.Text}, true
}
