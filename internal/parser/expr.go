package parser

import (
	"tinyjava/internal/ast"
	"tinyjava/internal/diag"
	"tinyjava/internal/token"
)

// Binary operator precedence; higher binds tighter. All operators are
// left-associative.
const (
	precNone           = 0
	precEquality       = 1 // == !=
	precAdditive       = 2 // + -
	precMultiplicative = 3 // * /
)

func binaryOp(k token.Kind) (ast.Op, int) {
	switch k {
	case token.EqEq:
		return ast.OpEq, precEquality
	case token.BangEq:
		return ast.OpNe, precEquality
	case token.Plus:
		return ast.OpAdd, precAdditive
	case token.Minus:
		return ast.OpSub, precAdditive
	case token.Star:
		return ast.OpMul, precMultiplicative
	case token.Slash:
		return ast.OpDiv, precMultiplicative
	}
	return 0, precNone
}

func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseBinary(precEquality)
}

// parseBinary is a precedence-climbing loop. The right operand is parsed
// one level tighter than the operator, which makes a-b-c group as (a-b)-c.
func (p *Parser) parseBinary(minPrec int) (ast.Expr, bool) {
	left, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for {
		opTok := p.peek()
		op, prec := binaryOp(opTok.Kind)
		if prec == precNone || prec < minPrec {
			return left, true
		}
		p.advance()
		right, ok := p.parseBinary(prec + 1)
		if !ok {
			return nil, false
		}
		left = &ast.BinOp{
			Pos: ast.Pos{
				Line: opTok.Line,
				Span: left.Position().Span.Cover(right.Position().Span),
			},
			Op:    op,
			Left:  left,
			Right: right,
		}
	}
}

// parsePrimary: NUMBER | 'true' | 'false' | ID | ID '(' args? ')' | '(' expr ')'
func (p *Parser) parsePrimary() (ast.Expr, bool) {
	tok := p.peek()
	pos := ast.Pos{Line: tok.Line, Span: tok.Span}
	switch tok.Kind {
	case token.Number:
		p.advance()
		return &ast.Constant{Pos: pos, Kind: ast.ConstInt, Int: tok.Value}, true
	case token.KwTrue, token.KwFalse:
		p.advance()
		return &ast.Constant{Pos: pos, Kind: ast.ConstBool, Bool: tok.Kind == token.KwTrue}, true
	case token.Ident:
		p.advance()
		if p.at(token.LParen) {
			return p.parseCall(tok)
		}
		return &ast.Constant{Pos: pos, Kind: ast.ConstID, Name: tok.Text}, true
	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "to close the parenthesised expression"); !ok {
			return nil, false
		}
		return inner, true
	}
	return nil, p.errorf(diag.SynExpectExpression, "expected an expression, found %s", describe(tok))
}

// parseCall parses the argument list after the callee name.
func (p *Parser) parseCall(name token.Token) (ast.Expr, bool) {
	p.advance() // '('
	call := &ast.FuncCall{Name: name.Text}
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			call.Args = append(call.Args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "to close the argument list of "+name.Text); !ok {
		return nil, false
	}
	call.Pos = p.posFrom(name)
	return call, true
}
