package lexer

import (
	"fmt"
	"unicode/utf8"

	"tinyjava/internal/diag"
	"tinyjava/internal/token"
)

var singleByteOps = [...]struct {
	b    byte
	kind token.Kind
}{
	{'+', token.Plus},
	{'-', token.Minus},
	{'*', token.Star},
	{'/', token.Slash},
	{',', token.Comma},
	{';', token.Semicolon},
	{'=', token.Assign},
	{'(', token.LParen},
	{')', token.RParen},
	{'{', token.LBrace},
	{'}', token.RBrace},
}

// scanOperatorOrPunct matches two-byte operators before single bytes.
// Anything unknown is reported and consumed, and an Invalid token tells
// Next to keep scanning.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	}

	for _, op := range singleByteOps {
		if lx.cursor.Eat(op.b) {
			return emit(op.kind)
		}
	}

	// a whole rune is skipped so that multi-byte input is reported once
	r, size := utf8.DecodeRune(lx.cursor.Rest())
	lx.cursor.Advance(size)
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexIllegalChar, sp, fmt.Sprintf("Illegal character '%c'", r))
	return token.Token{Kind: token.Invalid, Span: sp}
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
