package lexer

import (
	"tinyjava/internal/token"
)

// scanIdentOrKeyword reads [A-Za-z_][A-Za-z0-9_]* and reclassifies exact
// keyword matches.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	kind := token.Ident
	if kw, ok := token.LookupKeyword(text); ok {
		kind = kw
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
