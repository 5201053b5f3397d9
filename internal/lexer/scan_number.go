package lexer

import (
	"errors"
	"strconv"

	"tinyjava/internal/diag"
	"tinyjava/internal/token"
)

// scanNumber reads a run of decimal digits. A literal too large for int64
// is reported but still returned, with Value 0, so parsing can proceed.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		msg := "invalid integer literal " + text
		if errors.Is(err, strconv.ErrRange) {
			msg = "integer literal " + text + " does not fit in 64 bits"
		}
		lx.report(diag.LexBadNumber, sp, msg)
		value = 0
	}
	return token.Token{Kind: token.Number, Span: sp, Text: text, Value: value}
}
