package lexer

import (
	"tinyjava/internal/source"
	"tinyjava/internal/token"
)

// Lexer turns one file into a stream of tokens. It is restartable with
// Reset and yields EOF forever once the input is exhausted.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Tokenize lexes the whole file. The result always ends with one EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

// Next returns the next significant token. Illegal characters are
// reported and skipped here, so Invalid tokens never escape.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		lx.skipBlanks()
		if lx.cursor.EOF() {
			return token.Token{
				Kind: token.EOF,
				Span: lx.cursor.SpanFrom(lx.cursor.Mark()),
				Line: lx.cursor.Line,
			}
		}

		line := lx.cursor.Line
		ch := lx.cursor.Peek()
		var tok token.Token
		switch {
		case isIdentStartByte(ch):
			tok = lx.scanIdentOrKeyword()
		case isDec(ch):
			tok = lx.scanNumber()
		default:
			tok = lx.scanOperatorOrPunct()
		}
		if tok.Kind == token.Invalid {
			continue
		}
		tok.Line = line
		return tok
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Reset rewinds the lexer to the beginning of the file.
func (lx *Lexer) Reset() {
	lx.cursor = NewCursor(lx.file)
	lx.look = nil
}

// skipBlanks consumes spaces, tabs, carriage returns and newlines. Only
// newlines matter: the cursor counts them.
func (lx *Lexer) skipBlanks() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\n':
			lx.cursor.Bump()
		default:
			return
		}
	}
}
