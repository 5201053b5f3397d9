package parser

import (
	"fmt"

	"tinyjava/internal/ast"
	"tinyjava/internal/diag"
	"tinyjava/internal/lexer"
	"tinyjava/internal/source"
	"tinyjava/internal/token"
	"tinyjava/internal/trace"
)

type Options struct {
	Reporter diag.Reporter
	// Tracer gets one node-level span per method declaration. Nil is fine.
	Tracer trace.Tracer
}

// Error is the syntax error that stopped the parse. The parser never
// resynchronises, so there is at most one per file.
type Error struct {
	Code  diag.Code
	Span  source.Span
	Line  int
	Found token.Token
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error on line %d: %s", e.Line, e.Msg)
}

// Parser holds the state for one file.
type Parser struct {
	toks     []token.Token
	pos      int
	file     source.FileID
	opts     Options
	lastSpan source.Span // span of the last consumed token
	fail     *Error
}

// ParseFile lexes and parses file. Lexical diagnostics go to the same
// reporter and do not stop the parse.
func ParseFile(file *source.File, opts Options) (*ast.Program, error) {
	toks := lexer.Tokenize(file, lexer.Options{Reporter: opts.Reporter})
	return ParseTokens(toks, file.ID, opts)
}

// ParseTokens parses an already lexed stream. A missing trailing EOF is
// synthesised.
func ParseTokens(toks []token.Token, file source.FileID, opts Options) (*ast.Program, error) {
	if n := len(toks); n == 0 || toks[n-1].Kind != token.EOF {
		eof := token.Token{Kind: token.EOF, Span: source.Span{File: file}, Line: 1}
		if n > 0 {
			last := toks[n-1]
			eof.Span = source.Span{File: last.Span.File, Start: last.Span.End, End: last.Span.End}
			eof.Line = last.Line
		}
		toks = append(toks[:n:n], eof)
	}

	p := &Parser{
		toks:     toks,
		file:     file,
		opts:     opts,
		lastSpan: source.Span{File: file},
	}
	prog, ok := p.parseProgram()
	if !ok {
		return nil, p.fail
	}
	return prog, nil
}

func (p *Parser) parseProgram() (*ast.Program, bool) {
	first := p.peek()
	body := &ast.StmtList{Pos: ast.Pos{Line: first.Line, Span: first.Span}}
	for !p.at(token.EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			return nil, false
		}
		body.Stmts = append(body.Stmts, stmt)
	}
	body.Span = body.Span.Cover(p.lastSpan)
	return &ast.Program{Pos: ast.Pos{Line: 1, Span: body.Span}, Body: body}, true
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

// peekN looks n tokens past the current one, clamping at EOF.
func (p *Parser) peekN(n int) token.Token {
	return p.toks[min(p.pos+n, len(p.toks)-1)]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
		p.lastSpan = tok.Span
	}
	return tok
}

// expect consumes a token of kind k or fails with code.
func (p *Parser) expect(k token.Kind, code diag.Code, context string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, p.errorf(code, "expected %s %s, found %s", k.Describe(), context, describe(p.peek()))
}

// posFrom builds a position starting at start and ending at the last
// consumed token.
func (p *Parser) posFrom(start token.Token) ast.Pos {
	return ast.Pos{Line: start.Line, Span: start.Span.Cover(p.lastSpan)}
}

// diagSpan points at the current token, or just past the last consumed
// token when the input has run out.
func (p *Parser) diagSpan() source.Span {
	tok := p.peek()
	if tok.Kind == token.EOF && tok.Span.Empty() && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return tok.Span
}

// errorf records the first syntax error and reports it. It always returns
// false so callers can write "return nil, p.errorf(...)".
func (p *Parser) errorf(code diag.Code, format string, args ...any) bool {
	if p.fail != nil {
		return false
	}
	tok := p.peek()
	p.fail = &Error{
		Code:  code,
		Span:  p.diagSpan(),
		Line:  tok.Line,
		Found: tok,
		Msg:   fmt.Sprintf(format, args...),
	}
	if p.opts.Reporter != nil {
		diag.ReportError(p.opts.Reporter, code, p.fail.Span, p.fail.Msg).Emit()
	}
	return false
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.Ident:
		return fmt.Sprintf("identifier %q", tok.Text)
	case token.Number:
		return "number " + tok.Text
	default:
		return tok.Kind.Describe()
	}
}
