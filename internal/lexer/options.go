package lexer

import (
	"tinyjava/internal/diag"
	"tinyjava/internal/source"
)

type Options struct {
	// Reporter receives illegal-character diagnostics. It may be nil, in
	// which case they are dropped and lexing still continues.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
