package fuzztests

import (
	"testing"

	"tinyjava/internal/diag"
	"tinyjava/internal/lexer"
	"tinyjava/internal/source"
	"tinyjava/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.tj", input))

		bag := diag.NewBag(64)
		toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("token stream does not end in EOF: %v", toks)
		}
		prevEnd, prevLine := uint32(0), 1
		for i, tok := range toks {
			if tok.Kind == token.Invalid {
				t.Fatalf("token %d is Invalid", i)
			}
			if tok.Span.Start < prevEnd || tok.Span.End < tok.Span.Start {
				t.Fatalf("token %d span %v overlaps or is inverted (prev end %d)", i, tok.Span, prevEnd)
			}
			if int(tok.Span.End) > len(file.Content) {
				t.Fatalf("token %d span %v past end of input (%d bytes)", i, tok.Span, len(file.Content))
			}
			if tok.Line < prevLine {
				t.Fatalf("token %d line %d before previous line %d", i, tok.Line, prevLine)
			}
			prevEnd, prevLine = tok.Span.End, tok.Line
		}
	})
}
