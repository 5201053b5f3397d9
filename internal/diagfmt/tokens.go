package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"tinyjava/internal/source"
	"tinyjava/internal/token"
)

type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Line  int         `json:"line"`
	Value *int64      `json:"value,omitempty"`
	Span  source.Span `json:"span"`
}

// FormatTokensPretty prints one token per line with its position.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		line := fmt.Sprintf("%3d: %-10s", i+1, tok.Kind.String())
		if tok.Text != "" {
			line += fmt.Sprintf(" %q", tok.Text)
		}
		line += fmt.Sprintf(" at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON prints the token stream as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Line: tok.Line,
			Span: tok.Span,
		}
		if tok.Kind == token.Number {
			v := tok.Value
			out.Value = &v
		}
		output = append(output, out)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
