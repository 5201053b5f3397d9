package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"tinyjava/internal/ast"
	"tinyjava/internal/source"
)

// CheckSpanInvariants verifies a parsed program against its source file:
// 1) every node span points at sf and lies within its content
// 2) every node has a line number of at least 1
func CheckSpanInvariants(prog *ast.Program, sf *source.File) error {
	if prog == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var failure error
	ast.Walk(prog, func(n ast.Node) bool {
		if failure != nil {
			return false
		}
		pos := n.Position()
		what := ast.Kind(n)
		switch {
		case pos.Span.File != sf.ID:
			failure = fmt.Errorf("%s: span points to file %d, want %d", what, pos.Span.File, sf.ID)
		case pos.Span.End < pos.Span.Start:
			failure = fmt.Errorf("%s: inverted span %v", what, pos.Span)
		case pos.Span.End > size:
			failure = fmt.Errorf("%s: span end beyond content: %d > %d", what, pos.Span.End, size)
		case pos.Line < 1:
			failure = fmt.Errorf("%s: missing line number", what)
		}
		return failure == nil
	})
	return failure
}
