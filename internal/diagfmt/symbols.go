package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"tinyjava/internal/symbols"
)

// FormatSymbols dumps the open scopes and the method table.
func FormatSymbols(w io.Writer, table *symbols.Table) error {
	if table == nil {
		return nil
	}
	var sb strings.Builder
	for _, sc := range table.Scopes() {
		fmt.Fprintf(&sb, "scope %s (depth %d)\n", sc.Kind, sc.Depth)
		for _, sym := range sc.Symbols() {
			fmt.Fprintf(&sb, "  %s: %s [line %d]\n", sym.Name, sym.Type, sym.Pos.Line)
		}
	}
	methods := table.Methods()
	fmt.Fprintf(&sb, "methods (%d)\n", len(methods))
	for _, m := range methods {
		params := make([]string, len(m.Params))
		for i, p := range m.Params {
			params[i] = p.Type.Name + " " + p.Name
		}
		fmt.Fprintf(&sb, "  %s(%s) %s [line %d]\n", m.Name, strings.Join(params, ", "), m.Return, m.Pos.Line)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
