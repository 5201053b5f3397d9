package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tinyjava/internal/diag"
	"tinyjava/internal/source"
)

type palette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders diagnostics for a terminal:
//
//	<path>:<line>:<col>: <severity> <CODE>: <message>
//	  12 | source line
//	     |     ^~~~
//
// followed by notes when enabled. Items are printed in bag order, so sort
// the bag first if order matters.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, pal)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "... %d more diagnostic(s) not shown\n", n)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	f := fs.Get(d.Primary.File)
	if f == nil {
		fmt.Fprintf(w, "%s %s: %s\n", pal.severity(d.Severity).Sprint(d.Severity.Label()), pal.code.Sprint(d.Code.ID()), d.Message)
		return
	}
	start, end := fs.Resolve(d.Primary)
	path := f.FormatPath(opts.PathMode.String(), fs.BaseDir())
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, start.Line, start.Col,
		pal.severity(d.Severity).Sprint(d.Severity.Label()),
		pal.code.Sprint(d.Code.ID()),
		d.Message,
	)

	gutterWidth := len(fmt.Sprint(start.Line))
	first := start.Line
	if opts.Context > 0 {
		first = uint32(max(1, int(start.Line)-opts.Context))
	}
	for ln := first; ln <= start.Line; ln++ {
		text := expandTabs(f.GetLine(ln))
		if opts.Width > 0 {
			text = runewidth.Truncate(text, opts.Width, "…")
		}
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), text)
	}

	line := f.GetLine(start.Line)
	lead, mark := caretGeometry(line, start, end)
	fmt.Fprintf(w, "%s %s%s\n",
		pal.gutter.Sprintf("%*s |", gutterWidth, ""),
		strings.Repeat(" ", lead),
		pal.caret.Sprint("^"+strings.Repeat("~", mark-1)),
	)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		loc := ""
		if nf := fs.Get(n.Span.File); nf != nil {
			ns, _ := fs.Resolve(n.Span)
			loc = fmt.Sprintf("%s:%d:%d: ", nf.FormatPath(opts.PathMode.String(), fs.BaseDir()), ns.Line, ns.Col)
		}
		fmt.Fprintf(w, "  %s %s%s\n", pal.note.Sprint("note:"), loc, n.Msg)
	}
}

// caretGeometry returns the display column where the underline starts and
// how many cells it spans. Spans running past the end of the line are cut
// at the line end; empty spans still get one caret.
func caretGeometry(line string, start, end source.LineCol) (lead, width int) {
	col := min(int(start.Col)-1, len(line))
	col = max(col, 0)
	lead = runewidth.StringWidth(expandTabs(line[:col]))

	stop := len(line)
	if end.Line == start.Line {
		stop = min(int(end.Col)-1, len(line))
	}
	if stop > col {
		width = runewidth.StringWidth(expandTabs(line[col:stop]))
	}
	return lead, max(width, 1)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
