package format

// Writer accumulates formatted output and tracks indentation.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
}

// NewWriter creates a new formatting writer.
func NewWriter(opt Options) *Writer {
	return &Writer{
		opt:         opt.withDefaults(),
		atLineStart: true,
	}
}

// Bytes returns the accumulated formatted output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	if w.opt.UseTabs {
		for range w.indentLevel {
			w.buf = append(w.buf, '\t')
		}
	} else {
		for range w.indentLevel * w.opt.IndentWidth {
			w.buf = append(w.buf, ' ')
		}
	}
	w.atLineStart = false
}

// WriteString writes s, indenting first if at the start of a line. s must
// not contain newlines; use Newline for those.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
}

// Newline ends the current line.
func (w *Writer) Newline() {
	w.buf = append(w.buf, '\n')
	w.atLineStart = true
}

// BlankLine emits an empty line unless the output is empty or already ends
// with one.
func (w *Writer) BlankLine() {
	n := len(w.buf)
	if n == 0 || (n >= 2 && w.buf[n-1] == '\n' && w.buf[n-2] == '\n') {
		return
	}
	if !w.atLineStart {
		w.Newline()
	}
	w.Newline()
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation level.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
