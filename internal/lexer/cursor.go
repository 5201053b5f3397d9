package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"tinyjava/internal/source"
)

// Cursor is a byte position inside a file together with the current line.
type Cursor struct {
	File *source.File
	Off  uint32
	// Line is 1-based and advanced by Bump whenever it crosses '\n'.
	Line  int
	limit uint32
}

// NewCursor creates a cursor at the start of f.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Line: 1, limit: limit}
}

// EOF reports whether every byte was consumed.
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit
}

// Peek returns the current byte or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 returns the current and the next byte.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Bump consumes one byte and returns it.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	if b == '\n' {
		c.Line++
	}
	return b
}

// Advance consumes n bytes that are known not to contain '\n'.
func (c *Cursor) Advance(n int) {
	step, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("cursor advance overflow: %w", err))
	}
	c.Off = min(c.Off+step, c.limit)
}

// Mark is a saved offset used to build spans.
type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span between m and the current offset.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// Rest returns the unconsumed bytes.
func (c *Cursor) Rest() []byte {
	return c.File.Content[c.Off:c.limit]
}

// Eat consumes the next byte if it equals b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Bump()
		return true
	}
	return false
}
