// Package token defines the lexical token kinds of tinyjava.
// Invariants:
//   - Token.Text is the exact source text covered by Token.Span.
//   - Keywords are recognised only by exact, case-sensitive match; "Int"
//     and "If" are identifiers.
//   - Newlines and blanks never produce tokens; their effect is visible
//     only through Token.Line.
package token
