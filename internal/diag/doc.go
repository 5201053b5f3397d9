// Package diag defines the diagnostic model shared by every pipeline phase.
//
// # Purpose
//
//   - Provide deterministic data structures describing findings of the
//     lexer, parser and type checker.
//   - Offer light-weight utilities (Reporter, Bag) so that producers emit
//     diagnostics without knowing how they are stored or rendered.
//
// Package diag does no formatting or IO beyond the stable golden form in
// golden.go. Human and JSON rendering lives in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: compact numeric identifier with a stable string form such as
//     LEX1001 or SEM3005 (codes.go). Ranges: 1000 lexical, 2000 syntax,
//     3000 semantic, 4000 I/O.
//   - Message: short human text. Semantic messages keep the wording users
//     of the language already know ("Redeclaring variable named \"x\"").
//   - Primary: the source.Span the finding points at.
//   - Notes: optional secondary spans, e.g. where a method was declared.
//
// # Fatality
//
// Only lexical diagnostics are recoverable. The parser and the type checker
// report their first error and stop; the driver relies on Bag.HasErrors to
// decide whether the next stage may run.
package diag
