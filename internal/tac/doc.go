// Package tac lowers a checked AST to linear three-address code.
//
// Output is a flat instruction list with symbolic labels. Control flow is
// expressed with "if !(c) goto L" and "goto L"; methods are emitted inline
// behind a jump that skips over them.
package tac
