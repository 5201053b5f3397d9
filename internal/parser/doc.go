// Package parser builds an ast.Program from a token stream.
//
// It is a hand-written recursive descent parser with a precedence-climbing
// loop for binary operators. The first syntax error ends the parse: it is
// reported through Options.Reporter and returned as *Error.
package parser
