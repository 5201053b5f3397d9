// Package fuzztests houses Go fuzz harnesses for the tinyjava pipeline
// (source -> lexer -> parser -> checker -> IR) and the formatter. They look
// for panics, hangs and broken span or round-trip properties on arbitrary
// input.
package fuzztests
