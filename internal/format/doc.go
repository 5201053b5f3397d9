// Package format prints a parsed tinyjava program back as canonical source.
//
// The printer works from the AST alone: layout, spacing and redundant
// parentheses in the input are not preserved. Formatting the output again
// yields the same bytes.
package format
