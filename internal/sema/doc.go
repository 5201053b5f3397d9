// Package sema type-checks a parsed program against a scope-stack symbol
// table. Every expression gets a type; every statement is validated. The
// pass stops at the first error.
package sema
