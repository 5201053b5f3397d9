package symbols

import (
	"errors"
	"fmt"

	"tinyjava/internal/ast"
)

// ErrPopGlobal is returned when a caller tries to pop the global scope.
var ErrPopGlobal = errors.New("symbols: cannot pop the global scope")

// ErrorKind classifies a failed declaration or lookup.
type ErrorKind uint8

const (
	ErrRedeclaredVar ErrorKind = iota + 1
	ErrUndefinedVar
	ErrRedeclaredMethod
	ErrUndefinedMethod
)

func (k ErrorKind) String() string {
	switch k {
	case ErrRedeclaredVar:
		return "redeclared variable"
	case ErrUndefinedVar:
		return "undefined variable"
	case ErrRedeclaredMethod:
		return "redeclared method"
	case ErrUndefinedMethod:
		return "undefined method"
	}
	return "unknown"
}

// Error is a name resolution failure at Pos.
type Error struct {
	Kind ErrorKind
	Name string
	Pos  ast.Pos
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrRedeclaredVar:
		return fmt.Sprintf("Redeclaring variable named %q", e.Name)
	case ErrUndefinedVar:
		return fmt.Sprintf("Referencing undefined variable %q", e.Name)
	case ErrRedeclaredMethod:
		return fmt.Sprintf("Redeclaring method named %q", e.Name)
	case ErrUndefinedMethod:
		return fmt.Sprintf("Referencing undefined method %q", e.Name)
	}
	return fmt.Sprintf("symbol error for %q", e.Name)
}
