package sema

import (
	"errors"
	"fmt"

	"tinyjava/internal/ast"
	"tinyjava/internal/diag"
	"tinyjava/internal/source"
	"tinyjava/internal/symbols"
)

// ErrorKind classifies a semantic error.
type ErrorKind uint8

const (
	KindRedeclaredVariable ErrorKind = iota + 1
	KindUndefinedVariable
	KindRedeclaredMethod
	KindUndefinedMethod
	KindDeclMismatch
	KindAssignMismatch
	KindOperandMismatch
	KindConditionType
	KindReturnMismatch
	KindArity
	KindArgumentType
)

var kindCodes = [...]diag.Code{
	KindRedeclaredVariable: diag.SemaRedeclaredVariable,
	KindUndefinedVariable:  diag.SemaUndefinedVariable,
	KindRedeclaredMethod:   diag.SemaRedeclaredMethod,
	KindUndefinedMethod:    diag.SemaUndefinedMethod,
	KindDeclMismatch:       diag.SemaDeclTypeMismatch,
	KindAssignMismatch:     diag.SemaAssignTypeMismatch,
	KindOperandMismatch:    diag.SemaOperandMismatch,
	KindConditionType:      diag.SemaConditionNotBool,
	KindReturnMismatch:     diag.SemaReturnMismatch,
	KindArity:              diag.SemaArityMismatch,
	KindArgumentType:       diag.SemaArgumentMismatch,
}

// Code maps the kind to its diagnostic code.
func (k ErrorKind) Code() diag.Code {
	if int(k) < len(kindCodes) {
		return kindCodes[k]
	}
	return diag.SemaInfo
}

func (k ErrorKind) String() string {
	return k.Code().Title()
}

// Error is the semantic error that aborted the check.
type Error struct {
	Kind    ErrorKind
	Message string
	Line    int
	Span    source.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("semantic error on line %d: %s", e.Line, e.Message)
}

func newError(kind ErrorKind, pos ast.Pos, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Line:    pos.Line,
		Span:    pos.Span,
	}
}

// fromSymbols lifts a symbol table failure into an *Error.
func fromSymbols(err error) error {
	if err == nil {
		return nil
	}
	var serr *symbols.Error
	if !errors.As(err, &serr) {
		return err
	}
	var kind ErrorKind
	switch serr.Kind {
	case symbols.ErrRedeclaredVar:
		kind = KindRedeclaredVariable
	case symbols.ErrUndefinedVar:
		kind = KindUndefinedVariable
	case symbols.ErrRedeclaredMethod:
		kind = KindRedeclaredMethod
	case symbols.ErrUndefinedMethod:
		kind = KindUndefinedMethod
	}
	return &Error{Kind: kind, Message: serr.Error(), Line: serr.Pos.Line, Span: serr.Pos.Span}
}
