package token

import (
	"tinyjava/internal/source"
)

// Token is one classified lexeme.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// Line is the 1-based line the token starts on.
	Line int
	// Value is the decoded literal for Number tokens.
	Value int64
}

// IsLiteral reports whether the token is a number or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwInt, KwBoolean, KwTrue, KwFalse, KwIf, KwElse, KwReturn, KwPublic:
		return true
	default:
		return false
	}
}

// IsTypeStart reports whether the token can begin a type: a primitive
// keyword or an identifier naming a user type.
func (t Token) IsTypeStart() bool {
	return t.Kind == KwInt || t.Kind == KwBoolean || t.Kind == Ident
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
