package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo        Code = 1000
	LexIllegalChar Code = 1001
	LexBadNumber   Code = 1002

	// Syntax
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectType         Code = 2004
	SynExpectExpression   Code = 2005
	SynUnclosedParen      Code = 2006
	SynUnclosedBrace      Code = 2007
	SynExpectAssign       Code = 2008
	SynMissingReturn      Code = 2009
	SynExpectBlock        Code = 2010
	SynUnexpectedTopLevel Code = 2011

	// Semantic
	SemaInfo               Code = 3000
	SemaRedeclaredVariable Code = 3001
	SemaUndefinedVariable  Code = 3002
	SemaRedeclaredMethod   Code = 3003
	SemaUndefinedMethod    Code = 3004
	SemaDeclTypeMismatch   Code = 3005
	SemaAssignTypeMismatch Code = 3006
	SemaOperandMismatch    Code = 3007
	SemaConditionNotBool   Code = 3008
	SemaReturnMismatch     Code = 3009
	SemaArityMismatch      Code = 3010
	SemaArgumentMismatch   Code = 3011
	SemaGeneratedName      Code = 3012

	// I/O
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexInfo:        "Lexical information",
	LexIllegalChar: "Illegal character",
	LexBadNumber:   "Integer literal out of range",

	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynExpectSemicolon:    "Expected ';'",
	SynExpectIdentifier:   "Expected identifier",
	SynExpectType:         "Expected type",
	SynExpectExpression:   "Expected expression",
	SynUnclosedParen:      "Unclosed parenthesis",
	SynUnclosedBrace:      "Unclosed brace",
	SynExpectAssign:       "Expected '='",
	SynMissingReturn:      "Method body must end with a return statement",
	SynExpectBlock:        "Expected '{'",
	SynUnexpectedTopLevel: "Unexpected token at statement start",

	SemaInfo:               "Semantic information",
	SemaRedeclaredVariable: "Variable redeclared in the same scope",
	SemaUndefinedVariable:  "Undefined variable",
	SemaRedeclaredMethod:   "Method redeclared",
	SemaUndefinedMethod:    "Undefined method",
	SemaDeclTypeMismatch:   "Declaration type mismatch",
	SemaAssignTypeMismatch: "Assignment type mismatch",
	SemaOperandMismatch:    "Operand types differ",
	SemaConditionNotBool:   "Condition is not boolean",
	SemaReturnMismatch:     "Return type mismatch",
	SemaArityMismatch:      "Argument count mismatch",
	SemaArgumentMismatch:   "Argument type mismatch",
	SemaGeneratedName:      "Name collides with a generated IR name",

	IOLoadFileError: "Failed to load file",
	IOCacheError:    "Cache read/write failed",
}

// ID returns the stable identifier shown to users, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
