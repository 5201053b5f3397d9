package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Number represents a decimal integer literal.
	Number
	// Ident represents an identifier token.
	Ident

	// KwInt represents the 'int' keyword.
	KwInt // int
	// KwBoolean represents the 'boolean' keyword.
	KwBoolean // boolean
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwPublic represents the 'public' keyword.
	KwPublic // public

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Comma represents the comma punctuation token.
	Comma // ,
	// EqEq represents the equality operator token.
	EqEq // ==
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Semicolon represents the statement terminator.
	Semicolon // ;
	// Assign represents the assignment operator token.
	Assign // =
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Number:    "Number",
	Ident:     "Ident",
	KwInt:     "KwInt",
	KwBoolean: "KwBoolean",
	KwTrue:    "KwTrue",
	KwFalse:   "KwFalse",
	KwIf:      "KwIf",
	KwElse:    "KwElse",
	KwReturn:  "KwReturn",
	KwPublic:  "KwPublic",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	Comma:     "Comma",
	EqEq:      "EqEq",
	BangEq:    "BangEq",
	Semicolon: "Semicolon",
	Assign:    "Assign",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
}

var kindSymbols = map[Kind]string{
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Comma:     ",",
	EqEq:      "==",
	BangEq:    "!=",
	Semicolon: ";",
	Assign:    "=",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Describe returns the text a user would type for k, used in
// "expected ..." messages.
func (k Kind) Describe() string {
	if s, ok := kindSymbols[k]; ok {
		return "'" + s + "'"
	}
	for text, kw := range keywords {
		if kw == k {
			return "'" + text + "'"
		}
	}
	switch k {
	case Number:
		return "number"
	case Ident:
		return "identifier"
	case EOF:
		return "end of file"
	}
	return k.String()
}
