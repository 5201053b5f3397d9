package token

var keywords = map[string]Kind{
	"int":     KwInt,
	"boolean": KwBoolean,
	"true":    KwTrue,
	"false":   KwFalse,
	"if":      KwIf,
	"else":    KwElse,
	"return":  KwReturn,
	"public":  KwPublic,
}

// LookupKeyword reports whether ident is a reserved word. Matching is
// case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
