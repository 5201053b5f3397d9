package ast

// Names of the primitive types.
const (
	IntName     = "int"
	BooleanName = "boolean"
)

// Type is a type reference. Equality is by name only.
type Type struct {
	Pos
	Name string
}

func (t *Type) String() string {
	if t == nil {
		return "<none>"
	}
	return t.Name
}

func IntType(pos Pos) *Type     { return &Type{Pos: pos, Name: IntName} }
func BooleanType(pos Pos) *Type { return &Type{Pos: pos, Name: BooleanName} }

// TypesEqual compares two types by name. Both must be non-nil: a nil here
// means a pass produced no type where one is required, which is a bug in
// the compiler and not a user error.
func TypesEqual(a, b *Type) bool {
	if a == nil || b == nil {
		panic("ast: TypesEqual called with a missing type")
	}
	return a.Name == b.Name
}
