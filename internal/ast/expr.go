package ast

import "strconv"

// Op is a binary operator.
type Op uint8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	}
	return "?"
}

// IsArithmetic reports whether op yields an int.
func (op Op) IsArithmetic() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// BinOp is "left op right".
type BinOp struct {
	Pos
	Op    Op
	Left  Expr
	Right Expr
}

// ConstKind tells which field of a Constant is meaningful.
type ConstKind uint8

const (
	ConstInt ConstKind = iota + 1
	ConstBool
	// ConstID is a variable reference; its type comes from scope lookup.
	ConstID
)

func (k ConstKind) String() string {
	switch k {
	case ConstInt:
		return "int"
	case ConstBool:
		return "boolean"
	case ConstID:
		return "id"
	}
	return "?"
}

// Constant is a literal or an identifier reference.
type Constant struct {
	Pos
	Kind ConstKind
	Int  int64
	Bool bool
	Name string
}

// Literal renders the constant the way it appears as an IR operand.
func (c *Constant) Literal() string {
	switch c.Kind {
	case ConstInt:
		return strconv.FormatInt(c.Int, 10)
	case ConstBool:
		return strconv.FormatBool(c.Bool)
	default:
		return c.Name
	}
}

// FuncCall is "name(args)".
type FuncCall struct {
	Pos
	Name string
	Args []Expr
}
