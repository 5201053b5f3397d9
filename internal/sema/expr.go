package sema

import (
	"fmt"

	"tinyjava/internal/ast"
)

// expr computes the type of e and records it in the result.
func (c *checker) expr(e ast.Expr) (*ast.Type, error) {
	var (
		t   *ast.Type
		err error
	)
	switch e := e.(type) {
	case *ast.Constant:
		t, err = c.constant(e)
	case *ast.BinOp:
		t, err = c.binOp(e)
	case *ast.FuncCall:
		t, err = c.call(e)
	default:
		panic(fmt.Sprintf("sema: unexpected expression %T", e))
	}
	if err != nil {
		return nil, err
	}
	c.types[e] = t
	return t, nil
}

func (c *checker) constant(k *ast.Constant) (*ast.Type, error) {
	switch k.Kind {
	case ast.ConstInt:
		return ast.IntType(k.Pos), nil
	case ast.ConstBool:
		return ast.BooleanType(k.Pos), nil
	}
	t, err := c.table.Lookup(k.Name, k.Pos)
	return t, fromSymbols(err)
}

// binOp only requires both sides to agree. Arithmetic on booleans and
// equality on ints are both accepted.
func (c *checker) binOp(b *ast.BinOp) (*ast.Type, error) {
	left, err := c.expr(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := c.expr(b.Right)
	if err != nil {
		return nil, err
	}
	if !ast.TypesEqual(left, right) {
		return nil, newError(KindOperandMismatch, b.Pos,
			"Left and right expressions are of different type: %s and %s", left, right)
	}
	if b.Op.IsArithmetic() {
		return ast.IntType(b.Pos), nil
	}
	return ast.BooleanType(b.Pos), nil
}

func (c *checker) call(f *ast.FuncCall) (*ast.Type, error) {
	m, err := c.table.LookupMethod(f.Name, f.Pos)
	if err != nil {
		return nil, fromSymbols(err)
	}
	if len(f.Args) != len(m.Params) {
		return nil, newError(KindArity, f.Pos,
			"Argument length mismatch with method %q: expected %d, got %d", f.Name, len(m.Params), len(f.Args))
	}
	for i, arg := range f.Args {
		got, err := c.expr(arg)
		if err != nil {
			return nil, err
		}
		param := m.Params[i]
		if !ast.TypesEqual(got, param.Type) {
			return nil, newError(KindArgumentType, arg.Position(),
				"Argument type mismatch with method %q parameter %q: expected %s, got %s", f.Name, param.Name, param.Type, got)
		}
	}
	return m.Return, nil
}
