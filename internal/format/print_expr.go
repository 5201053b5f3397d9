package format

import "tinyjava/internal/ast"

const (
	precLowest = iota
	precEquality
	precAdditive
	precMultiplicative
)

func precOf(op ast.Op) int {
	switch op {
	case ast.OpEq, ast.OpNe:
		return precEquality
	case ast.OpAdd, ast.OpSub:
		return precAdditive
	default:
		return precMultiplicative
	}
}

// printExpr writes e, parenthesising it when it binds looser than minPrec.
// Operators are left-associative, so a right operand of equal precedence
// is printed with minPrec one level higher.
func (p *printer) printExpr(e ast.Expr, minPrec int) {
	switch x := e.(type) {
	case *ast.Constant:
		p.w.WriteString(x.Literal())
	case *ast.FuncCall:
		p.w.WriteString(x.Name + "(")
		for i, arg := range x.Args {
			if i > 0 {
				p.w.WriteString(", ")
			}
			p.printExpr(arg, precLowest)
		}
		p.w.WriteString(")")
	case *ast.BinOp:
		prec := precOf(x.Op)
		paren := prec < minPrec
		if paren {
			p.w.WriteString("(")
		}
		p.printExpr(x.Left, prec)
		p.w.WriteString(" " + x.Op.String() + " ")
		p.printExpr(x.Right, prec+1)
		if paren {
			p.w.WriteString(")")
		}
	}
}
