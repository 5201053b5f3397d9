package ast

import "fmt"

// Walk visits n and its descendants in source order. If fn returns false
// the children of that node are skipped. Absent optional children (an
// initializer, an else branch) are not visited.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Program:
		Walk(n.Body, fn)
	case *StmtList:
		for _, s := range n.Stmts {
			Walk(s, fn)
		}
	case *DeclStmt:
		Walk(n.Type, fn)
		if n.Init != nil {
			Walk(n.Init, fn)
		}
	case *AssignStmt:
		Walk(n.Expr, fn)
	case *IfStmt:
		Walk(n.Cond, fn)
		Walk(n.Then, fn)
		if n.Else != nil {
			Walk(n.Else, fn)
		}
	case *MethodDecl:
		Walk(n.Return, fn)
		for _, p := range n.Params {
			Walk(p, fn)
		}
		Walk(n.Body, fn)
		Walk(n.Ret, fn)
	case *Formal:
		Walk(n.Type, fn)
	case *RetStmt:
		Walk(n.Expr, fn)
	case *BinOp:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *FuncCall:
		for _, a := range n.Args {
			Walk(a, fn)
		}
	case *Constant, *Type:
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", n))
	}
}

// Kind returns the variant name of n, e.g. "IfStmt".
func Kind(n Node) string {
	switch n.(type) {
	case *Program:
		return "Program"
	case *StmtList:
		return "StmtList"
	case *DeclStmt:
		return "DeclStmt"
	case *AssignStmt:
		return "AssignStmt"
	case *IfStmt:
		return "IfStmt"
	case *MethodDecl:
		return "MethodDecl"
	case *Formal:
		return "Formal"
	case *RetStmt:
		return "RetStmt"
	case *BinOp:
		return "BinOp"
	case *Constant:
		return "Constant"
	case *FuncCall:
		return "FuncCall"
	case *Type:
		return "Type"
	}
	return fmt.Sprintf("%T", n)
}
