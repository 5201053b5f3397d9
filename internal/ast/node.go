// Package ast holds the syntax tree produced by the parser.
//
// The tree is a closed set of variants: Node, Stmt and Expr are sealed by
// unexported marker methods, so a type switch over them in sema or tac can
// list every case. Nodes are plain data and are not mutated after parsing.
package ast

import "tinyjava/internal/source"

// Pos locates a node in its source file.
type Pos struct {
	Line int
	Span source.Span
}

// Node is any syntax tree node.
type Node interface {
	Position() Pos
	node()
}

// Stmt is a statement that may appear in a StmtList.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a value-producing node.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of a parsed file.
type Program struct {
	Pos
	Body *StmtList
}

// StmtList is an ordered, possibly empty, sequence of statements.
type StmtList struct {
	Pos
	Stmts []Stmt
}

func (p Pos) Position() Pos { return p }

func (*Program) node()    {}
func (*StmtList) node()   {}
func (*DeclStmt) node()   {}
func (*AssignStmt) node() {}
func (*IfStmt) node()     {}
func (*MethodDecl) node() {}
func (*Formal) node()     {}
func (*RetStmt) node()    {}
func (*BinOp) node()      {}
func (*Constant) node()   {}
func (*FuncCall) node()   {}
func (*Type) node()       {}

func (*DeclStmt) stmtNode()   {}
func (*AssignStmt) stmtNode() {}
func (*IfStmt) stmtNode()     {}
func (*MethodDecl) stmtNode() {}

func (*BinOp) exprNode()    {}
func (*Constant) exprNode() {}
func (*FuncCall) exprNode() {}
