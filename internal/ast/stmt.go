package ast

// DeclStmt is "type name = init;" or, without initializer, "type name;".
type DeclStmt struct {
	Pos
	Name string
	Type *Type
	// Init is nil when the declaration has no initializer.
	Init Expr
}

// AssignStmt is "name = expr;".
type AssignStmt struct {
	Pos
	Name string
	Expr Expr
}

// IfStmt is a conditional. Else is nil when there is no else branch.
type IfStmt struct {
	Pos
	Cond Expr
	Then *StmtList
	Else *StmtList
}

// MethodDecl is "public ret name(params) { body return expr; }".
type MethodDecl struct {
	Pos
	Name   string
	Return *Type
	Params []*Formal
	Body   *StmtList
	Ret    *RetStmt
}

// Formal is one method parameter.
type Formal struct {
	Pos
	Name string
	Type *Type
}

// RetStmt is the mandatory trailing "return expr;" of a method.
type RetStmt struct {
	Pos
	Expr Expr
}
