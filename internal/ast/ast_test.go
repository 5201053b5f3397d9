package ast

import (
	"strings"
	"testing"
)

func sampleProgram() *Program {
	x := &Constant{Kind: ConstID, Name: "x"}
	one := &Constant{Kind: ConstInt, Int: 1}
	return &Program{Body: &StmtList{Stmts: []Stmt{
		&DeclStmt{Name: "x", Type: &Type{Name: IntName}},
		&IfStmt{
			Cond: &BinOp{Op: OpEq, Left: x, Right: one},
			Then: &StmtList{Stmts: []Stmt{&AssignStmt{Name: "x", Expr: &FuncCall{Name: "f", Args: []Expr{one}}}}},
		},
	}}}
}

func TestWalkOrder(t *testing.T) {
	var kinds []string
	Walk(sampleProgram(), func(n Node) bool {
		kinds = append(kinds, Kind(n))
		return true
	})
	want := "Program StmtList DeclStmt Type IfStmt BinOp Constant Constant StmtList AssignStmt FuncCall Constant"
	if got := strings.Join(kinds, " "); got != want {
		t.Errorf("walk order:\n got %s\nwant %s", got, want)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	count := 0
	Walk(sampleProgram(), func(n Node) bool {
		count++
		_, isIf := n.(*IfStmt)
		return !isIf
	})
	if count != 5 {
		t.Errorf("expected 5 visits with if children skipped, got %d", count)
	}
}

func TestTypesEqual(t *testing.T) {
	if !TypesEqual(IntType(Pos{}), &Type{Name: "int", Pos: Pos{Line: 9}}) {
		t.Errorf("types with the same name must be equal")
	}
	if TypesEqual(IntType(Pos{}), BooleanType(Pos{})) {
		t.Errorf("int and boolean must differ")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on nil type")
		}
	}()
	TypesEqual(nil, IntType(Pos{}))
}

func TestConstantLiteral(t *testing.T) {
	tests := []struct {
		c    Constant
		want string
	}{
		{Constant{Kind: ConstInt, Int: 42}, "42"},
		{Constant{Kind: ConstBool, Bool: true}, "true"},
		{Constant{Kind: ConstBool}, "false"},
		{Constant{Kind: ConstID, Name: "abc"}, "abc"},
	}
	for _, tt := range tests {
		if got := tt.c.Literal(); got != tt.want {
			t.Errorf("Literal() = %q, want %q", got, tt.want)
		}
	}
}

func TestOpClassification(t *testing.T) {
	for _, op := range []Op{OpAdd, OpSub, OpMul, OpDiv} {
		if !op.IsArithmetic() {
			t.Errorf("%s should be arithmetic", op)
		}
	}
	for _, op := range []Op{OpEq, OpNe} {
		if op.IsArithmetic() {
			t.Errorf("%s should not be arithmetic", op)
		}
	}
}
