package parser_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"tinyjava/internal/ast"
	"tinyjava/internal/diag"
	"tinyjava/internal/parser"
	"tinyjava/internal/source"
)

func parse(t *testing.T, src string) (*ast.Program, *diag.Bag, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.tj", []byte(src))
	bag := diag.NewBag(0)
	prog, err := parser.ParseFile(fs.Get(id), parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	return prog, bag, err
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, bag, err := parse(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}
	return prog
}

// sexpr renders expressions as fully parenthesised prefix forms.
func sexpr(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.BinOp:
		return fmt.Sprintf("(%s %s %s)", e.Op, sexpr(e.Left), sexpr(e.Right))
	case *ast.Constant:
		return e.Literal()
	case *ast.FuncCall:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = sexpr(a)
		}
		return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ", "))
	}
	return "?"
}

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(+ (* 1 2) 3)"},
		{"a - b - c", "(- (- a b) c)"},
		{"a / b / c", "(/ (/ a b) c)"},
		{"a == b != c", "(!= (== a b) c)"},
		{"a + b == c * d", "(== (+ a b) (* c d))"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"f(1, x + 1) * 2", "(* f(1, (+ x 1)) 2)"},
		{"g()", "g()"},
		{"true == false", "(== true false)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			prog := mustParse(t, "x = "+tt.src+";")
			assign, ok := prog.Body.Stmts[0].(*ast.AssignStmt)
			if !ok {
				t.Fatalf("expected AssignStmt, got %T", prog.Body.Stmts[0])
			}
			if got := sexpr(assign.Expr); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStatementForms(t *testing.T) {
	prog := mustParse(t, `int x = 1;
boolean b;
Point p;
x = x + 1;
`)
	stmts := prog.Body.Stmts
	if len(stmts) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(stmts))
	}

	d0 := stmts[0].(*ast.DeclStmt)
	if d0.Name != "x" || d0.Type.Name != "int" || d0.Init == nil {
		t.Errorf("bad first decl: %+v", d0)
	}
	d1 := stmts[1].(*ast.DeclStmt)
	if d1.Name != "b" || d1.Type.Name != "boolean" || d1.Init != nil {
		t.Errorf("bad second decl: %+v", d1)
	}
	d2 := stmts[2].(*ast.DeclStmt)
	if d2.Type.Name != "Point" || d2.Name != "p" {
		t.Errorf("user type decl parsed as %+v", d2)
	}
	if _, ok := stmts[3].(*ast.AssignStmt); !ok {
		t.Errorf("expected AssignStmt, got %T", stmts[3])
	}
	if stmts[3].Position().Line != 4 {
		t.Errorf("expected line 4, got %d", stmts[3].Position().Line)
	}
}

func TestEmptyProgram(t *testing.T) {
	for _, src := range []string{"", "   \n\t\n"} {
		prog := mustParse(t, src)
		if prog.Body == nil || len(prog.Body.Stmts) != 0 {
			t.Errorf("%q: expected empty statement list", src)
		}
	}
}

func TestIfElse(t *testing.T) {
	prog := mustParse(t, "if (a == b) { x = 1; } else { }")
	stmt := prog.Body.Stmts[0].(*ast.IfStmt)
	if sexpr(stmt.Cond) != "(== a b)" {
		t.Errorf("cond = %s", sexpr(stmt.Cond))
	}
	if len(stmt.Then.Stmts) != 1 {
		t.Errorf("then has %d statements", len(stmt.Then.Stmts))
	}
	if stmt.Else == nil || len(stmt.Else.Stmts) != 0 {
		t.Errorf("expected present but empty else branch")
	}

	prog = mustParse(t, "if (c) { }")
	if prog.Body.Stmts[0].(*ast.IfStmt).Else != nil {
		t.Errorf("expected absent else branch")
	}
}

func TestDanglingElseBindsInner(t *testing.T) {
	prog := mustParse(t, "if (a) if (b) { x = 1; } else { x = 2; }")
	outer := prog.Body.Stmts[0].(*ast.IfStmt)
	if outer.Else != nil {
		t.Fatalf("else attached to outer if")
	}
	if len(outer.Then.Stmts) != 1 {
		t.Fatalf("outer then should wrap exactly the inner if")
	}
	inner, ok := outer.Then.Stmts[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected nested IfStmt, got %T", outer.Then.Stmts[0])
	}
	if inner.Else == nil {
		t.Fatalf("else not attached to inner if")
	}
}

func TestElseIfChain(t *testing.T) {
	prog := mustParse(t, "if (a) { } else if (b) { } else { }")
	outer := prog.Body.Stmts[0].(*ast.IfStmt)
	if outer.Else == nil || len(outer.Else.Stmts) != 1 {
		t.Fatalf("expected else branch wrapping one if")
	}
	if inner := outer.Else.Stmts[0].(*ast.IfStmt); inner.Else == nil {
		t.Errorf("final else lost")
	}
}

func TestMethodDecl(t *testing.T) {
	prog := mustParse(t, `public int add(int a, int b) {
    int s = a + b;
    return s;
}
public boolean yes() { return true; }
`)
	m := prog.Body.Stmts[0].(*ast.MethodDecl)
	if m.Name != "add" || m.Return.Name != "int" {
		t.Errorf("bad header: %s %s", m.Return, m.Name)
	}
	if len(m.Params) != 2 || m.Params[0].Name != "a" || m.Params[1].Type.Name != "int" {
		t.Errorf("bad params: %+v", m.Params)
	}
	if len(m.Body.Stmts) != 1 {
		t.Errorf("body has %d statements", len(m.Body.Stmts))
	}
	if sexpr(m.Ret.Expr) != "s" {
		t.Errorf("ret = %s", sexpr(m.Ret.Expr))
	}

	y := prog.Body.Stmts[1].(*ast.MethodDecl)
	if len(y.Params) != 0 || len(y.Body.Stmts) != 0 {
		t.Errorf("expected empty params and body")
	}
	if y.Position().Line != 5 {
		t.Errorf("expected line 5, got %d", y.Position().Line)
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
		line int
	}{
		{"missing semicolon", "int x = 1\nint y = 2;", diag.SynExpectSemicolon, 2},
		{"missing return", "public int f() { int x = 1; }", diag.SynMissingReturn, 1},
		{"return at top level", "return 1;", diag.SynUnexpectedTopLevel, 1},
		{"return in branch", "public int f() { if (a) { return 1; } return 2; }", diag.SynUnexpectedTopLevel, 1},
		{"unclosed paren", "x = (1 + 2;", diag.SynUnclosedParen, 1},
		{"unclosed brace", "if (a) {\n x = 1;\n", diag.SynUnclosedBrace, 3},
		{"missing expression", "x = ;", diag.SynExpectExpression, 1},
		{"bare identifier", "x;", diag.SynExpectAssign, 1},
		{"branch without braces", "if (a) x = 1;", diag.SynExpectBlock, 1},
		{"bad param", "public int f(int) { return 1; }", diag.SynExpectIdentifier, 1},
		{"stray brace", "}", diag.SynUnexpectedTopLevel, 1},
		{"missing type", "public 1 f() { return 1; }", diag.SynExpectType, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, bag, err := parse(t, tt.src)
			if err == nil {
				t.Fatalf("expected syntax error")
			}
			if prog != nil {
				t.Errorf("expected nil program on error")
			}
			var perr *parser.Error
			if !errors.As(err, &perr) {
				t.Fatalf("expected *parser.Error, got %T", err)
			}
			if perr.Code != tt.code {
				t.Errorf("code = %s, want %s (%s)", perr.Code.ID(), tt.code.ID(), perr.Msg)
			}
			if perr.Line != tt.line {
				t.Errorf("line = %d, want %d", perr.Line, tt.line)
			}
			if bag.Len() != 1 {
				t.Errorf("expected exactly one diagnostic, got %d", bag.Len())
			}
		})
	}
}

func TestLexErrorsDoNotStopParsing(t *testing.T) {
	prog, bag, err := parse(t, "int x = 1 # ;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Body.Stmts) != 1 {
		t.Fatalf("expected one statement")
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexIllegalChar {
		t.Errorf("expected one illegal character diagnostic")
	}
}

func TestErrorMessageMentionsFoundToken(t *testing.T) {
	_, _, err := parse(t, "int x = 1 y;")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `identifier "y"`) {
		t.Errorf("message %q does not name the offending token", err.Error())
	}
}

func TestParseTokensWithoutEOF(t *testing.T) {
	prog, err := parser.ParseTokens(nil, 0, parser.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Body.Stmts) != 0 {
		t.Errorf("expected empty program")
	}
}
