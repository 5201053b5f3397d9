package format

import (
	"errors"
	"fmt"
	"strings"

	"tinyjava/internal/ast"
	"tinyjava/internal/diag"
	"tinyjava/internal/parser"
	"tinyjava/internal/source"
)

type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	return o
}

// ErrInvalidSource is returned by Source when the input does not scan or
// parse cleanly.
var ErrInvalidSource = errors.New("format: source has errors")

type printer struct {
	w *Writer
}

// Program renders prog as source text ending in a newline. An empty
// program renders as nothing.
func Program(prog *ast.Program, opt Options) []byte {
	if prog == nil || prog.Body == nil {
		return nil
	}
	p := printer{w: NewWriter(opt)}
	p.printTopLevel(prog.Body)
	return p.w.Bytes()
}

// Source parses src and formats it. Any lexical or syntax error makes it
// fail with an error wrapping ErrInvalidSource.
func Source(name string, src []byte, opt Options) ([]byte, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, src))
	bag := diag.NewBag(1)
	prog, err := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}
	if first, ok := bag.First(); ok && bag.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSource, first.Message)
	}
	return Program(prog, opt), nil
}

// printTopLevel separates method declarations from their neighbours with a
// blank line.
func (p *printer) printTopLevel(list *ast.StmtList) {
	for i, stmt := range list.Stmts {
		_, isMethod := stmt.(*ast.MethodDecl)
		if isMethod && i > 0 {
			p.w.BlankLine()
		}
		p.printStmt(stmt)
		if isMethod && i < len(list.Stmts)-1 {
			p.w.BlankLine()
		}
	}
}

func (p *printer) printStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.DeclStmt:
		p.w.WriteString(s.Type.Name + " " + s.Name)
		if s.Init != nil {
			p.w.WriteString(" = ")
			p.printExpr(s.Init, precLowest)
		}
		p.w.WriteString(";")
		p.w.Newline()
	case *ast.AssignStmt:
		p.w.WriteString(s.Name + " = ")
		p.printExpr(s.Expr, precLowest)
		p.w.WriteString(";")
		p.w.Newline()
	case *ast.IfStmt:
		p.printIf(s)
		p.w.Newline()
	case *ast.MethodDecl:
		p.printMethod(s)
	}
}

// printIf writes an if statement without the trailing newline. The then
// branch is always braced so a following else cannot attach to a nested if.
func (p *printer) printIf(s *ast.IfStmt) {
	p.w.WriteString("if (")
	p.printExpr(s.Cond, precLowest)
	p.w.WriteString(") ")
	p.printBlock(s.Then)
	if s.Else == nil {
		return
	}
	p.w.WriteString(" else ")
	if inner, ok := elseIf(s.Else); ok {
		p.printIf(inner)
		return
	}
	p.printBlock(s.Else)
}

// elseIf reports whether the else branch was written as "else if". The
// parser gives such a branch the position of the nested if itself.
func elseIf(list *ast.StmtList) (*ast.IfStmt, bool) {
	if len(list.Stmts) != 1 {
		return nil, false
	}
	inner, ok := list.Stmts[0].(*ast.IfStmt)
	if !ok || inner.Pos != list.Pos {
		return nil, false
	}
	return inner, true
}

func (p *printer) printBlock(list *ast.StmtList) {
	if list == nil || len(list.Stmts) == 0 {
		p.w.WriteString("{}")
		return
	}
	p.w.WriteString("{")
	p.w.Newline()
	p.w.IndentPush()
	for _, stmt := range list.Stmts {
		p.printStmt(stmt)
	}
	p.w.IndentPop()
	p.w.WriteString("}")
}

func (p *printer) printMethod(m *ast.MethodDecl) {
	params := make([]string, len(m.Params))
	for i, f := range m.Params {
		params[i] = f.Type.Name + " " + f.Name
	}
	p.w.WriteString(fmt.Sprintf("public %s %s(%s) {", m.Return.Name, m.Name, strings.Join(params, ", ")))
	p.w.Newline()
	p.w.IndentPush()
	if m.Body != nil {
		for _, stmt := range m.Body.Stmts {
			p.printStmt(stmt)
		}
	}
	if m.Ret != nil {
		p.w.WriteString("return ")
		p.printExpr(m.Ret.Expr, precLowest)
		p.w.WriteString(";")
		p.w.Newline()
	}
	p.w.IndentPop()
	p.w.WriteString("}")
	p.w.Newline()
}
