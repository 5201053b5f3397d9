package sema

import (
	"errors"
	"fmt"

	"tinyjava/internal/ast"
	"tinyjava/internal/diag"
	"tinyjava/internal/symbols"
)

// Options configure a semantic pass over a program.
type Options struct {
	Reporter diag.Reporter
}

// Result stores what the checker learned. On failure it holds the state
// at the point the check stopped.
type Result struct {
	Table *symbols.Table
	Types map[ast.Expr]*ast.Type
}

// TypeOf returns the type computed for e, or nil if e was never reached.
func (r *Result) TypeOf(e ast.Expr) *ast.Type {
	if r == nil {
		return nil
	}
	return r.Types[e]
}

// Check type-checks prog. The first violation stops the pass: it is
// reported through opts.Reporter and returned as *Error.
func Check(prog *ast.Program, opts Options) (*Result, error) {
	c := checker{
		table: symbols.NewTable(),
		types: make(map[ast.Expr]*ast.Type),
	}
	res := &Result{Table: c.table, Types: c.types}
	if prog == nil || prog.Body == nil {
		return res, nil
	}

	err := c.stmtList(prog.Body)
	if c.table.Depth() != 1 {
		panic(fmt.Sprintf("sema: scope stack unbalanced, depth %d", c.table.Depth()))
	}
	if err != nil {
		var serr *Error
		if opts.Reporter != nil && errors.As(err, &serr) {
			diag.ReportError(opts.Reporter, serr.Kind.Code(), serr.Span, serr.Message).Emit()
		}
		return res, err
	}
	return res, nil
}

type checker struct {
	table *symbols.Table
	types map[ast.Expr]*ast.Type
}

// inScope runs fn inside a freshly pushed scope. The scope is popped on
// every path, including when fn fails.
func (c *checker) inScope(kind symbols.ScopeKind, fn func() error) error {
	c.table.Push(kind)
	defer func() {
		_ = c.table.Pop()
	}()
	return fn()
}

func (c *checker) stmtList(list *ast.StmtList) error {
	if list == nil {
		return nil
	}
	for _, s := range list.Stmts {
		if err := c.stmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (c *checker) stmt(s ast.Stmt) error {
	switch s := s.(type) {
	case *ast.DeclStmt:
		return c.declStmt(s)
	case *ast.AssignStmt:
		return c.assignStmt(s)
	case *ast.IfStmt:
		return c.ifStmt(s)
	case *ast.MethodDecl:
		return c.methodDecl(s)
	}
	panic(fmt.Sprintf("sema: unexpected statement %T", s))
}

// declStmt declares the name before looking at the initializer, so
// "int x = x;" refers to itself.
func (c *checker) declStmt(s *ast.DeclStmt) error {
	if err := fromSymbols(c.table.Declare(s.Name, s.Type, s.Pos)); err != nil {
		return err
	}
	if s.Init == nil {
		return nil
	}
	got, err := c.expr(s.Init)
	if err != nil {
		return err
	}
	if !ast.TypesEqual(got, s.Type) {
		return newError(KindDeclMismatch, s.Pos,
			"Mismatch of declaration type for %q: declared %s, got %s", s.Name, s.Type, got)
	}
	return nil
}

func (c *checker) assignStmt(s *ast.AssignStmt) error {
	want, err := c.table.Lookup(s.Name, s.Pos)
	if err != nil {
		return fromSymbols(err)
	}
	got, err := c.expr(s.Expr)
	if err != nil {
		return err
	}
	if !ast.TypesEqual(got, want) {
		return newError(KindAssignMismatch, s.Pos,
			"Variable %q has the type %s but is being assigned the type %s", s.Name, want, got)
	}
	return nil
}

func (c *checker) ifStmt(s *ast.IfStmt) error {
	cond, err := c.expr(s.Cond)
	if err != nil {
		return err
	}
	if cond.Name != ast.BooleanName {
		return newError(KindConditionType, s.Cond.Position(),
			"If statement requires boolean as its condition, got %s", cond)
	}
	if err := c.inScope(symbols.ScopeBranch, func() error { return c.stmtList(s.Then) }); err != nil {
		return err
	}
	if s.Else == nil {
		return nil
	}
	return c.inScope(symbols.ScopeBranch, func() error { return c.stmtList(s.Else) })
}

// methodDecl checks the body with the parameters in scope and registers
// the method only afterwards, so a method cannot call itself.
func (c *checker) methodDecl(m *ast.MethodDecl) error {
	err := c.inScope(symbols.ScopeMethod, func() error {
		for _, p := range m.Params {
			if err := fromSymbols(c.table.Declare(p.Name, p.Type, p.Pos)); err != nil {
				return err
			}
		}
		if err := c.stmtList(m.Body); err != nil {
			return err
		}
		got, err := c.expr(m.Ret.Expr)
		if err != nil {
			return err
		}
		if !ast.TypesEqual(got, m.Return) {
			return newError(KindReturnMismatch, m.Ret.Pos,
				"Mismatch of return type within method %q: declared %s, got %s", m.Name, m.Return, got)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return fromSymbols(c.table.DeclareMethod(m, m.Pos))
}
