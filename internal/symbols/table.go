package symbols

import (
	"slices"
	"strings"

	"tinyjava/internal/ast"
)

// Table is a stack of variable scopes plus one flat table of methods.
// The global scope sits at the bottom and is created by NewTable.
type Table struct {
	stack   []*Scope
	methods map[string]*ast.MethodDecl
}

func NewTable() *Table {
	return &Table{
		stack:   []*Scope{newScope(ScopeGlobal, 0)},
		methods: make(map[string]*ast.MethodDecl),
	}
}

// Push opens a new innermost scope.
func (t *Table) Push(kind ScopeKind) *Scope {
	s := newScope(kind, len(t.stack))
	t.stack = append(t.stack, s)
	return s
}

// Pop discards the innermost scope and everything declared in it.
func (t *Table) Pop() error {
	if len(t.stack) == 1 {
		return ErrPopGlobal
	}
	t.stack[len(t.stack)-1] = nil
	t.stack = t.stack[:len(t.stack)-1]
	return nil
}

// Depth is the number of scopes on the stack, 1 when only the global
// scope is open.
func (t *Table) Depth() int { return len(t.stack) }

// Current returns the innermost scope.
func (t *Table) Current() *Scope { return t.stack[len(t.stack)-1] }

// Global returns the bottom scope.
func (t *Table) Global() *Scope { return t.stack[0] }

// Declare adds name to the innermost scope. Shadowing a name from an outer
// scope is allowed; declaring it twice in the same scope is not.
func (t *Table) Declare(name string, typ *ast.Type, pos ast.Pos) error {
	cur := t.Current()
	if _, exists := cur.byName[name]; exists {
		return &Error{Kind: ErrRedeclaredVar, Name: name, Pos: pos}
	}
	sym := &Symbol{Name: name, Type: typ, Pos: pos}
	cur.byName[name] = sym
	cur.ordered = append(cur.ordered, sym)
	return nil
}

// Lookup resolves name from the innermost scope outwards.
func (t *Table) Lookup(name string, pos ast.Pos) (*ast.Type, error) {
	sym, err := t.LookupSymbol(name, pos)
	if err != nil {
		return nil, err
	}
	return sym.Type, nil
}

func (t *Table) LookupSymbol(name string, pos ast.Pos) (*Symbol, error) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if sym, ok := t.stack[i].byName[name]; ok {
			return sym, nil
		}
	}
	return nil, &Error{Kind: ErrUndefinedVar, Name: name, Pos: pos}
}

// DeclareMethod registers m in the global method table.
func (t *Table) DeclareMethod(m *ast.MethodDecl, pos ast.Pos) error {
	if _, exists := t.methods[m.Name]; exists {
		return &Error{Kind: ErrRedeclaredMethod, Name: m.Name, Pos: pos}
	}
	t.methods[m.Name] = m
	return nil
}

func (t *Table) LookupMethod(name string, pos ast.Pos) (*ast.MethodDecl, error) {
	m, ok := t.methods[name]
	if !ok {
		return nil, &Error{Kind: ErrUndefinedMethod, Name: name, Pos: pos}
	}
	return m, nil
}

// Methods returns the registered methods sorted by name.
func (t *Table) Methods() []*ast.MethodDecl {
	out := make([]*ast.MethodDecl, 0, len(t.methods))
	for _, m := range t.methods {
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b *ast.MethodDecl) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Globals returns the names declared in the global scope, sorted.
func (t *Table) Globals() []string {
	names := make([]string, 0, t.Global().Len())
	for name := range t.Global().byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Scopes returns the open scopes, outermost first.
func (t *Table) Scopes() []*Scope {
	return slices.Clone(t.stack)
}
