package symbols

import (
	"tinyjava/internal/ast"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid ScopeKind = iota
	ScopeGlobal            // bottom of the stack, never popped
	ScopeMethod            // parameters and body of one method
	ScopeBranch            // one branch of an if statement
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeMethod:
		return "method"
	case ScopeBranch:
		return "branch"
	default:
		return "invalid"
	}
}

// Symbol is one declared variable.
type Symbol struct {
	Name string
	Type *ast.Type
	Pos  ast.Pos
}

// Scope maps variable names to their symbols. Order keeps declaration
// order for dumps.
type Scope struct {
	Kind    ScopeKind
	Depth   int
	byName  map[string]*Symbol
	ordered []*Symbol
}

func newScope(kind ScopeKind, depth int) *Scope {
	return &Scope{Kind: kind, Depth: depth, byName: make(map[string]*Symbol)}
}

// Get returns the symbol declared directly in this scope.
func (s *Scope) Get(name string) (*Symbol, bool) {
	sym, ok := s.byName[name]
	return sym, ok
}

// Symbols returns the scope's symbols in declaration order.
func (s *Scope) Symbols() []*Symbol {
	return append([]*Symbol(nil), s.ordered...)
}

func (s *Scope) Len() int { return len(s.ordered) }
