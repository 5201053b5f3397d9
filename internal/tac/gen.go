package tac

import (
	"fmt"
	"strconv"
	"strings"

	"tinyjava/internal/ast"
)

// Gen holds the lowering state. Temporaries are numbered per statement and
// recycled after every assignment or declaration; labels are never reused.
type Gen struct {
	regs    int
	maxRegs int
	labels  int
	out     []Instr
}

// Generate lowers a type-checked program. It does not validate its input.
func Generate(prog *ast.Program) *Program {
	g := &Gen{}
	if prog != nil {
		g.stmtList(prog.Body)
	}
	return &Program{Instrs: g.out, Temps: g.maxRegs, Labels: g.labels}
}

func (g *Gen) emit(in Instr) {
	g.out = append(g.out, in)
}

func (g *Gen) newTemp() Operand {
	g.regs++
	g.maxRegs = max(g.maxRegs, g.regs)
	return Operand{Kind: OperandTemp, Text: "_t" + strconv.Itoa(g.regs)}
}

func (g *Gen) newLabel() string {
	g.labels++
	return "_L" + strconv.Itoa(g.labels)
}

func (g *Gen) resetTemps() { g.regs = 0 }

// IsGeneratedName reports whether a source name would be printed the same
// as a name the generator invents: the return register, a temporary or a
// label.
func IsGeneratedName(name string) bool {
	if name == "ret" {
		return true
	}
	for _, prefix := range []string{"_t", "_L"} {
		digits, ok := strings.CutPrefix(name, prefix)
		if !ok || digits == "" {
			continue
		}
		if strings.Trim(digits, "0123456789") == "" {
			return true
		}
	}
	return false
}

func (g *Gen) stmtList(list *ast.StmtList) {
	if list == nil {
		return
	}
	for _, s := range list.Stmts {
		g.stmt(s)
	}
}

func (g *Gen) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.DeclStmt:
		if s.Init == nil {
			return
		}
		g.copyTo(s.Name, s.Init)
	case *ast.AssignStmt:
		g.copyTo(s.Name, s.Expr)
	case *ast.IfStmt:
		g.ifStmt(s)
	case *ast.MethodDecl:
		g.method(s)
	default:
		panic(fmt.Sprintf("tac: unexpected statement %T", s))
	}
}

func (g *Gen) copyTo(name string, e ast.Expr) {
	src := g.expr(e)
	g.emit(Instr{Op: OpCopy, Dst: Operand{Kind: OperandVar, Text: name}, Left: src})
	g.resetTemps()
}

// ifStmt lowers to
//
//	if !(cond) goto Lfalse
//	<then>
//	goto Lend
//	Lfalse:
//	<else>
//	Lend:
//
// The false label is allocated before the end label.
func (g *Gen) ifStmt(s *ast.IfStmt) {
	cond := g.expr(s.Cond)
	lfalse := g.newLabel()
	lend := g.newLabel()

	g.emit(Instr{Op: OpIfNotGoto, Left: cond, Label: lfalse})
	g.stmtList(s.Then)
	g.emit(Instr{Op: OpGoto, Label: lend})
	g.emit(Instr{Op: OpLabel, Label: lfalse})
	g.stmtList(s.Else)
	g.emit(Instr{Op: OpLabel, Label: lend})
}

// method places the body inline behind a jump so straight-line execution
// skips it; the entry label is the method name.
func (g *Gen) method(m *ast.MethodDecl) {
	skip := g.newLabel()
	g.emit(Instr{Op: OpGoto, Label: skip})
	g.emit(Instr{Op: OpLabel, Label: m.Name})
	g.emit(Instr{Op: OpBeginFunc, Name: m.Name})
	g.stmtList(m.Body)
	ret := g.expr(m.Ret.Expr)
	g.emit(Instr{Op: OpReturn, Dst: Operand{Kind: OperandRet}, Left: ret})
	g.emit(Instr{Op: OpEndFunc, Name: m.Name})
	g.emit(Instr{Op: OpLabel, Label: skip})
}

func (g *Gen) expr(e ast.Expr) Operand {
	switch e := e.(type) {
	case *ast.Constant:
		switch e.Kind {
		case ast.ConstInt:
			return Operand{Kind: OperandInt, Text: e.Literal()}
		case ast.ConstBool:
			return Operand{Kind: OperandBool, Text: e.Literal()}
		}
		return Operand{Kind: OperandVar, Text: e.Name}
	case *ast.BinOp:
		left := g.expr(e.Left)
		right := g.expr(e.Right)
		dst := g.newTemp()
		g.emit(Instr{Op: OpBinary, Dst: dst, Left: left, Right: right, BinOp: e.Op})
		return dst
	case *ast.FuncCall:
		for _, a := range e.Args {
			g.emit(Instr{Op: OpPushParam, Left: g.expr(a)})
		}
		g.emit(Instr{Op: OpCall, Name: e.Name})
		g.emit(Instr{Op: OpPopParams, Count: len(e.Args)})
		dst := g.newTemp()
		g.emit(Instr{Op: OpCopy, Dst: dst, Left: Operand{Kind: OperandRet}})
		return dst
	}
	panic(fmt.Sprintf("tac: unexpected expression %T", e))
}
