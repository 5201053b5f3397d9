package tac

import "tinyjava/internal/ast"

// Opcode enumerates instruction kinds.
type Opcode uint8

const (
	OpCopy      Opcode = iota + 1 // Dst := Left
	OpBinary                      // Dst := Left BinOp Right
	OpPushParam                   // PushParam Left
	OpCall                        // FuncCall Name
	OpPopParams                   // PopParams Count
	OpIfNotGoto                   // if !(Left) goto Label
	OpGoto                        // goto Label
	OpLabel                       // Label:
	OpBeginFunc                   // BeginFunc
	OpEndFunc                     // EndFunc
	OpReturn                      // ret := Left
)

func (op Opcode) String() string {
	switch op {
	case OpCopy:
		return "copy"
	case OpBinary:
		return "binary"
	case OpPushParam:
		return "PushParam"
	case OpCall:
		return "FuncCall"
	case OpPopParams:
		return "PopParams"
	case OpIfNotGoto:
		return "ifnot"
	case OpGoto:
		return "goto"
	case OpLabel:
		return "label"
	case OpBeginFunc:
		return "BeginFunc"
	case OpEndFunc:
		return "EndFunc"
	case OpReturn:
		return "ret"
	}
	return "invalid"
}

// OperandKind tells where an operand's value lives.
type OperandKind uint8

const (
	OperandNone OperandKind = iota
	OperandTemp             // _tN
	OperandVar              // a source variable
	OperandInt              // integer literal
	OperandBool             // true or false
	OperandRet              // the return register
)

// Operand is one argument of an instruction.
type Operand struct {
	Kind OperandKind
	Text string
}

func (o Operand) String() string {
	if o.Kind == OperandRet {
		return "ret"
	}
	return o.Text
}

// Instr is a single three-address instruction. Which fields are used
// depends on Op.
type Instr struct {
	Op    Opcode
	Dst   Operand
	Left  Operand
	Right Operand
	BinOp ast.Op
	Label string
	Name  string
	Count int
}

// IsLabel reports whether the instruction marks a jump target.
func (in Instr) IsLabel() bool { return in.Op == OpLabel }

// Program is the ordered instruction list for one source file.
type Program struct {
	Instrs []Instr
	// Temps and Labels count what the generator allocated: the highest
	// temporary index used and the number of labels.
	Temps  int
	Labels int
}

func (p *Program) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Instrs)
}
