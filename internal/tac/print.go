package tac

import (
	"fmt"
	"io"
	"strings"
)

// PrintOptions configures IR dumping.
type PrintOptions struct {
	// Indent prefixes every non-label line. Empty means four spaces.
	Indent string
	// Numbered prefixes each line with its instruction index.
	Numbered bool
}

const defaultIndent = "    "

// Format renders a single instruction without indentation.
func (in Instr) Format() string {
	switch in.Op {
	case OpCopy:
		return fmt.Sprintf("%s := %s", in.Dst, in.Left)
	case OpBinary:
		return fmt.Sprintf("%s := %s %s %s", in.Dst, in.Left, in.BinOp, in.Right)
	case OpPushParam:
		return "PushParam " + in.Left.String()
	case OpCall:
		return "FuncCall " + in.Name
	case OpPopParams:
		return fmt.Sprintf("PopParams %d", in.Count)
	case OpIfNotGoto:
		return fmt.Sprintf("if !(%s) goto %s", in.Left, in.Label)
	case OpGoto:
		return "goto " + in.Label
	case OpLabel:
		return in.Label + ":"
	case OpBeginFunc:
		return "BeginFunc"
	case OpEndFunc:
		return "EndFunc"
	case OpReturn:
		return "ret := " + in.Left.String()
	}
	return fmt.Sprintf("<invalid op %d>", in.Op)
}

// Print writes prog one instruction per line. Labels are not indented.
func Print(w io.Writer, prog *Program, opts PrintOptions) error {
	if w == nil || prog == nil {
		return nil
	}
	indent := opts.Indent
	if indent == "" {
		indent = defaultIndent
	}
	width := len(fmt.Sprint(len(prog.Instrs)))
	for i, in := range prog.Instrs {
		if opts.Numbered {
			if _, err := fmt.Fprintf(w, "%*d ", width, i); err != nil {
				return err
			}
		}
		line := in.Format()
		if !in.IsLabel() {
			line = indent + line
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (p *Program) String() string {
	var sb strings.Builder
	_ = Print(&sb, p, PrintOptions{})
	return sb.String()
}
