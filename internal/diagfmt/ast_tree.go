package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"tinyjava/internal/ast"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func (n *treeNode) add(children ...*treeNode) {
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
}

// FormatASTTree prints prog as an indented tree, one node per line.
func FormatASTTree(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		_, err := fmt.Fprintln(w, "Program <nil>")
		return err
	}
	var sb strings.Builder
	renderTree(&sb, buildTree("", prog), "", "")
	_, err := io.WriteString(w, sb.String())
	return err
}

// buildTree turns one AST node into a treeNode. role, when set, names the
// slot the node fills in its parent (cond, then, else, ...).
func buildTree(role string, n ast.Node) *treeNode {
	label := describeNode(n)
	if role != "" {
		label = role + ": " + label
	}
	node := &treeNode{label: label}

	switch n := n.(type) {
	case *ast.Program:
		node.add(buildTree("", n.Body))
	case *ast.StmtList:
		for _, s := range n.Stmts {
			node.add(buildTree("", s))
		}
	case *ast.DeclStmt:
		if n.Init != nil {
			node.add(buildTree("init", n.Init))
		}
	case *ast.AssignStmt:
		node.add(buildTree("value", n.Expr))
	case *ast.IfStmt:
		node.add(buildTree("cond", n.Cond), buildTree("then", n.Then))
		if n.Else != nil {
			node.add(buildTree("else", n.Else))
		}
	case *ast.MethodDecl:
		for _, p := range n.Params {
			node.add(buildTree("param", p))
		}
		node.add(buildTree("body", n.Body), buildTree("", n.Ret))
	case *ast.RetStmt:
		node.add(buildTree("", n.Expr))
	case *ast.BinOp:
		node.add(buildTree("", n.Left), buildTree("", n.Right))
	case *ast.FuncCall:
		for _, a := range n.Args {
			node.add(buildTree("arg", a))
		}
	}
	return node
}

func describeNode(n ast.Node) string {
	line := n.Position().Line
	switch n := n.(type) {
	case *ast.Program:
		return "Program"
	case *ast.StmtList:
		return fmt.Sprintf("StmtList (%d)", len(n.Stmts))
	case *ast.DeclStmt:
		return fmt.Sprintf("DeclStmt %s %s [line %d]", n.Type, n.Name, line)
	case *ast.AssignStmt:
		return fmt.Sprintf("AssignStmt %s [line %d]", n.Name, line)
	case *ast.IfStmt:
		return fmt.Sprintf("IfStmt [line %d]", line)
	case *ast.MethodDecl:
		return fmt.Sprintf("MethodDecl %s %s [line %d]", n.Return, n.Name, line)
	case *ast.Formal:
		return fmt.Sprintf("Formal %s %s", n.Type, n.Name)
	case *ast.RetStmt:
		return fmt.Sprintf("RetStmt [line %d]", line)
	case *ast.BinOp:
		return fmt.Sprintf("BinOp %s", n.Op)
	case *ast.Constant:
		return fmt.Sprintf("Constant %s %s", n.Kind, n.Literal())
	case *ast.FuncCall:
		return fmt.Sprintf("FuncCall %s", n.Name)
	case *ast.Type:
		return "Type " + n.Name
	}
	return ast.Kind(n)
}

func renderTree(sb *strings.Builder, n *treeNode, selfPrefix, childPrefix string) {
	sb.WriteString(selfPrefix)
	sb.WriteString(n.label)
	sb.WriteByte('\n')
	for i, c := range n.children {
		if i == len(n.children)-1 {
			renderTree(sb, c, childPrefix+"└─ ", childPrefix+"   ")
		} else {
			renderTree(sb, c, childPrefix+"├─ ", childPrefix+"│  ")
		}
	}
}
