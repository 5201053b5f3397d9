package testkit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	mdast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// InputFence is the fence language holding the program under test.
const InputFence = "tinyjava"

// AssertionType is the fence language of an expectation.
type AssertionType string

const (
	// AssertIR compares the printed three-address code.
	AssertIR AssertionType = "ir"
	// AssertAST compares the AST tree dump.
	AssertAST AssertionType = "ast"
	// AssertSyntaxError expects "CODE line N: message" for the syntax error.
	AssertSyntaxError AssertionType = "syntax-error"
	// AssertCheckError expects "CODE line N: message" for the semantic error.
	AssertCheckError AssertionType = "check-error"
	// AssertLexError lists every lexical diagnostic, one per line.
	AssertLexError AssertionType = "lex-error"
	// AssertDiagnostics compares every diagnostic in golden form.
	AssertDiagnostics AssertionType = "diagnostics"
	// AssertFormat compares the canonical source layout.
	AssertFormat AssertionType = "format"
)

func (a AssertionType) known() bool {
	switch a {
	case AssertIR, AssertAST, AssertSyntaxError, AssertCheckError, AssertLexError,
		AssertDiagnostics, AssertFormat:
		return true
	}
	return false
}

// Assertion is one expectation fence.
type Assertion struct {
	Type    AssertionType
	Content string
	Line    int
}

// Case is one "## Test: name" section.
type Case struct {
	Name       string
	Input      string
	Line       int
	Assertions []Assertion
}

// Expect returns the first assertion of the given type.
func (c *Case) Expect(t AssertionType) (Assertion, bool) {
	for _, a := range c.Assertions {
		if a.Type == t {
			return a, true
		}
	}
	return Assertion{}, false
}

const testPrefix = "Test: "

// ParseCorpus extracts the test cases of a Markdown document. Fences
// outside a test section must be untagged; a test needs exactly one input
// fence and at least one assertion.
func ParseCorpus(src []byte) ([]Case, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var (
		cases []Case
		cur   *Case
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		if err := cur.validate(); err != nil {
			return err
		}
		cases = append(cases, *cur)
		cur = nil
		return nil
	}

	err := mdast.Walk(doc, func(node mdast.Node, entering bool) (mdast.WalkStatus, error) {
		if !entering {
			return mdast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *mdast.Heading:
			title := nodeText(n, src)
			if !strings.HasPrefix(title, testPrefix) {
				return mdast.WalkSkipChildren, nil
			}
			if err := flush(); err != nil {
				return mdast.WalkStop, err
			}
			cur = &Case{Name: strings.TrimSpace(strings.TrimPrefix(title, testPrefix)), Line: lineOf(n, src)}
			return mdast.WalkSkipChildren, nil

		case *mdast.FencedCodeBlock:
			lang := string(n.Language(src))
			line := lineOf(n, src)
			if lang == "" {
				return mdast.WalkContinue, nil
			}
			if cur == nil {
				return mdast.WalkStop, fmt.Errorf("line %d: %q fence outside of a test", line, lang)
			}
			body := strings.TrimRight(fenceBody(n, src), "\n")
			switch {
			case lang == InputFence:
				if cur.Input != "" {
					return mdast.WalkStop, fmt.Errorf("line %d: test %q has more than one input fence", line, cur.Name)
				}
				cur.Input = body
			case AssertionType(lang).known():
				cur.Assertions = append(cur.Assertions, Assertion{Type: AssertionType(lang), Content: body, Line: line})
			default:
				return mdast.WalkStop, fmt.Errorf("line %d: unknown fence %q in test %q", line, lang, cur.Name)
			}
		}
		return mdast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return cases, nil
}

// LoadCorpus parses every *.md file matching pattern, keyed by base name
// without extension.
func LoadCorpus(pattern string) (map[string][]Case, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]Case, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		cases, err := ParseCorpus(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		out[strings.TrimSuffix(filepath.Base(p), ".md")] = cases
	}
	return out, nil
}

func (c *Case) validate() error {
	if c.Input == "" {
		return fmt.Errorf("line %d: test %q has no %s fence", c.Line, c.Name, InputFence)
	}
	if len(c.Assertions) == 0 {
		return fmt.Errorf("line %d: test %q has no assertions", c.Line, c.Name)
	}
	return nil
}

func nodeText(node mdast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = mdast.Walk(node, func(n mdast.Node, entering bool) (mdast.WalkStatus, error) {
		if t, ok := n.(*mdast.Text); ok && entering {
			buf.Write(t.Segment.Value(src))
		}
		return mdast.WalkContinue, nil
	})
	return buf.String()
}

func fenceBody(n *mdast.FencedCodeBlock, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}

// lineOf returns the 1-based line of the node's first content line. Empty
// fences report the line of the document start.
func lineOf(n mdast.Node, src []byte) int {
	if n.Lines().Len() == 0 {
		return 1
	}
	start := min(n.Lines().At(0).Start, len(src))
	return bytes.Count(src[:start], []byte{'\n'}) + 1
}
