package testkit

import (
	"strings"
	"testing"

	"tinyjava/internal/parser"
	"tinyjava/internal/source"
)

const sampleCorpus = "# Assignments\n" +
	"\n" +
	"Plain prose and an untagged fence are ignored:\n" +
	"\n" +
	"```\nnot a test\n```\n" +
	"\n" +
	"## Test: simple copy\n" +
	"\n" +
	"```tinyjava\nint x = 1;\n```\n" +
	"\n" +
	"```ir\n    x := 1\n```\n" +
	"\n" +
	"## Test: bad decl\n" +
	"\n" +
	"```tinyjava\nboolean b = 1;\n```\n" +
	"\n" +
	"```check-error\nSEM3005 line 1: Mismatch of declaration type for \"b\": declared boolean, got int\n```\n" +
	"\n" +
	"```ast\nProgram\n```\n"

func TestParseCorpus(t *testing.T) {
	cases, err := ParseCorpus([]byte(sampleCorpus))
	if err != nil {
		t.Fatalf("ParseCorpus: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}
	first := cases[0]
	if first.Name != "simple copy" || first.Input != "int x = 1;" {
		t.Errorf("first case = %+v", first)
	}
	ir, ok := first.Expect(AssertIR)
	if !ok || ir.Content != "    x := 1" {
		t.Errorf("ir assertion = %+v", ir)
	}
	if _, ok := first.Expect(AssertCheckError); ok {
		t.Errorf("unexpected check-error assertion")
	}
	second := cases[1]
	if len(second.Assertions) != 2 || second.Assertions[0].Type != AssertCheckError {
		t.Errorf("second case assertions = %+v", second.Assertions)
	}
}

func TestParseCorpusErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"fence outside test", "```ir\nx\n```\n", "outside of a test"},
		{"unknown fence", "## Test: a\n\n```tinyjava\nx = 1;\n```\n\n```wasm\n```\n", "unknown fence"},
		{"no input", "## Test: a\n\n```ir\nx\n```\n", "no tinyjava fence"},
		{"no assertion", "## Test: a\n\n```tinyjava\nx = 1;\n```\n", "no assertions"},
		{"two inputs", "## Test: a\n\n```tinyjava\nx = 1;\n```\n\n```tinyjava\ny = 1;\n```\n", "more than one input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCorpus([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestCheckSpanInvariants(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("inv.tj", []byte("int x = 1 +\n 2;\npublic int f(int a) {\n  return a;\n}\nif (x == 3) { } else if (true) { }\n"))
	prog, err := parser.ParseFile(fs.Get(id), parser.Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := CheckSpanInvariants(prog, fs.Get(id)); err != nil {
		t.Errorf("invariants: %v", err)
	}
	other := fs.AddVirtual("other.tj", []byte(""))
	if err := CheckSpanInvariants(prog, fs.Get(other)); err == nil {
		t.Errorf("expected a file mismatch to be reported")
	}
}
