package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliRun struct {
	stdout, stderr string
	err            error
}

// runCLI executes tjc with a private config so no tinyjava.toml from the
// surrounding checkout leaks in.
func runCLI(t *testing.T, args ...string) cliRun {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "tinyjava.toml")
	if err := os.WriteFile(cfg, []byte("[diagnostics]\ncolor = \"off\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	root, a := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	a.close()
	return cliRun{stdout: out.String(), stderr: errOut.String(), err: err}
}

func writeSource(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIRCommand(t *testing.T) {
	path := writeSource(t, "ok.tj", "int x = 1 + 2;\n")
	r := runCLI(t, "ir", path)
	if r.err != nil {
		t.Fatalf("ir: %v\n%s", r.err, r.stderr)
	}
	want := "    _t1 := 1 + 2\n    x := _t1\n"
	if r.stdout != want {
		t.Errorf("stdout = %q, want %q", r.stdout, want)
	}
}

func TestIRCommandReportsSemanticError(t *testing.T) {
	path := writeSource(t, "bad.tj", "int x = 1;\nx = true;\n")
	r := runCLI(t, "ir", path)
	if !errors.Is(r.err, errReported) {
		t.Fatalf("expected errReported, got %v", r.err)
	}
	if !strings.Contains(r.stderr, "bad.tj:2:1: error SEM3006") {
		t.Errorf("stderr = %q", r.stderr)
	}
	if r.stdout != "" {
		t.Errorf("no IR expected, got %q", r.stdout)
	}
}

func TestIRDirectory(t *testing.T) {
	dir := t.TempDir()
	for name, src := range map[string]string{"a.tj": "int a = 1;", "b.tj": "int b = 2;"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	r := runCLI(t, "ir", "--ui", "off", "--jobs", "2", dir)
	if r.err != nil {
		t.Fatalf("ir dir: %v\n%s", r.err, r.stderr)
	}
	first := strings.Index(r.stdout, "a.tj")
	second := strings.Index(r.stdout, "b.tj")
	if first < 0 || second < first || !strings.Contains(r.stdout, "    b := 2") {
		t.Errorf("stdout = %q", r.stdout)
	}
}

func TestCheckSymbols(t *testing.T) {
	path := writeSource(t, "s.tj", "int x = 1;\n")
	r := runCLI(t, "check", "--symbols", path)
	if r.err != nil {
		t.Fatalf("check: %v", r.err)
	}
	if !strings.Contains(r.stdout, "  x: int [line 1]") {
		t.Errorf("stdout = %q", r.stdout)
	}
}

func TestParseSyntaxErrorJSON(t *testing.T) {
	path := writeSource(t, "p.tj", "int x = ;\n")
	r := runCLI(t, "--diagnostics-format", "json", "parse", path)
	if !errors.Is(r.err, errReported) {
		t.Fatalf("expected errReported, got %v", r.err)
	}
	var payload struct {
		Count       int `json:"count"`
		Diagnostics []struct {
			Code string `json:"code"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal([]byte(r.stderr), &payload); err != nil {
		t.Fatalf("stderr is not JSON: %v\n%s", err, r.stderr)
	}
	if payload.Count != 1 || payload.Diagnostics[0].Code != "SYN2005" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestTokenizeJSON(t *testing.T) {
	path := writeSource(t, "t.tj", "x = 1;")
	r := runCLI(t, "tokenize", "--format", "json", path)
	if r.err != nil {
		t.Fatalf("tokenize: %v", r.err)
	}
	if !strings.Contains(r.stdout, `"text": "x"`) && !strings.Contains(r.stdout, `"text":"x"`) {
		t.Errorf("stdout = %q", r.stdout)
	}
}

func TestMissingFile(t *testing.T) {
	r := runCLI(t, "check", filepath.Join(t.TempDir(), "nope.tj"))
	if r.err == nil || errors.Is(r.err, errReported) {
		t.Fatalf("expected a plain load error, got %v", r.err)
	}
}

func TestBadFlags(t *testing.T) {
	path := writeSource(t, "f.tj", "int x;")
	for _, args := range [][]string{
		{"--color", "sometimes", "check", path},
		{"ir", "--ui", "maybe", filepath.Dir(path)},
		{"parse", "--format", "yaml", path},
	} {
		if r := runCLI(t, args...); r.err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestVersionJSON(t *testing.T) {
	r := runCLI(t, "version", "--format", "json")
	if r.err != nil {
		t.Fatalf("version: %v", r.err)
	}
	var info struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal([]byte(r.stdout), &info); err != nil || info.Version == "" {
		t.Errorf("version json = %q (%v)", r.stdout, err)
	}
}

func TestFmtWriteAndCheck(t *testing.T) {
	path := writeSource(t, "f.tj", "int x=1+2;if(x==3){x=0;}\n")
	r := runCLI(t, "fmt", "--check", path)
	if !errors.Is(r.err, errReported) || !strings.Contains(r.stdout, "f.tj") {
		t.Fatalf("check before write: err=%v stdout=%q", r.err, r.stdout)
	}
	if r = runCLI(t, "fmt", "-w", path); r.err != nil {
		t.Fatalf("fmt -w: %v\n%s", r.err, r.stderr)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "int x = 1 + 2;\nif (x == 3) {\n    x = 0;\n}\n"
	if string(got) != want {
		t.Errorf("rewritten = %q, want %q", got, want)
	}
	if r = runCLI(t, "fmt", "--check", path); r.err != nil || r.stdout != "" {
		t.Errorf("check after write: err=%v stdout=%q", r.err, r.stdout)
	}
}

func TestFmtSyntaxError(t *testing.T) {
	path := writeSource(t, "bad.tj", "int x = ;\n")
	r := runCLI(t, "fmt", path)
	if !errors.Is(r.err, errReported) || !strings.Contains(r.stderr, "SYN2005") {
		t.Errorf("err=%v stderr=%q", r.err, r.stderr)
	}
}

func TestProfilingFlags(t *testing.T) {
	path := writeSource(t, "p.tj", "int x = 1;\n")
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")
	r := runCLI(t, "--cpu-profile", cpu, "--mem-profile", mem, "check", path)
	if r.err != nil {
		t.Fatalf("check: %v", r.err)
	}
	for _, p := range []string{cpu, mem} {
		if info, err := os.Stat(p); err != nil || info.Size() == 0 {
			t.Errorf("%s: %v", p, err)
		}
	}
}
