package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestStreamTracerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	span := Begin(tr, ScopePass, "parse", 0)
	Begin(tr, ScopeNode, "method:f", span.ID()).End("")
	Point(tr, ScopeFile, "cache-hit", "a.tj")
	span.End("ok")

	out := buf.String()
	if !strings.Contains(out, "→ parse") || !strings.Contains(out, "← parse (ok)") {
		t.Errorf("missing pass span in %q", out)
	}
	if strings.Contains(out, "method:f") || strings.Contains(out, "cache-hit") {
		t.Errorf("finer scopes leaked at phase level: %q", out)
	}
}

func TestFailureShownAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelError, FormatText)
	Begin(tr, ScopeDriver, "ir", 0).End("")
	Failure(tr, ScopeFile, "file:a.tj", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "→ ir") {
		t.Errorf("span written at error level: %q", out)
	}
	if !strings.Contains(out, "• file:a.tj {error=boom}") {
		t.Errorf("failure point missing: %q", out)
	}
}

func TestNDJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Begin(tr, ScopePass, "check", 0).WithExtra("file", "x.tj").End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 events, got %d", len(lines))
	}
	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if ev["kind"] != "end" || ev["scope"] != "pass" || ev["name"] != "check" {
		t.Errorf("unexpected event %v", ev)
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if tr.Enabled() {
		t.Error("off tracer must be disabled")
	}
	if d := Begin(tr, ScopeDriver, "x", 0).End(""); d != 0 {
		t.Errorf("nop span reported duration %v", d)
	}
}

func TestContextRoundTrip(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("empty context should yield Nop")
	}
	tr := NewStreamTracer(&bytes.Buffer{}, LevelPhase, FormatText)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Error("tracer lost in context")
	}
}

func TestParentSpan(t *testing.T) {
	if id := Parent(context.Background()); id != 0 {
		t.Errorf("root parent = %d", id)
	}
	ctx := WithParent(context.Background(), 7)
	ctx = WithTracer(ctx, Nop)
	if id := Parent(ctx); id != 7 {
		t.Errorf("parent = %d, want 7", id)
	}
	if id := Parent(WithParent(ctx, 9)); id != 9 {
		t.Errorf("inner parent = %d, want 9", id)
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if l, err := ParseLevel("detail"); err != nil || l != LevelDetail {
		t.Errorf("ParseLevel(detail) = %v, %v", l, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
	if f, err := ParseFormat("ndjson"); err != nil || f != FormatNDJSON {
		t.Errorf("ParseFormat(ndjson) = %v, %v", f, err)
	}
}
