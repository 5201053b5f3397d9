package format

import (
	"errors"
	"testing"

	"tinyjava/internal/ast"
)

const messy = `int   x=1+2*3;
boolean b=(x==7);
if(b){x=(x-1)-2;}else if(x!=0){x=x-(1-2);}else{}
public int add(int a,int b){int s=a+b;return s;}
int y=add(x,(1+2)*3);
`

const canonical = `int x = 1 + 2 * 3;
boolean b = x == 7;
if (b) {
    x = x - 1 - 2;
} else if (x != 0) {
    x = x - (1 - 2);
} else {}

public int add(int a, int b) {
    int s = a + b;
    return s;
}

int y = add(x, (1 + 2) * 3);
`

func TestSourceCanonical(t *testing.T) {
	got, err := Source("messy.tj", []byte(messy), Options{})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if string(got) != canonical {
		t.Errorf("formatted output mismatch:\n got:\n%s\nwant:\n%s", got, canonical)
	}
}

func TestSourceIdempotent(t *testing.T) {
	inputs := []string{
		canonical,
		"if (a) if (b) { x = 1; } else { x = 2; }\n",
		"x = (a == b) == (c != d);\n",
		"x = a / (b * c) - (d - e);\n",
		"public boolean f() { return true; }\npublic int g() { return 1; }\n",
	}
	for _, in := range inputs {
		once, err := Source("a.tj", []byte(in), Options{})
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		twice, err := Source("b.tj", once, Options{})
		if err != nil {
			t.Fatalf("reformat %q: %v", once, err)
		}
		if string(once) != string(twice) {
			t.Errorf("not idempotent for %q:\nfirst:\n%s\nsecond:\n%s", in, once, twice)
		}
	}
}

func TestThenBranchStaysBraced(t *testing.T) {
	got, err := Source("n.tj", []byte("if (a) if (b) { x = 1; } else { x = 2; }"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := `if (a) {
    if (b) {
        x = 1;
    } else {
        x = 2;
    }
}
`
	if string(got) != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTabsAndWidth(t *testing.T) {
	src := []byte("if (a) { x = 1; }")
	got, err := Source("t.tj", src, Options{UseTabs: true})
	if err != nil {
		t.Fatal(err)
	}
	if want := "if (a) {\n\tx = 1;\n}\n"; string(got) != want {
		t.Errorf("tabs: got %q, want %q", got, want)
	}
	got, err = Source("t.tj", src, Options{IndentWidth: 2})
	if err != nil {
		t.Fatal(err)
	}
	if want := "if (a) {\n  x = 1;\n}\n"; string(got) != want {
		t.Errorf("width 2: got %q, want %q", got, want)
	}
}

func TestSourceRejectsBrokenInput(t *testing.T) {
	for _, src := range []string{"int x = ;", "int x = 1 @;"} {
		if _, err := Source("bad.tj", []byte(src), Options{}); !errors.Is(err, ErrInvalidSource) {
			t.Errorf("%q: expected ErrInvalidSource, got %v", src, err)
		}
	}
}

func TestProgramEmpty(t *testing.T) {
	if got := Program(nil, Options{}); len(got) != 0 {
		t.Errorf("nil program: %q", got)
	}
	if got := Program(&ast.Program{Body: &ast.StmtList{}}, Options{}); len(got) != 0 {
		t.Errorf("empty program: %q", got)
	}
}
