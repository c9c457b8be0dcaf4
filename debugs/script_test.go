package debugs

import (
	"context"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/kythera/kylang"
	"github.com/reusee/kythera/modes"
)

func TestRunScript(t *testing.T) {
	nodes, err := kylang.ParseString("test.ky", "let x = 1;\nconst y = 2;\nlet z = x + y;")
	if err != nil {
		t.Fatal(err)
	}

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		run RunScript,
	) {
		findings, err := run(t.Context(), "check.star", `
for stmt in program:
    if stmt["kind"] == "Declaration" and stmt["op"] == "Let":
        report("mutable binding " + stmt["id"], stmt["pos"])
report("checked " + source)
`, "test.ky", nodes)
		if err != nil {
			t.Fatal(err)
		}
		if len(findings) != 3 {
			t.Fatalf("got %v", findings)
		}
		if s := findings[0].String(); s != "1:1: mutable binding x" {
			t.Fatalf("got %s", s)
		}
		if s := findings[1].String(); s != "3:1: mutable binding z" {
			t.Fatalf("got %s", s)
		}
		if s := findings[2].String(); s != "checked test.ky" {
			t.Fatalf("got %s", s)
		}
	})
}

func TestRunScriptError(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		run RunScript,
	) {
		_, err := run(t.Context(), "bad.star", `fail("boom")`, "", nil)
		if err == nil || !strings.Contains(err.Error(), "boom") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestRunScriptCancel(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		run RunScript,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := run(ctx, "loop.star", `
while True:
    pass
`, "", nil)
		if err == nil || !strings.Contains(err.Error(), "cancel") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestWalk(t *testing.T) {
	nodes, err := kylang.ParseString("", "f(a, { b = c.d });")
	if err != nil {
		t.Fatal(err)
	}
	var kinds []string
	Walk(nodes[0], func(node kylang.Node) {
		kinds = append(kinds, kindOf(node))
	})
	expected := "Call Identifier Identifier Literal Access Identifier"
	if s := strings.Join(kinds, " "); s != expected {
		t.Fatalf("got %s", s)
	}
	if n := countKind(nodes, "Identifier"); n != 3 {
		t.Fatalf("got %d", n)
	}
}
