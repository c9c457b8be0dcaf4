package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/kythera/configs"
	"github.com/reusee/kythera/frontends"
	"github.com/reusee/kythera/kyconfigs"
	"github.com/reusee/kythera/kylang"
	"github.com/reusee/kythera/modes"
)

func testScope(t *testing.T, defs ...any) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		append([]any{
			dscope.Provide(configs.NewLoader(nil, "")),
		}, defs...)...,
	)
}

func captureOutput(t *testing.T) *bytes.Buffer {
	buf := new(bytes.Buffer)
	stdout, stderr = buf, buf
	t.Cleanup(func() {
		stdout, stderr = os.Stdout, os.Stderr
	})
	return buf
}

func writeFile(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseCommand(t *testing.T) {
	out := captureOutput(t)
	path := writeFile(t, "a.ky", "let x = 1 + 2;\nf(x);\n")
	if err := parseCommand(t.Context(), testScope(t), path); err != nil {
		t.Fatal(err)
	}
	expected := "Declaration(Let, x, Binary(Plus, Literal(Int(1)), Literal(Int(2))))\n" +
		"Call(Identifier(f), [Identifier(x)])\n"
	if out.String() != expected {
		t.Fatalf("got %q", out.String())
	}
}

func TestTokensCommand(t *testing.T) {
	out := captureOutput(t)
	path := writeFile(t, "a.ky", "let x;\n")
	if err := tokensCommand(path); err != nil {
		t.Fatal(err)
	}
	expected := "1:1\tKw(Let)\n1:5\tId(x)\n1:6\tSym(Semicolon)\n"
	if out.String() != expected {
		t.Fatalf("got %q", out.String())
	}
}

func TestDumpCommand(t *testing.T) {
	out := captureOutput(t)
	path := writeFile(t, "a.ky", "a.b;\n")
	scope := testScope(t, dscope.Provide(kyconfigs.DumpFormat("yaml")))
	if err := dumpCommand(t.Context(), scope, path); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "kind: Access") {
		t.Fatalf("got %s", out.String())
	}
}

func TestCheckCommand(t *testing.T) {
	out := captureOutput(t)
	path := writeFile(t, "a.ky", "let x = 1;\nconst y = 2;\n")
	script := writeFile(t, "check.star", `
for stmt in program:
    if stmt["op"] == "Let":
        report("use const", stmt["pos"])
`)
	err := checkCommand(t.Context(), testScope(t), path, script)
	if err == nil || err.Error() != "1 findings" {
		t.Fatalf("got %v", err)
	}
	if out.String() != path+":1:1: use const\n" {
		t.Fatalf("got %q", out.String())
	}

	clean := writeFile(t, "b.ky", "const y = 2;\n")
	if err := checkCommand(t.Context(), testScope(t), clean, script); err != nil {
		t.Fatal(err)
	}
}

func TestParseCommandError(t *testing.T) {
	captureOutput(t)
	path := writeFile(t, "bad.ky", "let = 1;")
	err := parseCommand(t.Context(), testScope(t), path)
	if kylang.Kind(err) != kylang.ErrUnexpectedToken {
		t.Fatalf("got %v", err)
	}
}

func TestEvalLine(t *testing.T) {
	out := captureOutput(t)
	testScope(t).Call(func(
		parseSource frontends.ParseSource,
	) {
		evalLine(t.Context(), parseSource, "sexpr", "1 + 2")
		evalLine(t.Context(), parseSource, "sexpr", "let = ;")
	})
	lines := strings.Split(out.String(), "\n")
	if lines[0] != "Binary(Plus, Literal(Int(1)), Literal(Int(2)))" {
		t.Fatalf("got %q", lines[0])
	}
	if !strings.Contains(out.String(), "<repl>:1:5") {
		t.Fatalf("got %s", out.String())
	}
}

func TestVersionCommand(t *testing.T) {
	out := captureOutput(t)
	if err := versionCommand(); err != nil {
		t.Fatal(err)
	}
	if out.String() != kylang.LanguageVersion+"\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestParseAllCommand(t *testing.T) {
	out := captureOutput(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.ky"), []byte("1; 2;"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.ky"), []byte("1 +"), 0644); err != nil {
		t.Fatal(err)
	}
	err := parseAllCommand(t.Context(), testScope(t), dir)
	if err == nil || err.Error() != "1 of 2 files failed" {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(out.String(), filepath.Join(dir, "a.ky")+"\t2 statements") {
		t.Fatalf("got %s", out.String())
	}
}
