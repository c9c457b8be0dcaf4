package frontends

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/kythera/configs"
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

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.ky")
	if err := os.WriteFile(path, []byte("let x = 1;\nx + 2;\n"), 0644); err != nil {
		t.Fatal(err)
	}

	testScope(t).Call(func(
		parseFile ParseFile,
	) {
		source, nodes, err := parseFile(t.Context(), path)
		if err != nil {
			t.Fatal(err)
		}
		if source.Name != path {
			t.Fatalf("got %s", source.Name)
		}
		if len(nodes) != 2 {
			t.Fatalf("got %v", nodes)
		}
	})
}

func TestParseFileErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.ky")
	if err := os.WriteFile(path, []byte("let x = ;"), 0644); err != nil {
		t.Fatal(err)
	}

	testScope(t).Call(func(
		parseFile ParseFile,
	) {
		_, _, err := parseFile(t.Context(), path)
		if !errors.Is(err, kylang.ErrUnexpectedToken) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "span: ") {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), path+":1:9") {
			t.Fatalf("got %v", err)
		}

		_, _, err = parseFile(t.Context(), filepath.Join(dir, "none.ky"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestLanguageConstraint(t *testing.T) {
	testScope(t,
		dscope.Provide(kyconfigs.LanguageConstraint(">= 1.0.0")),
	).Call(func(
		parseSource ParseSource,
	) {
		_, err := parseSource(t.Context(), kylang.NewSource("x.ky", "1;"))
		if err == nil || !strings.Contains(err.Error(), "does not satisfy") {
			t.Fatalf("got %v", err)
		}
	})

	testScope(t,
		dscope.Provide(kyconfigs.LanguageConstraint("^0.1")),
	).Call(func(
		parseSource ParseSource,
	) {
		nodes, err := parseSource(t.Context(), kylang.NewSource("x.ky", "1;"))
		if err != nil {
			t.Fatal(err)
		}
		if len(nodes) != 1 {
			t.Fatalf("got %v", nodes)
		}
	})
}
