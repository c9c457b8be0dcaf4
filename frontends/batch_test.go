package frontends

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/kythera/kylang"
)

func TestParseTree(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.ky":        "1;",
		"sub/b.ky":    "let x = 2; x;",
		"sub/c.ky":    "let = ;",
		"sub/note.md": "not kythera",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	testScope(t).Call(func(
		parseTree ParseTree,
	) {
		results, err := parseTree(t.Context(), root)
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 3 {
			t.Fatalf("got %v", results)
		}
		if results[0].Path != filepath.Join(root, "a.ky") || len(results[0].Nodes) != 1 {
			t.Fatalf("got %+v", results[0])
		}
		if results[1].Err != nil || len(results[1].Nodes) != 2 {
			t.Fatalf("got %+v", results[1])
		}
		if kylang.Kind(results[2].Err) != kylang.ErrUnexpectedToken {
			t.Fatalf("got %v", results[2].Err)
		}
	})
}

func TestParseTreeMissingRoot(t *testing.T) {
	testScope(t).Call(func(
		parseTree ParseTree,
	) {
		_, err := parseTree(t.Context(), filepath.Join(t.TempDir(), "none"))
		if !os.IsNotExist(err) {
			t.Fatalf("got %v", err)
		}
	})
}
