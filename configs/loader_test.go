package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
`

func writeFiles(t *testing.T, files map[string]string) map[string]string {
	t.Helper()
	dir := t.TempDir()
	paths := make(map[string]string)
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		paths[name] = path
	}
	return paths
}

func TestLoaderAssignFirst(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"test.cue": `
str: "bar"
list: [1, 2, 3]
`,
	})
	loader := NewLoader([]string{paths["test.cue"]}, testSchema)

	var str string
	err := loader.AssignFirst("str", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	err = loader.AssignFirst("list", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

	if s := First[string](loader, "str"); s != "bar" {
		t.Fatalf("got %v", s)
	}
	if s := First[string](loader, "not"); s != "" {
		t.Fatalf("got %v", s)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"test.cue":  `str: "bar"`,
		"test2.cue": `str: "foo"`,
		"test3.cue": `list: [1]`,
	})
	loader := NewLoader([]string{
		paths["test.cue"],
		paths["test2.cue"],
		paths["test3.cue"],
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("str") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

	strs = strs[:0]
	for str := range All[string](loader, "str") {
		strs = append(strs, str)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}
}

func TestUnknownField(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"bad.cue": `unknown_field: "x"`,
	})
	loader := NewLoader([]string{paths["bad.cue"]}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	if loader.Err() == nil {
		t.Fatal("should error")
	}
}

func TestEmptyLoader(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
	var str string
	if err := loader.AssignFirst("str", &str); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

	var zero Loader
	if err := zero.AssignFirst("str", &str); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{filepath.Join(t.TempDir(), "none.cue")}, "")
	if err := loader.Err(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}
