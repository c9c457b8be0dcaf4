package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.SetOutput(buf)
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func(string) {
		}).Desc("BAR").Args("file"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.PrintUsage()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	expected := []string{
		"-h (help, -help, --help)\tprint this usage",
		"foo\tFOO",
		"  bar <file>\tBAR",
		"  baz\tBAZ",
		"    qux\tQUX",
	}
	if len(lines) != len(expected) {
		t.Fatalf("got %q", lines)
	}
	for i, line := range lines {
		if line != expected[i] {
			t.Fatalf("got %q", line)
		}
	}
}
