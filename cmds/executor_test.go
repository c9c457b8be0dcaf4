package cmds

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}

}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

}

func TestArgumentTypes(t *testing.T) {
	executor := NewExecutor()
	var d time.Duration
	var b bool
	var f float64
	executor.Define("debounce", Func(func(v time.Duration) {
		d = v
	}))
	executor.Define("flag", Func(func(v bool) {
		b = v
	}))
	executor.Define("ratio", Func(func(v float64) {
		f = v
	}))
	if err := executor.Execute([]string{
		"debounce", "300ms",
		"flag", "yes",
		"ratio", "0.5",
	}); err != nil {
		t.Fatal(err)
	}
	if d != 300*time.Millisecond {
		t.Fatalf("got %v", d)
	}
	if !b {
		t.Fatal()
	}
	if f != 0.5 {
		t.Fatalf("got %v", f)
	}

	err := executor.Execute([]string{"debounce", "soon"})
	if err == nil || !strings.Contains(err.Error(), "convert soon to duration") {
		t.Fatalf("got %v", err)
	}
	err = executor.Execute([]string{"ratio"})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	failed := errors.New("failed")
	executor.Define("fail", Func(func() error {
		return failed
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, failed) {
		t.Fatalf("got %v", err)
	}
}

func TestHelp(t *testing.T) {
	executor := NewExecutor()
	var buf strings.Builder
	executor.SetOutput(&buf)
	exitCode := -1
	executor.exit = func(code int) {
		exitCode = code
	}
	if err := executor.Execute([]string{"--help"}); err != nil {
		t.Fatal(err)
	}
	if exitCode != 0 {
		t.Fatalf("got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "print this usage") {
		t.Fatalf("got %s", buf.String())
	}
}
