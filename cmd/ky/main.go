package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/kythera/cmds"
	"github.com/reusee/kythera/configs"
	"github.com/reusee/kythera/kyconfigs"
	"github.com/reusee/kythera/logs"
	"github.com/reusee/kythera/modes"
)

type action func(ctx context.Context, scope dscope.Scope) error

var (
	selected action

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	devMode = cmds.Switch("-dev")
)

func define(name string, args []string, desc string, fn any) {
	cmds.Define(name, cmds.Func(fn).Args(args...).Desc(desc))
}

func selectAction(name string, a action) error {
	if selected != nil {
		return fmt.Errorf("%s: only one command per run", name)
	}
	selected = a
	return nil
}

func init() {
	define("parse", []string{"file"}, "parse a file and print its statements", func(path string) error {
		return selectAction("parse", func(ctx context.Context, scope dscope.Scope) error {
			return parseCommand(ctx, scope, path)
		})
	})
	define("parse-all", []string{"dir"}, "parse every .ky file under a directory", func(root string) error {
		return selectAction("parse-all", func(ctx context.Context, scope dscope.Scope) error {
			return parseAllCommand(ctx, scope, root)
		})
	})
	define("tokens", []string{"file"}, "print the tokens of a file", func(path string) error {
		return selectAction("tokens", func(ctx context.Context, scope dscope.Scope) error {
			return tokensCommand(path)
		})
	})
	define("dump", []string{"file"}, "dump the syntax tree in the configured format", func(path string) error {
		return selectAction("dump", func(ctx context.Context, scope dscope.Scope) error {
			return dumpCommand(ctx, scope, path)
		})
	})
	define("check", []string{"file", "script.star"}, "run a Starlark check script over a file", func(path string, script string) error {
		return selectAction("check", func(ctx context.Context, scope dscope.Scope) error {
			return checkCommand(ctx, scope, path, script)
		})
	})
	define("tap", []string{"file"}, "inspect a parsed file in a Starlark session", func(path string) error {
		return selectAction("tap", func(ctx context.Context, scope dscope.Scope) error {
			return tapCommand(ctx, scope, path)
		})
	})
	define("watch", []string{"file"}, "dump a file again on every change", func(path string) error {
		return selectAction("watch", func(ctx context.Context, scope dscope.Scope) error {
			return watchCommand(ctx, scope, path)
		})
	})
	define("repl", nil, "read and parse statements interactively", func() error {
		return selectAction("repl", replCommand)
	})
	define("version", nil, "print the language version", func() error {
		return selectAction("version", func(ctx context.Context, scope dscope.Scope) error {
			return versionCommand()
		})
	})
}

func newScope() dscope.Scope {
	var mode any = modes.ForProduction()
	if *devMode {
		mode = modes.ForDevelopment()
	}
	return dscope.New(
		new(Module),
		mode,
	)
}

// applyConfig validates the config files and applies the configured log level
// unless a -log-* word chose one.
func applyConfig(scope dscope.Scope) (err error) {
	scope.Call(func(
		loader configs.Loader,
		level kyconfigs.LogLevel,
	) {
		if err = loader.Err(); err != nil {
			return
		}
		if level == "" || logs.LevelSet() {
			return
		}
		l, e := logs.ParseLevel(string(level))
		if e != nil {
			err = e
			return
		}
		logs.SetLevel(l)
	})
	return
}

func run(ctx context.Context, args []string) error {
	if err := cmds.Execute(args); err != nil {
		return err
	}
	if selected == nil {
		cmds.GlobalExecutor.PrintUsage()
		return errNoCommand
	}

	scope := newScope()
	if err := applyConfig(scope); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return selected(ctx, scope)
}

var errNoCommand = errors.New("no command given")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(stderr, err)
		cancel()
		os.Exit(1)
	}
}
