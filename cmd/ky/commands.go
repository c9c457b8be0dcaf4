package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/kythera/astdumps"
	"github.com/reusee/kythera/debugs"
	"github.com/reusee/kythera/frontends"
	"github.com/reusee/kythera/kyconfigs"
	"github.com/reusee/kythera/kylang"
	"github.com/reusee/kythera/logs"
	"github.com/reusee/kythera/watches"
)

func parseCommand(ctx context.Context, scope dscope.Scope, path string) (err error) {
	scope.Call(func(
		parseFile frontends.ParseFile,
	) {
		var nodes []kylang.Node
		_, nodes, err = parseFile(ctx, path)
		if err != nil {
			return
		}
		err = astdumps.Encode(stdout, astdumps.FormatSexpr, nodes)
	})
	return
}

func parseAllCommand(ctx context.Context, scope dscope.Scope, root string) (err error) {
	scope.Call(func(
		parseTree frontends.ParseTree,
	) {
		var results []frontends.Result
		results, err = parseTree(ctx, root)
		if err != nil {
			return
		}
		failed := 0
		for _, result := range results {
			if result.Err != nil {
				failed++
				fmt.Fprintln(stderr, result.Err)
				continue
			}
			fmt.Fprintf(stdout, "%s\t%d statements\n", result.Path, len(result.Nodes))
		}
		if failed > 0 {
			err = fmt.Errorf("%d of %d files failed", failed, len(results))
		}
	})
	return
}

func tokensCommand(path string) error {
	source, err := kylang.ReadSource(path)
	if err != nil {
		return err
	}
	tokens, err := kylang.Tokenize(source)
	for _, tok := range tokens {
		fmt.Fprintf(stdout, "%d:%d\t%s\n", tok.Span.Start.Line, tok.Span.Start.Column, tok)
	}
	return err
}

func dumpCommand(ctx context.Context, scope dscope.Scope, path string) (err error) {
	scope.Call(func(
		parseFile frontends.ParseFile,
		format kyconfigs.DumpFormat,
	) {
		var nodes []kylang.Node
		_, nodes, err = parseFile(ctx, path)
		if err != nil {
			return
		}
		err = astdumps.Encode(stdout, string(format), nodes)
	})
	return
}

func checkCommand(ctx context.Context, scope dscope.Scope, path string, scriptPath string) (err error) {
	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}
	scope.Call(func(
		parseFile frontends.ParseFile,
		runScript debugs.RunScript,
	) {
		var nodes []kylang.Node
		_, nodes, err = parseFile(ctx, path)
		if err != nil {
			return
		}
		var findings []debugs.Finding
		findings, err = runScript(ctx, scriptPath, string(script), path, nodes)
		for _, finding := range findings {
			if finding.Pos != "" {
				fmt.Fprintf(stdout, "%s:%s: %s\n", path, finding.Pos, finding.Message)
			} else {
				fmt.Fprintf(stdout, "%s: %s\n", path, finding.Message)
			}
		}
		if err == nil && len(findings) > 0 {
			err = fmt.Errorf("%d findings", len(findings))
		}
	})
	return
}

func tapCommand(ctx context.Context, scope dscope.Scope, path string) (err error) {
	scope.Call(func(
		parseFile frontends.ParseFile,
		tap debugs.Tap,
	) {
		var source *kylang.Source
		var nodes []kylang.Node
		source, nodes, err = parseFile(ctx, path)
		if err != nil {
			return
		}
		tap(ctx, path, map[string]any{
			"program": nodes,
			"lines":   source.Lines,
		})
	})
	return
}

func watchCommand(ctx context.Context, scope dscope.Scope, path string) (err error) {
	scope.Call(func(
		watch watches.Watch,
		debounce kyconfigs.WatchDebounce,
		logger logs.Logger,
	) {
		dump := func(ctx context.Context) {
			fmt.Fprintf(stdout, "--- %s\n", path)
			if err := dumpCommand(ctx, scope, path); err != nil {
				fmt.Fprintln(stderr, err)
				logger.DebugContext(ctx, "dump failed", "error", err)
			}
		}
		dump(ctx)
		err = watch(ctx, path, time.Duration(debounce), dump)
	})
	return
}

func versionCommand() error {
	_, err := fmt.Fprintln(stdout, kylang.LanguageVersion)
	return err
}
