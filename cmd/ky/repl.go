package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/reusee/dscope"
	"github.com/reusee/kythera/astdumps"
	"github.com/reusee/kythera/frontends"
	"github.com/reusee/kythera/kyconfigs"
	"github.com/reusee/kythera/kylang"
	"github.com/reusee/kythera/logs"
)

const (
	replPrompt     = "ky> "
	replSourceName = "<repl>"
)

func historyPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "kythera", "repl-history"), nil
}

func replCommand(ctx context.Context, scope dscope.Scope) (err error) {
	scope.Call(func(
		parseSource frontends.ParseSource,
		format kyconfigs.DumpFormat,
		logger logs.Logger,
	) {
		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		path, e := historyPath()
		if e != nil {
			logger.Warn("get history path error", "err", e)
			path = ""
		} else if f, e := os.Open(path); e == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if path != "" {
				saveHistory(line, path, logger)
			}
		}()

		for {
			input, e := line.Prompt(replPrompt)
			if e != nil {
				if errors.Is(e, io.EOF) || errors.Is(e, liner.ErrPromptAborted) {
					return
				}
				err = e
				return
			}
			input = strings.TrimSpace(input)
			switch input {
			case "":
				continue
			case ":quit", ":q":
				return
			}
			line.AppendHistory(input)

			evalLine(ctx, parseSource, string(format), input)
		}
	})
	return
}

// evalLine parses one line and prints the statements or the error.
// A missing final `;` is supplied.
func evalLine(ctx context.Context, parseSource frontends.ParseSource, format string, input string) {
	if !strings.HasSuffix(input, ";") {
		input += ";"
	}
	nodes, err := parseSource(ctx, kylang.NewSource(replSourceName, input))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return
	}
	if err := astdumps.Encode(stdout, format, nodes); err != nil {
		fmt.Fprintln(stderr, err)
	}
}

func saveHistory(line *liner.State, path string, logger logs.Logger) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Warn("create history dir error", "err", err)
		return
	}
	f, err := os.Create(path)
	if err != nil {
		logger.Warn("create history file error", "err", err)
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		logger.Warn("write history error", "err", err)
	}
}
