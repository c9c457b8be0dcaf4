package debugs

import (
	"context"
	"fmt"
	"time"

	"github.com/reusee/kythera/kylang"
	"github.com/reusee/kythera/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Finding is one report() call of a check script.
type Finding struct {
	Message string
	// "line:column" or empty
	Pos string
}

func (f Finding) String() string {
	if f.Pos == "" {
		return f.Message
	}
	return f.Pos + ": " + f.Message
}

var scriptOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// RunScript runs a Starlark program over parsed statements. The program sees
// the globals `program`, a list of statement dicts, `source`, the source name,
// and `report(msg, pos="")`.
type RunScript func(
	ctx context.Context,
	name string,
	script string,
	source string,
	nodes []kylang.Node,
) ([]Finding, error)

func (Module) RunScript(
	logger logs.Logger,
) RunScript {
	return func(
		ctx context.Context,
		name string,
		script string,
		source string,
		nodes []kylang.Node,
	) (findings []Finding, err error) {
		t0 := time.Now()
		defer func() {
			logger.DebugContext(ctx, "run script",
				"script", name,
				"findings", len(findings),
				"duration", time.Since(t0),
			)
		}()

		report := starlark.NewBuiltin("report", func(
			thread *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var msg, pos string
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "msg", &msg, "pos?", &pos); err != nil {
				return nil, err
			}
			findings = append(findings, Finding{
				Message: msg,
				Pos:     pos,
			})
			return starlark.None, nil
		})

		predeclared := starlark.StringDict{
			"program": ToStarlarkValue(nodes),
			"source":  starlark.String(source),
			"report":  report,
			"count": ToStarlarkValue(func(kind string) int {
				return countKind(nodes, kind)
			}),
		}

		thread := &starlark.Thread{
			Name: name,
			Print: func(thread *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg, "script", name)
			},
		}

		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				thread.Cancel(context.Cause(ctx).Error())
			case <-done:
			}
		}()

		if _, err := starlark.ExecFileOptions(scriptOptions, thread, name, script, predeclared); err != nil {
			return findings, logs.WrapSpan(ctx, fmt.Errorf("run %s: %w", name, err))
		}
		return findings, nil
	}
}

// countKind counts nodes of a kind, nested ones included.
func countKind(nodes []kylang.Node, kind string) (n int) {
	for _, node := range nodes {
		Walk(node, func(node kylang.Node) {
			if kindOf(node) == kind {
				n++
			}
		})
	}
	return
}
