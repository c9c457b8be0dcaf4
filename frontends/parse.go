// Package frontends drives kylang for the command line: it reads files,
// checks the configured language version and logs every parse.
package frontends

import (
	"context"
	"fmt"
	"time"

	"github.com/reusee/kythera/kyconfigs"
	"github.com/reusee/kythera/kylang"
	"github.com/reusee/kythera/logs"
)

type ParseSource func(ctx context.Context, source *kylang.Source) ([]kylang.Node, error)

func (Module) ParseSource(
	logger logs.Logger,
	newSpan logs.NewSpan,
	constraint kyconfigs.LanguageConstraint,
) ParseSource {
	return func(ctx context.Context, source *kylang.Source) (nodes []kylang.Node, err error) {
		ctx, _ = newSpan(ctx, source.Name)
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		if err := constraint.Check(kylang.LanguageVersion); err != nil {
			return nil, err
		}

		t0 := time.Now()
		nodes, err = kylang.Parse(source)
		if err != nil {
			logger.DebugContext(ctx, "parse failed",
				"source", source.Name,
				"kind", kylang.Kind(err),
			)
			return nil, fmt.Errorf("parse %s: %w", source.Name, err)
		}
		logger.DebugContext(ctx, "parsed",
			"source", source.Name,
			"statements", len(nodes),
			"duration", time.Since(t0),
		)
		return nodes, nil
	}
}

type ParseFile func(ctx context.Context, path string) (*kylang.Source, []kylang.Node, error)

func (Module) ParseFile(
	parseSource ParseSource,
) ParseFile {
	return func(ctx context.Context, path string) (*kylang.Source, []kylang.Node, error) {
		source, err := kylang.ReadSource(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read source: %w", err)
		}
		nodes, err := parseSource(ctx, source)
		if err != nil {
			return source, nil, err
		}
		return source, nodes, nil
	}
}
