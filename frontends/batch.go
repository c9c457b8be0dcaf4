package frontends

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"github.com/reusee/kythera/kylang"
	"github.com/reusee/kythera/logs"
	"github.com/reusee/kythera/syncs"
)

const SourceExt = ".ky"

type Result struct {
	Path  string
	Nodes []kylang.Node
	Err   error
}

// ParseTree parses every .ky file under root, each with its own parser,
// at most GOMAXPROCS at a time. Results are sorted by path; a parse
// failure is recorded in its Result and does not stop the others.
type ParseTree func(ctx context.Context, root string) ([]Result, error)

func (Module) ParseTree(
	parseFile ParseFile,
	logger logs.Logger,
) ParseTree {
	return func(ctx context.Context, root string) ([]Result, error) {
		var paths []string
		if err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() && filepath.Ext(path) == SourceExt {
				paths = append(paths, path)
			}
			return nil
		}); err != nil {
			return nil, err
		}
		slices.Sort(paths)

		results := make([]Result, len(paths))
		sem := syncs.NewSemaphore(runtime.GOMAXPROCS(0))
		wg := new(sync.WaitGroup)
		for i, path := range paths {
			if err := sem.Acquire(ctx); err != nil {
				wg.Wait()
				return nil, err
			}
			wg.Go(func() {
				defer sem.Release()
				_, nodes, err := parseFile(ctx, path)
				results[i] = Result{
					Path:  path,
					Nodes: nodes,
					Err:   err,
				}
			})
		}
		wg.Wait()

		logger.InfoContext(ctx, "parsed tree",
			"root", root,
			"files", len(paths),
		)
		return results, nil
	}
}
