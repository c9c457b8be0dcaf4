package watches

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/reusee/kythera/logs"
)

// Watch calls onChange after path is written, created or renamed over, once
// no further event arrived for debounce. It returns nil when ctx is done.
type Watch func(
	ctx context.Context,
	path string,
	debounce time.Duration,
	onChange func(ctx context.Context),
) error

const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

func (Module) Watch(
	logger logs.Logger,
) Watch {
	return func(
		ctx context.Context,
		path string,
		debounce time.Duration,
		onChange func(ctx context.Context),
	) error {
		path, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("new watcher: %w", err)
		}
		defer watcher.Close()

		// editors replace files, so watch the directory
		dir := filepath.Dir(path)
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.InfoContext(ctx, "watching", "path", path)

		timer := time.NewTimer(debounce)
		timer.Stop()
		defer timer.Stop()

		for {
			select {

			case <-ctx.Done():
				return nil

			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != path || ev.Op&changeOps == 0 {
					continue
				}
				logger.DebugContext(ctx, "file event",
					"path", ev.Name,
					"op", ev.Op.String(),
				)
				timer.Reset(debounce)

			case <-timer.C:
				onChange(ctx)

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.WarnContext(ctx, "watch error", "error", err)

			}
		}
	}
}
