package logs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/reusee/kythera/cmds"
	"github.com/reusee/kythera/modes"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var (
	level = new(slog.LevelVar)
	// set once a level is chosen explicitly
	levelSet atomic.Bool
)

func init() {
	for name, l := range map[string]slog.Level{
		"-log-debug": slog.LevelDebug,
		"-log-info":  slog.LevelInfo,
		"-log-warn":  slog.LevelWarn,
		"-log-error": slog.LevelError,
	} {
		cmds.Define(name, cmds.Func(func() {
			SetLevel(l)
		}).Desc("set log level to "+strings.TrimPrefix(name, "-log-")))
	}
}

func SetLevel(l slog.Level) {
	level.Set(l)
	levelSet.Store(true)
}

// SetDefaultLevel sets the level unless one was chosen by SetLevel.
func SetDefaultLevel(l slog.Level) {
	if levelSet.Load() {
		return
	}
	level.Set(l)
}

func ParseLevel(str string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(str)); err != nil {
		return l, fmt.Errorf("parse log level %q: %w", str, err)
	}
	return l, nil
}

type Logger = *slog.Logger

func (Module) Logger(
	writer Writer,
	mode modes.Mode,
) Logger {
	if mode == modes.ModeDevelopment {
		SetDefaultLevel(slog.LevelDebug)
	}

	var handlers []slog.Handler

	isSystemdService := false
	cgroupPath, err := getCgroupPath()
	if err == nil {
		isSystemdService = strings.HasSuffix(
			path.Dir(cgroupPath),
			".service",
		)
	}

	// terminal
	var terminalHandler slog.Handler
	if !isSystemdService {
		terminalHandler = slog.NewTextHandler(
			writer,
			&slog.HandlerOptions{
				Level: level,
			},
		)
		handlers = append(handlers, terminalHandler)
	}

	// systemd journal, only when the socket is there
	if isSystemdService || journalAvailable() {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			if terminalHandler != nil {
				record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
				record.Add("error", err)
				_ = terminalHandler.Handle(context.Background(), record)
			}
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

const journalSocket = "/run/systemd/journal/socket"

func journalAvailable() bool {
	if os.Getenv("KY_LOG_JOURNAL") == "" {
		return false
	}
	_, err := os.Stat(journalSocket)
	return err == nil
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}

func getCgroupPath() (string, error) {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return "", err
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) >= 3 {
		return parts[2], nil
	}
	return "", nil
}

// LevelSet reports whether SetLevel was called.
func LevelSet() bool {
	return levelSet.Load()
}
