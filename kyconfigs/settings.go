package kyconfigs

import (
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/reusee/kythera/cmds"
	"github.com/reusee/kythera/configs"
	"github.com/reusee/kythera/vars"
)

type DumpFormat string

var dumpFormatFlag = cmds.Var[string]("-format")

func (Module) DumpFormat(
	loader configs.Loader,
) DumpFormat {
	return DumpFormat(vars.FirstNonZero(
		*dumpFormatFlag,
		configs.First[string](loader, "dump_format"),
		"sexpr",
	))
}

type LogLevel string

func (Module) LogLevel(
	loader configs.Loader,
) LogLevel {
	return LogLevel(configs.First[string](loader, "log_level"))
}

type WatchDebounce time.Duration

const defaultWatchDebounce = 200 * time.Millisecond

var watchDebounceFlag = cmds.Var[time.Duration]("-debounce")

func (Module) WatchDebounce(
	loader configs.Loader,
) WatchDebounce {
	if *watchDebounceFlag > 0 {
		return WatchDebounce(*watchDebounceFlag)
	}
	if ms, ok := firstInt(loader, "watch_debounce_ms"); ok {
		return WatchDebounce(time.Duration(ms) * time.Millisecond)
	}
	return WatchDebounce(defaultWatchDebounce)
}

// firstInt distinguishes an explicit 0 from an absent key.
func firstInt(loader configs.Loader, path string) (int, bool) {
	ptr := configs.First[*int](loader, path)
	if ptr == nil {
		return 0, false
	}
	return *ptr, true
}

// LanguageConstraint is a semver constraint on the accepted language version, like "^0.1".
type LanguageConstraint string

var languageFlag = cmds.Var[string]("-language")

func (Module) LanguageConstraint(
	loader configs.Loader,
) LanguageConstraint {
	return LanguageConstraint(vars.FirstNonZero(
		*languageFlag,
		configs.First[string](loader, "language"),
	))
}

// Check reports whether version satisfies the constraint. An empty constraint accepts anything.
func (l LanguageConstraint) Check(version string) error {
	if l == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(string(l))
	if err != nil {
		return fmt.Errorf("parse language constraint %q: %w", string(l), err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("parse language version %q: %w", version, err)
	}
	if ok, errs := constraint.Validate(v); !ok {
		if len(errs) > 0 {
			return fmt.Errorf("language version %s does not satisfy %s: %w", version, string(l), errs[0])
		}
		return fmt.Errorf("language version %s does not satisfy %s", version, string(l))
	}
	return nil
}
