package kyconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/kythera/configs"
	"github.com/reusee/kythera/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"ky.cue",
	".ky.cue",
}

// ConfigsLoader collects config files from the working directory, the user
// config directory and /etc, in that order of precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var paths []string

	if workingDir, err := os.Getwd(); err == nil {
		paths = append(paths, existing(workingDir)...)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, existing(configDir)...)
	}
	paths = append(paths, existing("/etc")...)

	if len(paths) > 0 {
		logger.Debug("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func existing(dir string) (ret []string) {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			ret = append(ret, path)
		}
	}
	return
}
