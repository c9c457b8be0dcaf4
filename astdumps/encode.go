package astdumps

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/kythera/kylang"
	"gopkg.in/yaml.v3"
)

const (
	FormatSexpr = "sexpr"
	FormatYAML  = "yaml"
)

var ErrUnknownFormat = errors.New("unknown dump format")

func Encode(w io.Writer, format string, nodes []kylang.Node) error {
	switch format {

	case FormatSexpr, "":
		for _, node := range nodes {
			if _, err := fmt.Fprintln(w, node.String()); err != nil {
				return err
			}
		}
		return nil

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(Trees(nodes)); err != nil {
			return err
		}
		return encoder.Close()

	}

	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}
