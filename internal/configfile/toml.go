package configfile

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vk/declcli/internal/config"
)

func decodeTOML(filename string, src []byte) (*config.CommandNode, error) {
	var doc document
	md, err := toml.Decode(string(src), &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML file %s: %w", filename, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in TOML file %s: %s", filename, strings.Join(keys, ", "))
	}

	root, err := doc.toModel("")
	if err != nil {
		return nil, fmt.Errorf("in TOML file %s: %w", filename, err)
	}
	return root, nil
}
