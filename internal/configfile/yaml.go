package configfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vk/declcli/internal/config"
	"gopkg.in/yaml.v3"
)

func decodeYAML(filename string, src []byte) (*config.CommandNode, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", filename, err)
	}

	root, err := doc.toModel("")
	if err != nil {
		return nil, fmt.Errorf("in YAML file %s: %w", filename, err)
	}
	return root, nil
}
