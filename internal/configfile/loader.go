package configfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/declcli/internal/config"
	"github.com/vk/declcli/internal/ctxlog"
	"github.com/vk/declcli/internal/fsutil"
	"github.com/vk/declcli/internal/hcl"
)

// BaseName is the file name looked up first when the path is a directory.
const BaseName = "declcli"

// Format names a supported document syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

var extensions = []string{".toml", ".hcl", ".yaml", ".yml"}

// FormatOf returns the format implied by path's extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Loader reads and validates command documents from the file system.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (*config.CommandNode, error) {
	logger := ctxlog.FromContext(ctx)

	file, err := Locate(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loading configuration.", "path", file, "format", FormatOf(file))

	src, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	root, err := Decode(ctx, file, src)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(root); err != nil {
		return nil, fmt.Errorf("invalid configuration %s:\n%w", file, err)
	}

	logger.Debug("Configuration loaded.", "path", file, "root", root.Name, "subcommands", len(root.Subcommands))
	return root, nil
}

// Decode parses src in the format implied by filename.
func Decode(ctx context.Context, filename string, src []byte) (*config.CommandNode, error) {
	switch FormatOf(filename) {
	case FormatHCL:
		return hcl.Decode(ctx, filename, src)
	case FormatYAML:
		return decodeYAML(filename, src)
	default:
		return decodeTOML(filename, src)
	}
}

// Locate resolves path to a single document. A regular file is returned as
// is. In a directory, declcli.<ext> wins; otherwise exactly one supported
// file must exist below it.
func Locate(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read configuration: %w", err)
	}
	if !info.IsDir() {
		return path, nil
	}

	for _, ext := range extensions {
		candidate := filepath.Join(path, BaseName+ext)
		if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
			return candidate, nil
		}
	}

	found, err := fsutil.FindFilesByExtension(path, extensions...)
	if err != nil {
		return "", fmt.Errorf("failed to search %s for a configuration file: %w", path, err)
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("no configuration file found in %s", path)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("found %d configuration files in %s (%s); name one explicitly", len(found), path, strings.Join(found, ", "))
	}
}
