package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/declcli/internal/config"
	"github.com/vk/declcli/internal/ctxlog"
	"github.com/vk/declcli/internal/schema"
)

// Decode parses src as an HCL command document. filename is used in
// diagnostics only.
func Decode(ctx context.Context, filename string, src []byte) (*config.CommandNode, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL decoding started.", "file", filename)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root schema.Command
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	node, err := translateCommand(ctx, &root, nil)
	if err != nil {
		return nil, fmt.Errorf("in HCL file %s: %w", filename, err)
	}
	logger.Debug("HCL decoding complete.", "file", filename)
	return node, nil
}
