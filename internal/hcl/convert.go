package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/declcli/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// defaultString evaluates a default_value expression without any variables
// and converts the primitive result to its string form. A missing or null
// value means no default.
func defaultString(ctx context.Context, expr hcl.Expression) (*string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("default_value must be a constant: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsPrimitiveType() {
		return nil, fmt.Errorf("default_value must be a string, number or bool, got %s", val.Type().FriendlyName())
	}

	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return nil, fmt.Errorf("cannot convert default_value to string: %w", err)
	}
	if !val.Type().Equals(cty.String) {
		ctxlog.FromContext(ctx).Debug("Converted default value to string.", "from", val.Type().FriendlyName())
	}

	s := converted.AsString()
	return &s, nil
}
