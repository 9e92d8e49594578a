package hcl

import (
	"context"
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/aoc2023/internal/ctxlog"
)

// Converter is the HCL-specific implementation of the config.Converter interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// DecodeOptions decodes body into target with gohcl. Attributes missing from
// body keep the values already present in target, so solvers pre-fill their
// defaults before calling.
func (c *Converter) DecodeOptions(ctx context.Context, body hcl.Body, target any) error {
	if body == nil {
		return nil
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("options target must be a non-nil pointer, got %T", target)
	}

	ctxlog.FromContext(ctx).Debug("Decoding run options.", "target_type", rv.Elem().Type().String())
	if diags := gohcl.DecodeBody(body, nil, target); diags.HasErrors() {
		return fmt.Errorf("failed to decode options: %w", diags)
	}
	return nil
}
