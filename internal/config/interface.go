package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads every manifest reachable from paths, translates them into
	// the format-agnostic model, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter binds the raw, format-specific parts of a manifest to Go values.
type Converter interface {
	// DecodeOptions decodes a run's options body into target, a pointer to
	// a solver's options struct already holding its defaults. A nil body
	// leaves target untouched.
	DecodeOptions(ctx context.Context, body hcl.Body, target any) error
}
