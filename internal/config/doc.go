// Package config defines the format-agnostic puzzle manifest model, along
// with the Loader and Converter interfaces used to read manifests and bind
// their option blocks to Go structs.
//
// The `config.Model` is the single source of truth for the registry and the
// executor. The HCL implementation lives in the `hcl` package.
package config
