// Package hcl provides the concrete HCL implementation for the manifest
// loading and option binding interfaces defined in the `config` package.
// It is responsible for file discovery, HCL-to-model translation, and
// decoding `options` blocks into solver structs.
package hcl
