// Package schema holds the gohcl-tagged structs that mirror the blocks of a
// puzzle manifest file.
package schema
