package hcl

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/aoc2023/internal/config"
	"github.com/specialistvlad/aoc2023/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var defaultParts = []int{1, 2}

// translatePuzzle converts the HCL-specific puzzle schema into the agnostic model.
func (l *Loader) translatePuzzle(source string, p *schema.Puzzle) (*config.Puzzle, error) {
	out := &config.Puzzle{
		Name:   p.Name,
		Title:  p.Title,
		URL:    p.URL,
		Source: source,
	}
	dir := filepath.Dir(source)
	seen := make(map[string]struct{})

	for _, r := range p.Runs {
		if _, dup := seen[r.Name]; dup {
			return nil, fmt.Errorf("puzzle %q: duplicate run %q", p.Name, r.Name)
		}
		seen[r.Name] = struct{}{}

		run, err := l.translateRun(dir, r)
		if err != nil {
			return nil, fmt.Errorf("puzzle %q, run %q: %w", p.Name, r.Name, err)
		}
		out.Runs = append(out.Runs, run)
	}
	return out, nil
}

// translateRun converts a run block, resolving its file against dir and
// evaluating the static expressions it carries.
func (l *Loader) translateRun(dir string, r *schema.Run) (*config.Run, error) {
	file := r.File
	if !filepath.IsAbs(file) {
		file = filepath.Join(dir, file)
	}

	parts, err := decodeParts(r.Parts)
	if err != nil {
		return nil, err
	}

	want := make(map[int]cty.Value)
	for part, expr := range map[int]hcl.Expression{1: r.Part1, 2: r.Part2} {
		v, err := decodeAnswer(expr)
		if err != nil {
			return nil, fmt.Errorf("part%d: %w", part, err)
		}
		if !v.IsNull() {
			want[part] = v
		}
	}

	run := &config.Run{
		Name:     r.Name,
		File:     file,
		Parts:    parts,
		Want:     want,
		Optional: r.Optional,
	}
	if r.Options != nil {
		run.Options = r.Options.Body
	}
	return run, nil
}

// decodeParts evaluates the optional `parts` list. An absent list means both parts.
func decodeParts(expr hcl.Expression) ([]int, error) {
	if expr == nil {
		return defaultParts, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return defaultParts, nil
	}

	listVal, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("parts must be a list of numbers: %w", err)
	}
	var parts []int
	if err := gocty.FromCtyValue(listVal, &parts); err != nil {
		return nil, fmt.Errorf("parts: %w", err)
	}
	for _, p := range parts {
		if p != 1 && p != 2 {
			return nil, fmt.Errorf("parts may only contain 1 and 2, got %d", p)
		}
	}
	return parts, nil
}

// decodeAnswer evaluates an expected answer. Numbers and numeric strings are
// accepted; the result is always a known cty.Number or null.
func decodeAnswer(expr hcl.Expression) (cty.Value, error) {
	if expr == nil {
		return cty.NullVal(cty.Number), nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	if val.IsNull() {
		return cty.NullVal(cty.Number), nil
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return cty.NilVal, fmt.Errorf("expected answer must be a number: %w", err)
	}
	return num, nil
}
