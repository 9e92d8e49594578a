package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/aoc2023/internal/config"
	"github.com/specialistvlad/aoc2023/internal/ctxlog"
	"github.com/specialistvlad/aoc2023/internal/fsutil"
	"github.com/specialistvlad/aoc2023/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths and merges their puzzle
// blocks into a single model. Declaring the same puzzle twice is an error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{Puzzles: make(map[string]*config.Puzzle)}

	files, err := l.findManifests(paths)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no .hcl manifests found in %v", paths)
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.File
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, p := range root.Puzzles {
			puzzle, err := l.translatePuzzle(file, p)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", file, err)
			}
			if prev, dup := model.Puzzles[puzzle.Name]; dup {
				return nil, nil, fmt.Errorf("puzzle %q declared in both %s and %s", puzzle.Name, prev.Source, file)
			}
			model.Puzzles[puzzle.Name] = puzzle
		}
	}

	logger.Debug("HCL loading complete.", "puzzles", len(model.Puzzles))
	return model, NewConverter(), nil
}

// findManifests expands paths into a flat, de-duplicated list of .hcl files.
// A path may name a file directly or a directory to walk.
func (l *Loader) findManifests(paths []string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %w", path, err)
		}
		for _, f := range found {
			add(f)
		}
	}
	return out, nil
}
