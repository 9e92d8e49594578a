package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// OptionsBlock represents the content of the 'options' block within a run.
// Its body is decoded later into the solver's own options struct.
type OptionsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Run represents a `run` block: one input file and the parts to solve on it.
type Run struct {
	Name     string         `hcl:"name,label"`
	File     string         `hcl:"file"`
	Parts    hcl.Expression `hcl:"parts,optional"`
	Part1    hcl.Expression `hcl:"part1,optional"`
	Part2    hcl.Expression `hcl:"part2,optional"`
	Optional bool           `hcl:"optional,optional"`
	Options  *OptionsBlock  `hcl:"options,block"`
}

// Puzzle represents a `puzzle` block naming one day's solver and its runs.
type Puzzle struct {
	Name  string `hcl:"name,label"`
	Title string `hcl:"title,optional"`
	URL   string `hcl:"url,optional"`
	Runs  []*Run `hcl:"run,block"`
}

// File represents the top-level structure of a manifest file.
type File struct {
	Puzzles []*Puzzle `hcl:"puzzle,block"`
	Remain  hcl.Body  `hcl:",remain"`
}
