package day03

import "github.com/specialistvlad/aoc2023/internal/registry"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the day's solver with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSolver(registry.NewSolver("day03", Parse, Part1, Part2))
}
