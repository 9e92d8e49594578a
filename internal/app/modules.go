package app

import (
	"github.com/specialistvlad/aoc2023/days/day01"
	"github.com/specialistvlad/aoc2023/days/day02"
	"github.com/specialistvlad/aoc2023/days/day03"
	"github.com/specialistvlad/aoc2023/days/day04"
	"github.com/specialistvlad/aoc2023/days/day05"
	"github.com/specialistvlad/aoc2023/days/day06"
	"github.com/specialistvlad/aoc2023/days/day07"
	"github.com/specialistvlad/aoc2023/days/day08"
	"github.com/specialistvlad/aoc2023/days/day09"
	"github.com/specialistvlad/aoc2023/days/day10"
	"github.com/specialistvlad/aoc2023/days/day11"
	"github.com/specialistvlad/aoc2023/days/day13"
	"github.com/specialistvlad/aoc2023/days/day14"
	"github.com/specialistvlad/aoc2023/days/day15"
	"github.com/specialistvlad/aoc2023/days/day16"
	"github.com/specialistvlad/aoc2023/internal/registry"
)

// coreModules is the definitive list of all days that are compiled into
// the aoc2023 binary.
var coreModules = []registry.Module{
	&day01.Module{},
	&day02.Module{},
	&day03.Module{},
	&day04.Module{},
	&day05.Module{},
	&day06.Module{},
	&day07.Module{},
	&day08.Module{},
	&day09.Module{},
	&day10.Module{},
	&day11.Module{},
	&day13.Module{},
	&day14.Module{},
	&day15.Module{},
	&day16.Module{},
}
