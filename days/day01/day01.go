// Package day01 solves "Trebuchet?!": recovering calibration values from
// the first and last digit of each line.
package day01

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/aoc2023/internal/textinput"
)

// Input is the calibration document, one entry per line.
type Input struct {
	Lines []string
}

// digits maps every token that counts as a digit in part 1.
var digits = map[string]int{
	"1": 1, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
}

// spelled extends digits with the words part 2 also accepts.
var spelled = map[string]int{
	"1": 1, "one": 1,
	"2": 2, "two": 2,
	"3": 3, "three": 3,
	"4": 4, "four": 4,
	"5": 5, "five": 5,
	"6": 6, "six": 6,
	"7": 7, "seven": 7,
	"8": 8, "eight": 8,
	"9": 9, "nine": 9,
}

// Parse reads the calibration document.
func Parse(r io.Reader) (*Input, error) {
	lines, err := textinput.Lines(r)
	if err != nil {
		return nil, err
	}
	return &Input{Lines: lines}, nil
}

// Part1 sums the calibration values using numeric digits only.
func Part1(in *Input) (int, error) {
	return sumCalibration(in.Lines, digits)
}

// Part2 sums the calibration values counting spelled-out digits too.
func Part2(in *Input) (int, error) {
	return sumCalibration(in.Lines, spelled)
}

func sumCalibration(lines []string, tokens map[string]int) (int, error) {
	sum := 0
	for i, line := range lines {
		v, err := calibrationValue(line, tokens)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += v
	}
	return sum, nil
}

// calibrationValue combines the first and last digit found in line. Tokens
// are matched at every offset, so overlapping words like "eightwo" yield
// both 8 and 2.
func calibrationValue(line string, tokens map[string]int) (int, error) {
	first, last := -1, -1
	for i := range line {
		suffix := line[i:]
		for token, v := range tokens {
			if strings.HasPrefix(suffix, token) {
				if first < 0 {
					first = v
				}
				last = v
				break
			}
		}
	}
	if first < 0 {
		return 0, fmt.Errorf("no digit in %q", line)
	}
	return first*10 + last, nil
}
