// Package textinput holds the small readers every puzzle parser starts
// from: whole lines, blank-line separated blocks and whitespace separated
// integer fields.
package textinput

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrEmptyInput is returned when a reader holds no non-blank lines.
var ErrEmptyInput = errors.New("empty input")

// maxLineSize bounds a single line; day 15 inputs are one long line.
const maxLineSize = 1 << 20

// Lines reads r to the end and returns its lines with line endings (LF or
// CRLF) removed. Trailing blank lines are dropped.
func Lines(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for s.Scan() {
		lines = append(lines, strings.TrimSuffix(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	return lines, nil
}

// Blocks reads r and groups its lines into blocks separated by one or more
// blank lines.
func Blocks(r io.Reader) ([][]string, error) {
	lines, err := Lines(r)
	if err != nil {
		return nil, err
	}

	var blocks [][]string
	var cur []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks, nil
}

// Ints parses the whitespace separated integers in s.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// CutPrefix removes prefix from s, reporting an error naming the expected
// prefix when it is missing.
func CutPrefix(s, prefix string) (string, error) {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return "", fmt.Errorf("expected %q prefix in %q", prefix, s)
	}
	return rest, nil
}
