package day13

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/aoc2023/internal/grid"
)

func TestSample(t *testing.T) {
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()

	in, err := Parse(f)
	require.NoError(t, err)
	require.Len(t, in.Patterns, 2)

	// The first pattern mirrors between columns 5 and 6, the second
	// between rows 4 and 5.
	k, ok := reflectionRow(in.Patterns[0].Transpose(), 0)
	require.True(t, ok)
	assert.Equal(t, 5, k)
	k, ok = reflectionRow(in.Patterns[1], 0)
	require.True(t, ok)
	assert.Equal(t, 4, k)

	p1, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, 405, p1)

	p2, err := Part2(in)
	require.NoError(t, err)
	assert.Equal(t, 400, p2)
}

func TestParse_CRLF(t *testing.T) {
	in, err := Parse(strings.NewReader("#.\r\n#.\r\n\r\n..\r\n##\r\n"))
	require.NoError(t, err)
	require.Len(t, in.Patterns, 2)
	assert.Equal(t, "#.\n#.\n", grid.Format(in.Patterns[0]))
}

func TestReflectionRow(t *testing.T) {
	g, err := grid.FromLines([]string{"#..", "..#", "..#", "#.."})
	require.NoError(t, err)

	k, ok := reflectionRow(g, 0)
	require.True(t, ok)
	assert.Equal(t, 2, k)

	_, ok = reflectionRow(g.Transpose(), 0)
	assert.False(t, ok)
}

func TestNoReflection(t *testing.T) {
	in, err := Parse(strings.NewReader("#.\n.#\n"))
	require.NoError(t, err)

	_, err = Part1(in)
	require.ErrorIs(t, err, ErrNoReflection)
}
