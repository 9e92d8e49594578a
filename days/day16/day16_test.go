package day16

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/aoc2023/internal/grid"
)

func parseSample(t *testing.T) *Input {
	t.Helper()
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()

	in, err := Parse(f)
	require.NoError(t, err)
	return in
}

func TestSample(t *testing.T) {
	in := parseSample(t)

	p1, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, 46, p1)

	p2, err := Part2(in)
	require.NoError(t, err)
	assert.Equal(t, 51, p2)
}

func TestBestEntry(t *testing.T) {
	in := parseSample(t)
	assert.Equal(t, 51, in.Energized(Beam{Pos: grid.Pos{Row: 0, Col: 3}, Heading: grid.Down}))
}

func TestDeflect(t *testing.T) {
	testCases := []struct {
		tile byte
		in   grid.Direction
		want []grid.Direction
	}{
		{'.', grid.Up, []grid.Direction{grid.Up}},
		{'/', grid.Right, []grid.Direction{grid.Up}},
		{'/', grid.Down, []grid.Direction{grid.Left}},
		{'\\', grid.Right, []grid.Direction{grid.Down}},
		{'\\', grid.Up, []grid.Direction{grid.Left}},
		{'|', grid.Right, []grid.Direction{grid.Up, grid.Down}},
		{'|', grid.Up, []grid.Direction{grid.Up}},
		{'-', grid.Down, []grid.Direction{grid.Left, grid.Right}},
		{'-', grid.Left, []grid.Direction{grid.Left}},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, deflect(tc.tile, tc.in), "tile %q heading %v", tc.tile, tc.in)
	}
}

func TestLoopTerminates(t *testing.T) {
	in, err := Parse(strings.NewReader("-\\\n\\/\n"))
	require.NoError(t, err)

	assert.Equal(t, 4, in.Energized(Beam{Heading: grid.Right}))
}

func TestParse_UnexpectedTile(t *testing.T) {
	_, err := Parse(strings.NewReader("./\n.x\n"))
	require.ErrorContains(t, err, "unexpected tile")
}
