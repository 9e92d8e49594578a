package day11

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
	require.Len(t, in.Galaxies, 9)

	p1, err := Part1(in, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 374, p1)

	p2, err := Part2(in, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 82000210, p2)
}

func TestExpansionFactors(t *testing.T) {
	in := parseSample(t)

	testCases := []struct {
		factor int
		want   int
	}{
		{1, 292},
		{2, 374},
		{10, 1030},
		{100, 8410},
	}
	for _, tc := range testCases {
		got, err := Part2(in, Options{Expansion: tc.factor})
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "factor %d", tc.factor)
	}
}

func TestInvalidFactor(t *testing.T) {
	_, err := Part2(parseSample(t), Options{Expansion: 0})
	require.Error(t, err)
}

func TestParse_UnexpectedByte(t *testing.T) {
	_, err := Parse(strings.NewReader("..#\n.x.\n"))
	require.ErrorContains(t, err, "unexpected")
}
