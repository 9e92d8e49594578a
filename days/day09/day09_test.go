package day09

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()

	in, err := Parse(f)
	require.NoError(t, err)

	p1, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, 114, p1)

	p2, err := Part2(in)
	require.NoError(t, err)
	assert.Equal(t, 2, p2)
}

func TestExtrapolate(t *testing.T) {
	testCases := []struct {
		seq  []int
		want int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18},
		{[]int{1, 3, 6, 10, 15, 21}, 28},
		{[]int{10, 13, 16, 21, 30, 45}, 68},
		{[]int{0, 0, 0}, 0},
		{[]int{5, 5}, 5},
		{[]int{-2, -4, -6}, -8},
		// The last difference row never reaches zero with two values.
		{[]int{1, 4}, 7},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Extrapolate(tc.seq), "seq %v", tc.seq)
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2 3\n4\n"))
	require.ErrorIs(t, err, ErrShortHistory)

	_, err = Parse(strings.NewReader("1 2 x\n"))
	require.Error(t, err)
}
