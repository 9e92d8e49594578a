// Package mathx contains the generic integer helpers the puzzles share.
package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// AbsDiff returns |a - b| without underflowing unsigned types.
func AbsDiff[T Number](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Sum adds up nums.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, n := range nums {
		sum += n
	}
	return sum
}

// Product multiplies nums together. The product of no numbers is 1.
func Product[T Number](nums ...T) T {
	out := T(1)
	for _, n := range nums {
		out *= n
	}
	return out
}

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of nums, or 0 when nums is empty.
func LCM[T constraints.Integer](nums ...T) T {
	if len(nums) == 0 {
		return 0
	}
	out := nums[0]
	for _, n := range nums[1:] {
		out = out / GCD(out, n) * n
	}
	return out
}

// QuadraticRoots returns the real roots lo <= hi of a*x^2 + b*x + c = 0.
// ok is false when the discriminant is negative or a is zero.
func QuadraticRoots(a, b, c float64) (lo, hi float64, ok bool) {
	if a == 0 {
		return 0, 0, false
	}
	d := b*b - 4*a*c
	if d < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(d)
	lo, hi = (-b-sq)/(2*a), (-b+sq)/(2*a)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}
