package closeto

import (
	"golang.org/x/exp/constraints"
)

// CloseTo returns true if left and right are within half a unit, at the
// given number of decimal places. The right value is converted to the type of
// left, prior to comparison.
//
// Negative precision is allowed, and indicates places to the left of the
// decimal point. NaN is never close to anything.
func CloseTo[T, U constraints.Float](left T, right U, precision int) bool {
	ok, _, _ := CloseToDiff(left, right, precision)
	return ok
}

// CloseToDiff is [CloseTo], but also returns the threshold (expected) and
// actual (received) differences, per [ExpectedDiff] and [ReceivedDiff].
func CloseToDiff[T, U constraints.Float](left T, right U, precision int) (ok bool, expected, received T) {
	expected = ExpectedDiff[T](precision)
	received = ReceivedDiff(left, right)
	ok = received <= expected
	return
}

// FarFrom is the logical negation of [CloseTo].
func FarFrom[T, U constraints.Float](left T, right U, precision int) bool {
	return !CloseTo(left, right, precision)
}

// FarFromDiff is the logical negation of [CloseToDiff], with the same diffs.
func FarFromDiff[T, U constraints.Float](left T, right U, precision int) (ok bool, expected, received T) {
	ok, expected, received = CloseToDiff(left, right, precision)
	ok = !ok
	return
}

// ExpectedDiff returns the maximum difference, between two values, that is
// considered close, at the given precision, calculated as `10**-precision / 2`,
// using T for all arithmetic.
func ExpectedDiff[T constraints.Float](precision int) T {
	var v T
	if precision > 0 {
		v = 1 / pow10[T](uint(precision))
	} else {
		// N.B. uint(-math.MinInt) is still the correct magnitude
		v = pow10[T](uint(-precision))
	}
	return v / 2
}

// ReceivedDiff returns the absolute difference between left and right, as T.
func ReceivedDiff[T, U constraints.Float](left T, right U) T {
	v := left - T(right)
	if v < 0 {
		v = -v
	}
	return v
}

// pow10 returns 10**n, using exponentiation by squaring, in T. Values that
// exceed the range of T will be +Inf.
func pow10[T constraints.Float](n uint) T {
	var (
		z    T = 1
		base T = 10
	)
	for n > 0 {
		if n&1 == 1 { // current bit is 1?
			z *= base
		}
		base *= base
		n >>= 1
	}
	return z
}
