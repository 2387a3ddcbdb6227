// Package closeto compares floating-point values at a decimal precision.
//
// Two values are "close to" each other, at precision p, if their absolute
// difference is no greater than half a unit in the p-th decimal place, i.e.
// `10**-p / 2`. This is the same as asking whether both values round to the
// same thing at p decimal places, give or take the usual floating point
// slop. Anything not close is "far from".
//
// The threshold is always calculated in the type of the left (reference)
// value, meaning float32 comparisons use float32 arithmetic, and that very
// large precisions will overflow to a threshold of zero, e.g. precision 39
// for float32, and 309 for float64. This is intentional.
//
// Boolean ([CloseTo], [FarFrom]), error ([CheckCloseTo], [CheckFarFrom]), and
// panicking ([AssertCloseTo], [AssertFarFrom]) variants are provided, as well
// as the [Float32] and [Float64] types, for method-style calls.
package closeto
