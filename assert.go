package closeto

import (
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

const (
	strNaN    = "NaN"
	strPosInf = "Infinity"
	strNegInf = "-Infinity"
	strNil    = "<nil>"

	assertionClose = "left ≈ right"
	assertionFar   = "left != right"
)

// ToleranceError models a failed [CheckCloseTo] or [CheckFarFrom], and is the
// value [AssertCloseTo] and [AssertFarFrom] panic with.
type ToleranceError[T, U constraints.Float] struct {
	Left         T
	Right        U
	ReceivedDiff T
	ExpectedDiff T
	Precision    int
	// Far indicates the values were expected to be far from each other, i.e.
	// the failure was from [CheckFarFrom].
	Far bool
}

// CheckCloseTo returns nil if [CloseTo] is true, otherwise a
// [*ToleranceError].
func CheckCloseTo[T, U constraints.Float](left T, right U, precision int) error {
	if ok, expected, received := CloseToDiff(left, right, precision); !ok {
		return &ToleranceError[T, U]{
			Left:         left,
			Right:        right,
			ReceivedDiff: received,
			ExpectedDiff: expected,
			Precision:    precision,
		}
	}
	return nil
}

// CheckFarFrom returns nil if [FarFrom] is true, otherwise a
// [*ToleranceError].
func CheckFarFrom[T, U constraints.Float](left T, right U, precision int) error {
	if ok, expected, received := FarFromDiff(left, right, precision); !ok {
		return &ToleranceError[T, U]{
			Left:         left,
			Right:        right,
			ReceivedDiff: received,
			ExpectedDiff: expected,
			Precision:    precision,
			Far:          true,
		}
	}
	return nil
}

// AssertCloseTo panics with a [*ToleranceError] if left is not close to
// right, see [CheckCloseTo].
func AssertCloseTo[T, U constraints.Float](left T, right U, precision int) {
	if err := CheckCloseTo(left, right, precision); err != nil {
		panic(err)
	}
}

// AssertFarFrom panics with a [*ToleranceError] if left is not far from
// right, see [CheckFarFrom].
func AssertFarFrom[T, U constraints.Float](left T, right U, precision int) {
	if err := CheckFarFrom(left, right, precision); err != nil {
		panic(err)
	}
}

// Assertion returns the failed assertion, either `left ≈ right` or
// `left != right`.
func (x *ToleranceError[T, U]) Assertion() string {
	if x.Far {
		return assertionFar
	}
	return assertionClose
}

// Error renders a multi-line message, labeling each value, e.g.
//
//	closeto: assertion `left ≈ right` failed
//	         left: 1
//	        right: 1.0001
//	received_diff: 9.999999999998899e-05
//	expected_diff: 5e-05
func (x *ToleranceError[T, U]) Error() string {
	if x == nil {
		return strNil
	}
	b := make([]byte, 0, 128)
	b = append(b, "closeto: assertion `"...)
	b = append(b, x.Assertion()...)
	b = append(b, "` failed\n         left: "...)
	b = appendFloat(b, x.Left)
	b = append(b, "\n        right: "...)
	b = appendFloat(b, x.Right)
	b = append(b, "\nreceived_diff: "...)
	b = appendFloat(b, x.ReceivedDiff)
	b = append(b, "\nexpected_diff: "...)
	b = appendFloat(b, x.ExpectedDiff)
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// MarshalJSON encodes the error as an object, keyed by the same labels as
// [ToleranceError.Error]. Non-finite values are encoded as strings.
func (x *ToleranceError[T, U]) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte(`null`), nil
	}
	b := make([]byte, 0, 128)
	b = append(b, `{"assertion":`...)
	b = strconv.AppendQuote(b, x.Assertion())
	b = append(b, `,"left":`...)
	b = appendJSONFloat(b, x.Left)
	b = append(b, `,"right":`...)
	b = appendJSONFloat(b, x.Right)
	b = append(b, `,"received_diff":`...)
	b = appendJSONFloat(b, x.ReceivedDiff)
	b = append(b, `,"expected_diff":`...)
	b = appendJSONFloat(b, x.ExpectedDiff)
	b = append(b, `,"precision":`...)
	b = strconv.AppendInt(b, int64(x.Precision), 10)
	b = append(b, '}')
	return b, nil
}

// appendFloat uses the shortest representation that round trips, for the
// width of F, e.g. float32(1.0001) renders as 1.0001, not 1.000100016593933.
func appendFloat[F constraints.Float](b []byte, v F) []byte {
	return strconv.AppendFloat(b, float64(v), 'g', -1, bitSize[F]())
}

func appendJSONFloat[F constraints.Float](b []byte, v F) []byte {
	switch f := float64(v); {
	case math.IsNaN(f):
		return append(b, `"`+strNaN+`"`...)
	case math.IsInf(f, 1):
		return append(b, `"`+strPosInf+`"`...)
	case math.IsInf(f, -1):
		return append(b, `"`+strNegInf+`"`...)
	}
	return appendFloat(b, v)
}

func bitSize[F constraints.Float]() int {
	var v F
	return int(unsafe.Sizeof(v)) * 8
}
