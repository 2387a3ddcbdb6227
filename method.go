package closeto

type (
	// Comparer is implemented by values that support [CloseTo] and [FarFrom]
	// as methods, e.g. [Float32] and [Float64].
	Comparer[T any] interface {
		CloseTo(other T, precision int) bool
		FarFrom(other T, precision int) bool
	}

	// Asserter is implemented by values that support [AssertCloseTo] and
	// [AssertFarFrom] as methods, e.g. [Float32] and [Float64].
	Asserter[T any] interface {
		AssertCloseTo(other T, precision int)
		AssertFarFrom(other T, precision int)
	}

	// Float32 is a float32 implementing [Comparer] and [Asserter].
	Float32 float32

	// Float64 is a float64 implementing [Comparer] and [Asserter].
	Float64 float64
)

var (
	_ Comparer[Float32] = Float32(0)
	_ Asserter[Float32] = Float32(0)
	_ Comparer[Float64] = Float64(0)
	_ Asserter[Float64] = Float64(0)
)

func (x Float32) CloseTo(other Float32, precision int) bool {
	return CloseTo(x, other, precision)
}

func (x Float32) FarFrom(other Float32, precision int) bool {
	return FarFrom(x, other, precision)
}

func (x Float32) AssertCloseTo(other Float32, precision int) {
	AssertCloseTo(x, other, precision)
}

func (x Float32) AssertFarFrom(other Float32, precision int) {
	AssertFarFrom(x, other, precision)
}

func (x Float64) CloseTo(other Float64, precision int) bool {
	return CloseTo(x, other, precision)
}

func (x Float64) FarFrom(other Float64, precision int) bool {
	return FarFrom(x, other, precision)
}

func (x Float64) AssertCloseTo(other Float64, precision int) {
	AssertCloseTo(x, other, precision)
}

func (x Float64) AssertFarFrom(other Float64, precision int) {
	AssertFarFrom(x, other, precision)
}
