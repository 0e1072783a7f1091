package atlaspack

// Scalar is the set of signed numeric types the packer operates on.
//
// Dimensional unit safety is achieved with defined types: declare
// `type Pixels int` (or millimeters, points, ...) and instantiate the
// packer with it. The compiler then rejects any attempt to mix values
// of incompatible units.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Length is an extent that is either a finite non-negative scalar or
// explicitly unbounded. It is used only for free-region dimensions; an
// explicit tag avoids the overflow and comparison bugs that a sentinel
// numeric constant invites.
type Length[S Scalar] struct {
	value     S
	unbounded bool
}

// Finite returns a bounded length of the given value.
func Finite[S Scalar](v S) Length[S] {
	return Length[S]{value: v}
}

// Unbounded returns a length with no upper bound.
func Unbounded[S Scalar]() Length[S] {
	return Length[S]{unbounded: true}
}

// IsUnbounded reports whether the length has no upper bound.
func (l Length[S]) IsUnbounded() bool {
	return l.unbounded
}

// Value returns the finite value of the length. Only meaningful when
// IsUnbounded is false.
func (l Length[S]) Value() S {
	return l.value
}

// Sub shrinks the length by v. Subtracting from an unbounded length
// leaves it unbounded.
func (l Length[S]) Sub(v S) Length[S] {
	if l.unbounded {
		return l
	}
	return Length[S]{value: l.value - v}
}

// AtLeast reports whether the length can accommodate v. An unbounded
// length accommodates anything.
func (l Length[S]) AtLeast(v S) bool {
	return l.unbounded || l.value >= v
}

// Positive reports whether the length has usable extent.
func (l Length[S]) Positive() bool {
	return l.unbounded || l.value > 0
}

// absScalar returns the absolute value of v.
func absScalar[S Scalar](v S) S {
	if v < 0 {
		return -v
	}
	return v
}

// nextPowerOfTwo rounds v up to the nearest power of two. Values of
// zero or less map to zero.
func nextPowerOfTwo[S Scalar](v S) S {
	if v <= 0 {
		return 0
	}
	p := S(1)
	for p < v {
		p += p
	}
	return p
}
