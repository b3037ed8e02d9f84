package wheel

import (
	num "github.com/shabbyrobe/go-num"
)

// Signed matches the built-in signed integer types usable as fraction
// scalars.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Ring is the capability set required of a scalar type backing Fraction:
// the two identities, addition, negation, multiplication, exact division
// (for gcd reduction), remainder (for the Euclidean algorithm) and strict
// ordering. Equality comes from the comparable constraint on the scalar.
//
// Implementations use plain wrapping arithmetic. Overflow during
// cross-multiplication or gcd is a resource limit of the chosen width, not
// a wheel error; callers needing headroom pick a wider ring, and a checked
// or saturating Ring implementation is the place to change that policy.
type Ring[T any] interface {
	Zero() T
	One() T
	FromInt64(v int64) T
	Add(x, y T) T
	Neg(x T) T
	Mul(x, y T) T
	Quo(x, y T) T
	Rem(x, y T) T
	Less(x, y T) bool
}

// IntRing implements Ring once for all built-in signed integer widths.
type IntRing[T Signed] struct{}

func (IntRing[T]) Zero() T             { return 0 }
func (IntRing[T]) One() T              { return 1 }
func (IntRing[T]) FromInt64(v int64) T { return T(v) }
func (IntRing[T]) Add(x, y T) T        { return x + y }
func (IntRing[T]) Neg(x T) T           { return -x }
func (IntRing[T]) Mul(x, y T) T        { return x * y }
func (IntRing[T]) Quo(x, y T) T        { return x / y }
func (IntRing[T]) Rem(x, y T) T        { return x % y }
func (IntRing[T]) Less(x, y T) bool    { return x < y }

// Int128Ring implements Ring over num.I128, the 128-bit signed integer
// from shabbyrobe/go-num. I128 is a comparable two-word struct with a
// canonical representation, so == on it is exact equality.
type Int128Ring struct{}

func (Int128Ring) Zero() num.I128             { return num.I128{} }
func (Int128Ring) One() num.I128              { return num.I128From64(1) }
func (Int128Ring) FromInt64(v int64) num.I128 { return num.I128From64(v) }
func (Int128Ring) Add(x, y num.I128) num.I128 { return x.Add(y) }
func (Int128Ring) Neg(x num.I128) num.I128    { return x.Neg() }
func (Int128Ring) Mul(x, y num.I128) num.I128 { return x.Mul(y) }
func (Int128Ring) Quo(x, y num.I128) num.I128 { return x.Quo(y) }
func (Int128Ring) Rem(x, y num.I128) num.I128 { return x.Rem(y) }
func (Int128Ring) Less(x, y num.I128) bool    { return x.LessThan(y) }

// gcd computes the greatest common divisor by the Euclidean algorithm on
// absolute values. gcd(0, 0) is defined as ONE so callers can divide by
// the result unconditionally.
func gcd[T comparable, R Ring[T]](a, b T) T {
	var r R
	zero := r.Zero()
	a, b = abs[T, R](a), abs[T, R](b)
	for b != zero {
		a, b = b, r.Rem(a, b)
	}
	if a == zero {
		return r.One()
	}
	return a
}

func abs[T comparable, R Ring[T]](x T) T {
	var r R
	if r.Less(x, r.Zero()) {
		return r.Neg(x)
	}
	return x
}
