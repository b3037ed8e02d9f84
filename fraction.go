package wheel

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Fraction is the exact wheel over a signed integer ring: an immutable
// numerator/denominator pair kept in canonical normalized form. Canonical
// forms are Zero = (0, 1), One = (1, 1), Infinity = (1, 0) and
// Bottom = (0, 0); every other pair is gcd-reduced with a non-negative
// denominator.
//
// The zero value of the struct is (0, 0), which is Bottom.
type Fraction[T comparable, R Ring[T]] struct {
	num, den T
}

// NewFraction builds num/den and normalizes it. Every pair is accepted: a
// zero denominator yields Infinity, or Bottom when the numerator is also
// zero.
func NewFraction[T comparable, R Ring[T]](num, den T) Fraction[T, R] {
	return Fraction[T, R]{num, den}.normalize()
}

// FromInt builds the fraction v/1.
func FromInt[T comparable, R Ring[T]](v int64) Fraction[T, R] {
	var r R
	return Fraction[T, R]{r.FromInt64(v), r.One()}
}

// Zero is the additive identity, (0, 1).
func Zero[T comparable, R Ring[T]]() Fraction[T, R] {
	var r R
	return Fraction[T, R]{r.Zero(), r.One()}
}

// One is the multiplicative identity, (1, 1).
func One[T comparable, R Ring[T]]() Fraction[T, R] {
	var r R
	return Fraction[T, R]{r.One(), r.One()}
}

// Infinity is (1, 0). There is only one infinity; it is unsigned.
func Infinity[T comparable, R Ring[T]]() Fraction[T, R] {
	var r R
	return Fraction[T, R]{r.One(), r.Zero()}
}

// Bottom is (0, 0), the absorbing undefined value.
func Bottom[T comparable, R Ring[T]]() Fraction[T, R] {
	var r R
	return Fraction[T, R]{r.Zero(), r.Zero()}
}

// normalizePair reduces a raw pair toward canonical form: pairs with a zero
// component are pinned to the canonical Zero/Infinity/Bottom pairs, every
// other pair is divided by the gcd of its components.
func normalizePair[T comparable, R Ring[T]](numerator, denominator T) (T, T) {
	var r R
	zero, one := r.Zero(), r.One()
	switch {
	case numerator == zero && denominator == zero:
		return zero, zero
	case numerator == zero:
		return zero, one
	case denominator == zero:
		return one, zero
	default:
		g := gcd[T, R](numerator, denominator)
		return r.Quo(numerator, g), r.Quo(denominator, g)
	}
}

// normalize applies gcd reduction and the sign convention: the denominator
// is never negative, and a negative numerator over a zero denominator is
// forced to (1, 0) since infinity is unsigned.
func (f Fraction[T, R]) normalize() Fraction[T, R] {
	var r R
	zero := r.Zero()
	numerator, denominator := normalizePair[T, R](f.num, f.den)
	switch {
	case r.Less(denominator, zero):
		return Fraction[T, R]{r.Neg(numerator), r.Neg(denominator)}
	case denominator == zero && r.Less(numerator, zero):
		return Fraction[T, R]{r.One(), zero}
	default:
		return Fraction[T, R]{numerator, denominator}
	}
}

// Num returns the numerator of the canonical pair.
func (f Fraction[T, R]) Num() T { return f.num }

// Den returns the denominator of the canonical pair. It is never negative.
func (f Fraction[T, R]) Den() T { return f.den }

// Class derives the wheel class from which components of the canonical
// pair are zero.
func (f Fraction[T, R]) Class() Class {
	var r R
	zero := r.Zero()
	switch {
	case f.num == zero && f.den == zero:
		return ClassBottom
	case f.num == zero:
		return ClassZero
	case f.den == zero:
		return ClassInfinity
	default:
		return ClassNormal
	}
}

// Add cross-multiplies: a/b + c/d = (ad + bc)/bd. The canonical pairs for
// Zero, Infinity and Bottom make the formula total under exact arithmetic,
// so no case dispatch is needed.
func (f Fraction[T, R]) Add(other Fraction[T, R]) Fraction[T, R] {
	var r R
	numerator := r.Add(r.Mul(f.num, other.den), r.Mul(f.den, other.num))
	return Fraction[T, R]{numerator, r.Mul(f.den, other.den)}.normalize()
}

func (f Fraction[T, R]) Neg() Fraction[T, R] {
	var r R
	return Fraction[T, R]{r.Neg(f.num), f.den}.normalize()
}

// Sub is f + (-other). x.Sub(x) is not Zero for every x.
func (f Fraction[T, R]) Sub(other Fraction[T, R]) Fraction[T, R] {
	return Sub(f, other)
}

func (f Fraction[T, R]) Mul(other Fraction[T, R]) Fraction[T, R] {
	var r R
	return Fraction[T, R]{r.Mul(f.num, other.num), r.Mul(f.den, other.den)}.normalize()
}

// Inv swaps numerator and denominator. It is total: Zero inverts to
// Infinity, Infinity to Zero, and Bottom to itself.
func (f Fraction[T, R]) Inv() Fraction[T, R] {
	return Fraction[T, R]{f.den, f.num}.normalize()
}

// Div is f * inv(other). x.Div(x) is not One for every x.
func (f Fraction[T, R]) Div(other Fraction[T, R]) Fraction[T, R] {
	return Div(f, other)
}

// Eq compares canonical pairs structurally: the zero patterns of both pairs
// must agree on the class, and genuine fractions compare by
// cross-multiplication. This mirrors the class-based equality of the float
// wheel without evaluating any quotient.
func (f Fraction[T, R]) Eq(other Fraction[T, R]) bool {
	var r R
	zero := r.Zero()
	an0, bn0 := f.num == zero, other.num == zero
	ad0, bd0 := f.den == zero, other.den == zero
	switch {
	case an0 && bn0 && !ad0 && !bd0:
		return true
	case !an0 && !bn0 && ad0 && bd0:
		return true
	case an0 && bn0 && ad0 && bd0:
		return true
	case !an0 && !bn0 && !ad0 && !bd0:
		return r.Mul(f.num, other.den) == r.Mul(f.den, other.num)
	default:
		return false
	}
}

func (f Fraction[T, R]) String() string {
	var r R
	switch f.Class() {
	case ClassZero:
		return "0"
	case ClassInfinity:
		return "Inf"
	case ClassBottom:
		return "Bottom"
	}
	if f.den == r.One() {
		return fmt.Sprintf("%v", f.num)
	}
	return fmt.Sprintf("%v/%v", f.num, f.den)
}

func (f Fraction[T, R]) GoString() string {
	return fmt.Sprintf("wheel.NewFraction(%v, %v)", f.num, f.den)
}

// MarshalJSON renders the value as its String form.
func (f Fraction[T, R]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON parses the representation produced by MarshalJSON.
func (f *Fraction[T, R]) UnmarshalJSON(input []byte) error {
	var s string
	if err := json.Unmarshal(input, &s); err != nil {
		return err
	}
	parsed, err := ParseFraction[T, R](s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFraction parses the String rendering: "Inf", "Bottom", an integer,
// or "n/d". Numeric literals are limited to the int64 range even for the
// 128-bit width; wider values can only arise from arithmetic.
func ParseFraction[T comparable, R Ring[T]](s string) (Fraction[T, R], error) {
	switch s {
	case "Inf":
		return Infinity[T, R](), nil
	case "Bottom":
		return Bottom[T, R](), nil
	}
	numStr, denStr, isRatio := strings.Cut(s, "/")
	numerator, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return Fraction[T, R]{}, fmt.Errorf("parsing numerator of %q: %w", s, err)
	}
	if !isRatio {
		return FromInt[T, R](numerator), nil
	}
	denominator, err := strconv.ParseInt(denStr, 10, 64)
	if err != nil {
		return Fraction[T, R]{}, fmt.Errorf("parsing denominator of %q: %w", s, err)
	}
	var r R
	return NewFraction[T, R](r.FromInt64(numerator), r.FromInt64(denominator)), nil
}
