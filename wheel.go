// Package wheel implements wheel algebra: a total extension of field
// arithmetic in which every operation, including division by zero, produces
// a defined value. The price is that some familiar field laws only hold up
// to a correction term (x-x is not always 0, x/x is not always 1).
//
// Two representations are provided: an approximate wheel over the native
// floating-point types (Wheel32, Wheel64) and an exact wheel of ratios over
// a signed integer ring (Fraction, with widths from 8 to 128 bits). Both
// are immutable value types, safe for concurrent use without coordination.
package wheel

import "fmt"

// Class identifies which of the four disjoint wheel classes a value belongs
// to. Classification is total: every representable value falls into exactly
// one class.
type Class uint8

const (
	// ClassNormal is an ordinary nonzero, finite value.
	ClassNormal Class = iota
	// ClassZero is the additive identity. There is no signed zero.
	ClassZero
	// ClassInfinity is the single unsigned infinity.
	ClassInfinity
	// ClassBottom is the absorbing undefined value, 0/0. It is still a
	// number and participates in calculations.
	ClassBottom
)

func (c Class) String() string {
	switch c {
	case ClassNormal:
		return "Normal"
	case ClassZero:
		return "Zero"
	case ClassInfinity:
		return "Infinity"
	case ClassBottom:
		return "Bottom"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Wheel is the contract shared by every representation. All operations are
// total; none can fail. Each representation additionally supplies its four
// distinguished values Zero, One, Infinity and Bottom as package-level
// values (Zero64, Q32One, ...), since Go interfaces carry no constants.
type Wheel[W any] interface {
	Add(W) W
	Neg() W
	// Sub is defined as a + (-b). x.Sub(x) is not Zero for every x.
	Sub(W) W
	Mul(W) W
	// Inv is always defined. It is an involution, not the multiplicative
	// inverse in the classical sense.
	Inv() W
	// Div is defined as a * inv(b). x.Div(x) is not One for every x.
	Div(W) W
	Class() Class
	Eq(W) bool
}

// Sub returns a - b, defined as a + (-b).
func Sub[W Wheel[W]](a, b W) W {
	return a.Add(b.Neg())
}

// Div returns a / b, defined as a * inv(b). Division by Zero yields
// Infinity (or Bottom for 0/0), never an error.
func Div[W Wheel[W]](a, b W) W {
	return a.Mul(b.Inv())
}
