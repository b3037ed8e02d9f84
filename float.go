package wheel

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Wheel32 is the approximate wheel over float32. The scalar is opaque;
// every observation goes through classification first.
type Wheel32 struct {
	v float32
}

// Wheel64 is the approximate wheel over float64.
type Wheel64 struct {
	v float64
}

// NewWheel32 wraps a float32 scalar. NaN becomes Bottom, ±Inf becomes
// Infinity and ±0 becomes Zero under classification; no input is rejected.
func NewWheel32(v float32) Wheel32 {
	return Wheel32{v}
}

// NewWheel64 wraps a float64 scalar. See NewWheel32.
func NewWheel64(v float64) Wheel64 {
	return Wheel64{v}
}

// Distinguished values of the float wheels.
var (
	Zero32     = Wheel32{0}
	One32      = Wheel32{1}
	Infinity32 = Wheel32{float32(math.Inf(1))}
	Bottom32   = Wheel32{float32(math.NaN())}

	Zero64     = Wheel64{0}
	One64      = Wheel64{1}
	Infinity64 = Wheel64{math.Inf(1)}
	Bottom64   = Wheel64{math.NaN()}
)

type floating interface {
	~float32 | ~float64
}

// classify derives the wheel class from the native floating-point category.
// Subnormals count as Normal. Widening to float64 preserves every category
// this function distinguishes.
func classify[F floating](v F) Class {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return ClassBottom
	case math.IsInf(f, 0):
		return ClassInfinity
	case f == 0:
		return ClassZero
	default:
		return ClassNormal
	}
}

// wadd is the addition dispatch table. Case order matters: the first match
// wins.
func wadd[F floating](a, b F) F {
	ca, cb := classify(a), classify(b)
	switch {
	case ca == ClassBottom || cb == ClassBottom:
		return F(math.NaN())
	case ca == ClassInfinity && cb == ClassInfinity:
		return F(math.NaN())
	case ca == ClassInfinity || cb == ClassInfinity:
		return F(math.Inf(1))
	case cb == ClassZero:
		return a
	case ca == ClassZero:
		return b
	default:
		return a + b
	}
}

// wmul is the multiplication dispatch table. Inf*0 is Bottom; otherwise
// Infinity dominates Zero.
func wmul[F floating](a, b F) F {
	ca, cb := classify(a), classify(b)
	switch {
	case ca == ClassBottom || cb == ClassBottom:
		return F(math.NaN())
	case ca == ClassInfinity && cb == ClassZero:
		return F(math.NaN())
	case ca == ClassZero && cb == ClassInfinity:
		return F(math.NaN())
	case ca == ClassInfinity || cb == ClassInfinity:
		return F(math.Inf(1))
	case ca == ClassZero || cb == ClassZero:
		return 0
	default:
		return a * b
	}
}

func winv[F floating](a F) F {
	switch classify(a) {
	case ClassBottom:
		return F(math.NaN())
	case ClassInfinity:
		return 0
	case ClassZero:
		return F(math.Inf(1))
	default:
		return 1 / a
	}
}

func weq[F floating](a, b F) bool {
	ca, cb := classify(a), classify(b)
	if ca != cb {
		return false
	}
	if ca != ClassNormal {
		return true
	}
	return a == b
}

func wroughlyEq[F floating](a, b, tolerance F) bool {
	ca, cb := classify(a), classify(b)
	if ca != cb {
		return false
	}
	if ca != ClassNormal {
		return true
	}
	d := a - b
	return d < tolerance && d > -tolerance
}

// Wheel32

// Float32 returns the underlying scalar.
func (w Wheel32) Float32() float32 { return w.v }

func (w Wheel32) Class() Class { return classify(w.v) }

func (w Wheel32) Add(other Wheel32) Wheel32 { return Wheel32{wadd(w.v, other.v)} }

func (w Wheel32) Neg() Wheel32 { return Wheel32{wmul(w.v, float32(-1))} }

func (w Wheel32) Sub(other Wheel32) Wheel32 { return Sub(w, other) }

func (w Wheel32) Mul(other Wheel32) Wheel32 { return Wheel32{wmul(w.v, other.v)} }

func (w Wheel32) Inv() Wheel32 { return Wheel32{winv(w.v)} }

func (w Wheel32) Div(other Wheel32) Wheel32 { return Div(w, other) }

// Eq reports class-based equality: classes must match, and Normal values
// must compare equal natively. Bottom equals Bottom, unlike NaN.
func (w Wheel32) Eq(other Wheel32) bool { return weq(w.v, other.v) }

// RoughlyEq is Eq with an absolute tolerance of 1e-4 on Normal values.
func (w Wheel32) RoughlyEq(other Wheel32) bool { return wroughlyEq(w.v, other.v, 1e-4) }

func (w Wheel32) String() string {
	switch w.Class() {
	case ClassZero:
		return "0"
	case ClassInfinity:
		return "Inf"
	case ClassBottom:
		return "Bottom"
	default:
		return strconv.FormatFloat(float64(w.v), 'g', -1, 32)
	}
}

func (w Wheel32) GoString() string {
	switch w.Class() {
	case ClassZero:
		return "wheel.Zero32"
	case ClassInfinity:
		return "wheel.Infinity32"
	case ClassBottom:
		return "wheel.Bottom32"
	default:
		return fmt.Sprintf("wheel.NewWheel32(%v)", w.v)
	}
}

// MarshalJSON renders the value as its String form, so that Infinity and
// Bottom survive the round trip (JSON has no literal for either).
func (w Wheel32) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// UnmarshalJSON parses the representation produced by MarshalJSON.
func (w *Wheel32) UnmarshalJSON(input []byte) error {
	var s string
	if err := json.Unmarshal(input, &s); err != nil {
		return err
	}
	parsed, err := ParseWheel32(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// ParseWheel32 parses the String rendering: "Inf", "Bottom", or a decimal.
func ParseWheel32(s string) (Wheel32, error) {
	switch s {
	case "Inf":
		return Infinity32, nil
	case "Bottom":
		return Bottom32, nil
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return Wheel32{}, fmt.Errorf("parsing wheel value %q: %w", s, err)
	}
	return Wheel32{float32(f)}, nil
}

// Wheel64

// Float64 returns the underlying scalar.
func (w Wheel64) Float64() float64 { return w.v }

func (w Wheel64) Class() Class { return classify(w.v) }

func (w Wheel64) Add(other Wheel64) Wheel64 { return Wheel64{wadd(w.v, other.v)} }

func (w Wheel64) Neg() Wheel64 { return Wheel64{wmul(w.v, float64(-1))} }

func (w Wheel64) Sub(other Wheel64) Wheel64 { return Sub(w, other) }

func (w Wheel64) Mul(other Wheel64) Wheel64 { return Wheel64{wmul(w.v, other.v)} }

func (w Wheel64) Inv() Wheel64 { return Wheel64{winv(w.v)} }

func (w Wheel64) Div(other Wheel64) Wheel64 { return Div(w, other) }

// Eq reports class-based equality. See Wheel32.Eq.
func (w Wheel64) Eq(other Wheel64) bool { return weq(w.v, other.v) }

// RoughlyEq is Eq with an absolute tolerance of 1e-7 on Normal values.
func (w Wheel64) RoughlyEq(other Wheel64) bool { return wroughlyEq(w.v, other.v, 1e-7) }

func (w Wheel64) String() string {
	switch w.Class() {
	case ClassZero:
		return "0"
	case ClassInfinity:
		return "Inf"
	case ClassBottom:
		return "Bottom"
	default:
		return strconv.FormatFloat(w.v, 'g', -1, 64)
	}
}

func (w Wheel64) GoString() string {
	switch w.Class() {
	case ClassZero:
		return "wheel.Zero64"
	case ClassInfinity:
		return "wheel.Infinity64"
	case ClassBottom:
		return "wheel.Bottom64"
	default:
		return fmt.Sprintf("wheel.NewWheel64(%v)", w.v)
	}
}

// MarshalJSON renders the value as its String form. See Wheel32.MarshalJSON.
func (w Wheel64) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// UnmarshalJSON parses the representation produced by MarshalJSON.
func (w *Wheel64) UnmarshalJSON(input []byte) error {
	var s string
	if err := json.Unmarshal(input, &s); err != nil {
		return err
	}
	parsed, err := ParseWheel64(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// ParseWheel64 parses the String rendering: "Inf", "Bottom", or a decimal.
func ParseWheel64(s string) (Wheel64, error) {
	switch s {
	case "Inf":
		return Infinity64, nil
	case "Bottom":
		return Bottom64, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Wheel64{}, fmt.Errorf("parsing wheel value %q: %w", s, err)
	}
	return Wheel64{f}, nil
}
