package wheel

import (
	num "github.com/shabbyrobe/go-num"
)

// Width aliases for the exact wheel, one per supported ring width.
type (
	Frac8   = Fraction[int8, IntRing[int8]]
	Frac16  = Fraction[int16, IntRing[int16]]
	Frac32  = Fraction[int32, IntRing[int32]]
	Frac64  = Fraction[int64, IntRing[int64]]
	Frac128 = Fraction[num.I128, Int128Ring]
)

// Per-width constructors, so call sites need no type arguments.

func NewFrac8(numerator, denominator int8) Frac8 {
	return NewFraction[int8, IntRing[int8]](numerator, denominator)
}

func NewFrac16(numerator, denominator int16) Frac16 {
	return NewFraction[int16, IntRing[int16]](numerator, denominator)
}

func NewFrac32(numerator, denominator int32) Frac32 {
	return NewFraction[int32, IntRing[int32]](numerator, denominator)
}

func NewFrac64(numerator, denominator int64) Frac64 {
	return NewFraction[int64, IntRing[int64]](numerator, denominator)
}

func NewFrac128(numerator, denominator num.I128) Frac128 {
	return NewFraction[num.I128, Int128Ring](numerator, denominator)
}

// NewFrac128From64 builds a 128-bit fraction from int64 components. Values
// wider than 64 bits are reached through arithmetic, not construction.
func NewFrac128From64(numerator, denominator int64) Frac128 {
	return NewFraction[num.I128, Int128Ring](num.I128From64(numerator), num.I128From64(denominator))
}

// Distinguished values per width.
var (
	Q8Zero     = Zero[int8, IntRing[int8]]()
	Q8One      = One[int8, IntRing[int8]]()
	Q8Infinity = Infinity[int8, IntRing[int8]]()
	Q8Bottom   = Bottom[int8, IntRing[int8]]()

	Q16Zero     = Zero[int16, IntRing[int16]]()
	Q16One      = One[int16, IntRing[int16]]()
	Q16Infinity = Infinity[int16, IntRing[int16]]()
	Q16Bottom   = Bottom[int16, IntRing[int16]]()

	Q32Zero     = Zero[int32, IntRing[int32]]()
	Q32One      = One[int32, IntRing[int32]]()
	Q32Infinity = Infinity[int32, IntRing[int32]]()
	Q32Bottom   = Bottom[int32, IntRing[int32]]()

	Q64Zero     = Zero[int64, IntRing[int64]]()
	Q64One      = One[int64, IntRing[int64]]()
	Q64Infinity = Infinity[int64, IntRing[int64]]()
	Q64Bottom   = Bottom[int64, IntRing[int64]]()

	Q128Zero     = Zero[num.I128, Int128Ring]()
	Q128One      = One[num.I128, Int128Ring]()
	Q128Infinity = Infinity[num.I128, Int128Ring]()
	Q128Bottom   = Bottom[num.I128, Int128Ring]()
)

// Every representation satisfies the wheel contract.
var (
	_ Wheel[Wheel32] = Wheel32{}
	_ Wheel[Wheel64] = Wheel64{}
	_ Wheel[Frac8]   = Frac8{}
	_ Wheel[Frac16]  = Frac16{}
	_ Wheel[Frac32]  = Frac32{}
	_ Wheel[Frac64]  = Frac64{}
	_ Wheel[Frac128] = Frac128{}
)
