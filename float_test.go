package wheel

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWheel64Classify(t *testing.T) {
	assert.Equal(t, ClassZero, NewWheel64(0).Class())
	assert.Equal(t, ClassZero, NewWheel64(math.Copysign(0, -1)).Class())
	assert.Equal(t, ClassInfinity, NewWheel64(math.Inf(1)).Class())
	assert.Equal(t, ClassInfinity, NewWheel64(math.Inf(-1)).Class())
	assert.Equal(t, ClassBottom, NewWheel64(math.NaN()).Class())
	assert.Equal(t, ClassNormal, NewWheel64(1.5).Class())
	assert.Equal(t, ClassNormal, NewWheel64(-3).Class())
	// subnormals count as Normal
	assert.Equal(t, ClassNormal, NewWheel64(math.SmallestNonzeroFloat64).Class())
}

func TestWheel32Classify(t *testing.T) {
	assert.Equal(t, ClassZero, NewWheel32(0).Class())
	assert.Equal(t, ClassInfinity, NewWheel32(float32(math.Inf(-1))).Class())
	assert.Equal(t, ClassBottom, NewWheel32(float32(math.NaN())).Class())
	assert.Equal(t, ClassNormal, NewWheel32(math.SmallestNonzeroFloat32).Class())
}

func TestWheel32Eq(t *testing.T) {
	// class-based, not bit-based
	divisor := float32(0)
	assert.True(t, NewWheel32(1.0/divisor).Eq(Infinity32))
	assert.True(t, NewWheel32(float32(math.NaN())).Eq(Bottom32))
	assert.True(t, NewWheel32(float32(math.Copysign(0, -1))).Eq(Zero32))
	assert.False(t, Zero32.Eq(Bottom32))
	assert.False(t, NewWheel32(1.5).Eq(NewWheel32(1.25)))
}

func TestWheel64Eq(t *testing.T) {
	// class-based, not bit-based
	divisor := 0.0
	assert.True(t, NewWheel64(1.0/divisor).Eq(Infinity64))
	assert.True(t, NewWheel64(math.Inf(-1)).Eq(Infinity64))
	assert.True(t, NewWheel64(math.NaN()).Eq(Bottom64))
	assert.True(t, NewWheel64(math.Copysign(0, -1)).Eq(Zero64))

	assert.True(t, NewWheel64(1.5).Eq(NewWheel64(1.5)))
	assert.False(t, NewWheel64(1.5).Eq(NewWheel64(1.5000001)))
	assert.False(t, Zero64.Eq(Bottom64))
	assert.False(t, Infinity64.Eq(Bottom64))
	assert.False(t, One64.Eq(Zero64))
}

func TestWheel64RoughlyEq(t *testing.T) {
	assert.True(t, NewWheel64(1.5).RoughlyEq(NewWheel64(1.5+1e-9)))
	assert.False(t, NewWheel64(1.5).RoughlyEq(NewWheel64(1.5+1e-6)))
	assert.True(t, Bottom64.RoughlyEq(Bottom64))
	assert.False(t, Infinity64.RoughlyEq(NewWheel64(1e300)))
}

func TestWheel32RoughlyEq(t *testing.T) {
	assert.True(t, NewWheel32(1.5).RoughlyEq(NewWheel32(1.5+1e-6)))
	assert.False(t, NewWheel32(1.5).RoughlyEq(NewWheel32(1.51)))
}

func TestWheel64Inv(t *testing.T) {
	assert.Equal(t, ClassBottom, NewWheel64(math.NaN()).Inv().Class())
	assert.True(t, Zero64.Inv().Eq(Infinity64))
	assert.True(t, Infinity64.Inv().Eq(Zero64))
	assert.True(t, Bottom64.Inv().Eq(Bottom64))
	assert.True(t, NewWheel64(4).Inv().Eq(NewWheel64(0.25)))
}

func TestWheel32Inv(t *testing.T) {
	assert.Equal(t, ClassBottom, NewWheel32(float32(math.NaN())).Inv().Class())
	assert.True(t, Zero32.Inv().Eq(Infinity32))
	assert.True(t, Infinity32.Inv().Eq(Zero32))
}

func TestWheel64DivisionIsTotal(t *testing.T) {
	assert.True(t, One64.Div(Zero64).Eq(Infinity64))
	assert.True(t, Zero64.Div(Zero64).Eq(Bottom64))
	assert.True(t, Infinity64.Div(Infinity64).Eq(Bottom64))
	assert.True(t, NewWheel64(6).Div(NewWheel64(3)).Eq(NewWheel64(2)))
}

func TestWheel64AddDispatch(t *testing.T) {
	assert.True(t, Infinity64.Add(Infinity64).Eq(Bottom64))
	assert.True(t, Infinity64.Add(One64).Eq(Infinity64))
	assert.True(t, One64.Add(Infinity64).Eq(Infinity64))
	assert.True(t, Bottom64.Add(Infinity64).Eq(Bottom64))
	assert.True(t, NewWheel64(2).Add(Zero64).Eq(NewWheel64(2)))
	assert.True(t, Zero64.Add(NewWheel64(2)).Eq(NewWheel64(2)))
}

func TestWheel64MulDispatch(t *testing.T) {
	assert.True(t, Infinity64.Mul(Zero64).Eq(Bottom64))
	assert.True(t, Zero64.Mul(Infinity64).Eq(Bottom64))
	assert.True(t, Infinity64.Mul(NewWheel64(-2)).Eq(Infinity64))
	assert.True(t, Zero64.Mul(NewWheel64(-2)).Eq(Zero64))
	assert.True(t, Bottom64.Mul(Zero64).Eq(Bottom64))
}

func TestWheel64NegIsUnsignedOnSpecials(t *testing.T) {
	// negation goes through the multiplication table, so the special
	// classes stay put
	assert.True(t, Infinity64.Neg().Eq(Infinity64))
	assert.True(t, Bottom64.Neg().Eq(Bottom64))
	assert.True(t, Zero64.Neg().Eq(Zero64))
	assert.True(t, NewWheel64(2).Neg().Eq(NewWheel64(-2)))
}

func TestWheel64String(t *testing.T) {
	assert.Equal(t, "0", Zero64.String())
	assert.Equal(t, "Inf", Infinity64.String())
	assert.Equal(t, "Bottom", Bottom64.String())
	assert.Equal(t, "1.5", NewWheel64(1.5).String())
	assert.Equal(t, "-3", NewWheel64(-3).String())
}

func TestWheel64GoString(t *testing.T) {
	assert.Equal(t, "wheel.Zero64", Zero64.GoString())
	assert.Equal(t, "wheel.Infinity64", NewWheel64(math.Inf(-1)).GoString())
	assert.Equal(t, "wheel.Bottom64", Bottom64.GoString())
	assert.Equal(t, "wheel.NewWheel64(1.5)", NewWheel64(1.5).GoString())
}

func TestWheel64MarshalJSON(t *testing.T) {
	bytes, err := json.Marshal(NewWheel64(1.5))
	require.NoError(t, err)
	assert.Equal(t, `"1.5"`, string(bytes))

	bytes, err = json.Marshal(Infinity64)
	require.NoError(t, err)
	assert.Equal(t, `"Inf"`, string(bytes))

	bytes, err = json.Marshal(Bottom64)
	require.NoError(t, err)
	assert.Equal(t, `"Bottom"`, string(bytes))
}

func TestWheel64UnmarshalJSON(t *testing.T) {
	var w Wheel64
	require.NoError(t, json.Unmarshal([]byte(`"1.5"`), &w))
	assert.True(t, w.Eq(NewWheel64(1.5)))

	require.NoError(t, json.Unmarshal([]byte(`"Inf"`), &w))
	assert.True(t, w.Eq(Infinity64))

	require.NoError(t, json.Unmarshal([]byte(`"Bottom"`), &w))
	assert.Equal(t, ClassBottom, w.Class())

	require.Error(t, json.Unmarshal([]byte(`"soup"`), &w))
	require.Error(t, json.Unmarshal([]byte(`{}`), &w))
}

func TestWheel32JSONRoundTrip(t *testing.T) {
	for _, v := range []Wheel32{Zero32, One32, Infinity32, Bottom32, NewWheel32(-0.25)} {
		bytes, err := json.Marshal(v)
		require.NoError(t, err)
		var back Wheel32
		require.NoError(t, json.Unmarshal(bytes, &back))
		assert.True(t, v.Eq(back), "%#v survives JSON", v)
	}
}
