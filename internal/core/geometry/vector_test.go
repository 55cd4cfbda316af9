package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func randomVector(r *rand.Rand) Vector3 {
	return New(r.Float64()*200-100, r.Float64()*200-100, r.Float64()*200-100)
}

func TestVector3_Arithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, -5, 6)

	assert.Equal(t, New(5, -3, 9), a.Add(b))
	assert.Equal(t, New(-3, 7, -3), a.Sub(b))
	assert.Equal(t, New(-1, -2, -3), a.Reverse())
	assert.Equal(t, New(2, 4, 6), a.Scale(2))
	assert.Equal(t, 4.0-10.0+18.0, a.Dot(b))
	assert.Equal(t, New(27, 6, -13), a.Cross(b))
	assert.Equal(t, 5.0, New(3, 4, 0).Magnitude())
	assert.Equal(t, 5.0, New(1, 1, 1).DistanceTo(New(4, 5, 1)))
}

func TestVector3_OperationsDoNotMutate(t *testing.T) {
	a := New(1, 2, 3)
	_ = a.Add(New(1, 1, 1))
	_ = a.Scale(10)
	_, _ = a.Normalize()
	assert.Equal(t, New(1, 2, 3), a)
}

func TestVector3_CrossIsAntiCommutative(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		a, b := randomVector(r), randomVector(r)
		assert.True(t, a.Cross(b).Equals(b.Cross(a).Reverse()), "a=%v b=%v", a, b)
	}
}

func TestVector3_DotSelfIsMagnitudeSquared(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		a := randomVector(r)
		m := a.Magnitude()
		assert.InDelta(t, m*m, a.Dot(a), 1e-9*a.Dot(a))
	}
}

func TestVector3_Normalize(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		a := randomVector(r)
		n, err := a.Normalize()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, n.Magnitude(), tolerance)
		assert.True(t, n.IsFinite())
	}

	n, err := Zero().Normalize()
	require.ErrorIs(t, err, ErrZeroVector)
	assert.True(t, n.IsFinite(), "zero vector normalize must not produce NaN")
}

func TestVector3_Equality(t *testing.T) {
	a := New(1, 2, 3)

	assert.True(t, a.Equals(New(1, 2, 3)))
	assert.False(t, a.Equals(New(1, 2, 3.0000001)))

	assert.True(t, a.EqualsWithTolerance(New(1, 2, 3.0000001), 1e-6))
	assert.False(t, a.EqualsWithTolerance(New(1, 2, 3.1), 1e-6))
	assert.False(t, a.EqualsWithTolerance(New(1, 2, 3), 0), "difference must be strictly below epsilon")
}

func TestVector3_String(t *testing.T) {
	assert.Equal(t, "1, 2.5, -3", New(1, 2.5, -3).String())
}

func TestVector3_IsFinite(t *testing.T) {
	assert.True(t, New(1, 2, 3).IsFinite())
	assert.False(t, New(math.NaN(), 0, 0).IsFinite())
	assert.False(t, New(0, math.Inf(-1), 0).IsFinite())
}

func TestVector3_Vec3RoundTrip(t *testing.T) {
	a := New(1, -2, 3)
	assert.Equal(t, a, FromVec3(a.Vec3()))
}

func BenchmarkVector3_Cross(b *testing.B) {
	a, c := New(1, 2, 3), New(4, 5, 6)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a = a.Cross(c)
	}
	_ = a
}
