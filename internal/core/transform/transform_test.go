package transform

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgar/svgar/internal/core/geometry"
)

func TestIdentity(t *testing.T) {
	id := Identity()
	assert.True(t, id.IsIdentity())

	p := geometry.New(1, -2, 3)
	assert.Equal(t, p, id.Apply(p))
}

func TestZeroValueIsIdentity(t *testing.T) {
	var zero Transform
	assert.True(t, zero.IsIdentity())
	assert.True(t, zero.Equals(Identity()))
	assert.Equal(t, 1.0, zero.At(3, 3))

	p := geometry.New(4, 5, -6)
	assert.Equal(t, p, zero.Apply(p))
	assert.Equal(t, geometry.New(5, 5, -6), zero.Translate(1, 0, 0).Apply(p))
	assert.Equal(t, Identity().Mat4(), zero.Mat4())
}

func TestLookDown(t *testing.T) {
	cam := LookDown()
	assert.False(t, cam.IsIdentity())
	assert.Equal(t, -1.0, cam.At(2, 2))
	assert.Equal(t, geometry.New(1, 2, -3), cam.Apply(geometry.New(1, 2, 3)))
}

func TestTranslate_FromIdentity(t *testing.T) {
	tr := Translate(Identity(), 2, 3, 4)

	assert.Equal(t, geometry.New(2, 3, 4), tr.Apply(geometry.Zero()))
	assert.Equal(t, geometry.New(2, 3, 4), tr.Translation())
	assert.Equal(t, [4]float64{0, 0, 0, 1}, tr.Rows()[3])
}

func TestTranslate_ComposesAdditively(t *testing.T) {
	tr := Identity().Translate(2, 3, 4).Translate(10, 0, -1)
	assert.Equal(t, geometry.New(12, 3, 3), tr.Apply(geometry.Zero()))
}

func TestTranslate_DoesNotMutateReceiver(t *testing.T) {
	base := Identity()
	_ = base.Translate(1, 1, 1)
	assert.True(t, base.IsIdentity())
}

func TestTranslate_IsLeftMultiplied(t *testing.T) {
	rotated, err := Identity().RotateAbout(geometry.Zero(), geometry.WorldZ, 90, true)
	require.NoError(t, err)

	// Translation after rotation moves in world space.
	translatedAfter := rotated.Translate(1, 0, 0)
	got := translatedAfter.Apply(geometry.New(1, 0, 0))
	assert.True(t, got.EqualsWithTolerance(geometry.New(1, 1, 0), 1e-12), "got %v", got)

	// Rotation after translation swings the offset too.
	rotatedAfter, err := Identity().Translate(1, 0, 0).RotateAbout(geometry.Zero(), geometry.WorldZ, 90, true)
	require.NoError(t, err)
	got = rotatedAfter.Apply(geometry.New(1, 0, 0))
	assert.True(t, got.EqualsWithTolerance(geometry.New(0, 2, 0), 1e-12), "got %v", got)
}

func TestFromRows(t *testing.T) {
	rows := [4][4]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{0, 0, 0, 1},
	}
	tr := FromRows(rows)

	assert.Equal(t, rows, tr.Rows())
	assert.Equal(t, 7.0, tr.At(1, 2))
	assert.Equal(t, geometry.New(4, 8, 12), tr.Apply(geometry.Zero()))
	assert.Equal(t, geometry.New(1+4, 5+8, 9+12), tr.Apply(geometry.WorldX))
}

func TestMul(t *testing.T) {
	a := Identity().Translate(1, 0, 0)
	b := Identity().Scale(2, 2, 2)

	// a · b scales first, then translates.
	assert.Equal(t, geometry.New(3, 2, 2), a.Mul(b).Apply(geometry.New(1, 1, 1)))
	assert.Equal(t, geometry.New(4, 2, 2), b.Mul(a).Apply(geometry.New(1, 1, 1)))
}

func TestRotateAbout_MatchesGeometryRotate(t *testing.T) {
	r := rand.New(rand.NewSource(30))
	for i := 0; i < 100; i++ {
		p := geometry.New(r.Float64()*20-10, r.Float64()*20-10, r.Float64()*20-10)
		start := geometry.New(r.Float64()*20-10, r.Float64()*20-10, r.Float64()*20-10)
		end := geometry.New(r.Float64()*20-10, r.Float64()*20-10, r.Float64()*20-10)
		angle := r.Float64()*720 - 360

		tr, err := Identity().RotateAbout(start, end, angle, true)
		require.NoError(t, err)

		want, err := geometry.Rotate(p, start, end, angle, true)
		require.NoError(t, err)

		got := tr.Apply(p)
		assert.True(t, got.EqualsWithTolerance(want, 1e-9), "want %v, got %v", want, got)
	}
}

func TestRotateAbout_DegenerateAxis(t *testing.T) {
	_, err := Identity().RotateAbout(geometry.WorldX, geometry.WorldX, 10, true)
	assert.ErrorIs(t, err, geometry.ErrDegenerateAxis)
}

func TestApproxEqual(t *testing.T) {
	a := Identity().Translate(1, 2, 3)
	b := Identity().Translate(1, 2, 3+1e-12)

	assert.False(t, a.Equals(b))
	assert.True(t, a.ApproxEqual(b, 1e-9))
	assert.True(t, a.Equals(FromMat4(a.Mat4())))
}
