package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgar/svgar/internal/core/geometry"
)

func TestCamera_Defaults(t *testing.T) {
	c := New().Camera()

	assert.Equal(t, geometry.Zero(), c.Position)
	assert.Equal(t, geometry.New(0, 0, -1), c.Target)
	assert.Equal(t, geometry.New(0, 0, -1), c.Normal())
	assert.Equal(t, 0.0, c.Rotation)
	assert.Equal(t, [3]geometry.Vector3{
		geometry.Zero(),
		geometry.New(0, 0, -1),
		geometry.New(10, 10, 0),
	}, c.Compile())
}

func TestCamera_Move(t *testing.T) {
	c := New().Camera()

	c.MovePosition(4, 5, 6)
	assert.Equal(t, geometry.New(4, 5, 6), c.Position)

	c.MoveTarget(4, 5, 6)
	assert.Equal(t, geometry.New(4, 5, 5), c.Target)

	c.Move(1, 1, 1)
	assert.Equal(t, geometry.New(5, 6, 7), c.Position)
	assert.Equal(t, geometry.New(5, 6, 6), c.Target)
	assert.Equal(t, geometry.New(0, 0, -1), c.Normal())
}

func TestCamera_Rotate(t *testing.T) {
	c := New().Camera()

	c.Rotate(90, true)
	assert.InDelta(t, 90, geometry.RadiansToDegrees(c.Rotation), 1e-12)

	c.Reset()
	c.Rotate(0.544, false)
	assert.Equal(t, 0.544, c.Rotation)

	c.Reset()
	c.Rotate(0.33, false)
	c.Rotate(-0.25, false)
	c.Rotate(0.25, false)
	assert.InDelta(t, 0.33, c.Rotation, 1e-15)
}

func TestCamera_Basis(t *testing.T) {
	c := New().Camera()

	x, err := c.BasisX()
	require.NoError(t, err)
	assert.Equal(t, geometry.WorldX, x)

	y, err := c.BasisY()
	require.NoError(t, err)
	assert.True(t, y.EqualsWithTolerance(geometry.WorldY, 1e-12), "got %v", y)

	// A quarter turn counter-clockwise in the picture plane.
	c.Rotate(math.Pi/2, false)
	x, err = c.BasisX()
	require.NoError(t, err)
	assert.True(t, x.EqualsWithTolerance(geometry.WorldY, 1e-12), "got %v", x)
}

func TestCamera_BasisForHorizontalView(t *testing.T) {
	c := New().Camera()
	c.Target = geometry.New(0, 1, 0)

	x, err := c.BasisX()
	require.NoError(t, err)
	assert.Equal(t, geometry.WorldX, x)
}

func TestCamera_Tilt(t *testing.T) {
	c := New().Camera()

	require.NoError(t, c.Tilt(90, true))
	assert.True(t, c.Target.EqualsWithTolerance(geometry.New(0, 1, 0), 1e-12), "got %v", c.Target)

	require.NoError(t, c.Tilt(-math.Pi/2, false))
	assert.True(t, c.Target.EqualsWithTolerance(geometry.New(0, 0, -1), 1e-12), "got %v", c.Target)
}

func TestCamera_DegenerateView(t *testing.T) {
	c := New().Camera()
	c.Target = c.Position

	_, err := c.BasisX()
	assert.ErrorIs(t, err, geometry.ErrDegenerateAxis)

	err = c.Tilt(10, true)
	assert.ErrorIs(t, err, geometry.ErrDegenerateAxis)
}
