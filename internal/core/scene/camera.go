package scene

import (
	"fmt"

	"github.com/svgar/svgar/internal/core/geometry"
	"github.com/svgar/svgar/internal/core/transform"
)

// Extents is the size of the camera's picture plane.
type Extents struct {
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

var DefaultExtents = Extents{W: 10, H: 10}

// Camera holds the scene camera transform together with its view
// parameters. Rotation is in radians, counter-clockwise in the picture plane.
type Camera struct {
	transform transform.Transform

	Position geometry.Vector3
	Target   geometry.Vector3
	Extents  Extents
	Rotation float64

	defaultExtents Extents
}

func newCamera(extents Extents) *Camera {
	c := &Camera{defaultExtents: extents}
	c.Reset()
	return c
}

// Reset restores the default look-down configuration.
func (c *Camera) Reset() {
	c.transform = transform.LookDown()
	c.Position = geometry.Zero()
	c.Target = geometry.New(0, 0, -1)
	c.Extents = c.defaultExtents
	c.Rotation = 0
}

func (c *Camera) Transform() transform.Transform {
	return c.transform
}

func (c *Camera) SetTransform(t transform.Transform) {
	c.transform = t
}

// Move translates position and target together in world space.
func (c *Camera) Move(dx, dy, dz float64) {
	c.MovePosition(dx, dy, dz)
	c.MoveTarget(dx, dy, dz)
}

func (c *Camera) MovePosition(dx, dy, dz float64) {
	c.Position = c.Position.Add(geometry.New(dx, dy, dz))
}

func (c *Camera) MoveTarget(dx, dy, dz float64) {
	c.Target = c.Target.Add(geometry.New(dx, dy, dz))
}

// Rotate adds angle to the picture-plane rotation.
func (c *Camera) Rotate(angle float64, isDegrees bool) {
	if isDegrees {
		angle = geometry.DegreesToRadians(angle)
	}
	c.Rotation += angle
}

// Normal is the view direction, target - position.
func (c *Camera) Normal() geometry.Vector3 {
	return c.Target.Sub(c.Position)
}

func (c *Camera) normalIsVertical() bool {
	n := c.Normal()
	return n.X == 0 && n.Y == 0 && n.Z != 0
}

// BasisX is the picture plane's x axis anchored at the origin, with the
// current rotation applied.
func (c *Camera) BasisX() (geometry.Vector3, error) {
	n := c.Normal()
	x := geometry.WorldX
	if !c.normalIsVertical() {
		x = n.Cross(geometry.WorldZ)
	}
	rotated, err := geometry.Rotate(x, geometry.Zero(), n, -c.Rotation, false)
	if err != nil {
		return geometry.Vector3{}, fmt.Errorf("camera basis x: %w", err)
	}
	return rotated, nil
}

// BasisY is BasisX turned a quarter turn clockwise about the view direction.
func (c *Camera) BasisY() (geometry.Vector3, error) {
	x, err := c.BasisX()
	if err != nil {
		return geometry.Vector3{}, err
	}
	y, err := geometry.Rotate(x, geometry.Zero(), c.Normal(), -90, true)
	if err != nil {
		return geometry.Vector3{}, fmt.Errorf("camera basis y: %w", err)
	}
	return y, nil
}

// Tilt rotates the target about the picture plane's x axis through the
// camera position. Positive angles look up.
func (c *Camera) Tilt(angle float64, isDegrees bool) error {
	axis, err := c.BasisX()
	if err != nil {
		return err
	}
	target, err := geometry.Rotate(c.Target, c.Position, c.Position.Add(axis), angle, isDegrees)
	if err != nil {
		return fmt.Errorf("camera tilt: %w", err)
	}
	c.Target = target
	return nil
}

// Compile returns [position, normal, extents] where extents is {W, H, 0}.
func (c *Camera) Compile() [3]geometry.Vector3 {
	return [3]geometry.Vector3{
		c.Position,
		c.Normal(),
		geometry.New(c.Extents.W, c.Extents.H, 0),
	}
}
