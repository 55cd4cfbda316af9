package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/svgar/svgar/internal/core/geometry"
	"github.com/svgar/svgar/internal/core/identity"
	"github.com/svgar/svgar/internal/core/transform"
)

// Anchor is an identified point with its own local transform.
type Anchor struct {
	id        string
	position  mgl64.Vec4
	transform transform.Transform
}

// NewAnchor creates an anchor at (x, y, z) with an identity transform.
func NewAnchor(x, y, z float64) *Anchor {
	return newAnchor(identity.New, x, y, z)
}

func newAnchor(gen identity.Generator, x, y, z float64) *Anchor {
	return &Anchor{
		id:        gen(),
		position:  mgl64.Vec4{x, y, z, 1},
		transform: transform.Identity(),
	}
}

func (a *Anchor) ID() string {
	return a.id
}

// Position returns the untransformed position.
func (a *Anchor) Position() geometry.Vector3 {
	return geometry.FromVec3(a.position.Vec3())
}

func (a *Anchor) SetPosition(x, y, z float64) {
	a.position = mgl64.Vec4{x, y, z, 1}
}

func (a *Anchor) Transform() transform.Transform {
	return a.transform
}

func (a *Anchor) SetTransform(t transform.Transform) {
	a.transform = t
}

// Translate composes a world-space translation onto the anchor transform.
func (a *Anchor) Translate(dx, dy, dz float64) {
	a.transform = a.transform.Translate(dx, dy, dz)
}

// WorldPosition returns transform × position.
func (a *Anchor) WorldPosition() geometry.Vector3 {
	return geometry.FromVec3(a.transform.ApplyHomogeneous(a.position).Vec3())
}

// Render formats the world position as "x, y, z".
func (a *Anchor) Render() string {
	return a.WorldPosition().String()
}
