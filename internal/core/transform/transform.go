// Package transform implements 4×4 homogeneous transforms with value
// semantics. Composing two transforms always yields a new Transform; no
// matrix storage is ever shared.
package transform

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/svgar/svgar/internal/core/geometry"
)

// Transform is an affine transform in homogeneous coordinates. The zero value
// is the identity.
type Transform struct {
	m mgl64.Mat4
}

// mat returns the stored matrix, reading the all-zero matrix of the zero
// value as the identity. No affine transform has an all-zero matrix.
func (t Transform) mat() mgl64.Mat4 {
	if t.m == (mgl64.Mat4{}) {
		return mgl64.Ident4()
	}
	return t.m
}

func Identity() Transform {
	return Transform{m: mgl64.Ident4()}
}

// LookDown is the default camera transform: identity with the Z axis negated.
func LookDown() Transform {
	return Transform{m: mgl64.Scale3D(1, 1, -1)}
}

// FromRows builds a transform from row-major values.
func FromRows(rows [4][4]float64) Transform {
	return Transform{m: mgl64.Mat4FromRows(
		mgl64.Vec4(rows[0]),
		mgl64.Vec4(rows[1]),
		mgl64.Vec4(rows[2]),
		mgl64.Vec4(rows[3]),
	)}
}

// FromMat4 wraps a matrix-library matrix.
func FromMat4(m mgl64.Mat4) Transform {
	return Transform{m: m}
}

func (t Transform) Mat4() mgl64.Mat4 {
	return t.mat()
}

func (t Transform) At(row, col int) float64 {
	return t.mat().At(row, col)
}

// Rows returns the matrix in row-major order.
func (t Transform) Rows() [4][4]float64 {
	var rows [4][4]float64
	for r := 0; r < 4; r++ {
		rows[r] = t.mat().Row(r)
	}
	return rows
}

// Mul returns t · other. Applied to a point, other acts first.
func (t Transform) Mul(other Transform) Transform {
	return Transform{m: t.mat().Mul4(other.mat())}
}

// Translate returns T · t where T translates by (dx, dy, dz). The translation
// is applied in world space after whatever t already does.
func (t Transform) Translate(dx, dy, dz float64) Transform {
	return Transform{m: mgl64.Translate3D(dx, dy, dz).Mul4(t.mat())}
}

// Translate is the free-function form of Transform.Translate.
func Translate(t Transform, dx, dy, dz float64) Transform {
	return t.Translate(dx, dy, dz)
}

// Scale returns S · t where S scales each world axis.
func (t Transform) Scale(sx, sy, sz float64) Transform {
	return Transform{m: mgl64.Scale3D(sx, sy, sz).Mul4(t.mat())}
}

// RotateAbout returns R · t where R rotates about the line through start and
// end, matching geometry.Rotate.
func (t Transform) RotateAbout(start, end geometry.Vector3, angle float64, angleIsDegrees bool) (Transform, error) {
	k, err := end.Sub(start).Normalize()
	if err != nil {
		return Transform{}, fmt.Errorf("rotate about axis: %w", geometry.ErrDegenerateAxis)
	}

	theta := angle
	if angleIsDegrees {
		theta = geometry.DegreesToRadians(angle)
	}

	r := mgl64.Translate3D(start.X, start.Y, start.Z).
		Mul4(mgl64.HomogRotate3D(theta, k.Vec3())).
		Mul4(mgl64.Translate3D(-start.X, -start.Y, -start.Z))

	return Transform{m: r.Mul4(t.mat())}, nil
}

// Apply maps a point through the transform: t × [x, y, z, 1].
func (t Transform) Apply(p geometry.Vector3) geometry.Vector3 {
	return geometry.FromVec3(t.ApplyHomogeneous(p.Vec3().Vec4(1)).Vec3())
}

// ApplyHomogeneous multiplies a 4-component column vector.
func (t Transform) ApplyHomogeneous(v mgl64.Vec4) mgl64.Vec4 {
	return t.mat().Mul4x1(v)
}

// Translation returns the offset held in the last column.
func (t Transform) Translation() geometry.Vector3 {
	return geometry.New(t.mat().At(0, 3), t.mat().At(1, 3), t.mat().At(2, 3))
}

func (t Transform) IsIdentity() bool {
	return t.mat() == mgl64.Ident4()
}

func (t Transform) Equals(other Transform) bool {
	return t.mat() == other.mat()
}

func (t Transform) ApproxEqual(other Transform, eps float64) bool {
	return t.mat().ApproxEqualThreshold(other.mat(), eps)
}

func (t Transform) String() string {
	return t.mat().String()
}
