package geometry

import (
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultTolerance is the epsilon used by callers that have no better one.
const DefaultTolerance = 1e-9

// Vector3 is a 3D vector or point. It is a value type: every operation
// returns a new Vector3 and never modifies the receiver.
type Vector3 struct {
	X, Y, Z float64
}

var (
	WorldX = Vector3{X: 1}
	WorldY = Vector3{Y: 1}
	WorldZ = Vector3{Z: 1}
)

func New(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func Zero() Vector3 {
	return Vector3{}
}

// FromVec3 converts a matrix-library vector.
func FromVec3(v mgl64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Vec3 converts to the matrix-library representation.
func (v Vector3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v Vector3) Add(b Vector3) Vector3 {
	return Vector3{v.X + b.X, v.Y + b.Y, v.Z + b.Z}
}

func (v Vector3) Sub(b Vector3) Vector3 {
	return Vector3{v.X - b.X, v.Y - b.Y, v.Z - b.Z}
}

// Reverse returns the negated vector.
func (v Vector3) Reverse() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

func (v Vector3) Dot(b Vector3) float64 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

// Cross returns v × b using the right-hand rule.
func (v Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		v.Y*b.Z - v.Z*b.Y,
		v.Z*b.X - v.X*b.Z,
		v.X*b.Y - v.Y*b.X,
	}
}

func (v Vector3) Scale(factor float64) Vector3 {
	return Vector3{v.X * factor, v.Y * factor, v.Z * factor}
}

// Magnitude returns the Euclidean norm.
func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector in the direction of v.
func (v Vector3) Normalize() (Vector3, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vector3{}, ErrZeroVector
	}
	return Vector3{v.X / m, v.Y / m, v.Z / m}, nil
}

// DistanceTo returns |b - v|.
func (v Vector3) DistanceTo(b Vector3) float64 {
	return b.Sub(v).Magnitude()
}

func (v Vector3) Equals(b Vector3) bool {
	return v.X == b.X && v.Y == b.Y && v.Z == b.Z
}

// EqualsWithTolerance reports whether every component differs by less than eps.
func (v Vector3) EqualsWithTolerance(b Vector3, eps float64) bool {
	return math.Abs(v.X-b.X) < eps &&
		math.Abs(v.Y-b.Y) < eps &&
		math.Abs(v.Z-b.Z) < eps
}

func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vector3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// String renders the vector as "x, y, z".
func (v Vector3) String() string {
	return formatFloat(v.X) + ", " + formatFloat(v.Y) + ", " + formatFloat(v.Z)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// projectOnto returns the vector projection of v onto axis. axis must be non-zero.
func projectOnto(v, axis Vector3) Vector3 {
	return axis.Scale(v.Dot(axis) / axis.Dot(axis))
}
