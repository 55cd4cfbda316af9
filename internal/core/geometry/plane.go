package geometry

import (
	"fmt"
	"math"
)

// Project returns the orthogonal projection of point onto the plane through
// origin with the given normal. The normal does not need to be unit length.
func Project(point, normal, origin Vector3) (Vector3, error) {
	nn := normal.Dot(normal)
	if nn == 0 {
		return Vector3{}, ErrDegeneratePlane
	}
	s := origin.Sub(point).Dot(normal) / nn
	return point.Add(normal.Scale(s)), nil
}

// DistanceToProjection returns the signed distance from point to its
// projection on the plane. The sign is positive when point lies on the side
// the normal points to.
func DistanceToProjection(point, normal, origin Vector3) (float64, error) {
	projected, err := Project(point, normal, origin)
	if err != nil {
		return 0, err
	}
	d := projected.DistanceTo(point)
	if d == 0 {
		return 0, nil
	}
	if point.Sub(projected).Dot(normal) >= 0 {
		return d, nil
	}
	return -d, nil
}

// ProjectAndRemap projects point onto the plane and expresses the result as
// signed (x, y) coordinates in a basis local to the plane, measured from
// origin. The returned Z is always 0.
//
// rotationDegrees rotates the local basis about the normal (right-hand rule)
// before remapping; 0 keeps the canonical basis.
func ProjectAndRemap(point, normal, origin Vector3, rotationDegrees float64) (Vector3, error) {
	projected, err := Project(point, normal, origin)
	if err != nil {
		return Vector3{}, err
	}

	xAxis, yAxis := PlaneBasis(normal)

	if rotationDegrees != 0 {
		if xAxis, err = Rotate(xAxis, Zero(), normal, rotationDegrees, true); err != nil {
			return Vector3{}, fmt.Errorf("rotate plane x axis: %w", err)
		}
		if yAxis, err = Rotate(yAxis, Zero(), normal, rotationDegrees, true); err != nil {
			return Vector3{}, fmt.Errorf("rotate plane y axis: %w", err)
		}
	}

	p := projected.Sub(origin)
	out := Vector3{X: signedComponent(p, xAxis), Y: signedComponent(p, yAxis)}
	if !out.IsFinite() {
		return Vector3{}, fmt.Errorf("remap onto plane with normal %v: %w", normal, ErrDegeneratePlane)
	}
	return out, nil
}

// PlaneBasis returns the canonical in-plane x and y axes for a non-zero
// normal. A vertical normal maps directly onto world X/Y, mirrored in X when
// it points down. Otherwise y = normal × Z with its Z component forced
// non-negative, and x = normal × y.
//
// A normal whose horizontal part vanishes in floating point counts as
// vertical, so the returned axes always have a non-zero squared length.
func PlaneBasis(normal Vector3) (xAxis, yAxis Vector3) {
	if normal.X == 0 && normal.Y == 0 {
		return verticalBasis(normal)
	}

	yAxis = normal.Cross(WorldZ)
	if yAxis.Z < 0 {
		yAxis = yAxis.Reverse()
	}
	xAxis = normal.Cross(yAxis)
	if yAxis.Dot(yAxis) == 0 || xAxis.Dot(xAxis) == 0 {
		return verticalBasis(normal)
	}
	return xAxis, yAxis
}

func verticalBasis(normal Vector3) (xAxis, yAxis Vector3) {
	if normal.Z < 0 {
		return WorldX.Reverse(), WorldY
	}
	return WorldX, WorldY
}

func signedComponent(p, axis Vector3) float64 {
	proj := projectOnto(p, axis)
	m := proj.Magnitude()
	if proj.Dot(axis) >= 0 {
		return m
	}
	return -m
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
