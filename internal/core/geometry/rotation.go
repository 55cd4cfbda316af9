package geometry

import "math"

// Rotate rotates point about the infinite line through axisStart and axisEnd
// using the Rodrigues formula. Positive angles follow the right-hand rule
// around the direction axisStart -> axisEnd. The angle is in radians unless
// angleIsDegrees is set.
func Rotate(point, axisStart, axisEnd Vector3, angle float64, angleIsDegrees bool) (Vector3, error) {
	k, err := axisEnd.Sub(axisStart).Normalize()
	if err != nil {
		return Vector3{}, ErrDegenerateAxis
	}

	theta := angle
	if angleIsDegrees {
		theta = DegreesToRadians(angle)
	}
	if theta == 0 {
		return point, nil
	}

	sin, cos := math.Sincos(theta)
	v := point.Sub(axisStart)

	rotated := v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))

	return axisStart.Add(rotated), nil
}
