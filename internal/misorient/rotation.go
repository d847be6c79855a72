package misorient

import "math"

// rotAxisAngle builds a rotation about the unit axis a by angle radians
// using Rodrigues' formula:
//
//	R = I cos t + (1 - cos t) a a^T + sin t [a]x
func rotAxisAngle(a Vector3, angle Real) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	k := 1 - c
	return Mat3{M: [3][3]Real{
		{c + a.X*a.X*k, a.X*a.Y*k - a.Z*s, a.X*a.Z*k + a.Y*s},
		{a.Y*a.X*k + a.Z*s, c + a.Y*a.Y*k, a.Y*a.Z*k - a.X*s},
		{a.Z*a.X*k - a.Y*s, a.Z*a.Y*k + a.X*s, c + a.Z*a.Z*k},
	}}
}

// IsRotation reports whether m is orthogonal with determinant +1 within tol.
// Orientation inputs are not required to pass; this is informational.
func IsRotation(m Mat3, tol Real) bool {
	if !m.Transpose().Mul(m).ApproxEqual(I3(), tol) {
		return false
	}
	return math.Abs(m.Det()-1) <= tol
}
