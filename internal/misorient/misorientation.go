package misorient

import (
	"fmt"
	"math"
)

// AxisAngle is the equivalent axis/angle form of a rotation matrix.
// Axis is the zero vector when the antisymmetric part of the matrix vanishes.
type AxisAngle struct {
	Axis     Vector3 `json:"axis"`
	AngleDeg Real    `json:"angleDeg"`
}

// Result bundles everything the presentation layer shows for one grain pair.
type Result struct {
	Misorientation    Mat3    `json:"misorientation"`
	MisorientationDeg Real    `json:"misorientationDeg"`
	DisorientationDeg Real    `json:"disorientationDeg"`
	Axis              Vector3 `json:"axis"`
}

// AngleFromTrace returns the rotation angle of M in degrees, in [0, 180].
// The arccos argument is clipped to [-1, 1] to absorb rounding error.
func AngleFromTrace(M Mat3) Real {
	cos := clip((M.Trace()-1)/2, -1, 1)
	return degrees(math.Acos(cos))
}

// misorientationMatrix returns gB * gA^-1.
func misorientationMatrix(gA, gB Mat3) (Mat3, error) {
	inv, err := gA.Inverse()
	if err != nil {
		return Mat3{}, fmt.Errorf("invert gA: %w", err)
	}
	return gB.Mul(inv), nil
}

// Misorientation returns M = gB * gA^-1 and its rotation angle in degrees.
// It fails with ErrSingularMatrix when gA cannot be inverted.
func Misorientation(gA, gB Mat3) (Mat3, Real, error) {
	M, err := misorientationMatrix(gA, gB)
	if err != nil {
		return Mat3{}, 0, err
	}
	return M, AngleFromTrace(M), nil
}

// Disorientation returns the smallest misorientation angle, in degrees, over
// all cubic-equivalent representations of gA and gB: min over every ordered
// pair (Oc1, Oc2) of the angle of Oc1 * (gB * gA^-1) * Oc2.
// All 24*24 pairs are evaluated.
func Disorientation(gA, gB Mat3) (Real, error) {
	R, err := misorientationMatrix(gA, gB)
	if err != nil {
		return 0, err
	}
	ops := CubicSymmetry()
	minAngle := MaxAngleDeg
	for _, oc1 := range ops {
		left := oc1.Mul(R)
		for _, oc2 := range ops {
			if angle := AngleFromTrace(left.Mul(oc2)); angle < minAngle {
				minAngle = angle
			}
		}
	}
	return minAngle, nil
}

// AxisAngleOf extracts the rotation axis and angle of M. It never fails:
// when (M21-M12, M02-M20, M10-M01) is exactly zero the axis is the zero
// vector (identity, or a 180° rotation).
func AxisAngleOf(M Mat3) AxisAngle {
	r := Vector3{
		M.M[2][1] - M.M[1][2],
		M.M[0][2] - M.M[2][0],
		M.M[1][0] - M.M[0][1],
	}
	axis := Vector3{}
	if r.Len() != 0 {
		axis = r.Norm()
	}
	return AxisAngle{Axis: axis, AngleDeg: AngleFromTrace(M)}
}

// Compute runs the three operations for one grain pair. The axis comes from
// the misorientation matrix; its angle is the misorientation angle.
func Compute(gA, gB Mat3) (Result, error) {
	M, mis, err := Misorientation(gA, gB)
	if err != nil {
		return Result{}, err
	}
	dis, err := Disorientation(gA, gB)
	if err != nil {
		return Result{}, err
	}
	aa := AxisAngleOf(M)
	DebugLog("misorientation=%.6f° disorientation=%.6f° axis=%+v", mis, dis, aa.Axis)
	return Result{
		Misorientation:    M,
		MisorientationDeg: mis,
		DisorientationDeg: dis,
		Axis:              aa.Axis,
	}, nil
}
