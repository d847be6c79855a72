package misorient

import "sync"

// Rotation axes of the cubic point group, in generation order.
var (
	cubeAxes = [3]Vector3{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	}
	faceDiagonals = [6]Vector3{
		{1, 1, 0}, {1, -1, 0},
		{1, 0, 1}, {1, 0, -1},
		{0, 1, 1}, {0, 1, -1},
	}
	bodyDiagonals = [4]Vector3{
		{1, 1, 1}, {-1, 1, 1},
		{1, -1, 1}, {1, 1, -1},
	}
)

// GenerateCubicSymmetry returns a fresh, ordered slice with the 24 proper
// rotations of cubic symmetry:
//   - identity
//   - 90°, 180°, 270° about x, y, z (9)
//   - 180° about the six face diagonals <110> (6)
//   - 120°, 240° about the four body diagonals <111> (8)
//
// Each element is rounded to SymmetryDecimals places, so the operators are
// exact integer matrices.
func GenerateCubicSymmetry() []Mat3 {
	ops := make([]Mat3, 0, SymmetryOrder)
	ops = append(ops, I3())

	op := func(axis Vector3, angleDeg Real) Mat3 {
		return rotAxisAngle(axis.Norm(), radians(angleDeg)).Round(SymmetryDecimals)
	}
	for _, a := range cubeAxes {
		for _, angle := range [...]Real{90, 180, 270} {
			ops = append(ops, op(a, angle))
		}
	}
	for _, d := range faceDiagonals {
		ops = append(ops, op(d, 180))
	}
	for _, d := range bodyDiagonals {
		ops = append(ops, op(d, 120), op(d, 240))
	}
	DebugLogOnce("Generated %d cubic symmetry operators", len(ops))
	return ops
}

var cubicTable = sync.OnceValue(func() (t [SymmetryOrder]Mat3) {
	copy(t[:], GenerateCubicSymmetry())
	return t
})

// CubicSymmetry returns a copy of the operator table, which is generated once
// per process. Callers may modify the result freely.
func CubicSymmetry() [SymmetryOrder]Mat3 { return cubicTable() }
