package misorient

import (
	"encoding/json"
	"math"
)

type Real = float64

// Vector3 is a direction in 3D space (rotation axes are unit vectors).
type Vector3 struct {
	X, Y, Z Real
}

// Mul scales the vector by s.
func (v Vector3) Mul(s Real) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product between two 3D vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
// The zero vector is returned unchanged.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// Array is the [x y z] form used in reports.
func (v Vector3) Array() [3]Real { return [3]Real{v.X, v.Y, v.Z} }

// MarshalJSON encodes the vector as [x, y, z].
func (v Vector3) MarshalJSON() ([]byte, error) { return json.Marshal(v.Array()) }

func (v *Vector3) UnmarshalJSON(data []byte) error {
	var a [3]Real
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	v.X, v.Y, v.Z = a[0], a[1], a[2]
	return nil
}
