package misorient

import (
	"math"
	"testing"
)

func TestVectorOps(t *testing.T) {
	v := Vector3{1, 2, 3}
	w := Vector3{-1, 0.5, 2}
	s := Real(3)

	mul := v.Mul(s)
	if mul != (Vector3{3, 6, 9}) {
		t.Fatalf("Mul mismatch: %+v", mul)
	}
	dot := v.Dot(w)
	wantDot := Real(1*(-1) + 2*0.5 + 3*2)
	if dot != wantDot {
		t.Fatalf("Dot mismatch: got %.12g want %.12g", dot, wantDot)
	}
	l := v.Len()
	if math.Abs(l-math.Sqrt(14)) > 1e-12 {
		t.Fatalf("Len mismatch: %.12g", l)
	}
	n := v.Norm()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Fatalf("Norm not unit: %.12g", n.Len())
	}
	if z := (Vector3{}).Norm(); z != (Vector3{}) {
		t.Fatalf("Norm of zero vector changed it: %+v", z)
	}
}

func TestVectorArrayJSON(t *testing.T) {
	v := Vector3{1, -2, 0.5}
	if v.Array() != [3]Real{1, -2, 0.5} {
		t.Fatalf("Array mismatch: %v", v.Array())
	}
	b, err := v.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[1,-2,0.5]" {
		t.Fatalf("MarshalJSON = %s", b)
	}
	var w Vector3
	if err := w.UnmarshalJSON(b); err != nil || w != v {
		t.Fatalf("UnmarshalJSON = %+v, %v", w, err)
	}
}

// rotate applies R to v.
func rotate(R Mat3, v Vector3) Vector3 {
	return Vector3{
		R.M[0][0]*v.X + R.M[0][1]*v.Y + R.M[0][2]*v.Z,
		R.M[1][0]*v.X + R.M[1][1]*v.Y + R.M[1][2]*v.Z,
		R.M[2][0]*v.X + R.M[2][1]*v.Y + R.M[2][2]*v.Z,
	}
}

// dist is the Euclidean distance between a and b.
func dist(a, b Vector3) Real {
	return math.Sqrt((a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y) + (a.Z-b.Z)*(a.Z-b.Z))
}
