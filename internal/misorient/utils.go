package misorient

import (
	"math"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// clip clamps x to [lo, hi].
func clip(x, lo, hi Real) Real {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// roundTo rounds x to n decimals, normalising -0 to 0.
func roundTo(x Real, n int) Real {
	p := math.Pow(10, Real(n))
	r := math.Round(x*p) / p
	if r == 0 {
		return 0
	}
	return r
}

func degrees(rad Real) Real { return rad * 180 / math.Pi }
func radians(deg Real) Real { return deg * math.Pi / 180 }
