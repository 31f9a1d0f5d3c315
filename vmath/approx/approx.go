// Package approx holds the tolerance shared by every geometric comparison.
package approx

import "math"

// Epsilon absorbs floating point error in comparisons, and is the distance
// secondary rays are nudged off a surface.
const Epsilon = 1e-5

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
