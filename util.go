package bezier

import "math"

// Epsilon is the tolerance used when comparing floating-point values for equality,
// and when deciding whether a polynomial coefficient is zero.
const Epsilon = 1e-5

// discriminantEpsilon is the relative tolerance used when deciding whether a
// discriminant vanishes. Discriminants are products of coefficients and shrink or
// grow with the cube of their scale, so they are compared relative to the
// magnitude of their terms instead of against Epsilon.
const discriminantEpsilon = 1e-10

// ApproxZero reports whether |x| ≤ [Epsilon].
func ApproxZero(x float64) bool {
	return math.Abs(x) <= Epsilon
}

// ApproxEqual reports whether a and b differ by at most [Epsilon].
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// termsCancel reports whether a-b is zero relative to the magnitudes of a and b.
func termsCancel(a, b float64) bool {
	return math.Abs(a-b) <= discriminantEpsilon*max(math.Abs(a), math.Abs(b))
}

// CheckT reports whether t lies in the parameter domain [0, 1] of a curve.
func CheckT(t float64) bool {
	return t >= 0 && t <= 1
}
