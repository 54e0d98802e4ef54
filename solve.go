package bezier

import (
	"math"
	"slices"
)

// SolveLinear finds the root of a x + b = 0.
//
// If a is zero (within [Epsilon]) the equation has either no solution or
// infinitely many, and in both cases no root is reported.
func SolveLinear(a, b float64) (float64, bool) {
	if ApproxZero(a) {
		return 0, false
	}
	return -b / a, true
}

// SolveQuadratic finds real roots of a x² + b x + c = 0.
//
// If a is zero (within [Epsilon]) the equation is solved as a linear one. A
// discriminant that vanishes relative to its terms yields a single double root.
// Complex roots are not reported.
//
// The second return value states how many roots were found.
func SolveQuadratic(a, b, c float64) ([2]float64, int) {
	if ApproxZero(a) {
		if root, ok := SolveLinear(b, c); ok {
			return [2]float64{root}, 1
		}
		return [2]float64{}, 0
	}
	b2 := b * b
	ac4 := 4 * a * c
	if termsCancel(b2, ac4) {
		return [2]float64{-b / (2 * a)}, 1
	}
	d := b2 - ac4
	if d < 0 {
		return [2]float64{}, 0
	}
	sq := math.Sqrt(d)
	return [2]float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}, 2
}

// SolveCubic finds real roots of a x³ + b x² + c x + d = 0.
//
// If a is zero (within [Epsilon]) the equation is solved as a quadratic one.
// Otherwise the cubic is normalized and depressed to t³ + p t + q = 0 with
// x = t − b/3a, and solved with Cardano's formula when it has one real root or
// with the trigonometric method when it has three. Roots are refined with a few
// Newton-Raphson steps on the original polynomial.
//
// The second return value states how many roots were found. Roots are not
// sorted, and a repeated root is reported once.
func SolveCubic(a, b, c, d float64) ([3]float64, int) {
	if ApproxZero(a) {
		roots, n := SolveQuadratic(b, c, d)
		return [3]float64{roots[0], roots[1]}, n
	}
	roots, n := solveDepressedCubic(b/a, c/a, d/a)
	coeffs := [...]float64{a, b, c, d}
	for i := range roots[:n] {
		roots[i] = polishRoot(coeffs[:], roots[i])
	}
	return roots, n
}

// solveDepressedCubic solves the monic cubic x³ + a x² + b x + c = 0.
func solveDepressedCubic(a, b, c float64) ([3]float64, int) {
	a2 := a * a
	p := b - a2/3
	q := 2*a2*a/27 - a*b/3 + c
	// x = t - offset
	offset := a / 3

	pZero := ApproxZero(p)
	qZero := ApproxZero(q)
	switch {
	case pZero && qZero:
		// t³ = 0
		return [3]float64{-offset}, 1
	case pZero:
		// t³ = -q
		return [3]float64{math.Cbrt(-q) - offset}, 1
	case qZero:
		// t (t² + p) = 0
		if p < 0 {
			sq := math.Sqrt(-p)
			return [3]float64{-offset, sq - offset, -sq - offset}, 3
		}
		return [3]float64{-offset}, 1
	}

	qHalf := q / 2
	pThird := p / 3
	t1 := qHalf * qHalf
	t2 := -pThird * pThird * pThird
	if termsCancel(t1, t2) {
		// One simple root and one double root.
		u := math.Cbrt(qHalf)
		return [3]float64{-2*u - offset, u - offset}, 2
	}
	if disc := t1 - t2; disc > 0 {
		sq := math.Sqrt(disc)
		return [3]float64{math.Cbrt(-qHalf+sq) + math.Cbrt(-qHalf-sq) - offset}, 1
	}

	// Casus irreducibilis: p < 0 and three distinct real roots.
	r := math.Sqrt(t2)
	m := 2 * math.Cbrt(r)
	phi := math.Acos(max(-1, min(1, -qHalf/r)))
	return [3]float64{
		m*math.Cos(phi/3) - offset,
		m*math.Cos((phi+2*math.Pi)/3) - offset,
		m*math.Cos((phi+4*math.Pi)/3) - offset,
	}, 3
}

// SolveQuartic finds real roots of a x⁴ + b x³ + c x² + d x + e = 0.
//
// If a is zero (within [Epsilon]) the equation is solved as a cubic one.
// Otherwise the roots are isolated between the critical points of the
// polynomial, which are found the same way one degree lower, and between the
// Cauchy bound of the roots. The polynomial is monotonic between two adjacent
// critical points, so each such interval holds at most one root, which [SolveITP]
// locates. A critical point at which the polynomial vanishes is a repeated root
// and is reported once.
//
// The second return value states how many roots were found. Roots are not sorted.
func SolveQuartic(a, b, c, d, e float64) ([4]float64, int) {
	if ApproxZero(a) {
		roots, n := SolveCubic(b, c, d, e)
		return [4]float64{roots[0], roots[1], roots[2]}, n
	}
	coeffs := [...]float64{a, b, c, d, e}
	var out [4]float64
	roots := solveMonic([]float64{1, b / a, c / a, d / a, e / a})
	for i, x := range roots {
		out[i] = polishRoot(coeffs[:], x)
	}
	return out, len(roots)
}

// solveMonic finds the real roots of a monic polynomial of degree 1 or higher,
// with coefficients highest degree first.
func solveMonic(coeffs []float64) []float64 {
	n := len(coeffs) - 1
	switch n {
	case 1:
		return []float64{-coeffs[1]}
	case 2:
		roots, rn := SolveQuadratic(1, coeffs[1], coeffs[2])
		return roots[:rn]
	}

	deriv := make([]float64, n)
	for i := range deriv {
		deriv[i] = float64(n-i) * coeffs[i] / float64(n)
	}
	crit := solveMonic(deriv)
	slices.Sort(crit)
	crit = slices.Compact(crit)

	bound := 1.0
	for _, c := range coeffs[1:] {
		bound = max(bound, 1+math.Abs(c))
	}
	xs := []float64{-bound}
	for _, x := range crit {
		if x > -bound && x < bound {
			xs = append(xs, x)
		}
	}
	xs = append(xs, bound)

	f := func(x float64) float64 {
		y, _ := hornerDeriv(coeffs, x)
		return y
	}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}

	var out []float64
	for i := 1; i < len(xs)-1; i++ {
		if math.Abs(ys[i]) <= 1e-12*termScale(coeffs, xs[i]) {
			ys[i] = 0
			out = append(out, xs[i])
		}
	}
	for i := range len(xs) - 1 {
		lo, hi := xs[i], xs[i+1]
		ylo, yhi := ys[i], ys[i+1]
		if ylo == 0 || yhi == 0 || (ylo < 0) == (yhi < 0) {
			continue
		}
		g := f
		if ylo > 0 {
			g = func(x float64) float64 { return -f(x) }
			ylo, yhi = -ylo, -yhi
		}
		epsilon := max(1e-12*max(math.Abs(lo), math.Abs(hi)), math.SmallestNonzeroFloat64)
		out = append(out, SolveITP(g, lo, hi, epsilon, 1, 0.2/(hi-lo), ylo, yhi))
	}
	return out
}

// termScale returns the sum of the magnitudes of the terms of the polynomial at
// x, which bounds the rounding error of evaluating it.
func termScale(coeffs []float64, x float64) float64 {
	var s float64
	ax := math.Abs(x)
	for _, c := range coeffs {
		s = s*ax + math.Abs(c)
	}
	return s
}

// SolveITP solves an arbitrary function for a zero-crossing using the [ITP
// method], as described in the paper
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality].
//
// The values of ya and yb are given as arguments rather than computed from f,
// as the values may already be known, or they may be less expensive to compute
// as special cases.
//
// It is assumed that ya < 0.0 and yb > 0.0, otherwise unexpected results may
// occur.
//
// The value of epsilon must be larger than 2**-63 * (b - a), otherwise integer
// overflow may occur. The a and b parameters represent the lower and upper
// bounds of the bracket searched for a solution.
//
// The ITP method has tuning parameters. This implementation hardwires k2 to 2,
// both because it avoids an expensive floating point exponentiation and because
// this value has been tested to work well with polynomial root finding.
//
// The n0 parameter controls the relative impact of the bisection and secant
// components. When it is 0, the number of iterations is guaranteed to be no
// more than the number required by bisection. A value of 1 gives the secant
// method more of a chance to engage.
//
// The k1 parameter is harder to characterize. To match the paper, a value of
// 0.2 / (b - a) is suggested.
//
// When the function is monotonic, the returned result is guaranteed to be
// within epsilon of the zero crossing.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
func SolveITP(
	f func(float64) float64,
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya float64,
	yb float64,
) float64 {
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	nmax := min(n0+n1_2, 62)
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for b-a > 2.0*epsilon {
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		// This has k2 = 2 hardwired for efficiency.
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}

// polishRoot refines an approximate root of the polynomial with the given
// coefficients (highest degree first) using Newton-Raphson iteration. It stops
// as soon as a step fails to reduce the residual.
func polishRoot(coeffs []float64, x float64) float64 {
	f, df := hornerDeriv(coeffs, x)
	for range 8 {
		if f == 0 || df == 0 {
			break
		}
		nx := x - f/df
		nf, ndf := hornerDeriv(coeffs, nx)
		if math.Abs(nf) >= math.Abs(f) {
			break
		}
		x, f, df = nx, nf, ndf
	}
	return x
}

// hornerDeriv evaluates a polynomial and its derivative at x.
func hornerDeriv(coeffs []float64, x float64) (f, df float64) {
	for _, c := range coeffs {
		df = df*x + f
		f = f*x + c
	}
	return f, df
}
