package bezier

import (
	"cmp"
	"math"
	"slices"
)

// MinDistance describes the closest approach of two curves.
type MinDistance struct {
	// The shortest distance between any two points on the two curves.
	Distance float64
	// The position of the nearest point on the first curve, as a parameter.
	T1 float64
	// The position of the nearest point on the second curve, as a parameter.
	T2 float64
}

// MinDist computes the minimum distance between a and b. The search stops
// subdividing once a parameter interval is narrower than accuracy, and the
// returned distance exceeds the true minimum by at most about accuracy times the
// speed of the curves. Curves that intersect have a distance of (approximately)
// zero. Accuracies below 1e-12 are raised to 1e-12.
//
// This follows "Computing the minimum distance between two Bézier curves",
// Chen et al., Journal of Computational and Applied Mathematics 229 (2009),
// 294-301. The squared distance |a(u) - b(v)|² is a polynomial of degree 2n in
// u and 2m in v. Over any rectangle of the parameter domain, its coefficients in
// the tensor product Bernstein basis bound it from below, and the coefficients
// at the corners are its values there. The search subdivides the coefficient
// grid with de Casteljau's algorithm and discards rectangles whose bound can't
// beat the best value found so far.
func MinDist(a, b Curve, accuracy float64) MinDistance {
	pa, pb := a.ControlPoints(), b.ControlPoints()
	root := newDistPatch(distCoeffs(pa, pb), 0, 1, 0, 1)
	s := distSearch{
		accuracy: max(accuracy, 1e-12),
		best:     root.corners()[0],
	}
	s.slack = s.accuracy * (polygonSpeed(pa) + polygonSpeed(pb))
	s.visit(root)
	return MinDistance{
		// Rounding can make the squared distance of touching curves slightly
		// negative.
		Distance: math.Sqrt(max(0, s.best.dist)),
		T1:       s.best.u,
		T2:       s.best.v,
	}
}

// distSample is a squared distance and the parameters at which it occurs.
type distSample struct {
	dist float64
	u, v float64
}

type distSearch struct {
	accuracy float64
	// Distance by which a rectangle has to be able to improve on the best
	// sample to be searched.
	slack float64
	best  distSample
}

func (s *distSearch) visit(p distPatch) {
	for _, c := range p.corners() {
		if c.dist < s.best.dist {
			s.best = c
		}
	}
	// Negated so that NaN prunes.
	if !(math.Sqrt(max(p.bound, 0)) < math.Sqrt(max(s.best.dist, 0))-s.slack) {
		return
	}
	if p.u1-p.u0 < s.accuracy || p.v1-p.v0 < s.accuracy {
		return
	}
	kids := p.split()
	slices.SortFunc(kids[:], func(a, b distPatch) int {
		return cmp.Compare(a.bound, b.bound)
	})
	for _, k := range kids {
		s.visit(k)
	}
}

// distPatch holds the Bernstein coefficients of the squared distance between two
// curves over [u0, u1]×[v0, v1]. Rows correspond to u, columns to v.
type distPatch struct {
	coeff  [][]float64
	u0, u1 float64
	v0, v1 float64
	// The smallest coefficient, a lower bound of the squared distance.
	bound float64
}

func newDistPatch(coeff [][]float64, u0, u1, v0, v1 float64) distPatch {
	bound := math.Inf(1)
	for _, row := range coeff {
		for _, d := range row {
			bound = min(bound, d)
		}
	}
	return distPatch{coeff: coeff, u0: u0, u1: u1, v0: v0, v1: v1, bound: bound}
}

func (p distPatch) corners() [4]distSample {
	last := len(p.coeff) - 1
	row0, rowN := p.coeff[0], p.coeff[last]
	m := len(row0) - 1
	return [4]distSample{
		{row0[0], p.u0, p.v0},
		{row0[m], p.u0, p.v1},
		{rowN[0], p.u1, p.v0},
		{rowN[m], p.u1, p.v1},
	}
}

// split halves the patch along both parameters.
func (p distPatch) split() [4]distPatch {
	rows, cols := len(p.coeff), len(p.coeff[0])
	top := make([][]float64, rows)
	bottom := make([][]float64, rows)
	for r := range rows {
		top[r] = make([]float64, cols)
		bottom[r] = make([]float64, cols)
	}
	col := make([]float64, rows)
	for k := range cols {
		for r := range rows {
			col[r] = p.coeff[r][k]
		}
		lo, hi := halveCoeffs(col)
		for r := range rows {
			top[r][k], bottom[r][k] = lo[r], hi[r]
		}
	}

	um, vm := (p.u0+p.u1)/2, (p.v0+p.v1)/2
	var out [4]distPatch
	for i, h := range [2]struct {
		coeff  [][]float64
		u0, u1 float64
	}{{top, p.u0, um}, {bottom, um, p.u1}} {
		left := make([][]float64, rows)
		right := make([][]float64, rows)
		for r, row := range h.coeff {
			left[r], right[r] = halveCoeffs(row)
		}
		out[2*i] = newDistPatch(left, h.u0, h.u1, p.v0, vm)
		out[2*i+1] = newDistPatch(right, h.u0, h.u1, vm, p.v1)
	}
	return out
}

// halveCoeffs splits one-dimensional Bernstein coefficients at 0.5.
func halveCoeffs(ws []float64) (left, right []float64) {
	n := len(ws)
	left = make([]float64, n)
	right = make([]float64, n)
	work := slices.Clone(ws)
	for k := range n {
		left[k] = work[0]
		right[n-1-k] = work[n-1-k]
		for i := range n - 1 - k {
			work[i] = (work[i] + work[i+1]) / 2
		}
	}
	return left, right
}

// distCoeffs returns the coefficients of |p(u) - q(v)|² in the tensor product
// Bernstein basis of degrees 2n and 2m.
func distCoeffs(p, q []Vec2) [][]float64 {
	if len(p) == 0 || len(q) == 0 {
		panic("called with empty curve")
	}
	pe, pp := squareCoeffs(p)
	qe, qq := squareCoeffs(q)
	out := make([][]float64, len(pe))
	for r := range pe {
		out[r] = make([]float64, len(qe))
		for k := range qe {
			out[r][k] = pp[r] + qq[k] - 2*pe[r].Dot(qe[k])
		}
	}
	return out
}

// squareCoeffs returns, for a curve of degree n given by pts, its control points
// elevated to degree 2n together with the Bernstein coefficients of |p(t)|².
func squareCoeffs(pts []Vec2) (elevated []Vec2, square []float64) {
	n := len(pts) - 1
	elevated = make([]Vec2, 2*n+1)
	square = make([]float64, 2*n+1)
	for r := range 2*n + 1 {
		for i := max(0, r-n); i <= min(r, n); i++ {
			w := float64(choose(n, i)*choose(n, r-i)) / float64(choose(2*n, r))
			elevated[r] = elevated[r].Add(pts[i].Mul(w))
			square[r] += pts[i].Dot(pts[r-i]) * w
		}
	}
	return elevated, square
}

// polygonSpeed bounds the speed |p'(t)| of the curve with control points pts.
func polygonSpeed(pts []Vec2) float64 {
	var edge float64
	for i := 1; i < len(pts); i++ {
		edge = max(edge, pts[i].Distance(pts[i-1]))
	}
	return float64(len(pts)-1) * edge
}

// Binomial co-efficient, but returning zeros for values outside of domain
func choose(n, k int) uint32 {
	if k > n {
		return 0
	}
	p := 1
	bound := n - k
	for i := 1; i <= bound; i++ {
		p *= n
		p /= i
		n -= 1
	}
	return uint32(p)
}
