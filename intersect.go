package bezier

import (
	"math"
	"slices"
)

// IntersectOptions tunes [IntersectionsOpt]. Zero fields take their default
// values.
type IntersectOptions struct {
	// Threshold is the width and height below which the bounding boxes of two
	// overlapping pieces are considered to have converged to a point. The
	// default is 0.001.
	Threshold float64
	// MaxDepth limits the number of times each curve gets halved. The default
	// is 24.
	//
	// A pair that still overlaps at this depth is reported at the center of
	// the area its bounding boxes share, and absorbs other candidates within
	// the diagonal of their combined bounding box. A single crossing therefore
	// yields a single point, but one that is only accurate to the size of the
	// pieces at this depth. With coordinates in the millions, that size can
	// exceed the threshold by orders of magnitude, and distinct intersections
	// closer than it are reported as one.
	MaxDepth int
	// MergeDistance is the distance below which two candidate points are
	// considered the same intersection. The default is 0.01.
	MergeDistance float64
}

// DefaultIntersectOptions are the options used by [Intersections].
var DefaultIntersectOptions = IntersectOptions{
	Threshold:     1e-3,
	MaxDepth:      24,
	MergeDistance: 1e-2,
}

func (o IntersectOptions) withDefaults() IntersectOptions {
	if o.Threshold <= 0 {
		o.Threshold = DefaultIntersectOptions.Threshold
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultIntersectOptions.MaxDepth
	}
	if o.MergeDistance <= 0 {
		o.MergeDistance = DefaultIntersectOptions.MergeDistance
	}
	return o
}

// Intersections returns the approximate points at which a and b intersect, using
// [DefaultIntersectOptions].
func Intersections(a, b Curve) []Vec2 {
	return IntersectionsOpt(a, b, DefaultIntersectOptions)
}

// IntersectionsOpt returns the approximate points at which a and b intersect.
//
// Both curves are halved recursively, discarding pairs of pieces whose bounding
// boxes don't overlap. Once both boxes of an overlapping pair are smaller than
// the threshold, the upper right corner of the box of a's piece is a candidate
// point. Candidates closer than the merge distance to an earlier candidate are
// dropped. See [IntersectOptions.MaxDepth] for pairs that never get that small.
//
// Curves that touch without crossing may be reported as intersecting if they
// come closer than the threshold. Overlapping curves produce a string of points
// along the shared section.
func IntersectionsOpt(a, b Curve, opts IntersectOptions) []Vec2 {
	opts = opts.withDefaults()
	var raw []candidate
	intersect(a, b, opts, 0, &raw)
	return mergePoints(raw)
}

// candidate is a possible intersection and the radius within which it stands
// for the same intersection as other candidates.
type candidate struct {
	pt     Vec2
	radius float64
}

func intersect(a, b Curve, opts IntersectOptions, depth int, out *[]candidate) {
	ra := BoundingBox(a, 0)
	rb := BoundingBox(b, 0)
	if !ra.Overlaps(rb) {
		return
	}
	small := func(r Rect) bool {
		return r.Width() < opts.Threshold && r.Height() < opts.Threshold
	}
	if small(ra) && small(rb) {
		*out = append(*out, candidate{ra.UpperRight, opts.MergeDistance})
		return
	}
	if depth >= opts.MaxDepth {
		u := ra.Union(rb)
		*out = append(*out, candidate{
			pt:     ra.Intersect(rb).Center(),
			radius: max(opts.MergeDistance, math.Hypot(u.Width(), u.Height())),
		})
		return
	}
	a1, a2 := a.Split(0.5)
	b1, b2 := b.Split(0.5)
	intersect(a1, b1, opts, depth+1, out)
	intersect(a1, b2, opts, depth+1, out)
	intersect(a2, b1, opts, depth+1, out)
	intersect(a2, b2, opts, depth+1, out)
}

// mergePoints drops every candidate that lies within the radius of an earlier
// kept candidate, or whose own radius reaches one.
func mergePoints(cands []candidate) []Vec2 {
	var kept []candidate
	for _, c := range cands {
		dup := slices.ContainsFunc(kept, func(k candidate) bool {
			return k.pt.Distance(c.pt) < max(k.radius, c.radius)
		})
		if !dup {
			kept = append(kept, c)
		}
	}
	var out []Vec2
	for _, k := range kept {
		out = append(out, k.pt)
	}
	return out
}

// LineIntersection describes the intersection of a curve with a line segment.
type LineIntersection struct {
	// The parameter on the line segment.
	LineT float64
	// The parameter on the curve.
	SegmentT float64
}

// IntersectLine computes the intersections of c with the line segment l in
// closed form. The results are sorted by SegmentT.
//
// The curve's polynomial is projected onto the normal of l, giving a signed
// distance from the line that is zero where the two meet. Curves that lie on l
// and degenerate lines produce no intersections.
func IntersectLine(c Curve, l Line) []LineIntersection {
	const epsilon = 1e-9
	pts := c.ControlPoints()
	if len(pts) < 2 {
		return nil
	}
	p0 := l.P0
	dx := l.P1.X - p0.X
	dy := l.P1.Y - p0.Y
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return nil
	}

	xs, ys := components(pts)
	px := powerCoefficients(xs)
	py := powerCoefficients(ys)
	dist := make([]float64, len(px))
	for i := range px {
		dist[i] = dy*px[i] - dx*py[i]
	}
	dist[0] -= dy*p0.X - dx*p0.Y

	var out []LineIntersection
	for _, t := range solvePower(dist) {
		if t < -epsilon || t > 1+epsilon {
			continue
		}
		pt := c.Eval(t)
		u := (pt.X-p0.X)*dx + (pt.Y-p0.Y)*dy
		u /= len2
		if u >= 0 && u <= 1 {
			out = append(out, LineIntersection{LineT: u, SegmentT: t})
		}
	}
	slices.SortFunc(out, func(a, b LineIntersection) int {
		switch {
		case a.SegmentT < b.SegmentT:
			return -1
		case a.SegmentT > b.SegmentT:
			return 1
		default:
			return 0
		}
	})
	return out
}

// CoincidentParams returns, in ascending order, the parameters t ∈ [0, 1] at
// which a(t) and b(t) are the same point. The lower-degree curve is raised to
// the degree of the other so that both can be compared term by term.
//
// Roots of the x and y components of a(t) - b(t) are computed independently and
// paired if they are approximately equal. Curves that agree everywhere have no
// isolated coincident parameters and produce nil.
func CoincidentParams(a, b Curve) []float64 {
	pa := a.ControlPoints()
	pb := b.ControlPoints()
	for len(pa) < len(pb) {
		pa = elevatePoints(pa)
	}
	for len(pb) < len(pa) {
		pb = elevatePoints(pb)
	}
	d := make([]Vec2, len(pa))
	for i := range pa {
		d[i] = pa[i].Sub(pb[i])
	}
	xs, ys := components(d)
	xZero, yZero := allZero(xs), allZero(ys)

	var candidates []float64
	switch {
	case xZero && yZero:
		return nil
	case xZero:
		candidates = componentRoots(ys)
	case yZero:
		candidates = componentRoots(xs)
	default:
		yr := componentRoots(ys)
		for _, tx := range componentRoots(xs) {
			if slices.ContainsFunc(yr, func(ty float64) bool { return ApproxEqual(tx, ty) }) {
				candidates = append(candidates, tx)
			}
		}
	}

	var out []float64
	for _, t := range candidates {
		if !CheckT(t) {
			continue
		}
		if slices.ContainsFunc(out, func(o float64) bool { return ApproxEqual(o, t) }) {
			continue
		}
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

func allZero(ws []float64) bool {
	for _, w := range ws {
		if !ApproxZero(w) {
			return false
		}
	}
	return true
}
