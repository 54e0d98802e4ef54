package bezier

import (
	"math"
)

// Line represents a line segment, a Bézier curve of degree 1.
type Line struct {
	// The line's start point.
	P0 Vec2
	// The line's end point.
	P1 Vec2
}

var _ Curve = Line{}
var _ Editable = (*Line)(nil)

func (l Line) Degree() int           { return 1 }
func (l Line) ControlPoints() []Vec2 { return []Vec2{l.P0, l.P1} }

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
func (l Line) CrossingPoint(o Line) (Vec2, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Vec2{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Add(cd.Mul(h)), true
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Eval(t float64) Vec2 {
	return l.P0.Mul(1 - t).Add(l.P1.Mul(t))
}

func (l Line) Point(t float64) (Vec2, error) {
	return checkedEval(l, t)
}

func (l Line) Start() Vec2 { return l.P0 }
func (l Line) End() Vec2   { return l.P1 }

// Derivative returns the constant direction vector of the line.
func (l Line) Derivative() (Curve, bool) {
	return l.Differentiate(), true
}

func (l Line) Differentiate() Constant {
	return Constant{l.P1.Sub(l.P0)}
}

func (l Line) Roots() []float64 {
	return pointRoots(l.ControlPoints())
}

func (l Line) SplitLine(z float64) (Line, Line) {
	pm := l.Eval(z)
	return Line{l.P0, pm}, Line{pm, l.P1}
}

func (l Line) Split(z float64) (Curve, Curve) {
	return l.SplitLine(z)
}

func (l Line) Subdivide() (Line, Line) {
	return l.SplitLine(0.5)
}

// Raise returns a quadratic Bézier segment that exactly represents this line.
func (l Line) Raise() QuadBez {
	return QuadBez{l.P0, l.P0.Midpoint(l.P1), l.P1}
}

func (l Line) BoundingBox(offset float64) Rect {
	return NewRectFromPoints(l.P0, l.P1).Inflate(offset)
}

// Extrema always returns nil. A line's derivative is constant and has no roots.
func (l Line) Extrema() []Vec2 { return nil }

func (l *Line) SetControlPoint(i int, p Vec2) error {
	switch i {
	case 0:
		l.P0 = p
	case 1:
		l.P1 = p
	default:
		return indexError(i, 2)
	}
	return nil
}

// IntersectLine returns the intersection of two line segments, if any. LineT is
// the parameter on o, SegmentT the parameter on l.
func (l Line) IntersectLine(o Line) (LineIntersection, bool) {
	const epsilon = 1e-9
	p0 := o.P0
	p1 := o.P1
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	det := dx*(l.P1.Y-l.P0.Y) - dy*(l.P1.X-l.P0.X)
	if math.Abs(det) < epsilon {
		// Lines are coincident (or nearly so).
		return LineIntersection{}, false
	}
	t := dx*(p0.Y-l.P0.Y) - dy*(p0.X-l.P0.X)
	// t = position on self
	t /= det
	if t >= -epsilon && t <= 1+epsilon {
		// u = position on the other line
		u :=
			(l.P0.X-p0.X)*(l.P1.Y-l.P0.Y) - (l.P0.Y-p0.Y)*(l.P1.X-l.P0.X)
		u /= det
		if u >= 0.0 && u <= 1.0 {
			return LineIntersection{LineT: u, SegmentT: t}, true
		}
	}
	return LineIntersection{}, false
}
