package bezier

var _ Curve = QuadBez{}
var _ Editable = (*QuadBez)(nil)

// QuadBez is a quadratic Bézier curve.
type QuadBez struct {
	P0 Vec2
	P1 Vec2
	P2 Vec2
}

func (q QuadBez) Degree() int           { return 2 }
func (q QuadBez) ControlPoints() []Vec2 { return []Vec2{q.P0, q.P1, q.P2} }

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) Eval(t float64) Vec2 {
	mt := 1.0 - t
	a := q.P0.Mul(mt * mt)
	b := q.P1.Mul(mt * 2.0)
	c := q.P2.Mul(t)
	d := b.Add(c)
	return a.Add(d.Mul(t))
}

func (q QuadBez) Point(t float64) (Vec2, error) {
	return checkedEval(q, t)
}

// SplitQuad subdivides the curve at z using de Casteljau.
func (q QuadBez) SplitQuad(z float64) (QuadBez, QuadBez) {
	a := q.P0.Lerp(q.P1, z)
	b := q.P1.Lerp(q.P2, z)
	pm := a.Lerp(b, z)
	return QuadBez{q.P0, a, pm}, QuadBez{pm, b, q.P2}
}

func (q QuadBez) Split(z float64) (Curve, Curve) {
	return q.SplitQuad(z)
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Differentiate() Line {
	return Line{
		q.P1.Sub(q.P0).Mul(2),
		q.P2.Sub(q.P1).Mul(2),
	}
}

func (q QuadBez) Derivative() (Curve, bool) {
	return q.Differentiate(), true
}

func (q QuadBez) Roots() []float64 {
	return pointRoots(q.ControlPoints())
}

func (q QuadBez) Start() Vec2 {
	return q.P0
}

func (q QuadBez) End() Vec2 {
	return q.P2
}

func (q QuadBez) BoundingBox(offset float64) Rect {
	return BoundingBox(q, offset)
}

func (q QuadBez) Extrema() []Vec2 {
	return Extrema(q)
}

func (q *QuadBez) SetControlPoint(i int, p Vec2) error {
	switch i {
	case 0:
		q.P0 = p
	case 1:
		q.P1 = p
	case 2:
		q.P2 = p
	default:
		return indexError(i, 3)
	}
	return nil
}
