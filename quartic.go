package bezier

var _ Curve = QuarticBez{}
var _ Editable = (*QuarticBez)(nil)

// QuarticBez is a Bézier curve of degree 4.
type QuarticBez struct {
	P0 Vec2
	P1 Vec2
	P2 Vec2
	P3 Vec2
	P4 Vec2
}

func (q QuarticBez) Degree() int { return 4 }

func (q QuarticBez) ControlPoints() []Vec2 {
	return []Vec2{q.P0, q.P1, q.P2, q.P3, q.P4}
}

func (q QuarticBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf() || q.P3.IsInf() || q.P4.IsInf()
}

func (q QuarticBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN() || q.P3.IsNaN() || q.P4.IsNaN()
}

func (q QuarticBez) Eval(t float64) Vec2 {
	mt := 1.0 - t
	mt2 := mt * mt
	a := q.P0.Mul(mt2 * mt2)
	b := q.P1.Mul(mt2 * mt * 4.0)
	c := q.P2.Mul(mt2 * 6.0)
	d := q.P3.Mul(mt * 4.0)
	e := q.P4
	return a.Add(b.Add(c.Add(d.Add(e.Mul(t)).Mul(t)).Mul(t)).Mul(t))
}

func (q QuarticBez) Point(t float64) (Vec2, error) {
	return checkedEval(q, t)
}

// SplitQuartic subdivides the curve at z, using de Casteljau.
func (q QuarticBez) SplitQuartic(z float64) (QuarticBez, QuarticBez) {
	l, r := splitPoints(q.ControlPoints(), z)
	return QuarticBez{l[0], l[1], l[2], l[3], l[4]}, QuarticBez{r[0], r[1], r[2], r[3], r[4]}
}

func (q QuarticBez) Split(z float64) (Curve, Curve) {
	return q.SplitQuartic(z)
}

func (q QuarticBez) Subdivide() (QuarticBez, QuarticBez) {
	return q.SplitQuartic(0.5)
}

func (q QuarticBez) Start() Vec2 { return q.P0 }
func (q QuarticBez) End() Vec2   { return q.P4 }

func (q QuarticBez) Differentiate() CubicBez {
	return CubicBez{
		q.P1.Sub(q.P0).Mul(4),
		q.P2.Sub(q.P1).Mul(4),
		q.P3.Sub(q.P2).Mul(4),
		q.P4.Sub(q.P3).Mul(4),
	}
}

func (q QuarticBez) Derivative() (Curve, bool) {
	return q.Differentiate(), true
}

func (q QuarticBez) Roots() []float64 {
	return pointRoots(q.ControlPoints())
}

func (q QuarticBez) BoundingBox(offset float64) Rect {
	return BoundingBox(q, offset)
}

func (q QuarticBez) Extrema() []Vec2 {
	return Extrema(q)
}

func (q *QuarticBez) SetControlPoint(i int, p Vec2) error {
	switch i {
	case 0:
		q.P0 = p
	case 1:
		q.P1 = p
	case 2:
		q.P2 = p
	case 3:
		q.P3 = p
	case 4:
		q.P4 = p
	default:
		return indexError(i, 5)
	}
	return nil
}
