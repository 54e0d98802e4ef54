package bezier

import (
	"slices"
)

var _ Curve = CubicBez{}
var _ Editable = (*CubicBez)(nil)

// CubicBez is a cubic Bézier curve.
type CubicBez struct {
	P0 Vec2
	P1 Vec2
	P2 Vec2
	P3 Vec2
}

func (c CubicBez) Degree() int           { return 3 }
func (c CubicBez) ControlPoints() []Vec2 { return []Vec2{c.P0, c.P1, c.P2, c.P3} }

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (cb CubicBez) Eval(t float64) Vec2 {
	mt := 1.0 - t
	a := cb.P0.Mul(mt * mt * mt)
	b := cb.P1.Mul(mt * mt * 3.0)
	c := cb.P2.Mul(mt * 3.0)
	d := cb.P3
	return a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
}

func (c CubicBez) Point(t float64) (Vec2, error) {
	return checkedEval(c, t)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			c.P0.Add(c.P1.Mul(2.0)).Add(c.P2).Mul(0.25),
			pm,
		},
		CubicBez{
			pm,
			c.P1.Add(c.P2.Mul(2.0)).Add(c.P3).Mul(0.25),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// SplitCubic subdivides the cubic at z, using de Casteljau.
func (c CubicBez) SplitCubic(z float64) (CubicBez, CubicBez) {
	l, r := splitPoints(c.ControlPoints(), z)
	return CubicBez{l[0], l[1], l[2], l[3]}, CubicBez{r[0], r[1], r[2], r[3]}
}

func (c CubicBez) Split(z float64) (Curve, Curve) {
	return c.SplitCubic(z)
}

func (c CubicBez) Start() Vec2 {
	return c.P0
}

func (c CubicBez) End() Vec2 {
	return c.P3
}

func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		c.P1.Sub(c.P0).Mul(3),
		c.P2.Sub(c.P1).Mul(3),
		c.P3.Sub(c.P2).Mul(3),
	}
}

func (c CubicBez) Derivative() (Curve, bool) {
	return c.Differentiate(), true
}

func (c CubicBez) Roots() []float64 {
	return pointRoots(c.ControlPoints())
}

// Raise returns a quartic Bézier segment that exactly represents this cubic.
func (c CubicBez) Raise() QuarticBez {
	p := elevatePoints(c.ControlPoints())
	return QuarticBez{p[0], p[1], p[2], p[3], p[4]}
}

func (c CubicBez) BoundingBox(offset float64) Rect {
	return BoundingBox(c, offset)
}

func (c CubicBez) Extrema() []Vec2 {
	return Extrema(c)
}

func (c *CubicBez) SetControlPoint(i int, p Vec2) error {
	switch i {
	case 0:
		c.P0 = p
	case 1:
		c.P1 = p
	case 2:
		c.P2 = p
	case 3:
		c.P3 = p
	default:
		return indexError(i, 4)
	}
	return nil
}

// Inflections returns the parameters of the inflection points in [0, 1], in
// ascending order.
func (cb CubicBez) Inflections() []float64 {
	a := cb.P1.Sub(cb.P0)
	b := cb.P2.Sub(cb.P1).Sub(a)
	c := cb.P3.Sub(cb.P0).Sub(cb.P2.Sub(cb.P1).Mul(3))
	nums, n := SolveQuadratic(b.Cross(c), a.Cross(c), a.Cross(b))
	var out []float64
	for _, num := range nums[:n] {
		if CheckT(num) {
			out = append(out, num)
		}
	}
	slices.Sort(out)
	return out
}
