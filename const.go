package bezier

// Constant is a curve of degree 0: a single point for every t. It is the
// derivative of a [Line].
type Constant struct {
	P Vec2
}

var _ Curve = Constant{}
var _ Editable = (*Constant)(nil)

func (c Constant) Degree() int           { return 0 }
func (c Constant) ControlPoints() []Vec2 { return []Vec2{c.P} }
func (c Constant) Eval(t float64) Vec2   { return c.P }
func (c Constant) Start() Vec2           { return c.P }
func (c Constant) End() Vec2             { return c.P }

func (c Constant) Point(t float64) (Vec2, error) {
	return checkedEval(c, t)
}

// Derivative always returns false.
func (c Constant) Derivative() (Curve, bool) { return nil, false }

// Roots always returns nil. A constant component is either never zero or zero
// everywhere.
func (c Constant) Roots() []float64 { return nil }

func (c Constant) Split(z float64) (Curve, Curve) { return c, c }

func (c Constant) BoundingBox(offset float64) Rect {
	return BoundingBox(c, offset)
}

func (c Constant) Extrema() []Vec2 { return nil }

func (c *Constant) SetControlPoint(i int, p Vec2) error {
	if i != 0 {
		return indexError(i, 1)
	}
	c.P = p
	return nil
}
