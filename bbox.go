package bezier

// Extrema returns the points of c at every parameter in [0, 1] where its first
// or second derivative has a root. The points are ordered as the roots are:
// first-derivative roots before second-derivative roots, x before y.
func Extrema(c Curve) []Vec2 {
	var out []Vec2
	d := c
	for range 2 {
		var ok bool
		d, ok = d.Derivative()
		if !ok {
			break
		}
		for _, t := range d.Roots() {
			if CheckT(t) {
				out = append(out, c.Eval(t))
			}
		}
	}
	return out
}

// BoundingBox returns the tight axis-aligned bounding box of c, moved outward by
// offset on every side.
func BoundingBox(c Curve, offset float64) Rect {
	pts := append([]Vec2{c.Eval(0), c.Eval(1)}, Extrema(c)...)
	return boundsOf(pts...).Inflate(offset)
}
