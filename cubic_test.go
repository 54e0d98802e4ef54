package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Vec(0.0, 0.0),
		Vec(1.0/3.0, 0.0),
		Vec(2.0/3.0, 1.0/3.0),
		Vec(1.0, 1.0),
	}
	deriv := c.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := deriv.Eval(ts)
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{Vec(0, 0), Vec(1, 3), Vec(2, -3), Vec(4, 2)}
	a, b := c.Subdivide()
	l, r := c.SplitCubic(0.5)
	diff(t, l, a, approxFloats)
	diff(t, r, b, approxFloats)
}

func TestIntersectCubic(t *testing.T) {
	c := CubicBez{Vec(0.0, -10.0), Vec(10.0, 20.0), Vec(20.0, -20.0), Vec(30.0, 10.0)}
	vLine := Line{Vec(10.0, -10.0), Vec(10.0, 10.0)}
	want := []LineIntersection{{16.0 / 27.0, 1.0 / 3.0}}
	diff(t, want, IntersectLine(c, vLine), cmpopts.EquateApprox(0, 1e-8))

	hLine := Line{Vec(0.0, 0.0), Vec(100.0, 0.0)}
	if xs := IntersectLine(c, hLine); len(xs) != 3 {
		t.Errorf("got %d intersections, want 3", len(xs))
	}
}

func TestCubicBezExtrema(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-6)

	q := CubicBez{Vec(0.0, 0.0), Vec(0.0, 1.0), Vec(1.0, 1.0), Vec(1.0, 0.0)}
	// The endpoints are x extrema, the apex is a y extremum and where x
	// accelerates the least.
	want := []Vec2{Vec(0, 0), Vec(1, 0), Vec(0.5, 0.75), Vec(0.5, 0.75)}
	diff(t, want, q.Extrema(), approx, cmpopts.SortSlices(func(a, b Vec2) bool {
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	}))
	diff(t, NewRect(Vec(0, 0.75), Vec(1, 0)), q.BoundingBox(0), approx)
}

func TestCubicBezInflections(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-6)

	c := CubicBez{
		Vec(0.0, 0.0),
		Vec(0.8, 1.0),
		Vec(0.2, 1.0),
		Vec(1.0, 0.0),
	}
	want := []float64{
		0.311018,
		0.688982,
	}
	diff(t, want, c.Inflections(), approx)

	c = CubicBez{Vec(0.0, 0.0), Vec(1.0, 1.0), Vec(2.0, -1.0), Vec(3.0, 0.0)}
	want = []float64{0.5}
	diff(t, want, c.Inflections(), approx)

	c = CubicBez{Vec(0.0, 0.0), Vec(1.0, 1.0), Vec(2.0, 1.0), Vec(3.0, 0.0)}
	diff(t, []float64(nil), c.Inflections())
}

func TestCubicBezRaise(t *testing.T) {
	c := CubicBez{Vec(0, 0), Vec(1, 3), Vec(2, -3), Vec(4, 2)}
	q := c.Raise()
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, c.Eval(ts), q.Eval(ts), 1e-12)
	}
}
