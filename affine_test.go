package bezier

import (
	"math"
	"testing"
)

func assertNear(t *testing.T, p0 Vec2, p1 Vec2, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Vec(3, 4)

	assertNear(t, Identity.Apply(p), p, epsilon)
	assertNear(t, Scale(2, 2).Apply(p), Vec(6, 8), epsilon)
	assertNear(t, Rotate(0).Apply(p), p, epsilon)
	assertNear(t, Rotate(math.Pi/2).Apply(p), Vec(-4, 3), epsilon)
	assertNear(t, Translate(Vec(5, 6)).Apply(p), Vec(8, 10), epsilon)
	assertNear(t, FlipY.Apply(p), Vec(3, -4), epsilon)
	assertNear(t, RotateAbout(math.Pi, Vec(1, 1)).Apply(p), Vec(-1, -2), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Vec2{Vec(1, 0), Vec(0, 1), Vec(1, 1)} {
		assertNear(t, a1.Apply(a2.Apply(p)), a1.Mul(a2).Apply(p), epsilon)
	}
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	for _, p := range []Vec2{Vec(1, 0), Vec(0, 1), Vec(1, 1)} {
		assertNear(t, a.Apply(aInv.Apply(p)), p, epsilon)
		assertNear(t, aInv.Apply(a.Apply(p)), p, epsilon)
	}

	if !Scale(0, 1).Invert().IsNaN() && !Scale(0, 1).Invert().IsInf() {
		t.Error("inverting a singular transform should produce non-finite values")
	}
}

func TestTransformCurve(t *testing.T) {
	// Transforming the control points transforms every point of the curve.
	aff := Rotate(0.7).ThenScale(2, 0.5).ThenTranslate(Vec(-3, 8))
	curves := []Curve{
		Line{Vec(0, 0), Vec(4, 2)},
		QuadBez{Vec(0, 0), Vec(1, 3), Vec(4, 2)},
		CubicBez{Vec(0, 0), Vec(1, 3), Vec(2, -3), Vec(4, 2)},
		QuarticBez{Vec(0, 0), Vec(1, 3), Vec(2, -3), Vec(3, 5), Vec(4, 2)},
	}
	for _, c := range curves {
		tc := TransformCurve(c, aff)
		if tc.Degree() != c.Degree() {
			t.Fatalf("got degree %d, want %d", tc.Degree(), c.Degree())
		}
		const n = 10
		for i := range n + 1 {
			ts := float64(i) / float64(n)
			assertNear(t, tc.Eval(ts), aff.Apply(c.Eval(ts)), 1e-9)
		}
	}
}
