package bezier

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBoundingBoxContainsCurve(t *testing.T) {
	r := rand.New(rand.NewPCG(15, 16))
	for degree := 1; degree <= 4; degree++ {
		t.Run(fmt.Sprintf("degree %d", degree), func(t *testing.T) {
			for range 50 {
				c := randomCurve(r, degree, 100)
				// Extrema are found numerically, allow for rounding.
				box := BoundingBox(c, 1e-9)
				const n = 1000
				for i := range n + 1 {
					pt, err := c.Point(float64(i) / n)
					if err != nil {
						t.Fatal(err)
					}
					if !box.Contains(pt) {
						t.Fatalf("%v doesn't contain %v of curve %v", box, pt, c.ControlPoints())
					}
				}
			}
		})
	}
}

func TestBoundingBoxTight(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)

	// y = x^2
	q := QuadBez{Vec(-1.0, 1.0), Vec(0.0, -1.0), Vec(1.0, 1.0)}
	diff(t, Rect{LowerLeft: Vec(-1, 1), UpperRight: Vec(1, 0)}, q.BoundingBox(0), approx)

	// The same curve, traversed backwards.
	q = QuadBez{Vec(1.0, 1.0), Vec(0.0, -1.0), Vec(-1.0, 1.0)}
	diff(t, Rect{LowerLeft: Vec(-1, 1), UpperRight: Vec(1, 0)}, q.BoundingBox(0), approx)

	l := Line{Vec(5, -2), Vec(-3, 4)}
	diff(t, Rect{LowerLeft: Vec(-3, 4), UpperRight: Vec(5, -2)}, l.BoundingBox(0))
	diff(t, l.BoundingBox(0), BoundingBox(l, 0))
}

func TestBoundingBoxOffset(t *testing.T) {
	c := CubicBez{Vec(0.0, 0.0), Vec(0.0, 1.0), Vec(1.0, 1.0), Vec(1.0, 0.0)}
	box := c.BoundingBox(0.5)
	want := Rect{LowerLeft: Vec(-0.5, 1.25), UpperRight: Vec(1.5, -0.5)}
	diff(t, want, box, cmpopts.EquateApprox(0, 1e-9))
}

func TestBoundingBoxInvariant(t *testing.T) {
	r := rand.New(rand.NewPCG(17, 18))
	for degree := 1; degree <= 4; degree++ {
		for range 100 {
			box := randomCurve(r, degree, 10).(interface{ BoundingBox(float64) Rect }).BoundingBox(0)
			if box.UpperRight.X < box.LowerLeft.X || box.UpperRight.Y > box.LowerLeft.Y {
				t.Fatalf("malformed bounding box %#v", box)
			}
		}
	}
}

func TestExtremaInDomain(t *testing.T) {
	// Roots of the derivatives outside of [0, 1] are discarded.
	q := QuadBez{Vec(0, 0), Vec(1, 1), Vec(1.5, 1.5)}
	if ext := Extrema(q); len(ext) != 0 {
		t.Errorf("got extrema %v, want none", ext)
	}

	c := CubicBez{Vec(0, 0), Vec(1, 2), Vec(2, -2), Vec(3, 0)}
	for _, pt := range Extrema(c) {
		if !BoundingBox(c, 1e-9).Contains(pt) {
			t.Errorf("extremum %v outside of the bounding box", pt)
		}
	}
	if len(Extrema(Constant{Vec(1, 1)})) != 0 {
		t.Error("a constant has no extrema")
	}
}
