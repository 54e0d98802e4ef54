package bezier

import (
	"errors"
	"fmt"
	"slices"
)

// Curve describes a Bézier curve of degree 0 to 4.
//
// The concrete curve types are [Constant], [Line], [QuadBez], [CubicBez], and
// [QuarticBez]. They are value types; queries never return references into a
// curve's control points.
type Curve interface {
	// Degree returns the degree of the curve, which is one less than the
	// number of control points.
	Degree() int
	// ControlPoints returns a copy of the curve's control points, in order.
	ControlPoints() []Vec2
	// Eval evaluates the curve at t using the Bernstein form. It does not check
	// that t ∈ [0, 1].
	Eval(t float64) Vec2
	// Point evaluates the curve at t. It returns an error wrapping
	// [ErrParamRange] if t ∉ [0, 1].
	Point(t float64) (Vec2, error)
	// Derivative returns the hodograph, a curve of one lower degree. It returns
	// false for curves of degree 0, which have no derivative.
	Derivative() (Curve, bool)
	// Roots returns the parameters at which the x component of the curve's
	// polynomial is zero, followed by those at which the y component is zero.
	// The values are neither filtered to [0, 1] nor deduplicated.
	Roots() []float64
	// Split subdivides the curve at z ∈ [0, 1] into two curves of the same
	// degree that cover [0, z] and [z, 1] of the original.
	Split(z float64) (Curve, Curve)
}

// Editable is implemented by pointers to the curve types. It allows moving a
// single control point without changing the number of control points.
type Editable interface {
	Curve
	// SetControlPoint replaces the control point at index i. It returns an error
	// wrapping [ErrControlPointIndex] if i is out of range.
	SetControlPoint(i int, p Vec2) error
}

var (
	// ErrParamRange is returned when a curve is evaluated outside of [0, 1].
	ErrParamRange = errors.New("bezier: parameter outside of [0, 1]")
	// ErrControlPointCount is returned when a curve is constructed from the
	// wrong number of control points.
	ErrControlPointCount = errors.New("bezier: wrong number of control points")
	// ErrControlPointIndex is returned when setting a control point that
	// doesn't exist.
	ErrControlPointIndex = errors.New("bezier: control point index out of range")
)

// NewCurve returns the curve whose degree matches the number of points: a
// [Line] for two points, up to a [QuarticBez] for five.
func NewCurve(points ...Vec2) (Editable, error) {
	switch len(points) {
	case 2:
		return &Line{points[0], points[1]}, nil
	case 3:
		return &QuadBez{points[0], points[1], points[2]}, nil
	case 4:
		return &CubicBez{points[0], points[1], points[2], points[3]}, nil
	case 5:
		return &QuarticBez{points[0], points[1], points[2], points[3], points[4]}, nil
	default:
		return nil, fmt.Errorf("%w: got %d, want between 2 and 5", ErrControlPointCount, len(points))
	}
}

// NewCurveDegree is like [NewCurve] but fails unless there are exactly
// degree+1 points.
func NewCurveDegree(degree int, points []Vec2) (Editable, error) {
	if degree < 1 || degree > 4 {
		return nil, fmt.Errorf("bezier: unsupported degree %d", degree)
	}
	if len(points) != degree+1 {
		return nil, fmt.Errorf("%w: degree %d needs %d, got %d", ErrControlPointCount, degree, degree+1, len(points))
	}
	return NewCurve(points...)
}

// DeCasteljau evaluates c at t using de Casteljau's algorithm of repeated linear
// interpolation. The result agrees with [Curve.Eval] up to rounding. It does not
// check that t ∈ [0, 1].
func DeCasteljau(c Curve, t float64) Vec2 {
	pts := c.ControlPoints()
	for n := len(pts) - 1; n > 0; n-- {
		for i := range n {
			pts[i] = pts[i].Lerp(pts[i+1], t)
		}
	}
	return pts[0]
}

func checkedEval(c Curve, t float64) (Vec2, error) {
	if !CheckT(t) {
		return Vec2{}, fmt.Errorf("%w: t = %g", ErrParamRange, t)
	}
	return c.Eval(t), nil
}

func indexError(i, n int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrControlPointIndex, i, n)
}

// curveFromPoints returns the curve type matching the number of points.
func curveFromPoints(pts []Vec2) Curve {
	switch len(pts) {
	case 1:
		return Constant{pts[0]}
	case 2:
		return Line{pts[0], pts[1]}
	case 3:
		return QuadBez{pts[0], pts[1], pts[2]}
	case 4:
		return CubicBez{pts[0], pts[1], pts[2], pts[3]}
	case 5:
		return QuarticBez{pts[0], pts[1], pts[2], pts[3], pts[4]}
	default:
		panic(fmt.Sprintf("unsupported number of control points: %d", len(pts)))
	}
}

// splitPoints subdivides the control polygon at z using the de Casteljau
// triangle. The left curve consists of the first point of each row of the
// triangle, the right curve of the last point of each row.
func splitPoints(pts []Vec2, z float64) (left, right []Vec2) {
	n := len(pts)
	left = make([]Vec2, n)
	right = make([]Vec2, n)
	work := slices.Clone(pts)
	for k := range n {
		left[k] = work[0]
		right[n-1-k] = work[n-1-k]
		for i := range n - 1 - k {
			work[i] = work[i].Lerp(work[i+1], z)
		}
	}
	return left, right
}

// elevatePoints returns the control points of the same curve expressed with one
// more degree.
func elevatePoints(pts []Vec2) []Vec2 {
	n := len(pts)
	out := make([]Vec2, n+1)
	out[0] = pts[0]
	out[n] = pts[n-1]
	for i := 1; i < n; i++ {
		f := float64(i) / float64(n)
		out[i] = pts[i-1].Mul(f).Add(pts[i].Mul(1 - f))
	}
	return out
}

var binomials = [...][5]float64{
	{1},
	{1, 1},
	{1, 2, 1},
	{1, 3, 3, 1},
	{1, 4, 6, 4, 1},
}

// powerCoefficients converts one component of a Bézier curve's control points to
// the coefficients of the equivalent polynomial, lowest degree first.
func powerCoefficients(ws []float64) []float64 {
	n := len(ws) - 1
	out := make([]float64, n+1)
	for j := range n + 1 {
		var sum float64
		for i := range j + 1 {
			v := binomials[j][i] * ws[i]
			if (j-i)%2 == 1 {
				v = -v
			}
			sum += v
		}
		out[j] = binomials[n][j] * sum
	}
	return out
}

// componentRoots returns the roots of one component of a Bézier curve.
func componentRoots(ws []float64) []float64 {
	return solvePower(powerCoefficients(ws))
}

// solvePower returns the real roots of the polynomial with the given
// coefficients, lowest degree first.
func solvePower(c []float64) []float64 {
	switch len(c) {
	case 2:
		if t, ok := SolveLinear(c[1], c[0]); ok {
			return []float64{t}
		}
		return nil
	case 3:
		roots, n := SolveQuadratic(c[2], c[1], c[0])
		return roots[:n:n]
	case 4:
		roots, n := SolveCubic(c[3], c[2], c[1], c[0])
		return roots[:n:n]
	case 5:
		roots, n := SolveQuartic(c[4], c[3], c[2], c[1], c[0])
		return roots[:n:n]
	default:
		// A constant is either never or always zero, neither of which
		// produces isolated roots.
		return nil
	}
}

func components(pts []Vec2) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

// pointRoots returns the roots of the x component followed by the roots of the
// y component.
func pointRoots(pts []Vec2) []float64 {
	xs, ys := components(pts)
	return append(componentRoots(xs), componentRoots(ys)...)
}
