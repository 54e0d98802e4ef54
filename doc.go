// Package bezier provides a small geometry kernel for 2D Bézier curves of
// degree 1 to 4. It evaluates and subdivides curves, computes their tight
// bounding boxes and extrema, solves the polynomial equations that these
// operations reduce to, and finds the intersections of pairs of curves.
//
// # Curves
//
// The [Curve] interface is implemented by [Line], [QuadBez], [CubicBez], and
// [QuarticBez], as well as by [Constant], the degree 0 curve that differentiating
// a line produces. Curves are values; [NewCurve] picks the right type for a
// number of control points and returns it as an [Editable], which allows moving
// individual control points in place.
//
// Curves are parametrized over t ∈ [0, 1]. [Curve.Eval] evaluates the Bernstein
// form without checking its argument, while [Curve.Point] rejects parameters
// outside of the domain with [ErrParamRange]. [DeCasteljau] evaluates a curve by
// repeated interpolation instead, and is mostly useful for checking the former.
//
// # Equations
//
// [SolveLinear], [SolveQuadratic], [SolveCubic], and [SolveQuartic] return the
// real roots of polynomials of degree 1 to 4. Each of them degrades to the solver
// of one lower degree if its leading coefficient is zero within [Epsilon].
// [SolveITP] finds a root of an arbitrary function in a bracketing interval.
//
// The x and y components of a Bézier curve are polynomials in t, and [Curve.Roots]
// returns the roots of both. The roots of the derivatives locate the extrema used
// by [Extrema] and [BoundingBox].
//
// # Intersections
//
// [Intersections] finds approximate intersection points of two curves of any
// degrees by recursive subdivision, discarding pieces whose bounding boxes are
// disjoint. [IntersectLine] computes the intersections of a curve and a line
// segment in closed form, [CoincidentParams] the parameters at which two curves
// pass through the same point at the same time, and [MinDist] the minimum
// distance between two curves.
//
// # Coordinate system
//
// [Rect] assumes a y-down coordinate system, as is common in 2D graphics: its
// lower left corner has the larger y coordinate. Use [FlipY] and [TransformCurve]
// to convert curves from a y-up space.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [High-Performance Polynomial Root Finding for Graphics] by Cem Yuksel
//   - "Computing the minimum distance between two Bézier curves" by Chen et al.
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [High-Performance Polynomial Root Finding for Graphics]: https://www.cemyuksel.com/research/polynomials/
package bezier
