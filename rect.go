package bezier

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle in a y-down coordinate system, described by
// its lower left and upper right corners. The upper right corner has the larger x
// and the smaller y of the two.
//
// Rectangles built by [NewRect], [NewRectFromPoints], and [Rect.Abs] satisfy
// UpperRight.X ≥ LowerLeft.X and UpperRight.Y ≤ LowerLeft.Y. The other methods
// assume this invariant.
type Rect struct {
	LowerLeft  Vec2
	UpperRight Vec2
}

// NewRect returns the rectangle with the given corners, reordering coordinates as
// needed so that the result is well-formed.
func NewRect(lowerLeft, upperRight Vec2) Rect {
	return Rect{lowerLeft, upperRight}.Abs()
}

// NewRectFromPoints returns the smallest rectangle containing p0 and p1, which may
// be any two opposite corners.
func NewRectFromPoints(p0, p1 Vec2) Rect {
	return Rect{p0, p1}.Abs()
}

// Abs returns a rectangle with the same extents as r that satisfies the corner
// invariant.
func (r Rect) Abs() Rect {
	x0, x1 := r.LowerLeft.X, r.UpperRight.X
	y0, y1 := r.LowerLeft.Y, r.UpperRight.Y
	return Rect{
		LowerLeft:  Vec2{X: min(x0, x1), Y: max(y0, y1)},
		UpperRight: Vec2{X: max(x0, x1), Y: min(y0, y1)},
	}
}

func (r Rect) MinX() float64 { return r.LowerLeft.X }
func (r Rect) MaxX() float64 { return r.UpperRight.X }
func (r Rect) MinY() float64 { return r.UpperRight.Y }
func (r Rect) MaxY() float64 { return r.LowerLeft.Y }

// Width returns the rectangle's width.
func (r Rect) Width() float64 {
	return r.UpperRight.X - r.LowerLeft.X
}

// Height returns the rectangle's height.
func (r Rect) Height() float64 {
	return r.LowerLeft.Y - r.UpperRight.Y
}

// UpperLeft returns the corner with the smallest x and y. This is the origin of
// the rectangle in screen space.
func (r Rect) UpperLeft() Vec2 {
	return Vec2{X: r.LowerLeft.X, Y: r.UpperRight.Y}
}

// LowerRight returns the corner with the largest x and y.
func (r Rect) LowerRight() Vec2 {
	return Vec2{X: r.UpperRight.X, Y: r.LowerLeft.Y}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return r.LowerLeft.Midpoint(r.UpperRight)
}

// Contains reports whether pt lies inside r or on its boundary.
func (r Rect) Contains(pt Vec2) bool {
	return pt.X >= r.MinX() &&
		pt.X <= r.MaxX() &&
		pt.Y >= r.MinY() &&
		pt.Y <= r.MaxY()
}

// Overlaps reports whether r and o share at least one point. Rectangles that
// only touch along an edge or at a corner overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX() <= o.MaxX() && o.MinX() <= r.MaxX() &&
		r.MinY() <= o.MaxY() && o.MinY() <= r.MaxY()
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		LowerLeft:  Vec2{X: min(r.MinX(), o.MinX()), Y: max(r.MaxY(), o.MaxY())},
		UpperRight: Vec2{X: max(r.MaxX(), o.MaxX()), Y: min(r.MinY(), o.MinY())},
	}
}

// Intersect returns the rectangle shared by r and o. The result is malformed if
// they don't overlap.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		LowerLeft:  Vec2{X: max(r.MinX(), o.MinX()), Y: min(r.MaxY(), o.MaxY())},
		UpperRight: Vec2{X: min(r.MaxX(), o.MaxX()), Y: max(r.MinY(), o.MinY())},
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Vec2) Rect {
	return Rect{
		LowerLeft:  Vec2{X: min(r.MinX(), pt.X), Y: max(r.MaxY(), pt.Y)},
		UpperRight: Vec2{X: max(r.MaxX(), pt.X), Y: min(r.MinY(), pt.Y)},
	}
}

// Inflate moves every edge of the rectangle outward by offset. A negative offset
// shrinks the rectangle; shrinking past zero size yields a malformed rectangle.
func (r Rect) Inflate(offset float64) Rect {
	return Rect{
		LowerLeft:  Vec2{X: r.LowerLeft.X - offset, Y: r.LowerLeft.Y + offset},
		UpperRight: Vec2{X: r.UpperRight.X + offset, Y: r.UpperRight.Y - offset},
	}
}

// IsInf reports whether at least one corner has an infinite coordinate.
func (r Rect) IsInf() bool {
	return r.LowerLeft.IsInf() || r.UpperRight.IsInf()
}

// IsNaN reports whether at least one corner has a NaN coordinate.
func (r Rect) IsNaN() bool {
	return r.LowerLeft.IsNaN() || r.UpperRight.IsNaN()
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", r.MinX(), r.MaxX(), r.MinY(), r.MaxY())
}

// boundsOf returns the smallest rectangle enclosing all points. It returns an
// infinitely inverted rectangle if pts is empty, which UnionPoint absorbs.
func boundsOf(pts ...Vec2) Rect {
	r := Rect{
		LowerLeft:  Vec2{X: math.Inf(1), Y: math.Inf(-1)},
		UpperRight: Vec2{X: math.Inf(-1), Y: math.Inf(1)},
	}
	for _, pt := range pts {
		r = r.UnionPoint(pt)
	}
	return r
}
