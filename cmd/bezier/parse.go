package main

import (
	"fmt"
	"strconv"
	"strings"

	"honnef.co/go/bezier"
)

// parsePoint parses a point written as "x,y".
func parsePoint(s string) (bezier.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return bezier.Vec2{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return bezier.Vec2{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return bezier.Vec2{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return bezier.Vec(x, y), nil
}

// parseCurve parses a curve written as its control points separated by
// whitespace, such as "0,0 1,2 2,0".
func parseCurve(s string) (bezier.Editable, error) {
	fields := strings.Fields(s)
	pts := make([]bezier.Vec2, len(fields))
	for i, f := range fields {
		pt, err := parsePoint(f)
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}
	c, err := bezier.NewCurve(pts...)
	if err != nil {
		return nil, fmt.Errorf("invalid curve %q: %w", s, err)
	}
	return c, nil
}

// parseParams parses a comma-separated list of curve parameters.
func parseParams(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []float64
	for _, f := range strings.Split(s, ",") {
		t, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid parameter %q: %w", f, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// curveList is a repeatable flag collecting curves.
type curveList []bezier.Editable

func (l *curveList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, c := range *l {
		pts := c.ControlPoints()
		strs := make([]string, len(pts))
		for j, p := range pts {
			strs[j] = strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64)
		}
		parts[i] = strings.Join(strs, " ")
	}
	return strings.Join(parts, "; ")
}

func (l *curveList) Set(s string) error {
	c, err := parseCurve(s)
	if err != nil {
		return err
	}
	*l = append(*l, c)
	return nil
}
