// Command bezier inspects Bézier curves given on the command line. It prints
// each curve's points, roots, extrema, and bounding box, followed by the
// intersections and minimum distance of every pair of curves.
//
// Settings are read from the environment, which may be populated from a .env
// file in the working directory, and from flags, which take precedence.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/bezier"
)

func main() {
	// A missing .env file is fine.
	godotenv.Load()

	cfg, err := loadConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "bezier:", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	if err := run(context.Background(), os.Stdout, logger, cfg); err != nil {
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
}

type pairResult struct {
	i, j          int
	intersections []bezier.Vec2
	dist          bezier.MinDistance
}

func run(ctx context.Context, w io.Writer, logger *slog.Logger, cfg config) error {
	curves := make([]bezier.Curve, len(cfg.Curves))
	for i, c := range cfg.Curves {
		if cfg.Transform != bezier.Identity {
			curves[i] = bezier.TransformCurve(c, cfg.Transform)
		} else {
			curves[i] = c
		}
	}

	for i, c := range curves {
		describeCurve(w, logger, i, c, cfg)
	}

	var pairs []pairResult
	for i := range curves {
		for j := i + 1; j < len(curves); j++ {
			pairs = append(pairs, pairResult{i: i, j: j})
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for k := range pairs {
		p := &pairs[k]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, b := curves[p.i], curves[p.j]
			p.intersections = bezier.IntersectionsOpt(a, b, cfg.Intersect)
			p.dist = bezier.MinDist(a, b, cfg.Accuracy)
			logger.Debug("intersected curves",
				"a", p.i,
				"b", p.j,
				"intersections", len(p.intersections),
				"distance", p.dist.Distance)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, p := range pairs {
		fmt.Fprintf(w, "pair %d %d\n", p.i, p.j)
		fmt.Fprintf(w, "  intersections %s\n", formatPoints(p.intersections))
		fmt.Fprintf(w, "  min distance %.6g at t=%.6g, %.6g\n", p.dist.Distance, p.dist.T1, p.dist.T2)
	}
	return nil
}

func describeCurve(w io.Writer, logger *slog.Logger, i int, c bezier.Curve, cfg config) {
	fmt.Fprintf(w, "curve %d degree %d %s\n", i, c.Degree(), formatPoints(c.ControlPoints()))
	for _, t := range cfg.Params {
		pt, err := c.Point(t)
		if err != nil {
			logger.Warn("skipping parameter", "curve", i, "t", t, "err", err)
			continue
		}
		fmt.Fprintf(w, "  point t=%g %s\n", t, formatPoint(pt))
	}
	fmt.Fprintf(w, "  roots %s\n", formatFloats(c.Roots()))
	fmt.Fprintf(w, "  extrema %s\n", formatPoints(bezier.Extrema(c)))
	fmt.Fprintf(w, "  bbox %s\n", bezier.BoundingBox(c, cfg.Offset))
}

func formatPoint(p bezier.Vec2) string {
	return fmt.Sprintf("(%.6g, %.6g)", p.X, p.Y)
}

func formatPoints(pts []bezier.Vec2) string {
	strs := make([]string, len(pts))
	for i, p := range pts {
		strs[i] = formatPoint(p)
	}
	return "[" + strings.Join(strs, " ") + "]"
}

func formatFloats(fs []float64) string {
	strs := make([]string, len(fs))
	for i, f := range fs {
		strs[i] = fmt.Sprintf("%.6g", f)
	}
	return "[" + strings.Join(strs, " ") + "]"
}
