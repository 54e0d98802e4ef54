package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"honnef.co/go/bezier"
)

const (
	envThreshold     = "BEZIER_THRESHOLD"
	envMaxDepth      = "BEZIER_MAX_DEPTH"
	envMergeDistance = "BEZIER_MERGE_DISTANCE"
	envLogLevel      = "BEZIER_LOG_LEVEL"
	envWorkers       = "BEZIER_WORKERS"
)

type config struct {
	Intersect bezier.IntersectOptions
	LogLevel  slog.Level
	Workers   int
	Offset    float64
	Accuracy  float64
	// Transform is applied to every curve before it is inspected.
	Transform bezier.Affine
	Params    []float64
	Curves    []bezier.Editable
}

func defaultConfig() config {
	return config{
		Intersect: bezier.DefaultIntersectOptions,
		LogLevel:  slog.LevelInfo,
		Workers:   4,
		Accuracy:  1e-3,
		Transform: bezier.Identity,
		Params:    []float64{0, 0.5, 1},
	}
}

// loadConfig builds the configuration from the environment, which getenv
// reads, and the command line arguments. Flags take precedence over the
// environment.
func loadConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	cfg := defaultConfig()
	if err := cfg.fromEnv(getenv); err != nil {
		return config{}, err
	}

	fs := flag.NewFlagSet("bezier", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: bezier [flags] -c 'x,y x,y ...' [-c ...]")
		fs.PrintDefaults()
	}
	var curves curveList
	var params string
	var level string
	var flipY bool
	var rotate float64
	var scale, pivot string
	fs.Var(&curves, "c", "curve as 2 to 5 control points `\"x,y x,y ...\"`; may be repeated")
	fs.StringVar(&params, "t", "", "comma-separated parameters at which to evaluate each curve (default 0,0.5,1)")
	fs.Float64Var(&cfg.Offset, "offset", cfg.Offset, "inflate bounding boxes by this offset")
	fs.Float64Var(&cfg.Accuracy, "accuracy", cfg.Accuracy, "accuracy of the minimum distance")
	fs.BoolVar(&flipY, "flip-y", false, "treat input coordinates as y-up")
	fs.StringVar(&scale, "scale", "", "scale curves by `s` or \"sx,sy\" after flipping")
	fs.Float64Var(&rotate, "rotate", 0, "rotate curves by this many `degrees` after scaling")
	fs.StringVar(&pivot, "pivot", "0,0", "center `\"x,y\"` of the rotation")
	fs.Float64Var(&cfg.Intersect.Threshold, "threshold", cfg.Intersect.Threshold, "intersection convergence threshold (env "+envThreshold+")")
	fs.IntVar(&cfg.Intersect.MaxDepth, "max-depth", cfg.Intersect.MaxDepth, "maximum subdivision depth (env "+envMaxDepth+")")
	fs.Float64Var(&cfg.Intersect.MergeDistance, "merge-distance", cfg.Intersect.MergeDistance, "distance below which intersections are merged (env "+envMergeDistance+")")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of curve pairs processed concurrently (env "+envWorkers+")")
	fs.StringVar(&level, "log-level", "", "log level: debug, info, warn, or error (env "+envLogLevel+")")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if params != "" {
		ts, err := parseParams(params)
		if err != nil {
			return config{}, err
		}
		cfg.Params = ts
	}
	if level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return config{}, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	aff, err := buildTransform(flipY, scale, rotate, pivot)
	if err != nil {
		return config{}, err
	}
	cfg.Transform = aff
	if len(curves) == 0 {
		return config{}, errors.New("no curves given, use -c")
	}
	if cfg.Workers < 1 {
		return config{}, fmt.Errorf("invalid number of workers %d", cfg.Workers)
	}
	cfg.Curves = curves
	return cfg, nil
}

// buildTransform combines the transform flags, which are applied in the order
// flip, scale, rotate.
func buildTransform(flipY bool, scale string, degrees float64, pivot string) (bezier.Affine, error) {
	aff := bezier.Identity
	if flipY {
		aff = bezier.FlipY
	}
	if scale != "" {
		var sx, sy float64
		var err error
		if strings.Contains(scale, ",") {
			var p bezier.Vec2
			p, err = parsePoint(scale)
			sx, sy = p.X, p.Y
		} else {
			sx, err = strconv.ParseFloat(scale, 64)
			sy = sx
		}
		if err != nil {
			return bezier.Affine{}, fmt.Errorf("invalid scale %q: %w", scale, err)
		}
		aff = aff.ThenScale(sx, sy)
	}
	if degrees != 0 {
		center, err := parsePoint(pivot)
		if err != nil {
			return bezier.Affine{}, fmt.Errorf("invalid pivot: %w", err)
		}
		aff = bezier.RotateAbout(degrees*math.Pi/180, center).Mul(aff)
	}
	// A transform that can't be undone collapses curves onto a line or a point.
	if inv := aff.Invert(); inv.IsNaN() || inv.IsInf() {
		return bezier.Affine{}, fmt.Errorf("transform %v is not invertible", aff)
	}
	return aff, nil
}

func (cfg *config) fromEnv(getenv func(string) string) error {
	if v := getenv(envThreshold); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", envThreshold, err)
		}
		cfg.Intersect.Threshold = f
	}
	if v := getenv(envMaxDepth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envMaxDepth, err)
		}
		cfg.Intersect.MaxDepth = n
	}
	if v := getenv(envMergeDistance); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", envMergeDistance, err)
		}
		cfg.Intersect.MergeDistance = f
	}
	if v := getenv(envWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envWorkers, err)
		}
		cfg.Workers = n
	}
	if v := getenv(envLogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%s: %w", envLogLevel, err)
		}
	}
	return nil
}
