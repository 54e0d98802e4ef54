package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"honnef.co/go/bezier"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig([]string{"-c", "0,0 1,1"}, env(nil), io.Discard)
	require.NoError(t, err)
	require.Equal(t, bezier.DefaultIntersectOptions, cfg.Intersect)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, []float64{0, 0.5, 1}, cfg.Params)
	require.Len(t, cfg.Curves, 1)
}

func TestLoadConfigPrecedence(t *testing.T) {
	vars := env(map[string]string{
		envThreshold:     "0.5",
		envMaxDepth:      "7",
		envMergeDistance: "0.25",
		envWorkers:       "2",
		envLogLevel:      "debug",
	})
	cfg, err := loadConfig([]string{"-c", "0,0 1,1"}, vars, io.Discard)
	require.NoError(t, err)
	require.Equal(t, bezier.IntersectOptions{Threshold: 0.5, MaxDepth: 7, MergeDistance: 0.25}, cfg.Intersect)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)

	cfg, err = loadConfig([]string{
		"-max-depth", "3",
		"-workers", "8",
		"-log-level", "warn",
		"-t", "0.1,0.9",
		"-c", "0,0 1,1",
		"-c", "0,1 1,0",
	}, vars, io.Discard)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Intersect.MaxDepth)
	require.Equal(t, 0.5, cfg.Intersect.Threshold)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, slog.LevelWarn, cfg.LogLevel)
	require.Equal(t, []float64{0.1, 0.9}, cfg.Params)
	require.Len(t, cfg.Curves, 2)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(nil, env(nil), io.Discard)
	require.Error(t, err)

	_, err = loadConfig([]string{"-c", "0,0 1,1"}, env(map[string]string{envMaxDepth: "deep"}), io.Discard)
	require.ErrorContains(t, err, envMaxDepth)

	_, err = loadConfig([]string{"-c", "0,0 1,1", "-workers", "0"}, env(nil), io.Discard)
	require.Error(t, err)

	_, err = loadConfig([]string{"-c", "0,0 1,1", "-log-level", "loud"}, env(nil), io.Discard)
	require.Error(t, err)

	_, err = loadConfig([]string{"-c", "1,2,3"}, env(nil), io.Discard)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	cfg, err := loadConfig([]string{
		"-t", "0.5,1.5",
		"-c", "0,0 10,10",
		"-c", "0,10 10,0",
		"-c", "20,20 25,30 30,20",
	}, env(nil), io.Discard)
	require.NoError(t, err)

	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	require.NoError(t, run(context.Background(), &out, logger, cfg))

	lines := strings.Split(out.String(), "\n")
	require.Contains(t, lines, "curve 0 degree 1 [(0, 0) (10, 10)]")
	require.Contains(t, lines, "  point t=0.5 (5, 5)")
	require.Contains(t, lines, "curve 2 degree 2 [(20, 20) (25, 30) (30, 20)]")
	require.Contains(t, lines, "  bbox [20, 30]×[20, 25]")

	// Pairs are printed in order regardless of which finished first.
	var pairs []string
	for i, l := range lines {
		if strings.HasPrefix(l, "pair ") {
			pairs = append(pairs, l)
			require.True(t, strings.HasPrefix(lines[i+1], "  intersections ["))
		}
	}
	require.Equal(t, []string{"pair 0 1", "pair 0 2", "pair 1 2"}, pairs)

	i := indexOf(lines, "pair 0 1")
	require.Equal(t, 1, strings.Count(lines[i+1], "("), lines[i+1])
	i = indexOf(lines, "pair 1 2")
	require.Equal(t, "  intersections []", lines[i+1])

	// t = 1.5 is outside of the domain of every curve.
	require.Equal(t, 3, strings.Count(logs.String(), "skipping parameter"))
}

func TestRunFlipY(t *testing.T) {
	cfg, err := loadConfig([]string{"-flip-y", "-t", "1", "-c", "0,1 2,3"}, env(nil), io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, slog.New(slog.NewTextHandler(io.Discard, nil)), cfg))
	require.Contains(t, out.String(), "curve 0 degree 1 [(0, -1) (2, -3)]")
	require.Contains(t, out.String(), "  point t=1 (2, -3)")
}

func TestLoadConfigTransform(t *testing.T) {
	load := func(args ...string) config {
		t.Helper()
		cfg, err := loadConfig(append(args, "-c", "0,0 1,1"), env(nil), io.Discard)
		require.NoError(t, err)
		return cfg
	}
	apply := func(cfg config, x, y float64) []float64 {
		p := cfg.Transform.Apply(bezier.Vec(x, y))
		return []float64{p.X, p.Y}
	}

	require.Equal(t, bezier.Identity, load().Transform)
	require.Equal(t, bezier.FlipY, load("-flip-y").Transform)
	require.InDeltaSlice(t, []float64{2, 2}, apply(load("-scale", "2"), 1, 1), 1e-9)
	require.InDeltaSlice(t, []float64{2, 3}, apply(load("-scale", "2,3"), 1, 1), 1e-9)
	require.InDeltaSlice(t, []float64{0, 1}, apply(load("-rotate", "90"), 1, 0), 1e-9)
	require.InDeltaSlice(t, []float64{2, 2}, apply(load("-rotate", "180", "-pivot", "1,1"), 0, 0), 1e-9)

	// Flip, then scale, then rotate.
	cfg := load("-flip-y", "-scale", "2", "-rotate", "90", "-pivot", "0,-2")
	require.InDeltaSlice(t, []float64{-2, -2}, apply(cfg, 0, 0), 1e-9)
	require.InDeltaSlice(t, []float64{0, -2}, apply(cfg, 0, 1), 1e-9)
}

func TestLoadConfigTransformErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-scale", "0"},
		{"-scale", "2,0"},
		{"-scale", "big"},
		{"-rotate", "45", "-pivot", "1"},
	} {
		_, err := loadConfig(append(args, "-c", "0,0 1,1"), env(nil), io.Discard)
		require.Error(t, err, args)
	}
	_, err := loadConfig([]string{"-scale", "0", "-c", "0,0 1,1"}, env(nil), io.Discard)
	require.ErrorContains(t, err, "not invertible")
}

func TestRunTransform(t *testing.T) {
	cfg, err := loadConfig([]string{"-scale", "2", "-t", "1", "-c", "0,0 1,2", "-c", "0,2 1,0"}, env(nil), io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, slog.New(slog.NewTextHandler(io.Discard, nil)), cfg))
	lines := strings.Split(out.String(), "\n")
	require.Contains(t, lines, "curve 0 degree 1 [(0, 0) (2, 4)]")
	require.Contains(t, lines, "  bbox [0, 2]×[0, 4]")
	// Intersections are reported in transformed coordinates.
	i := indexOf(lines, "pair 0 1")
	require.True(t, strings.HasPrefix(lines[i+1], "  intersections [(1"), lines[i+1])
	require.Equal(t, 1, strings.Count(lines[i+1], "("), lines[i+1])
}

func indexOf(lines []string, s string) int {
	for i, l := range lines {
		if l == s {
			return i
		}
	}
	return -1
}
