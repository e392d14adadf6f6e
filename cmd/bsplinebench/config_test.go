package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-bspline/hwy/contrib/bspline"
	"github.com/ajroetker/go-bspline/hwy/contrib/workerpool"
)

func TestExampleConfig(t *testing.T) {
	con, err := parseConfig(ExampleConfigFile)
	require.NoError(t, err)
	require.NoError(t, con.CheckInit())

	want := DefaultConfig()
	require.NoError(t, want.CheckInit())
	assert.Equal(t, want, con, "the example file describes the defaults")
	assert.Len(t, con.Spline.ControlPoint, 16)
}

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.ini")
	text := `[spline]
degree = 1
knots = 5
lo = -1
hi = 1
controlpoint = 2
controlpoint = 3
controlpoint = 5

[run]
inputs = 7
minparallel = 64
strategy = scalar, vector
lanes = 3
`
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	con, err := ReadConfig(path)
	require.NoError(t, err)
	require.NoError(t, con.CheckInit())

	assert.Equal(t, 1, con.Spline.Degree)
	assert.Equal(t, []float64{2, 3, 5}, con.Spline.ControlPoint)
	assert.Equal(t, 7, con.Run.Inputs)
	assert.Equal(t, 3, con.Run.Lanes)
	assert.Equal(t, 64, con.Run.MinParallel)
	// Unset values keep their defaults.
	assert.Equal(t, 10000, con.Run.Iterations)
	assert.Equal(t, 1e-9, con.Run.Tolerance)

	strategies, err := con.Run.Strategies()
	require.NoError(t, err)
	assert.Equal(t, []bspline.Strategy{bspline.StrategyScalar, bspline.StrategyVector}, strategies)
}

func TestReadConfigErrors(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)

	_, err = parseConfig("[spline]\nsplines = 3\n")
	assert.Error(t, err, "unknown variable")

	_, err = parseConfig("[spline]\ndegree = three\n")
	assert.Error(t, err, "malformed integer")
}

func TestCheckInit(t *testing.T) {
	tests := []struct {
		name   string
		modify func(con *Config)
	}{
		{"negative degree", func(con *Config) { con.Spline.Degree = -1 }},
		{"too few knots", func(con *Config) { con.Spline.Knots = 7 }},
		{"empty range", func(con *Config) { con.Spline.Hi = con.Spline.Lo }},
		{"wrong control point count", func(con *Config) { con.Spline.ControlPoint = []float64{1, 2} }},
		{"no inputs", func(con *Config) { con.Run.Inputs = 0 }},
		{"no iterations", func(con *Config) { con.Run.Iterations = -3 }},
		{"negative workers", func(con *Config) { con.Run.Workers = -1 }},
		{"negative minparallel", func(con *Config) { con.Run.MinParallel = -1 }},
		{"negative tolerance", func(con *Config) { con.Run.Tolerance = -1e-9 }},
		{"too many lanes", func(con *Config) { con.Run.Lanes = 17 }},
		{"unknown strategy", func(con *Config) { con.Run.Strategy = "scalar,fast" }},
		{"empty strategy list", func(con *Config) { con.Run.Strategy = " , " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			con := DefaultConfig()
			tt.modify(con)
			assert.Error(t, con.CheckInit())
		})
	}
}

func TestInputValues(t *testing.T) {
	rc := RunConfig{Inputs: 4, Start: 1, Step: 0.5}
	assert.Equal(t, []float64{1, 1.5, 2, 2.5}, rc.InputValues())
}

func TestRunBench(t *testing.T) {
	con := DefaultConfig()
	con.Run.Iterations = 3
	con.Run.Lanes = 5
	require.NoError(t, con.CheckInit())

	results, err := runBench(con, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, r := range results {
		if r.Skipped {
			assert.Equal(t, bspline.StrategyNative, r.Strategy)
			assert.False(t, bspline.NativeAvailable[float64]())
			continue
		}
		assert.True(t, r.Passed(con.Run.Tolerance), "%s: max rel err %g", r.Strategy, r.MaxRelErr)
		assert.InDelta(t, results[0].Checksum, r.Checksum, 1e-9)
	}

	var buf bytes.Buffer
	require.NoError(t, report(&buf, con, results))
	assert.Contains(t, buf.String(), "scalar")
	assert.Contains(t, buf.String(), "vector")
	assert.NotContains(t, buf.String(), "MISMATCH")
}

func TestRunBenchWithWorkers(t *testing.T) {
	con := DefaultConfig()
	con.Run.Iterations = 2
	con.Run.Workers = 4
	require.NoError(t, con.CheckInit())
	// The reference batch of 100 inputs is below the library's serial
	// cutoff, so the default config must lower it for workers to matter.
	require.Less(t, con.Run.MinParallel, con.Run.Inputs)
	require.Less(t, con.Run.Inputs, bspline.DefaultMinParallel)

	serial, err := runBench(con, nil)
	require.NoError(t, err)

	pool := workerpool.New(con.Run.Workers)
	defer pool.Close()
	parallel, err := runBench(con, pool)
	require.NoError(t, err)

	require.Len(t, parallel, len(serial))
	for i, r := range parallel {
		if r.Skipped {
			continue
		}
		assert.True(t, r.Passed(con.Run.Tolerance), "%s: max rel err %g", r.Strategy, r.MaxRelErr)
		assert.Equal(t, serial[i].Checksum, r.Checksum, "%s", r.Strategy)
	}
}

func TestMaxRelErr(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, 0.0, maxRelErr([]float64{1, nan, 0}, []float64{1, nan, 0}))
	assert.InDelta(t, 0.5, maxRelErr([]float64{0}, []float64{0.5}), 1e-15)
	assert.InDelta(t, 0.01, maxRelErr([]float64{100}, []float64{101}), 1e-15)
	assert.Greater(t, maxRelErr([]float64{1}, []float64{nan}), 1e300)
}
