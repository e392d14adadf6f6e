package bspline

import (
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// splineCase is one (knots, controlPoints, degree) configuration.
type splineCase struct {
	name          string
	knots         []float64
	controlPoints []float64
	degree        int
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// linspace returns n evenly spaced values from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

// inputsFor covers the knot range with some margin and includes every knot
// exactly, so boundary handling is exercised.
func inputsFor(knots []float64, n int) []float64 {
	lo, hi := knots[0], knots[len(knots)-1]
	margin := (hi - lo) / 10
	inputs := linspace(lo-margin, hi+margin, n)
	inputs = append(inputs, knots...)
	return inputs
}

func uniformCase(numKnots, degree int) splineCase {
	knots := UniformKnots[float64](numKnots, 0, float64(numKnots-1))
	rng := rand.New(rand.NewPCG(uint64(numKnots), uint64(degree)))
	cps := make([]float64, numKnots-degree-1)
	for i := range cps {
		cps[i] = rng.Float64()*4 - 2
	}
	return splineCase{
		name:          "uniform/" + strconv.Itoa(numKnots) + "knots/deg" + strconv.Itoa(degree),
		knots:         knots,
		controlPoints: cps,
		degree:        degree,
	}
}

// randomCase has strictly increasing, irregularly spaced knots.
func randomCase(seed uint64, numKnots, degree int) splineCase {
	rng := rand.New(rand.NewPCG(seed, 7))
	knots := make([]float64, numKnots)
	x := rng.Float64()
	for i := range knots {
		knots[i] = x
		x += 0.05 + rng.Float64()
	}
	cps := make([]float64, numKnots-degree-1)
	for i := range cps {
		cps[i] = rng.NormFloat64()
	}
	return splineCase{
		name:          "random/" + strconv.Itoa(numKnots) + "knots/deg" + strconv.Itoa(degree),
		knots:         knots,
		controlPoints: cps,
		degree:        degree,
	}
}

// testCases covers small and large knot vectors so that the vector kernels
// see loop lengths below, at and above every lane count.
func testCases() []splineCase {
	var cases []splineCase
	for degree := range 6 {
		for _, extra := range []int{0, 1, 5, 13, 30} {
			cases = append(cases, uniformCase(2*degree+2+extra, degree))
		}
	}
	for degree := 1; degree <= 4; degree++ {
		cases = append(cases, randomCase(uint64(degree), 17+degree, degree))
		cases = append(cases, randomCase(uint64(100+degree), 40, degree))
	}
	// The reference benchmark configuration.
	cases = append(cases, splineCase{
		name:          "benchmark/20knots/deg3",
		knots:         UniformKnots[float64](20, 0, 19),
		controlPoints: ones(16),
		degree:        3,
	})
	return cases
}

// approxOpts treats values as equal within a relative 1e-9 (absolute 1e-12
// near zero) and NaN as equal to NaN.
var approxOpts = cmp.Options{
	cmpopts.EquateApprox(1e-9, 1e-12),
	cmpopts.EquateNaNs(),
}

// exactOpts requires bit-for-bit agreement, except that NaN equals NaN.
var exactOpts = cmp.Options{
	cmpopts.EquateNaNs(),
}

func scalarReference(t *testing.T, tc splineCase, inputs []float64) []float64 {
	t.Helper()
	out, err := EvaluateBatchWith(Options{Strategy: StrategyScalar}, inputs, tc.controlPoints, tc.knots, tc.degree)
	if err != nil {
		t.Fatalf("scalar evaluation failed: %v", err)
	}
	return out
}

func toFloat32(xs []float64) []float32 {
	out := make([]float32, len(xs))
	for i, x := range xs {
		out[i] = float32(x)
	}
	return out
}

func countNaN(xs []float64) int {
	n := 0
	for _, x := range xs {
		if math.IsNaN(x) {
			n++
		}
	}
	return n
}
