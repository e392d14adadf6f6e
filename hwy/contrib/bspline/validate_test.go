package bspline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-bspline/hwy"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		numCPs    int
		numKnots  int
		degree    int
		wantField string
	}{
		{"ok/degree0", 1, 2, 0, ""},
		{"ok/degree3", 16, 20, 3, ""},
		{"ok/minimal degree3", 4, 8, 3, ""},
		{"negative degree", 3, 4, -1, "degree"},
		{"too few knots", 2, 5, 2, "knots"},
		{"no knots", 0, 0, 0, "knots"},
		{"too many control points", 6, 8, 2, "controlPoints"},
		{"too few control points", 4, 8, 2, "controlPoints"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cps := make([]float64, tt.numCPs)
			knots := UniformKnots[float64](tt.numKnots, 0, 1)
			err := Validate(cps, knots, tt.degree)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArguments)

			var argErr *ArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, tt.wantField, argErr.Field)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestEvaluateRejectsBadArguments(t *testing.T) {
	knots := UniformKnots[float64](8, 0, 7)
	cps := ones(5)
	inputs := []float64{1, 2, 3}

	_, err := EvaluateBatch(inputs, cps[:4], knots, 2)
	assert.ErrorIs(t, err, ErrInvalidArguments)

	_, err = EvaluateBatch(inputs, cps, knots, -2)
	assert.ErrorIs(t, err, ErrInvalidArguments)

	// Validation happens before anything else, even for an empty batch.
	_, err = EvaluateBatch(nil, cps, knots[:3], 2)
	assert.ErrorIs(t, err, ErrInvalidArguments)

	dst := []float64{7, 7}
	err = EvaluateBatchInto(Options{}, dst, inputs, cps, knots, 2)
	assert.ErrorIs(t, err, ErrInvalidArguments)
	assert.Equal(t, []float64{7, 7}, dst, "no work is done on error")
}

func TestLanesOutOfRange(t *testing.T) {
	knots := UniformKnots[float64](8, 0, 7)
	cps := ones(5)

	for _, lanes := range []int{-1, hwy.MaxVecLanes + 1, 64} {
		_, err := EvaluateBatchWith(Options{Strategy: StrategyVector, Lanes: lanes}, []float64{1}, cps, knots, 2)
		require.Error(t, err, "lanes=%d", lanes)
		var argErr *ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "Lanes", argErr.Field)
	}

	// Lanes only matters for the vector strategy.
	_, err := EvaluateBatchWith(Options{Strategy: StrategyScalar, Lanes: 99}, []float64{1}, cps, knots, 2)
	assert.NoError(t, err)
}

func TestUnknownStrategy(t *testing.T) {
	knots := UniformKnots[float64](8, 0, 7)
	_, err := EvaluateBatchWith(Options{Strategy: Strategy(42)}, []float64{1}, ones(5), knots, 2)
	assert.ErrorIs(t, err, ErrInvalidArguments)
	assert.Contains(t, err.Error(), "Strategy(42)")
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"", StrategyAuto, false},
		{"auto", StrategyAuto, false},
		{"Scalar", StrategyScalar, false},
		{"vector", StrategyVector, false},
		{"vec", StrategyVector, false},
		{" NATIVE ", StrategyNative, false},
		{"simd", StrategyAuto, true},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseStrategy(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseStrategy(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, s := range []Strategy{StrategyAuto, StrategyScalar, StrategyVector, StrategyNative} {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
