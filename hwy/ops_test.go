package hwy

import (
	"math"
	"testing"
)

func TestLoadN(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	for _, n := range []int{1, 3, 8} {
		v := LoadN(data, n)
		if v.NumLanes() != n {
			t.Fatalf("LoadN(%d): got %d lanes", n, v.NumLanes())
		}
		for i := 0; i < n; i++ {
			if v.data[i] != data[i] {
				t.Errorf("LoadN(%d): lane %d: got %v, want %v", n, i, v.data[i], data[i])
			}
		}
	}
}

func TestLoadNShortSource(t *testing.T) {
	v := LoadN([]float32{1, 2}, 8)
	if v.NumLanes() != 2 {
		t.Errorf("LoadN on short slice: got %d lanes, want 2", v.NumLanes())
	}
}

func TestLoadNClamps(t *testing.T) {
	data := make([]float32, 64)
	if got := LoadN(data, 100).NumLanes(); got != MaxVecLanes {
		t.Errorf("LoadN(100): got %d lanes, want %d", got, MaxVecLanes)
	}
	if got := LoadN(data, -1).NumLanes(); got != 0 {
		t.Errorf("LoadN(-1): got %d lanes, want 0", got)
	}
}

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	v := Load(data)

	if v.NumLanes() != MaxLanes[float32]() {
		t.Errorf("Load: got %d lanes, want %d", v.NumLanes(), MaxLanes[float32]())
	}
}

func TestSetN(t *testing.T) {
	v := SetN(42.0, 5)

	if v.NumLanes() != 5 {
		t.Fatalf("SetN: got %d lanes, want 5", v.NumLanes())
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42.0 {
			t.Errorf("SetN: lane %d: got %v, want %v", i, v.data[i], 42.0)
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[float64]()

	if v.NumLanes() == 0 {
		t.Error("Zero created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := SetN[float64](10.0, 8)
	b := SetN[float64](4.0, 8)

	tests := []struct {
		name string
		got  Vec[float64]
		want float64
	}{
		{"Add", Add(a, b), 14},
		{"Sub", Sub(a, b), 6},
		{"Mul", Mul(a, b), 40},
		{"Div", Div(a, b), 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.NumLanes() != 8 {
				t.Fatalf("got %d lanes, want 8", tt.got.NumLanes())
			}
			for i := 0; i < tt.got.NumLanes(); i++ {
				if tt.got.data[i] != tt.want {
					t.Errorf("lane %d: got %v, want %v", i, tt.got.data[i], tt.want)
				}
			}
		})
	}
}

func TestBinaryOpUsesSmallerLaneCount(t *testing.T) {
	r := Add(SetN[float32](1, 4), SetN[float32](2, 7))
	if r.NumLanes() != 4 {
		t.Errorf("Add: got %d lanes, want 4", r.NumLanes())
	}
}

func TestDivByZero(t *testing.T) {
	a := LoadN([]float64{1, -1, 0}, 3)
	b := ZeroN[float64](3)
	r := Div(a, b)

	if !math.IsInf(r.data[0], 1) {
		t.Errorf("1/0: got %v, want +Inf", r.data[0])
	}
	if !math.IsInf(r.data[1], -1) {
		t.Errorf("-1/0: got %v, want -Inf", r.data[1])
	}
	if !math.IsNaN(r.data[2]) {
		t.Errorf("0/0: got %v, want NaN", r.data[2])
	}
	if got := IsNaN(r).CountTrue(); got != 1 {
		t.Errorf("IsNaN: got %d NaN lanes, want 1", got)
	}
}

func TestReduceSum(t *testing.T) {
	v := LoadN([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 8)
	if got := ReduceSum(v); got != 36 {
		t.Errorf("ReduceSum: got %v, want 36", got)
	}
	if got := ReduceSum(LoadN([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 3)); got != 6 {
		t.Errorf("ReduceSum(3 lanes): got %v, want 6", got)
	}
}

func TestHalfOpenIntervalMask(t *testing.T) {
	lo := LoadN([]float64{0, 1, 2, 3}, 4)
	hi := LoadN([]float64{1, 2, 3, 3}, 4)
	x := SetN(2.0, 4)

	mask := MaskAnd(GreaterEqual(x, lo), LessThan(x, hi))
	want := []bool{false, false, true, false}
	for i, w := range want {
		if mask.GetBit(i) != w {
			t.Errorf("lane %d: got %v, want %v", i, mask.GetBit(i), w)
		}
	}
	if mask.CountTrue() != 1 {
		t.Errorf("CountTrue: got %d, want 1", mask.CountTrue())
	}
}

func TestComparisonWithNaN(t *testing.T) {
	nan := SetN(math.NaN(), 4)
	zero := ZeroN[float64](4)

	if GreaterEqual(nan, zero).AnyTrue() {
		t.Error("NaN >= 0 should be false in every lane")
	}
	if LessThan(nan, zero).AnyTrue() {
		t.Error("NaN < 0 should be false in every lane")
	}
}

func TestIfThenElse(t *testing.T) {
	a := LoadN([]float32{1, 2, 3, 4}, 4)
	b := LoadN([]float32{10, 20, 30, 40}, 4)
	mask := LessThan(a, SetN[float32](3, 4))

	r := IfThenElse(mask, a, b)
	want := []float32{1, 2, 30, 40}
	for i, w := range want {
		if r.data[i] != w {
			t.Errorf("lane %d: got %v, want %v", i, r.data[i], w)
		}
	}
}

func TestMaskAllTrue(t *testing.T) {
	a := SetN[float64](1, 5)
	if !GreaterEqual(a, a).AllTrue() {
		t.Error("a >= a should be true in all lanes")
	}
	if LessThan(a, a).AllTrue() {
		t.Error("a < a should not be true in all lanes")
	}
}

func TestStoreShortDestination(t *testing.T) {
	v := SetN[float64](7, 8)
	dst := make([]float64, 3)
	v.Store(dst)
	for i, d := range dst {
		if d != 7 {
			t.Errorf("dst[%d] = %v, want 7", i, d)
		}
	}
	if got := len(v.Data()); got != 8 {
		t.Errorf("Data: got %d values, want 8", got)
	}
}
