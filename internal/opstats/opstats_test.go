// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opstats

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	if got := Mean([]int64{4}); got != 4 {
		t.Errorf("Mean single sample = %v, want 4", got)
	}
	if got := Mean([]int64{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Mean = %v, want 2.5", got)
	}
}

func TestMeanAndStdDev(t *testing.T) {
	mean, stddev := MeanAndStdDev([]int64{2, 4, 4, 4, 5, 5, 7, 9})
	if mean != 5 {
		t.Errorf("mean = %v, want 5", mean)
	}
	// Sample variance of these values is 32/7.
	if want := math.Sqrt(32.0 / 7.0); math.Abs(stddev-want) > 1e-12 {
		t.Errorf("stddev = %v, want %v", stddev, want)
	}

	mean, stddev = MeanAndStdDev([]int64{3})
	if mean != 3 || stddev != 0 {
		t.Errorf("single sample = %v, %v, want 3, 0", mean, stddev)
	}
}

func TestMinMax(t *testing.T) {
	samples := []int64{5, -2, 9, 0}
	if got := Min(samples); got != -2 {
		t.Errorf("Min = %d, want -2", got)
	}
	if got := Max(samples); got != 9 {
		t.Errorf("Max = %d, want 9", got)
	}
}

func TestPerElement(t *testing.T) {
	if got := PerElement([]int64{300, 100}, 100); got != 2 {
		t.Errorf("PerElement = %v, want 2", got)
	}
}

func TestRatioNLogN(t *testing.T) {
	// n = 4: n·log2(n) = 8.
	if got := RatioNLogN([]int64{16}, 4); got != 2 {
		t.Errorf("RatioNLogN = %v, want 2", got)
	}
}

func TestPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Mean of no samples did not panic")
		}
	}()
	Mean(nil)
}
