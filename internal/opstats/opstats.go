// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opstats summarizes operation counts collected over repeated
// sorting trials: comparator invocations, elapsed nanoseconds, and the
// like.
//
// Counts are modeled as int64 samples, one per trial. All functions
// panic on an empty sample set; a trial run that produced no samples is
// a programmer error, not a condition to report.
package opstats

import "math"

// Mean returns the arithmetic mean of the samples.
func Mean(samples []int64) float64 {
	if len(samples) == 0 {
		panic("opstats: empty sample set")
	}
	sum := 0.0
	for _, v := range samples {
		sum += float64(v)
	}
	return sum / float64(len(samples))
}

// MeanAndStdDev returns the arithmetic mean and the sample standard
// deviation of the samples; the standard deviation is 0 for a single
// sample.
func MeanAndStdDev(samples []int64) (float64, float64) {
	mean := Mean(samples)
	if len(samples) == 1 {
		return mean, 0
	}
	squaredDiffs := 0.0
	for _, v := range samples {
		diff := float64(v) - mean
		squaredDiffs += diff * diff
	}
	return mean, math.Sqrt(squaredDiffs / float64(len(samples)-1))
}

// Min returns the smallest sample.
func Min(samples []int64) int64 {
	if len(samples) == 0 {
		panic("opstats: empty sample set")
	}
	min := samples[0]
	for _, v := range samples[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest sample.
func Max(samples []int64) int64 {
	if len(samples) == 0 {
		panic("opstats: empty sample set")
	}
	max := samples[0]
	for _, v := range samples[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// PerElement returns mean samples per element for inputs of length n.
func PerElement(samples []int64, n int) float64 {
	if n <= 0 {
		panic("opstats: non-positive input length")
	}
	return Mean(samples) / float64(n)
}

// RatioNLogN returns the mean sample count as a multiple of n·log2(n),
// the usual yardstick for comparison sorts. n must be at least 2.
func RatioNLogN(samples []int64, n int) float64 {
	if n < 2 {
		panic("opstats: input length below 2")
	}
	return Mean(samples) / (float64(n) * math.Log2(float64(n)))
}
