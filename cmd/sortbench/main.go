// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The sortbench command measures the pdqsort engine against patterned
// inputs: it generates an input slice per trial, sorts it with an
// instrumented comparator, verifies the result, and reports comparison
// and timing statistics.
//
// Usage:
//
//	sortbench [-n 100000] [-trials 10] [-seed 42] [-pattern random]
//
// The -pattern flag accepts random, sorted, reversed, organpipe,
// fewdistinct, sawtooth, mixed, or all.
package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"golang.org/x/pdqsort"
	"golang.org/x/pdqsort/internal/opstats"
)

var (
	size    = flag.Int("n", 100_000, "number of elements per trial")
	trials  = flag.Int("trials", 10, "trials per pattern")
	seed    = flag.Int64("seed", 42, "seed for the random and mixed patterns")
	pattern = flag.String("pattern", "all", "input pattern, or all")
)

var patterns = []struct {
	name string
	fill func(v []int, rng *rand.Rand)
}{
	{"random", fillRandom},
	{"sorted", fillSorted},
	{"reversed", fillReversed},
	{"organpipe", fillOrganPipe},
	{"fewdistinct", fillFewDistinct},
	{"sawtooth", fillSawtooth},
	{"mixed", fillMixed},
}

func main() {
	flag.Parse()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	if *size < 2 || *trials < 1 {
		log.Fatal().Int("n", *size).Int("trials", *trials).
			Msg("need n >= 2 and trials >= 1")
	}

	ran := false
	for _, p := range patterns {
		if *pattern != "all" && *pattern != p.name {
			continue
		}
		ran = true
		runPattern(log, p.name, p.fill)
	}
	if !ran {
		log.Fatal().Str("pattern", *pattern).Msg("unknown pattern")
	}
}

func runPattern(log zerolog.Logger, name string, fill func([]int, *rand.Rand)) {
	rng := rand.New(rand.NewSource(*seed))
	v := make([]int, *size)

	comparisons := make([]int64, *trials)
	elapsed := make([]int64, *trials)

	for t := 0; t < *trials; t++ {
		fill(v, rng)
		want := histogram(v)

		var comps int64
		start := time.Now()
		pdqsort.SortFunc(v, func(a, b int) bool {
			comps++
			return a < b
		})
		elapsed[t] = time.Since(start).Nanoseconds()
		comparisons[t] = comps

		if !pdqsort.IsSorted(v) {
			log.Fatal().Str("pattern", name).Int("trial", t).
				Msg("output not sorted")
		}
		if !equalHistogram(want, histogram(v)) {
			log.Fatal().Str("pattern", name).Int("trial", t).
				Msg("output not a permutation of input")
		}
	}

	mean, stddev := opstats.MeanAndStdDev(comparisons)
	log.Info().
		Str("pattern", name).
		Int("n", *size).
		Int("trials", *trials).
		Str("comparisons", humanize.CommafWithDigits(mean, 0)).
		Float64("stddev", stddev).
		Float64("per_element", opstats.PerElement(comparisons, *size)).
		Float64("x_nlogn", opstats.RatioNLogN(comparisons, *size)).
		Str("fastest", humanize.Comma(opstats.Min(comparisons))).
		Str("slowest", humanize.Comma(opstats.Max(comparisons))).
		Dur("mean_time", time.Duration(int64(opstats.Mean(elapsed)))).
		Msg("sorted")
}

func fillRandom(v []int, rng *rand.Rand) {
	for i := range v {
		v[i] = rng.Intn(len(v))
	}
}

func fillSorted(v []int, _ *rand.Rand) {
	for i := range v {
		v[i] = i
	}
}

func fillReversed(v []int, _ *rand.Rand) {
	for i := range v {
		v[i] = len(v) - i
	}
}

// fillOrganPipe ascends to the midpoint and descends back, a classic
// stress case for median-of-three pivots.
func fillOrganPipe(v []int, _ *rand.Rand) {
	for i := range v {
		if j := len(v) - 1 - i; j < i {
			v[i] = j
		} else {
			v[i] = i
		}
	}
}

func fillFewDistinct(v []int, rng *rand.Rand) {
	for i := range v {
		v[i] = rng.Intn(4)
	}
}

func fillSawtooth(v []int, _ *rand.Rand) {
	for i := range v {
		v[i] = i % 101
	}
}

// fillMixed is a sorted prefix, a random middle, and a reversed suffix.
func fillMixed(v []int, rng *rand.Rand) {
	m := len(v) / 3
	fillSorted(v[:m], rng)
	for i := m; i < len(v)-m; i++ {
		v[i] = rng.Intn(len(v))
	}
	fillReversed(v[len(v)-m:], rng)
}

func histogram(v []int) map[int]int {
	h := make(map[int]int, len(v))
	for _, x := range v {
		h[x]++
	}
	return h
}

func equalHistogram(a, b map[int]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, n := range a {
		if b[k] != n {
			return false
		}
	}
	return true
}
