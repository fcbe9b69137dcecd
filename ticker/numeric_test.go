// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import (
	"math"
	"testing"
)

func TestDivmod(t *testing.T) {
	for _, test := range []struct {
		x, y, div, mod float64
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{0.5, 0.2, 2, 0.09999999999999998},
	} {
		div, mod := divmod(test.x, test.y)
		if div != test.div || mod != test.mod {
			t.Errorf("divmod(%v, %v) = %v, %v; want %v, %v", test.x, test.y, div, mod, test.div, test.mod)
		}
	}
}

func TestArange(t *testing.T) {
	for _, test := range []struct {
		start, stop, step float64
		want              []float64
	}{
		{0, 3, 1, []float64{0, 1, 2}},
		{1, 11, 3, []float64{1, 4, 7, 10}},
		{3, 0, 1, []float64{}},
		{0, 1, 1, []float64{0}},
		{0, math.NaN(), 1, []float64{}},
	} {
		got := arange(test.start, test.stop, test.step)
		if len(got) != len(test.want) {
			t.Errorf("arange(%v, %v, %v) = %v, want %v", test.start, test.stop, test.step, got, test.want)
			continue
		}
		for i := range got {
			if got[i] != test.want[i] {
				t.Errorf("arange(%v, %v, %v) = %v, want %v", test.start, test.stop, test.step, got, test.want)
				break
			}
		}
	}
}

func TestLog10(t *testing.T) {
	for k := -22; k <= 22; k++ {
		x := math.Pow(10, float64(k))
		if got := log10(x); got != float64(k) {
			t.Errorf("log10(1e%d) = %v", k, got)
		}
	}
	if got := log10(2); math.Abs(got-0.3010299956639812) > 1e-15 {
		t.Errorf("log10(2) = %v", got)
	}
}

func TestNonsingular(t *testing.T) {
	for _, test := range []struct {
		vmin, vmax float64
		increasing bool
		lo, hi     float64
	}{
		{0, 0, true, -0.001, 0.001},
		{1, 2, true, 1, 2},
		{2, 1, true, 1, 2},
		{2, 1, false, 2, 1},
		{math.Inf(1), 1, true, -0.001, 0.001},
		{1e-320, 1e-320, true, -0.001, 0.001},
	} {
		lo, hi := Nonsingular(test.vmin, test.vmax, 0.001, 1e-15, test.increasing)
		if lo != test.lo || hi != test.hi {
			t.Errorf("Nonsingular(%v, %v, %v) = %v, %v; want %v, %v",
				test.vmin, test.vmax, test.increasing, lo, hi, test.lo, test.hi)
		}
	}

	lo, hi := Nonsingular(-4, -4, 0.001, 1e-15, true)
	if math.Abs(lo+4.004) > 1e-12 || math.Abs(hi+3.996) > 1e-12 {
		t.Errorf("Nonsingular(-4, -4) = %v, %v", lo, hi)
	}
}
