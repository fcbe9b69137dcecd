// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "github.com/aclements/go-ticks/ticker"

func minmax(xs []float64) (min float64, max float64) {
	min, max = xs[0], xs[0]
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// within returns the elements of xs in d, allowing for round-off at
// the ends.
func within(xs []float64, d ticker.Interval) []float64 {
	lo, hi := d.Sorted()
	eps := 1e-9 * (hi - lo)
	out := []float64{}
	for _, x := range xs {
		if lo-eps <= x && x <= hi+eps {
			out = append(out, x)
		}
	}
	return out
}

// ticks runs major and minor over d and keeps the ticks in d.
func ticks(d ticker.Interval, major, minor ticker.Locator) ([]float64, []float64, error) {
	ma, err := major.TickValues(d.Lo, d.Hi)
	if err != nil {
		return nil, nil, err
	}
	mi, err := minor.TickValues(d.Lo, d.Hi)
	if err != nil {
		return nil, nil, err
	}
	return within(ma, d), within(mi, d), nil
}
