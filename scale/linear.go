// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"

	"github.com/aclements/go-ticks/ticker"
)

type Linear struct {
	min, width float64
}

// NewLinear returns a new linear scale spanning the values in input.
func NewLinear(input []float64) Linear {
	min, max := minmax(input)
	return Linear{min, max - min}
}

func (s Linear) Of(x float64) float64 {
	if s.width == 0 {
		return 0.5
	}
	return (x - s.min) / s.width
}

func (s Linear) Domain() ticker.Interval {
	return ticker.Interval{Lo: s.min, Hi: s.min + s.width}
}

// Ticks returns "nice" major ticks chosen by a MaxNLocator and minor
// ticks subdividing them.
func (s Linear) Ticks(n int) (major, minor []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("n must be >= 2, got %d", n)
	}
	loc, err := ticker.NewMaxNLocator(n - 1)
	if err != nil {
		return nil, nil, err
	}
	d := s.Domain()
	d.Lo, d.Hi = ticker.Nonsingular(d.Lo, d.Hi, 0.001, 1e-15, true)
	return ticks(d, loc, &ticker.AutoMinorLocator{Major: loc})
}
