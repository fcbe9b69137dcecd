// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-ticks/ticker"
)

type Log struct {
	min, max, base float64
	logMin, denom  float64
}

// NewLog returns a new logarithmic scale spanning the values in input,
// which must all be positive.
//
// base has no effect on the scaling. It is only used for computing
// tick marks.
func NewLog(input []float64, base float64) (*Log, error) {
	if base <= 1 {
		return nil, fmt.Errorf("log scale base must be greater than 1, got %v", base)
	}
	min, max := minmax(input)
	if !(min > 0) {
		return nil, &ticker.DomainError{Vmin: min, Vmax: max, Err: mscale.RangeErr("log scale range cannot include 0")}
	}
	s := &Log{min: min, max: max, base: base}
	s.precompute()
	return s, nil
}

func (s *Log) precompute() {
	s.logMin = math.Log(s.min)
	s.denom = math.Log(s.max) - s.logMin
}

func (s *Log) Of(x float64) float64 {
	if s.denom == 0 {
		return 0.5
	}
	return (math.Log(x) - s.logMin) / s.denom
}

func (s *Log) Domain() ticker.Interval {
	return ticker.Interval{Lo: s.min, Hi: s.max}
}

func (s *Log) major(n int) *ticker.LogLocator {
	l := ticker.NewLogLocator(s.base)
	l.NumTicks = n
	return l
}

// Nice expands the domain of s to "nice" values of the scale, which
// will translate into major tick marks.
//
// n is the maximum number of major ticks. n must be >= 2.
func (s *Log) Nice(n int) {
	if n < 2 {
		panic("n must be >= 2")
	}

	majors, err := s.major(n).TickValues(s.min, s.max)
	if err != nil || len(majors) == 0 {
		return
	}
	// Major ticks extend past the domain on both sides. Take the
	// closest one outside each end.
	lo, hi := majors[0], majors[len(majors)-1]
	for _, x := range majors {
		if x <= s.min*(1+1e-12) {
			lo = x
		}
	}
	for i := len(majors) - 1; i >= 0; i-- {
		if majors[i] >= s.max*(1-1e-12) {
			hi = majors[i]
		}
	}
	s.min, s.max = lo, hi
	s.precompute()
}

// Ticks returns major ticks at powers of the base, thinned to at most
// n, and minor ticks at the multiples in between.
func (s *Log) Ticks(n int) (major, minor []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("n must be >= 2, got %d", n)
	}
	minorLoc := &ticker.LogLocator{Base: s.base, SubsMode: ticker.SubsAuto}
	return ticks(s.Domain(), s.major(n), minorLoc)
}
