// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "github.com/aclements/go-moremath/vec"

// OutputScale maps the unit interval onto an output range, such as a
// range of columns.
type OutputScale struct {
	min, max float64
	clamp    int
}

const (
	clampCrop = iota
	clampNone
	clampClamp
)

// NewOutputScale returns an OutputScale onto [min, max] that crops
// values outside the unit interval.
func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{min, max, clampCrop}
}

// Crop makes Of reject values outside [0, 1].
func (s *OutputScale) Crop() {
	s.clamp = clampCrop
}

// Unclamp makes Of extrapolate values outside [0, 1].
func (s *OutputScale) Unclamp() {
	s.clamp = clampNone
}

// Clamp makes Of map values below 0 to min and above 1 to max.
func (s *OutputScale) Clamp() {
	s.clamp = clampClamp
}

// Of maps x from [0, 1] to the output range. If s crops and x is
// outside [0, 1], it returns false.
func (s OutputScale) Of(x float64) (float64, bool) {
	switch s.clamp {
	case clampCrop:
		if x < 0 || x > 1 {
			return 0, false
		}
	case clampClamp:
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return x*(s.max-s.min) + s.min, true
}

// Place maps the input values xs through in and then s. It returns the
// output positions and the input values they correspond to, omitting
// values that s crops.
func (s OutputScale) Place(in Interface, xs []float64) (pos, vals []float64) {
	for i, u := range vec.Map(in.Of, xs) {
		if p, ok := s.Of(u); ok {
			pos = append(pos, p)
			vals = append(vals, xs[i])
		}
	}
	return
}
