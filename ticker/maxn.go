// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import (
	"fmt"
	"math"
)

// Prune selects outermost ticks for a MaxNLocator to remove.
type Prune int

const (
	PruneNone Prune = iota
	PruneLower
	PruneUpper
	PruneBoth
)

func (p Prune) String() string {
	switch p {
	case PruneNone:
		return "none"
	case PruneLower:
		return "lower"
	case PruneUpper:
		return "upper"
	case PruneBoth:
		return "both"
	}
	return fmt.Sprintf("Prune(%d)", int(p))
}

// ParsePrune parses the name of a Prune value.
func ParsePrune(s string) (Prune, error) {
	for p := PruneNone; p <= PruneBoth; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return PruneNone, fmt.Errorf("prune must be none, lower, upper, or both; got %q", s)
}

// autoBins is the bin count used when MaxNLocator.NBins is 0.
const autoBins = 9

var defaultSteps = []float64{1, 2, 2.5, 5, 10}

// MaxNLocator places at most NBins+1 ticks at "nice" locations: a
// multiple of a step from Steps scaled by a power of ten.
//
// Construct a MaxNLocator with NewMaxNLocator or AutoLocator and
// change it with SetParams, which keeps the derived step table in
// sync.
type MaxNLocator struct {
	nbins        int
	steps        []float64
	extended     []float64
	integer      bool
	symmetric    bool
	prune        Prune
	minNTicks    int
	roundNumbers bool
}

// NewMaxNLocator returns a MaxNLocator with nbins bins (0 for
// automatic), the default steps, and the given parameters applied.
func NewMaxNLocator(nbins int, params ...Param) (*MaxNLocator, error) {
	l := &MaxNLocator{nbins: nbins, minNTicks: 2}
	l.setSteps(defaultSteps)
	if err := l.SetParams(params...); err != nil {
		return nil, err
	}
	return l, nil
}

// AutoLocator returns a MaxNLocator with an automatic bin count and
// steps of 1, 2, 2.5, 5 and 10.
func AutoLocator() *MaxNLocator {
	l, _ := NewMaxNLocator(0)
	return l
}

func (l *MaxNLocator) NBins() int         { return l.nbins }
func (l *MaxNLocator) Steps() []float64   { return append([]float64(nil), l.steps...) }
func (l *MaxNLocator) Integer() bool      { return l.integer }
func (l *MaxNLocator) Symmetric() bool    { return l.symmetric }
func (l *MaxNLocator) Prune() Prune       { return l.prune }
func (l *MaxNLocator) MinNTicks() int     { return l.minNTicks }
func (l *MaxNLocator) RoundNumbers() bool { return l.roundNumbers }

func (l *MaxNLocator) setSteps(steps []float64) {
	l.steps = steps
	l.extended = staircase(steps)
}

// validateSteps checks that steps increase and pads them to start at
// 1 and end at 10.
func validateSteps(steps []float64) ([]float64, error) {
	if steps == nil {
		return defaultSteps, nil
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("steps must be a non-empty sequence of numbers from 1 to 10")
	}
	for i := 1; i < len(steps); i++ {
		if steps[i] <= steps[i-1] {
			return nil, fmt.Errorf("steps must be strictly increasing")
		}
	}
	if steps[len(steps)-1] > 10 || steps[0] < 1 {
		warnf("steps should increase from 1 to 10, inclusive; got %v", steps)
	}
	out := make([]float64, 0, len(steps)+2)
	if steps[0] != 1 {
		out = append(out, 1)
	}
	out = append(out, steps...)
	if steps[len(steps)-1] != 10 {
		out = append(out, 10)
	}
	return out, nil
}

// staircase extends steps (which run from 1 to 10) down one decade
// and up one step, so a step can be found for any raw step within a
// decade of the scale.
func staircase(steps []float64) []float64 {
	out := make([]float64, 0, 2*len(steps))
	for _, s := range steps[:len(steps)-1] {
		out = append(out, 0.1*s)
	}
	out = append(out, steps...)
	return append(out, 10*steps[1])
}

func (l *MaxNLocator) SetParams(params ...Param) error {
	ps, nl := newParamSet(l), *l
	for _, p := range params {
		switch p.name {
		case "nbins":
			if n, ok := ps.int(p); ok {
				if n < 0 {
					ps.invalid(p, "nbins must not be negative, got %d", n)
				}
				nl.nbins = n
			}
		case "steps":
			if s, ok := ps.floats(p); ok {
				steps, err := validateSteps(s)
				if err != nil {
					ps.invalid(p, "%v", err)
					continue
				}
				nl.setSteps(steps)
			}
		case "integer":
			if b, ok := ps.bool(p); ok {
				nl.integer = b
			}
		case "symmetric":
			if b, ok := ps.bool(p); ok {
				nl.symmetric = b
			}
		case "prune":
			if pr, ok := p.value.(Prune); !ok {
				ps.badType(p, "Prune")
			} else if pr < PruneNone || pr > PruneBoth {
				ps.invalid(p, "prune must be none, lower, upper, or both")
			} else {
				nl.prune = pr
			}
		case "min_n_ticks":
			if n, ok := ps.int(p); ok {
				if n < 1 {
					n = 1
				}
				nl.minNTicks = n
			}
		case "round_numbers":
			if b, ok := ps.bool(p); ok {
				nl.roundNumbers = b
			}
		default:
			ps.unknown(p)
		}
	}
	if err := ps.result(); err != nil {
		return err
	}
	*l = nl
	return nil
}

func (l *MaxNLocator) TickValues(vmin, vmax float64) ([]float64, error) {
	if l.symmetric {
		vmax = math.Max(math.Abs(vmin), math.Abs(vmax))
		vmin = -vmax
	}
	vmin, vmax = Nonsingular(vmin, vmax, 1e-13, 1e-14, true)
	locs := l.rawTicks(vmin, vmax)

	lo, hi := 0, len(locs)
	if l.prune == PruneLower || l.prune == PruneBoth {
		lo++
	}
	if l.prune == PruneUpper || l.prune == PruneBoth {
		hi--
	}
	if lo >= hi {
		return []float64{}, nil
	}
	locs = locs[lo:hi]
	return checkTicks(l, locs), nil
}

func (l *MaxNLocator) rawTicks(vmin, vmax float64) []float64 {
	nbins := float64(l.nbins)
	if l.nbins == 0 {
		nbins = autoBins
	}

	scale, offset := scaleRange(vmin, vmax, nbins, 100)
	_vmin, _vmax := vmin-offset, vmax-offset
	rawStep := (vmax - vmin) / nbins

	steps := make([]float64, 0, len(l.extended))
	for _, s := range l.extended {
		s *= scale
		// For steps > 1, keep only integer values.
		if l.integer && !(s < 1 || math.Abs(s-math.RoundToEven(s)) < 0.001) {
			continue
		}
		steps = append(steps, s)
	}

	istep := len(steps) - 1
	for i, s := range steps {
		if s >= rawStep {
			istep = i
			break
		}
	}

	if l.roundNumbers {
		// Take a larger step if needed so nbins steps starting
		// at a multiple of the step reach vmax.
		for ; istep < len(steps)-1; istep++ {
			step := steps[istep]
			bestVmin := floorDiv(_vmin, step) * step
			if bestVmin+float64(step*nbins) >= _vmax {
				break
			}
		}
	}

	// This is an upper limit; move to smaller steps while there are
	// too few visible ticks.
	var ticks []float64
	for i := istep; i >= 0; i-- {
		step := steps[i]
		if l.integer && math.Floor(_vmax)-math.Ceil(_vmin) >= float64(l.minNTicks-1) {
			step = math.Max(1, step)
		}
		bestVmin := floorDiv(_vmin, step) * step

		edge := newEdgeInteger(step, offset)
		low := edge.le(_vmin - bestVmin)
		high := edge.ge(_vmax - bestVmin)
		ticks = ticks[:0]
		nticks := 0
		for _, k := range arange(low, high+1, 1) {
			t := float64(k*step) + bestVmin
			if t <= _vmax && t >= _vmin {
				nticks++
			}
			ticks = append(ticks, t)
		}
		if nticks >= l.minNTicks {
			break
		}
	}

	for i := range ticks {
		ticks[i] += offset
	}
	return ticks
}
