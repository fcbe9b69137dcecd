// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
)

// A Locator chooses tick positions for a view interval.
type Locator interface {
	// TickValues returns tick positions for the interval between
	// vmin and vmax in ascending order. The order of vmin and vmax
	// does not matter. The ticks may extend past the interval.
	TickValues(vmin, vmax float64) ([]float64, error)

	// SetParams validates params and applies them all, or none of
	// them if any is rejected.
	SetParams(params ...Param) error
}

// MaxTicks is the number of ticks at which a locator logs a warning.
const MaxTicks = 1000

func checkTicks(l Locator, locs []float64) []float64 {
	if len(locs) >= MaxTicks {
		warnf("%T generated %d ticks; exceeds MaxTicks (%d)", l, len(locs), MaxTicks)
	}
	return locs
}

// ErrTooManyTicks is reported when a locator's configuration would
// place more than MaxTickCount ticks on a view.
var ErrTooManyTicks = errors.New("too many ticks")

// MaxTickCount is the most ticks a locator will generate.
const MaxTickCount = 1000 * MaxTicks

// checkCount fails if n, the number of ticks l would generate between
// vmin and vmax, is not finite or exceeds MaxTickCount.
func checkCount(l Locator, vmin, vmax, n float64) error {
	if n <= MaxTickCount {
		return nil
	}
	return fmt.Errorf("%T on [%v, %v] would generate %v ticks: %w", l, vmin, vmax, n, ErrTooManyTicks)
}

// NullLocator places no ticks.
type NullLocator struct{}

func (l *NullLocator) TickValues(vmin, vmax float64) ([]float64, error) {
	return []float64{}, nil
}

// SetParams logs a warning, since NullLocator has no parameters.
func (l *NullLocator) SetParams(params ...Param) error {
	warnf("SetParams not defined for locator of type %T", l)
	return nil
}

// FixedLocator places ticks at a fixed set of positions, regardless
// of the view.
type FixedLocator struct {
	Locs []float64

	// NBins, if non-zero, limits the number of ticks to about
	// NBins+1 by keeping every n'th position. Values below 2 act as
	// 2.
	NBins int
}

func (l *FixedLocator) TickValues(vmin, vmax float64) ([]float64, error) {
	if l.NBins == 0 {
		return checkTicks(l, append([]float64(nil), l.Locs...)), nil
	}
	nbins := l.NBins
	if nbins < 2 {
		nbins = 2
	}
	step := int(math.Ceil(float64(len(l.Locs)) / float64(nbins)))
	if step < 1 {
		step = 1
	}

	// Of the step possible phases, keep the one that gets closest
	// to zero.
	ticks := strided(l.Locs, 0, step)
	for i := 1; i < step; i++ {
		ticks1 := strided(l.Locs, i, step)
		if minAbs(ticks1) < minAbs(ticks) {
			ticks = ticks1
		}
	}
	return checkTicks(l, ticks), nil
}

func strided(xs []float64, start, step int) []float64 {
	out := []float64{}
	for i := start; i < len(xs); i += step {
		out = append(out, xs[i])
	}
	return out
}

func minAbs(xs []float64) float64 {
	m := math.Inf(1)
	for _, x := range xs {
		m = math.Min(m, math.Abs(x))
	}
	return m
}

func (l *FixedLocator) SetParams(params ...Param) error {
	ps, nl := newParamSet(l), *l
	for _, p := range params {
		switch p.name {
		case "nbins":
			if n, ok := ps.int(p); ok {
				nl.NBins = n
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

// IndexLocator places ticks at every Base'th index starting at
// Offset past the beginning of the view. It is intended for axes whose
// data are plotted at integer indexes.
type IndexLocator struct {
	Base, Offset float64
}

func (l *IndexLocator) TickValues(vmin, vmax float64) ([]float64, error) {
	if vmax < vmin {
		vmin, vmax = vmax, vmin
	}
	if !(l.Base > 0) {
		return []float64{}, nil
	}
	start, stop := vmin+l.Offset, vmax+1
	if err := checkCount(l, vmin, vmax, math.Ceil((stop-start)/l.Base)); err != nil {
		return nil, err
	}
	return checkTicks(l, arange(start, stop, l.Base)), nil
}

func (l *IndexLocator) SetParams(params ...Param) error {
	ps, nl := newParamSet(l), *l
	for _, p := range params {
		switch p.name {
		case "base":
			if b, ok := ps.float(p); ok {
				if b <= 0 {
					ps.invalid(p, "base must be positive, got %v", b)
				}
				nl.Base = b
			}
		case "offset":
			if o, ok := ps.float(p); ok {
				nl.Offset = o
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

// LinearLocator places a fixed number of evenly spaced ticks that
// include both ends of the view.
type LinearLocator struct {
	// NumTicks is the number of ticks, or 0 for the default of
	// 11. A single tick is placed in the middle of the view.
	NumTicks int

	// Presets maps exact (ascending) intervals to the ticks to use
	// for them.
	Presets map[Interval][]float64
}

// NewLinearLocator returns a LinearLocator that places numTicks ticks.
func NewLinearLocator(numTicks int) *LinearLocator {
	return &LinearLocator{NumTicks: numTicks}
}

const defaultLinearTicks = 11

func (l *LinearLocator) TickValues(vmin, vmax float64) ([]float64, error) {
	vmin, vmax = Nonsingular(vmin, vmax, 0.05, 1e-15, true)
	if ticks, ok := l.Presets[Interval{vmin, vmax}]; ok {
		return append([]float64(nil), ticks...), nil
	}

	n := l.NumTicks
	if n <= 0 {
		n = defaultLinearTicks
	}
	if n == 1 {
		return []float64{(vmin + vmax) / 2}, nil
	}
	return checkTicks(l, vec.Linspace(vmin, vmax, n)), nil
}

func (l *LinearLocator) SetParams(params ...Param) error {
	ps, nl := newParamSet(l), *l
	for _, p := range params {
		switch p.name {
		case "numticks":
			if n, ok := ps.int(p); ok {
				if n < 0 {
					ps.invalid(p, "numticks must not be negative, got %d", n)
				}
				nl.NumTicks = n
			}
		case "presets":
			if m, ok := p.value.(map[Interval][]float64); ok {
				nl.Presets = m
			} else {
				ps.badType(p, "map[Interval][]float64")
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

// MultipleLocator places a tick at every integer multiple of Base in
// the view, plus one more multiple on either side.
type MultipleLocator struct {
	Base float64
}

func (l *MultipleLocator) TickValues(vmin, vmax float64) ([]float64, error) {
	if vmax < vmin {
		vmin, vmax = vmax, vmin
	}
	if !(l.Base > 0) {
		return []float64{}, nil
	}
	base := l.Base
	vmin = multiple(base).ge(vmin)
	n := floorDiv(vmax-vmin+float64(0.001*base), base)
	if err := checkCount(l, vmin, vmax, n+3); err != nil {
		return nil, err
	}
	locs := make([]float64, 0, int(n)+3)
	for _, i := range arange(0, n+3, 1) {
		locs = append(locs, vmin-base+float64(i*base))
	}
	return checkTicks(l, locs), nil
}

func (l *MultipleLocator) SetParams(params ...Param) error {
	ps, nl := newParamSet(l), *l
	for _, p := range params {
		switch p.name {
		case "base":
			if b, ok := ps.float(p); ok {
				if b <= 0 {
					ps.invalid(p, "base must be positive, got %v", b)
				}
				nl.Base = b
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
