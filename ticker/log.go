// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/scale"
)

// A DomainError reports an interval on which a locator's transform is
// undefined, such as a logarithmic interval that touches zero.
type DomainError struct {
	Vmin, Vmax float64
	Err        scale.RangeErr
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("interval [%g, %g]: %s", e.Vmin, e.Vmax, string(e.Err))
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// SubsMode selects how a LogLocator picks mantissas within a decade.
type SubsMode int

const (
	// SubsExplicit uses LogLocator.Subs.
	SubsExplicit SubsMode = iota
	// SubsAuto uses 2 through base-1, for minor ticks. When the
	// view spans more than 10 decades or base < 3, there are no
	// ticks at all.
	SubsAuto
	// SubsAll uses 1 through base-1. When the view spans more than
	// 10 decades or base < 3, only powers of the base are used.
	SubsAll
)

// autoLogTicks is the tick count used when NumTicks is 0.
const autoLogTicks = 9

// LogLocator places ticks at sub*Base^k for each mantissa sub and
// integer k, thinning the decades when there would be more than
// NumTicks of them.
type LogLocator struct {
	Base     float64
	Subs     []float64
	SubsMode SubsMode

	// NumDecs is retained for compatibility with configurations
	// that set it. It does not affect the ticks.
	NumDecs int

	// NumTicks bounds the number of major ticks, or 0 for
	// automatic.
	NumTicks int
}

// NewLogLocator returns a LogLocator in the given base with ticks at
// powers of the base.
func NewLogLocator(base float64) *LogLocator {
	return &LogLocator{Base: base, Subs: []float64{1}, NumDecs: 4}
}

func (l *LogLocator) SetParams(params ...Param) error {
	ps, nl := newParamSet(l), *l
	for _, p := range params {
		switch p.name {
		case "base":
			if b, ok := ps.float(p); ok {
				if b <= 1 {
					ps.invalid(p, "log base must be greater than 1, got %v", b)
				}
				nl.Base = b
			}
		case "subs":
			if s, ok := ps.floats(p); ok {
				nl.Subs = append([]float64(nil), s...)
				nl.SubsMode = SubsExplicit
			}
		case "subs_mode":
			if m, ok := p.value.(SubsMode); !ok {
				ps.badType(p, "SubsMode")
			} else {
				nl.SubsMode = m
			}
		case "numdecs":
			if n, ok := ps.int(p); ok {
				nl.NumDecs = n
			}
		case "numticks":
			if n, ok := ps.int(p); ok {
				if n < 0 {
					ps.invalid(p, "numticks must not be negative, got %d", n)
				}
				nl.NumTicks = n
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

func (l *LogLocator) TickValues(vmin, vmax float64) ([]float64, error) {
	if vmax < vmin {
		vmin, vmax = vmax, vmin
	}
	if !(vmin > 0) || !isFinite(vmin) || !isFinite(vmax) {
		return nil, &DomainError{vmin, vmax, scale.RangeErr("log scale range cannot include 0")}
	}

	numticks := l.NumTicks
	if numticks == 0 {
		numticks = autoLogTicks
	}
	b := l.Base

	logVmin, logVmax := logb(vmin, b), logb(vmax, b)
	numdec := math.Floor(logVmax) - math.Ceil(logVmin)

	var subs []float64
	switch l.SubsMode {
	case SubsExplicit:
		subs = l.Subs
	case SubsAuto, SubsAll:
		first := 2.0
		if l.SubsMode == SubsAll {
			first = 1
		}
		if numdec > 10 || b < 3 {
			if l.SubsMode == SubsAuto {
				return []float64{}, nil
			}
			subs = []float64{1}
		} else {
			subs = arange(first, b, 1)
		}
	}

	stride := 1.0
	for floorDiv(numdec, stride)+1 > float64(numticks) {
		stride++
	}

	haveSubs := len(subs) > 1 || (len(subs) == 1 && subs[0] != 1)

	decades := arange(math.Floor(logVmin)-stride, math.Ceil(logVmax)+2*stride, stride)
	ticks := []float64{}
	if haveSubs {
		// Sub-ticks are only meaningful when every decade has
		// a major tick.
		if stride == 1 {
			for _, d := range decades {
				decadeStart := math.Pow(b, d)
				for _, s := range subs {
					ticks = append(ticks, s*decadeStart)
				}
			}
		}
	} else {
		for _, d := range decades {
			ticks = append(ticks, math.Pow(b, d))
		}
	}
	return checkTicks(l, ticks), nil
}

// SymmetricalLogLocator places ticks for a symmetric log scale, which
// is logarithmic outside (-LinThresh, LinThresh) on both sides of
// zero and linear inside it. The linear region gets a single tick at
// 0.
type SymmetricalLogLocator struct {
	Base, LinThresh float64

	// Subs are the mantissas of ticks in each decade. If nil,
	// 2 through Base-1 are used.
	Subs []float64

	// NumTicks bounds the number of decades that get ticks.
	NumTicks int
}

// NewSymmetricalLogLocator returns a SymmetricalLogLocator with ticks
// at powers of base outside (-linthresh, linthresh).
func NewSymmetricalLogLocator(base, linthresh float64) *SymmetricalLogLocator {
	return &SymmetricalLogLocator{Base: base, LinThresh: linthresh, Subs: []float64{1}, NumTicks: 15}
}

func (l *SymmetricalLogLocator) SetParams(params ...Param) error {
	ps, nl := newParamSet(l), *l
	for _, p := range params {
		switch p.name {
		case "base":
			if b, ok := ps.float(p); ok {
				if b <= 1 {
					ps.invalid(p, "log base must be greater than 1, got %v", b)
				}
				nl.Base = b
			}
		case "linthresh":
			if t, ok := ps.float(p); ok {
				if t <= 0 {
					ps.invalid(p, "linthresh must be positive, got %v", t)
				}
				nl.LinThresh = t
			}
		case "subs":
			if s, ok := ps.floats(p); ok {
				nl.Subs = append([]float64(nil), s...)
			}
		case "numticks":
			if n, ok := ps.int(p); ok {
				if n < 2 {
					ps.invalid(p, "numticks must be at least 2, got %d", n)
				}
				nl.NumTicks = n
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

func (l *SymmetricalLogLocator) TickValues(vmin, vmax float64) ([]float64, error) {
	b, t := l.Base, l.LinThresh
	if vmax < vmin {
		vmin, vmax = vmax, vmin
	}

	// The view is divided into up to three sections:
	//
	//   <======== -t ==0== t ========>
	//   aaaaaaaaa    bbbbb   ccccccccc
	//
	// a) and c) get ticks at integral log positions, thinned if
	// there are more than NumTicks of them. b) gets a single tick
	// at 0. A view entirely within (-t, t) just gets its ends.
	var hasA, hasB, hasC bool
	switch {
	case vmin < -t:
		hasA = true
		if vmax > -t {
			hasB = true
			hasC = vmax > t
		}
	case vmin < 0:
		if vmax <= 0 {
			return []float64{vmin, vmax}, nil
		}
		hasB = true
		hasC = vmax > t
	case vmin < t:
		if vmax <= t {
			return []float64{vmin, vmax}, nil
		}
		hasB, hasC = true, true
	default:
		hasC = true
	}

	logRange := func(lo, hi float64) [2]float64 {
		return [2]float64{math.Floor(logb(lo, b)), math.Ceil(logb(hi, b))}
	}

	var aRange, cRange [2]float64
	if hasA {
		if hasB {
			aRange = logRange(t, -vmin+1)
		} else {
			aRange = logRange(-vmax, -vmin+1)
		}
	}
	if hasC {
		if hasB {
			cRange = logRange(t, vmax+1)
		} else {
			cRange = logRange(vmin, vmax+1)
		}
	}

	total := (aRange[1] - aRange[0]) + (cRange[1] - cRange[0])
	if hasB {
		total++
	}
	stride := math.Max(math.Floor(total/float64(l.NumTicks-1)), 1)

	var decades []float64
	if hasA {
		exps := arange(aRange[0], aRange[1], stride)
		for i := len(exps) - 1; i >= 0; i-- {
			decades = append(decades, -math.Pow(b, exps[i]))
		}
	}
	if hasB {
		decades = append(decades, 0)
	}
	if hasC {
		for _, e := range arange(cRange[0], cRange[1], stride) {
			decades = append(decades, math.Pow(b, e))
		}
	}

	subs := l.Subs
	if subs == nil {
		subs = arange(2, b, 1)
	}
	if len(subs) == 0 || (len(subs) == 1 && subs[0] == 1) {
		return checkTicks(l, decades), nil
	}

	ticks := []float64{}
	for _, d := range decades {
		if d == 0 {
			ticks = append(ticks, d)
			continue
		}
		for _, s := range subs {
			ticks = append(ticks, s*d)
		}
	}
	// Negative decades scale their subs away from zero.
	sort.Float64s(ticks)
	return checkTicks(l, ticks), nil
}

// LogitLocator places ticks for a logit scale, which maps (0, 1) onto
// the real line: at 10^-k near 0, 0.5 in the middle, and 1-10^-k near
// 1. With Minor set, it places the 2..9 multiples between those.
type LogitLocator struct {
	Minor bool
}

func (l *LogitLocator) SetParams(params ...Param) error {
	ps, nl := newParamSet(l), *l
	for _, p := range params {
		switch p.name {
		case "minor":
			if b, ok := ps.bool(p); ok {
				nl.Minor = b
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

// logitMinPos stands in for the smallest positive data value when the
// view extends past (0, 1).
const logitMinPos = 1e-7

func logitNonsingular(vmin, vmax float64) (float64, float64) {
	if !isFinite(vmin) || !isFinite(vmax) {
		return logitMinPos, 1 - logitMinPos
	}
	if vmin > vmax {
		vmin, vmax = vmax, vmin
	}
	if vmin <= 0 {
		vmin = logitMinPos
	}
	if vmax >= 1 {
		vmax = 1 - logitMinPos
	}
	if vmin == vmax {
		return 0.1 * vmin, 1 - 0.1*vmin
	}
	return vmin, vmax
}

func (l *LogitLocator) TickValues(vmin, vmax float64) ([]float64, error) {
	vmin, vmax = logitNonsingular(vmin, vmax)
	lmin := log10(vmin / (1 - vmin))
	lmax := log10(vmax / (1 - vmax))
	decadeMin, decadeMax := math.Floor(lmin), math.Ceil(lmax)

	ticks := []float64{}
	if !l.Minor {
		if decadeMin <= -1 {
			for _, e := range arange(decadeMin, math.Min(0, decadeMax+1), 1) {
				ticks = append(ticks, math.Pow(10, e))
			}
		}
		if decadeMin <= 0 && decadeMax >= 0 {
			ticks = append(ticks, 0.5)
		}
		if decadeMax >= 1 {
			exps := arange(math.Max(1, decadeMin), decadeMax+1, 1)
			for i := len(exps) - 1; i >= 0; i-- {
				ticks = append(ticks, 1-math.Pow(10, -exps[i]))
			}
		}
	} else {
		if decadeMin <= -2 {
			for _, e := range arange(decadeMin, math.Min(-1, decadeMax), 1) {
				for k := 2.0; k < 10; k++ {
					ticks = append(ticks, k*math.Pow(10, e))
				}
			}
		}
		if decadeMin <= 0 && decadeMax >= 0 {
			ticks = append(ticks, 0.2, 0.3, 0.4, 0.6, 0.7, 0.8)
		}
		if decadeMax >= 2 {
			exps := arange(math.Max(2, decadeMin), decadeMax+1, 1)
			for i := len(exps) - 1; i >= 0; i-- {
				for k := 9.0; k >= 2; k-- {
					ticks = append(ticks, 1-k*math.Pow(10, -exps[i]))
				}
			}
		}
	}
	sort.Float64s(ticks)
	return checkTicks(l, ticks), nil
}
