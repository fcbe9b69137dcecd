// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import "math"

// AutoMinorLocator places minor ticks by evenly subdividing the
// spacing of the ticks chosen by Major. The major ticks must be
// evenly spaced.
type AutoMinorLocator struct {
	Major Locator

	// NDivs is the number of subdivisions of each major interval. If
	// 0, it is 5 when the major step is 1, 5 or 10 times a power of
	// ten and 4 otherwise.
	NDivs int
}

func (l *AutoMinorLocator) SetParams(params ...Param) error {
	ps, nl := newParamSet(l), *l
	for _, p := range params {
		switch p.name {
		case "ndivs":
			if n, ok := ps.int(p); ok {
				if n < 0 {
					ps.invalid(p, "ndivs must not be negative, got %d", n)
				}
				nl.NDivs = n
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

func (l *AutoMinorLocator) TickValues(vmin, vmax float64) ([]float64, error) {
	switch l.Major.(type) {
	case *LogLocator, *SymmetricalLogLocator, *LogitLocator:
		warnf("AutoMinorLocator does not work with a logarithmic major locator")
		return []float64{}, nil
	}
	if l.Major == nil {
		return []float64{}, nil
	}

	majors, err := l.Major.TickValues(vmin, vmax)
	if err != nil {
		return nil, err
	}
	if len(majors) < 2 {
		return []float64{}, nil
	}
	majorStep := majors[1] - majors[0]
	if !(majorStep > 0) {
		return []float64{}, nil
	}

	ndivs := l.NDivs
	if ndivs == 0 {
		switch math.RoundToEven(math.Pow(10, floorMod(log10(majorStep), 1))) {
		case 1, 5, 10:
			ndivs = 5
		default:
			ndivs = 4
		}
	}
	minorStep := majorStep / float64(ndivs)

	if vmax < vmin {
		vmin, vmax = vmax, vmin
	}
	t0 := majors[0]
	tmin := (floorDiv(vmin-t0, minorStep) + 1) * minorStep
	tmax := (floorDiv(vmax-t0, minorStep) + 1) * minorStep

	if err := checkCount(l, vmin, vmax, math.Ceil((tmax-tmin)/minorStep)); err != nil {
		return nil, err
	}
	locs := []float64{}
	for _, t := range arange(tmin, tmax, minorStep) {
		t += t0
		// Drop positions that coincide with a major tick.
		if math.Abs(floorMod(t-t0, majorStep)) > minorStep/10 {
			locs = append(locs, t)
		}
	}
	return checkTicks(l, locs), nil
}
