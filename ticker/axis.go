// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import "math"

// A Tick is a labeled tick position.
type Tick struct {
	Value float64
	Label string
	Minor bool
}

// An Axis runs a locator and a formatter over a view interval, for
// both major and minor ticks. Any of its fields may be nil.
type Axis struct {
	Major, Minor                   Locator
	MajorFormatter, MinorFormatter Formatter

	view Interval
}

// NewAxis returns an Axis that places major ticks with AutoLocator and
// labels them with a ScalarFormatter. It has no minor ticks.
func NewAxis() *Axis {
	return &Axis{Major: AutoLocator(), MajorFormatter: NewScalarFormatter()}
}

// SetView sets the view interval, widening it if it is empty. A
// reversed interval stays reversed.
func (a *Axis) SetView(lo, hi float64) {
	lo, hi = Nonsingular(lo, hi, 0.001, 1e-15, false)
	a.view = Interval{lo, hi}
}

// View returns the view interval.
func (a *Axis) View() Interval {
	return a.view
}

// Ticks returns the major ticks followed by the minor ticks in the
// current view. Minor ticks at major tick positions are omitted.
func (a *Axis) Ticks() ([]Tick, error) {
	var ticks []Tick
	major, err := a.locate(a.Major)
	if err != nil {
		return nil, err
	}
	ticks = label(ticks, major, a.view, a.MajorFormatter, false)

	minor, err := a.locate(a.Minor)
	if err != nil {
		return nil, err
	}
	minor = removeOverlaps(minor, major)
	return label(ticks, minor, a.view, a.MinorFormatter, true), nil
}

// OffsetString returns the offset text of the major formatter, if it
// has one.
func (a *Axis) OffsetString() string {
	if f, ok := a.MajorFormatter.(OffsetFormatter); ok {
		return f.OffsetString()
	}
	return ""
}

func (a *Axis) locate(l Locator) ([]float64, error) {
	if l == nil {
		return nil, nil
	}
	return l.TickValues(a.view.Lo, a.view.Hi)
}

func label(ticks []Tick, locs []float64, view Interval, f Formatter, minor bool) []Tick {
	if f != nil {
		if ls, ok := f.(LocsSetter); ok {
			ls.SetLocs(view, locs)
		}
	}
	for i, x := range locs {
		t := Tick{Value: x, Minor: minor}
		if f != nil {
			t.Label = f.Format(x, i)
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// removeOverlaps returns the elements of minor that are not within
// 1e-5 of the major tick spacing of any element of major.
func removeOverlaps(minor, major []float64) []float64 {
	if len(major) == 0 {
		return minor
	}
	tol := 1e-5
	if len(major) >= 2 {
		tol *= math.Abs(major[1] - major[0])
	}
	out := minor[:0:0]
	for _, x := range minor {
		dup := false
		for _, m := range major {
			if math.Abs(x-m) <= tol {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, x)
		}
	}
	return out
}
