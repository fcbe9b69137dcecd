// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotticker places and labels the ticks of gonum plot axes
// using the locators and formatters of package ticker.
package plotticker

import (
	"github.com/aclements/go-ticks/ticker"
	"gonum.org/v1/plot"
)

// Ticker implements plot.Ticker with a ticker.Axis.
//
// gonum plots treat ticks with empty labels as minor ticks, so a major
// tick whose formatter returns an empty label is drawn as a minor tick.
type Ticker struct {
	Axis *ticker.Axis
}

var _ plot.Ticker = Ticker{}

// New returns a Ticker for axis.
func New(axis *ticker.Axis) Ticker {
	return Ticker{axis}
}

// Auto returns a Ticker with automatically placed major ticks labeled
// by a ScalarFormatter and unlabeled minor ticks between them.
func Auto() Ticker {
	a := ticker.NewAxis()
	a.Minor = &ticker.AutoMinorLocator{Major: a.Major}
	return Ticker{a}
}

// Log returns a Ticker for a logarithmic axis in the given base.
func Log(base float64) Ticker {
	return Ticker{&ticker.Axis{
		Major:          ticker.NewLogLocator(base),
		Minor:          &ticker.LogLocator{Base: base, SubsMode: ticker.SubsAuto},
		MajorFormatter: ticker.NewLogFormatter(base, false),
	}}
}

// Ticks returns the ticks between min and max. If the locators fail,
// for example because a logarithmic axis includes 0, it logs the error
// to ticker.Warnings and returns no ticks.
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	t.Axis.SetView(min, max)
	ticks, err := t.Axis.Ticks()
	if err != nil {
		ticker.Warnings.Printf("plotticker: %v", err)
		return nil
	}
	out := make([]plot.Tick, 0, len(ticks))
	for _, tk := range ticks {
		pt := plot.Tick{Value: tk.Value}
		if !tk.Minor {
			pt.Label = tk.Label
		}
		out = append(out, pt)
	}
	return out
}

// OffsetString returns the offset text of the last Ticks call, to be
// shown in the axis label.
func (t Ticker) OffsetString() string {
	return t.Axis.OffsetString()
}
