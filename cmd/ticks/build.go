// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-ticks/scale"
	"github.com/aclements/go-ticks/ticker"
)

// options holds the command-line configuration of the axis.
type options struct {
	locator, formatter string

	// Locator parameters.
	nbins     int
	steps     []float64
	integer   bool
	symmetric bool
	prune     string
	minNTicks int
	numTicks  int
	base      float64
	offset    float64
	subs      []float64
	linThresh float64
	locs      []float64
	minor     bool
	ndivs     int

	// Formatter parameters.
	format        string
	xmax          float64
	decimals      int
	symbol        string
	unit          string
	places        int
	unicodeMinus  bool
	mathText      bool
	labelOnlyBase bool

	ruler int

	// changed reports whether a flag was set on the command line.
	changed func(name string) bool
}

// baseOr returns the --base flag, or def if it was not set.
func (o *options) baseOr(def float64) float64 {
	if o.changed("base") {
		return o.base
	}
	return def
}

func (o *options) maxnParams() ([]ticker.Param, error) {
	var ps []ticker.Param
	if o.changed("nbins") {
		ps = append(ps, ticker.NBins(o.nbins))
	}
	if o.changed("steps") {
		ps = append(ps, ticker.Steps(o.steps...))
	}
	if o.changed("integer") {
		ps = append(ps, ticker.IntegerTicks(o.integer))
	}
	if o.changed("symmetric") {
		ps = append(ps, ticker.Symmetric(o.symmetric))
	}
	if o.changed("prune") {
		p, err := ticker.ParsePrune(o.prune)
		if err != nil {
			return nil, err
		}
		ps = append(ps, ticker.PruneTicks(p))
	}
	if o.changed("min-n-ticks") {
		ps = append(ps, ticker.MinNTicks(o.minNTicks))
	}
	return ps, nil
}

func (o *options) logParams() []ticker.Param {
	var ps []ticker.Param
	if o.changed("numticks") {
		ps = append(ps, ticker.NumTicks(o.numTicks))
	}
	if o.changed("subs") {
		ps = append(ps, ticker.Subs(o.subs...))
	}
	return ps
}

func (o *options) majorLocator() (ticker.Locator, error) {
	switch o.locator {
	case "auto", "maxn":
		ps, err := o.maxnParams()
		if err != nil {
			return nil, err
		}
		if o.locator == "auto" {
			l := ticker.AutoLocator()
			return l, l.SetParams(ps...)
		}
		nbins := 10
		if o.changed("nbins") {
			nbins = o.nbins
		}
		return ticker.NewMaxNLocator(nbins, ps...)
	case "linear":
		l := ticker.NewLinearLocator(0)
		if o.changed("numticks") {
			return l, l.SetParams(ticker.NumTicks(o.numTicks))
		}
		return l, nil
	case "multiple":
		l := &ticker.MultipleLocator{Base: 1}
		return l, l.SetParams(ticker.Base(o.baseOr(1)))
	case "index":
		l := &ticker.IndexLocator{Base: 1}
		return l, l.SetParams(ticker.Base(o.baseOr(1)), ticker.Offset(o.offset))
	case "log":
		l := ticker.NewLogLocator(10)
		ps := append([]ticker.Param{ticker.Base(o.baseOr(10))}, o.logParams()...)
		return l, l.SetParams(ps...)
	case "symlog":
		l := ticker.NewSymmetricalLogLocator(10, 1)
		ps := append([]ticker.Param{ticker.Base(o.baseOr(10)), ticker.LinThresh(o.linThresh)}, o.logParams()...)
		return l, l.SetParams(ps...)
	case "logit":
		return &ticker.LogitLocator{}, nil
	case "fixed":
		l := &ticker.FixedLocator{Locs: o.locs}
		if o.changed("nbins") {
			return l, l.SetParams(ticker.NBins(o.nbins))
		}
		return l, nil
	case "null":
		return &ticker.NullLocator{}, nil
	}
	return nil, fmt.Errorf("unknown locator %q", o.locator)
}

func (o *options) minorLocator(major ticker.Locator) ticker.Locator {
	if !o.minor {
		return nil
	}
	switch major := major.(type) {
	case *ticker.LogLocator:
		return &ticker.LogLocator{Base: major.Base, SubsMode: ticker.SubsAuto}
	case *ticker.SymmetricalLogLocator:
		return &ticker.SymmetricalLogLocator{Base: major.Base, LinThresh: major.LinThresh, NumTicks: major.NumTicks}
	case *ticker.LogitLocator:
		return &ticker.LogitLocator{Minor: true}
	case *ticker.NullLocator:
		return nil
	}
	return &ticker.AutoMinorLocator{Major: major, NDivs: o.ndivs}
}

func (o *options) majorFormatter() (ticker.Formatter, error) {
	base := o.baseOr(10)
	switch o.formatter {
	case "scalar":
		f := ticker.NewScalarFormatter()
		f.UseMathText = o.mathText
		f.UnicodeMinus = o.unicodeMinus
		return f, nil
	case "log":
		f := ticker.NewLogFormatter(base, o.labelOnlyBase)
		f.UnicodeMinus = o.unicodeMinus
		return f, nil
	case "logexp":
		f := ticker.NewLogFormatterExponent(base, o.labelOnlyBase)
		f.UnicodeMinus = o.unicodeMinus
		return f, nil
	case "logmath":
		f := ticker.NewLogFormatterMathtext(base, o.labelOnlyBase)
		f.UnicodeMinus = o.unicodeMinus
		return f, nil
	case "logsci":
		f := ticker.NewLogFormatterSciNotation(base, o.labelOnlyBase)
		f.UnicodeMinus = o.unicodeMinus
		return f, nil
	case "percent":
		return &ticker.PercentFormatter{
			XMax:         o.xmax,
			Decimals:     o.decimals,
			Symbol:       o.symbol,
			UnicodeMinus: o.unicodeMinus,
		}, nil
	case "eng":
		f := ticker.NewEngFormatter(o.unit)
		f.Places = o.places
		f.UnicodeMinus = o.unicodeMinus
		return f, nil
	case "printf":
		return ticker.NewFormatStrFormatter(o.format)
	case "format":
		return ticker.NewStrMethodFormatter(o.format)
	case "null":
		return ticker.NullFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown formatter %q", o.formatter)
}

// axis builds the axis described by o.
func (o *options) axis() (*ticker.Axis, error) {
	major, err := o.majorLocator()
	if err != nil {
		return nil, err
	}
	f, err := o.majorFormatter()
	if err != nil {
		return nil, err
	}
	return &ticker.Axis{
		Major:          major,
		Minor:          o.minorLocator(major),
		MajorFormatter: f,
	}, nil
}

// rulerScale returns the scale used to position ticks on the ruler.
func (o *options) rulerScale(view ticker.Interval) (scale.Interface, error) {
	if o.locator == "log" {
		return scale.NewLog([]float64{view.Lo, view.Hi}, o.baseOr(10))
	}
	return scale.NewLinear([]float64{view.Lo, view.Hi}), nil
}
