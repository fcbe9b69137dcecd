// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import (
	"math"
	"strconv"
	"strings"
)

// AutoDecimals selects the number of decimals of a PercentFormatter
// from the visible range.
const AutoDecimals = -1

// PercentFormatter labels ticks as percentages of XMax.
type PercentFormatter struct {
	// XMax is the value that corresponds to 100%.
	XMax float64

	// Decimals is the number of decimal places, or AutoDecimals to
	// use just enough to tell apart ticks about a tenth of the
	// visible range apart.
	Decimals int

	// Symbol is appended to each label. It may be empty.
	Symbol string

	// TeX escapes TeX special characters in Symbol.
	TeX bool

	UnicodeMinus bool

	view Interval
}

// NewPercentFormatter returns a PercentFormatter with automatic
// decimals and a "%" symbol.
func NewPercentFormatter(xmax float64) *PercentFormatter {
	return &PercentFormatter{XMax: xmax, Decimals: AutoDecimals, Symbol: "%"}
}

func (f *PercentFormatter) SetLocs(view Interval, locs []float64) {
	f.view = view
}

func (f *PercentFormatter) Format(x float64, pos int) string {
	return fixMinus(f.FormatPct(x, f.view.Span()), f.UnicodeMinus)
}

// FormatPct formats x as a percentage, choosing automatic decimals for
// a visible range of width displayRange.
func (f *PercentFormatter) FormatPct(x, displayRange float64) string {
	x = f.convert(x)
	decimals := f.Decimals
	if decimals < 0 {
		decimals = 0
		if scaled := f.convert(displayRange); scaled > 0 {
			// Show enough decimals that
			// scaled > 0.5 * 10^(2 - decimals).
			d := math.Ceil(2 - log10(2*scaled))
			decimals = int(math.Max(0, math.Min(5, d)))
		}
	}
	return strconv.FormatFloat(x, 'f', decimals, 64) + f.symbol()
}

func (f *PercentFormatter) convert(x float64) float64 {
	return 100 * (x / f.XMax)
}

var texEscaper = strings.NewReplacer(
	`\`, `\\`, `#`, `\#`, `$`, `\$`, `%`, `\%`, `&`, `\&`,
	`~`, `\~`, `_`, `\_`, `^`, `\^`, `{`, `\{`, `}`, `\}`,
)

func (f *PercentFormatter) symbol() string {
	if f.TeX {
		return texEscaper.Replace(f.Symbol)
	}
	return f.Symbol
}
