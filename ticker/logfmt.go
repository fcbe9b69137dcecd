// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/vec"
)

// Sublabels is the set of mantissas whose ticks a log formatter
// labels. A tick at m*base^k is labeled if round(m) is in the set.
type Sublabels []float64

// Contains reports whether c is in s.
func (s Sublabels) Contains(c float64) bool {
	for _, x := range s {
		if x == c {
			return true
		}
	}
	return false
}

// ComputeSublabels returns the mantissas to label for a view of a log
// axis. With more than 3 decades visible only powers of the base are
// labeled. Fewer visible decades get progressively more mantissas:
// in base 10, {1, 3, 10} for 2 to 3 decades, {1, 2, 5, 10} for 1 to 2
// and {1, 2, 3, 6, 10} for less than one.
func ComputeSublabels(view Interval, base float64) Sublabels {
	vmin, vmax := view.Sorted()
	if vmin <= 0 {
		return Sublabels{1}
	}
	numdec := math.Abs(logb(vmax, base) - logb(vmin, base))
	if numdec > 3 {
		return Sublabels{1}
	}
	var s Sublabels
	for _, e := range vec.Linspace(0, 1, 4-int(numdec)+1) {
		c := math.RoundToEven(math.Pow(base, e))
		if !s.Contains(c) {
			s = append(s, c)
		}
	}
	return s
}

// PPrintVal formats x compactly, with a precision chosen from domain,
// the width of the visible range. Integers below 1e4 are printed
// exactly; otherwise the number of digits shrinks as domain grows,
// with exponential notation ("3.142e-5") for very narrow or very wide
// domains. Trailing zeros are dropped.
func PPrintVal(x, domain float64) string {
	if math.Abs(x) < 1e4 && x == math.Trunc(x) {
		return strconv.FormatInt(int64(x), 10)
	}

	var verb string
	switch d := domain; {
	case d < 1e-2:
		verb = "%1.3e"
	case d < 1e-1:
		verb = "%1.3f"
	case d > 1e5:
		verb = "%1.1e"
	case d > 10:
		verb = "%1.1f"
	case d > 1:
		verb = "%1.2f"
	default:
		verb = "%1.3f"
	}
	s := fmt.Sprintf(verb, x)

	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mantissa := strings.TrimRight(strings.TrimRight(s[:i], "0"), ".")
		exp, _ := strconv.Atoi(s[i+1:])
		if exp != 0 {
			return fmt.Sprintf("%se%d", mantissa, exp)
		}
		return mantissa
	}
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}

// LogFormatter labels ticks of a log axis with their values.
//
// SetLocs chooses which mantissas to label from the number of visible
// decades; ticks at other mantissas get empty labels.
type LogFormatter struct {
	Base float64

	// LabelOnlyBase restricts labels to integer powers of Base.
	LabelOnlyBase bool

	// Sublabels is the set of labeled mantissas. SetLocs replaces
	// it.
	Sublabels Sublabels

	UnicodeMinus bool

	view Interval
}

// NewLogFormatter returns a LogFormatter in the given base that
// labels powers of the base until SetLocs is called.
func NewLogFormatter(base float64, labelOnlyBase bool) *LogFormatter {
	return &LogFormatter{Base: base, LabelOnlyBase: labelOnlyBase, Sublabels: Sublabels{1}}
}

func (f *LogFormatter) SetLocs(view Interval, locs []float64) {
	f.view = view
	f.Sublabels = ComputeSublabels(view, f.Base)
}

// PPrintVal formats x compactly for a visible range of width domain.
func (f *LogFormatter) PPrintVal(x, domain float64) string {
	return PPrintVal(x, domain)
}

// decompose splits |x| into a mantissa rounded to an integer and an
// exponent. If x is a power of the base, decade is true.
func decompose(x, base float64) (fx, exponent, coeff float64, decade bool) {
	fx = logb(math.Abs(x), base)
	decade = isCloseToInt(fx)
	if decade {
		exponent = math.RoundToEven(fx)
	} else {
		exponent = math.Floor(fx)
	}
	coeff = math.RoundToEven(math.Abs(x) / math.Pow(base, exponent))
	return
}

func (f *LogFormatter) Format(x float64, pos int) string {
	return f.format(x, f.LabelOnlyBase)
}

func (f *LogFormatter) format(x float64, labelOnlyBase bool) string {
	if x == 0 {
		return "0"
	}
	_, _, coeff, decade := decompose(x, f.Base)
	if !f.Sublabels.Contains(coeff) {
		return ""
	}
	if labelOnlyBase && !decade {
		return ""
	}
	vmin, vmax := Nonsingular(f.view.Lo, f.view.Hi, 0.05, 1e-15, true)
	s := PPrintVal(math.Abs(x), vmax-vmin)
	if x < 0 {
		s = "-" + s
	}
	return fixMinus(s, f.UnicodeMinus)
}

// FormatData formats x for display outside of tick labels, ignoring
// LabelOnlyBase.
func (f *LogFormatter) FormatData(x float64) string {
	return f.format(x, false)
}

// FormatDataShort formats x compactly in a fixed-width field.
func (f *LogFormatter) FormatDataShort(x float64) string {
	return fmt.Sprintf("%-12s", formatG(x, 6))
}

// LogFormatterExponent labels ticks of a log axis with the exponent
// of the base: a tick at 1000 in base 10 is labeled "3".
type LogFormatterExponent struct {
	LogFormatter
}

// NewLogFormatterExponent returns a LogFormatterExponent in the given
// base.
func NewLogFormatterExponent(base float64, labelOnlyBase bool) *LogFormatterExponent {
	return &LogFormatterExponent{*NewLogFormatter(base, labelOnlyBase)}
}

func (f *LogFormatterExponent) Format(x float64, pos int) string {
	if x == 0 {
		return "0"
	}
	b := f.Base
	fx := logb(math.Abs(x), b)
	var s string
	switch {
	case f.LabelOnlyBase && !isCloseToInt(fx):
		s = ""
	case math.Abs(fx) > 10000, math.Abs(fx) < 1:
		s = formatG(fx, 0)
	default:
		vmin, vmax := Nonsingular(f.view.Lo, f.view.Hi, 0.05, 1e-15, true)
		s = PPrintVal(fx, logb(math.Abs(vmax-vmin), b))
	}
	if x < 0 {
		s = "-" + s
	}
	return fixMinus(s, f.UnicodeMinus)
}

// LogFormatterMathtext labels ticks of a log axis as math text powers
// of the base, such as "${10^{3}}$". Ticks between powers of the base
// get a fractional exponent.
type LogFormatterMathtext struct {
	LogFormatter

	sciNotation bool
}

// NewLogFormatterMathtext returns a LogFormatterMathtext in the given
// base.
func NewLogFormatterMathtext(base float64, labelOnlyBase bool) *LogFormatterMathtext {
	return &LogFormatterMathtext{LogFormatter: *NewLogFormatter(base, labelOnlyBase)}
}

func (f *LogFormatterMathtext) Format(x float64, pos int) string {
	if x == 0 {
		return "${0}$"
	}
	sign := ""
	if x < 0 {
		sign = "-"
	}
	fx, _, coeff, decade := decompose(x, f.Base)
	if !f.Sublabels.Contains(coeff) {
		return ""
	}
	if f.LabelOnlyBase && !decade {
		return ""
	}

	var base string
	if math.Mod(f.Base, 1) == 0 {
		base = strconv.FormatInt(int64(f.Base), 10)
	} else {
		base = reprFloat(f.Base)
	}

	if !decade {
		if f.sciNotation {
			return fixMinus(sciNonDecade(sign, base, f.Base, fx), f.UnicodeMinus)
		}
		return fixMinus(fmt.Sprintf("${%s%s^{%.2f}}$", sign, base, fx), f.UnicodeMinus)
	}
	return fixMinus(fmt.Sprintf("${%s%s^{%d}}$", sign, base, int64(nearestLong(fx))), f.UnicodeMinus)
}

// LogFormatterSciNotation is a LogFormatterMathtext that labels ticks
// between powers of the base in scientific notation, such as
// "${2\times10^{3}}$".
type LogFormatterSciNotation struct {
	LogFormatterMathtext
}

// NewLogFormatterSciNotation returns a LogFormatterSciNotation in the
// given base.
func NewLogFormatterSciNotation(base float64, labelOnlyBase bool) *LogFormatterSciNotation {
	f := &LogFormatterSciNotation{*NewLogFormatterMathtext(base, labelOnlyBase)}
	f.sciNotation = true
	return f
}

// sciNonDecade formats b^fx as a mantissa times a power of b.
func sciNonDecade(sign, base string, b, fx float64) string {
	exponent := math.Floor(fx)
	coeff := math.Pow(b, fx) / math.Pow(b, exponent)
	if isCloseToInt(coeff) {
		coeff = nearestLong(coeff)
	}
	return fmt.Sprintf(`${%s%s\times%s^{%d}}$`, sign, formatG(coeff, 6), base, int64(exponent))
}
