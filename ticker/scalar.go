// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ScalarFormatter labels ticks in fixed-point notation with just
// enough decimals to tell the ticks apart. When the ticks share
// leading digits, it factors out a common offset; when they are very
// large or very small, it factors out a power of ten. Both are
// reported by OffsetString.
type ScalarFormatter struct {
	// UseOffset enables the automatic offset. If false, Offset is
	// used as a fixed offset instead.
	UseOffset bool
	Offset    float64

	// OffsetThreshold is the number of leading digits an offset must
	// save before it is used.
	OffsetThreshold int

	// Scientific enables factoring out a power of ten when the
	// order of magnitude of the ticks is at most PowerLimits[0] or at
	// least PowerLimits[1].
	Scientific  bool
	PowerLimits [2]int

	// UseMathText renders labels and the offset string as math
	// text, with the power of ten as "\times10^{n}".
	UseMathText bool

	// UnicodeMinus renders minus signs as U+2212.
	UnicodeMinus bool

	layout ScalarLayout
}

// NewScalarFormatter returns a ScalarFormatter with an automatic
// offset that must save 4 digits and power limits of (-7, 7).
func NewScalarFormatter() *ScalarFormatter {
	return &ScalarFormatter{
		UseOffset:       true,
		OffsetThreshold: 4,
		Scientific:      true,
		PowerLimits:     [2]int{-7, 7},
	}
}

// ScalarLayout is the state a ScalarFormatter derives from a set of
// ticks. Given a ScalarLayout, each tick can be formatted on its own.
type ScalarLayout struct {
	// NumLocs is the number of ticks. With no ticks, nothing is
	// labeled.
	NumLocs int

	// Offset is subtracted from each tick value.
	Offset float64

	// OrderOfMagnitude is the power of ten each tick value is
	// divided by after subtracting Offset.
	OrderOfMagnitude int

	// Decimals is the number of digits after the decimal point.
	Decimals int

	MathText bool
}

// Layout computes the layout of locs in view.
func (f *ScalarFormatter) Layout(view Interval, locs []float64) ScalarLayout {
	l := ScalarLayout{NumLocs: len(locs), MathText: f.UseMathText}
	if len(locs) == 0 {
		return l
	}
	if f.UseOffset {
		l.Offset = computeOffset(view, locs, f.OffsetThreshold)
	} else {
		l.Offset = f.Offset
	}
	if f.Scientific {
		l.OrderOfMagnitude = f.orderOfMagnitude(view.Span(), locs, l.Offset)
	}
	l.Decimals = decimals(view, locs, l.Offset, l.OrderOfMagnitude)
	return l
}

func (f *ScalarFormatter) SetLocs(view Interval, locs []float64) {
	f.layout = f.Layout(view, locs)
}

func (f *ScalarFormatter) Format(x float64, pos int) string {
	return fixMinus(f.layout.Format(x), f.UnicodeMinus)
}

// OffsetString returns the offset and power of ten factored out of
// the labels.
func (f *ScalarFormatter) OffsetString() string {
	return fixMinus(f.layout.OffsetString(), f.UnicodeMinus)
}

// FormatData formats x with full precision, for display outside of
// tick labels.
func (f *ScalarFormatter) FormatData(x float64) string {
	return fixMinus(sciNotation(fmt.Sprintf("%1.10e", x), f.UseMathText), f.UnicodeMinus)
}

// FormatDataShort formats x compactly in a fixed-width field.
func (f *ScalarFormatter) FormatDataShort(x float64) string {
	return fmt.Sprintf("%-12s", formatG(x, 6))
}

// CurrentLayout returns the layout computed by the last SetLocs.
func (f *ScalarFormatter) CurrentLayout() ScalarLayout {
	return f.layout
}

// computeOffset returns the offset for the ticks in locs that are
// visible in view, or 0 if an offset would not save at least
// threshold digits.
func computeOffset(view Interval, locs []float64, threshold int) float64 {
	vmin, vmax := view.Sorted()
	lmin, lmax := math.Inf(1), math.Inf(-1)
	for _, x := range locs {
		if vmin <= x && x <= vmax {
			lmin, lmax = math.Min(lmin, x), math.Max(lmax, x)
		}
	}
	// An offset needs at least two visible ticks of one sign.
	if lmin >= lmax || lmin <= 0 && 0 <= lmax {
		return 0
	}

	absMin, absMax := math.Abs(lmin), math.Abs(lmax)
	if absMax < absMin {
		absMin, absMax = absMax, absMin
	}
	sign := math.Copysign(1, lmin)
	div := func(x, oom float64) float64 {
		return floorDiv(x, math.Pow(10, oom))
	}

	// Find the smallest power of ten at which absMin and absMax
	// agree.
	oomMax := math.Ceil(log10(absMax))
	oom := oomMax
	for div(absMin, oom) == div(absMax, oom) {
		oom--
	}
	oom++
	if (absMax-absMin)/math.Pow(10, oom) <= 1e-2 {
		// The ticks straddle a multiple of a large power of ten
		// (relative to their span). Find the smallest power of
		// ten at which they are no more than 1 apart.
		oom = oomMax
		for div(absMax, oom)-div(absMin, oom) <= 1 {
			oom--
		}
		oom++
	}

	n := float64(threshold - 1)
	if div(absMax, oom) >= math.Pow(10, n) {
		return sign * div(absMax, oom) * math.Pow(10, oom)
	}
	return 0
}

func (f *ScalarFormatter) orderOfMagnitude(span float64, locs []float64, offset float64) int {
	var oom float64
	if offset != 0 {
		if span > 0 {
			oom = math.Floor(log10(span))
		}
	} else {
		val := math.Abs(locs[len(locs)-1])
		if first := math.Abs(locs[0]); first > val {
			val = first
		}
		if val != 0 {
			oom = math.Floor(log10(val))
		}
	}
	if oom <= float64(f.PowerLimits[0]) || oom >= float64(f.PowerLimits[1]) {
		return int(oom)
	}
	return 0
}

// decimals returns the number of decimals needed to distinguish the
// scaled ticks.
func decimals(view Interval, locs []float64, offset float64, oom int) int {
	scaled := make([]float64, len(locs), len(locs)+2)
	scaleOf := math.Pow(10, float64(oom))
	for i, x := range locs {
		scaled[i] = (x - offset) / scaleOf
	}
	withEnds := scaled
	if len(locs) < 2 {
		// Use the view's ends to estimate the range.
		withEnds = append(scaled, (view.Lo-offset)/scaleOf, (view.Hi-offset)/scaleOf)
	}

	lo, hi, maxAbs := math.Inf(1), math.Inf(-1), 0.0
	for _, x := range withEnds {
		lo, hi = math.Min(lo, x), math.Max(hi, x)
		maxAbs = math.Max(maxAbs, math.Abs(x))
	}
	locRange := hi - lo
	if locRange == 0 {
		locRange = maxAbs
	}
	if locRange == 0 {
		locRange = 1
	}

	rangeOOM := int(math.Floor(log10(locRange)))
	sigfigs := 3 - rangeOOM
	if sigfigs < 0 {
		sigfigs = 0
	}
	thresh := 1e-3 * math.Pow(10, float64(rangeOOM))
	for ; sigfigs >= 0; sigfigs-- {
		worst := 0.0
		for _, x := range scaled {
			worst = math.Max(worst, math.Abs(x-roundTo(x, sigfigs)))
		}
		if worst >= thresh {
			break
		}
	}
	return sigfigs + 1
}

// Format formats x according to l.
func (l ScalarLayout) Format(x float64) string {
	if l.NumLocs == 0 {
		return ""
	}
	xp := (x - l.Offset) / math.Pow(10, float64(l.OrderOfMagnitude))
	if math.Abs(xp) < 1e-8 {
		xp = 0
	}
	s := strconv.FormatFloat(xp, 'f', l.Decimals, 64)
	if l.MathText {
		return "${" + s + "}$"
	}
	return s
}

// OffsetString returns the text shown once for the axis: the power of
// ten and the offset factored out of each label, or "" if neither
// applies.
func (l ScalarLayout) OffsetString() string {
	if l.NumLocs == 0 || l.OrderOfMagnitude == 0 && l.Offset == 0 {
		return ""
	}
	var offsetStr, sciStr string
	if l.Offset != 0 {
		offsetStr = sciNotation(fmt.Sprintf("%1.10e", l.Offset), l.MathText)
		if l.Offset > 0 {
			offsetStr = "+" + offsetStr
		}
	}
	if l.OrderOfMagnitude != 0 {
		if l.MathText {
			sciStr = sciNotation(fmt.Sprintf("%1.10e", math.Pow(10, float64(l.OrderOfMagnitude))), true)
		} else {
			sciStr = fmt.Sprintf("1e%d", l.OrderOfMagnitude)
		}
	}
	if l.MathText {
		if sciStr != "" {
			sciStr = `\times{` + sciStr + "}"
		}
		return "$" + sciStr + "{" + offsetStr + "}$"
	}
	return sciStr + offsetStr
}

// sciNotation compacts a %e-formatted number: "1.2340000000e+04"
// becomes "1.234e4", or "1.234{\times}10^{4}" as math text.
func sciNotation(s string, mathText bool) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+1 >= len(s) {
		return s
	}
	significand := strings.TrimRight(strings.TrimRight(s[:i], "0"), ".")
	sign := strings.Replace(s[i+1:i+2], "+", "", 1)
	exponent := strings.TrimLeft(s[i+2:], "0")
	if !mathText {
		return strings.TrimRight(significand+"e"+sign+exponent, "e")
	}
	if significand == "1" && exponent != "" {
		significand = ""
	}
	if exponent != "" {
		exponent = "10^{" + sign + exponent + "}"
	}
	if significand != "" && exponent != "" {
		return significand + `{\times}` + exponent
	}
	return significand + exponent
}
