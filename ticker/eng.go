// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// EngFormatter labels ticks in engineering notation: a mantissa in
// [1, 1000) followed by an SI prefix for a power of 1000 and a unit.
// For example, 0.1 with unit "s" is labeled "100 ms".
type EngFormatter struct {
	Unit string

	// Places is the number of decimal places of the mantissa, or -1
	// for up to 6 significant digits.
	Places int

	// Sep separates the mantissa from the prefix and unit. It is
	// omitted if there is neither.
	Sep string

	UnicodeMinus bool
}

// NewEngFormatter returns an EngFormatter for unit with up to 6
// significant digits and a space separator.
func NewEngFormatter(unit string) *EngFormatter {
	return &EngFormatter{Unit: unit, Places: -1, Sep: " "}
}

// Engineering notation covers the prefixes from yocto to yotta.
const (
	minEngPow = -24
	maxEngPow = 24
)

// siPrefix returns the SI prefix for 10^pow10, where pow10 is a
// multiple of 3.
func siPrefix(pow10 int) string {
	if pow10 == 0 {
		return ""
	}
	// Ask for a value well inside the prefix's range so the
	// decade computation cannot round across a boundary.
	_, prefix := humanize.ComputeSI(5 * math.Pow(10, float64(pow10)))
	return prefix
}

func (f *EngFormatter) mantissa(m float64) string {
	if f.Places < 0 {
		return formatG(m, 6)
	}
	return strconv.FormatFloat(m, 'f', f.Places, 64)
}

// FormatEng formats num as a mantissa, separator and SI prefix,
// without the unit.
func (f *EngFormatter) FormatEng(num float64) string {
	pow10 := 0
	switch {
	case num == 0:
		// Drop the sign of -0.
		num = 0
	case isFinite(num):
		pow10 = int(math.Floor(log10(math.Abs(num))/3) * 3)
	}
	if pow10 < minEngPow {
		pow10 = minEngPow
	} else if pow10 > maxEngPow {
		pow10 = maxEngPow
	}
	mant := num / math.Pow(10, float64(pow10))

	// A mantissa such as 999.99 may round to 1000 when formatted;
	// use the next prefix up instead.
	if r, err := strconv.ParseFloat(f.mantissa(math.Abs(mant)), 64); err == nil && r >= 1000 && pow10 < maxEngPow {
		mant /= 1000
		pow10 += 3
	}
	return f.mantissa(mant) + f.Sep + siPrefix(pow10)
}

func (f *EngFormatter) Format(x float64, pos int) string {
	s := f.FormatEng(x) + f.Unit
	if f.Sep != "" {
		s = strings.TrimSuffix(s, f.Sep)
	}
	return fixMinus(s, f.UnicodeMinus)
}
