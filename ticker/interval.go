// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import "math"

// An Interval is a view range along an axis. Hi may be less than Lo
// for reversed axes.
type Interval struct {
	Lo, Hi float64
}

// Sorted returns the bounds of v in ascending order.
func (v Interval) Sorted() (lo, hi float64) {
	if v.Hi < v.Lo {
		return v.Hi, v.Lo
	}
	return v.Lo, v.Hi
}

// Span returns the absolute width of v.
func (v Interval) Span() float64 {
	return math.Abs(v.Hi - v.Lo)
}

// Contains reports whether x lies in the closed interval v,
// regardless of v's orientation.
func (v Interval) Contains(x float64) bool {
	lo, hi := v.Sorted()
	return lo <= x && x <= hi
}

// smallestNormal is the smallest positive normalized float64.
const smallestNormal = 0x1p-1022

// Nonsingular widens an interval that is too small to be divided
// into ticks.
//
// If either bound is not finite, it returns (-expander, expander). If
// the interval is narrower than tiny times its largest magnitude,
// each bound is moved outward by expander times its magnitude (or set
// to ±expander if both are zero). If increasing is true, the result
// is sorted; otherwise a reversed interval stays reversed.
func Nonsingular(vmin, vmax, expander, tiny float64, increasing bool) (float64, float64) {
	if math.IsInf(vmin, 0) || math.IsNaN(vmin) || math.IsInf(vmax, 0) || math.IsNaN(vmax) {
		return -expander, expander
	}

	swapped := false
	if vmax < vmin {
		vmin, vmax = vmax, vmin
		swapped = true
	}

	maxAbs := math.Max(math.Abs(vmin), math.Abs(vmax))
	if maxAbs < (1e6/tiny)*smallestNormal {
		vmin, vmax = -expander, expander
	} else if vmax-vmin <= maxAbs*tiny {
		if vmax == 0 && vmin == 0 {
			vmin, vmax = -expander, expander
		} else {
			vmin -= float64(expander * math.Abs(vmin))
			vmax += float64(expander * math.Abs(vmax))
		}
	}

	if swapped && !increasing {
		vmin, vmax = vmax, vmin
	}
	return vmin, vmax
}

// scaleRange returns a power of ten comparable to the step between n
// ticks over [vmin, vmax], and an offset, also a power of ten, to
// subtract from the bounds when their mean is large relative to their
// span. vmin and vmax must differ.
func scaleRange(vmin, vmax, n, threshold float64) (scale, offset float64) {
	dv := math.Abs(vmax - vmin)
	meanv := (vmax + vmin) / 2
	if math.Abs(meanv)/dv >= threshold {
		offset = math.Copysign(math.Pow(10, floorDiv(log10(math.Abs(meanv)), 1)), meanv)
	}
	scale = math.Pow(10, floorDiv(log10(dv/n), 1))
	return scale, offset
}
