// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import "math"

// The tick algorithms below depend on floored division and on the
// exact rounding of a few intermediate values, so they are spelled out
// here rather than left to math.Mod and math.Floor at each use.
// Products feeding a sum are converted with float64() so they are not
// fused.

// divmod returns the floored quotient and remainder of x / y. The
// remainder has the sign of y.
func divmod(x, y float64) (div, mod float64) {
	mod = math.Mod(x, y)
	div = (x - mod) / y
	if mod != 0 {
		if (y < 0) != (mod < 0) {
			mod += y
			div -= 1
		}
	} else {
		mod = math.Copysign(0, y)
	}
	if div != 0 {
		fd := math.Floor(div)
		if div-fd > 0.5 {
			fd += 1
		}
		div = fd
	} else {
		div = math.Copysign(0, x/y)
	}
	return div, mod
}

func floorDiv(x, y float64) float64 {
	d, _ := divmod(x, y)
	return d
}

func floorMod(x, y float64) float64 {
	_, m := divmod(x, y)
	return m
}

// arange returns start, start+step, ... up to but excluding stop.
func arange(start, stop, step float64) []float64 {
	n := math.Ceil((stop - start) / step)
	if !(n > 0) {
		return []float64{}
	}
	out := make([]float64, int(n))
	out[0] = start
	if len(out) == 1 {
		return out
	}
	out[1] = start + step
	delta := out[1] - start
	for i := 2; i < len(out); i++ {
		out[i] = start + float64(float64(i)*delta)
	}
	return out
}

// roundTo rounds x to the given number of decimal places, with ties
// going to even.
func roundTo(x float64, decimals int) float64 {
	if decimals >= 0 {
		p := math.Pow(10, float64(decimals))
		return math.RoundToEven(x*p) / p
	}
	p := math.Pow(10, float64(-decimals))
	return math.RoundToEven(x/p) * p
}

// nearestLong rounds x to the nearest integer, ties away from zero.
func nearestLong(x float64) float64 {
	if x == 0 {
		return 0
	}
	if x > 0 {
		return math.Trunc(x + 0.5)
	}
	return math.Trunc(x - 0.5)
}

func isCloseToInt(x float64) bool {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return false
	}
	return math.Abs(x-nearestLong(x)) < 1e-10
}

func closeTo(x, y float64) bool {
	return math.Abs(x-y) < 1e-10
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// logb returns the base b logarithm of x.
func logb(x, b float64) float64 {
	return math.Log(x) / math.Log(b)
}

// multiple snaps values to integer multiples of a positive step.
type multiple float64

// le returns the largest multiple of m that is <= x.
func (m multiple) le(x float64) float64 {
	b := float64(m)
	d, r := divmod(x, b)
	if closeTo(r/b, 1) {
		return (d + 1) * b
	}
	return d * b
}

// ge returns the smallest multiple of m that is >= x.
func (m multiple) ge(x float64) float64 {
	b := float64(m)
	d, r := divmod(x, b)
	if closeTo(r, 0) && !closeTo(r/b, 1) {
		return d * b
	}
	return (d + 1) * b
}

// edgeInteger finds tick indexes at the edges of an interval. Its
// tolerance grows with the offset the ticks will be shifted by, since
// a large offset relative to the step costs precision.
type edgeInteger struct {
	step, offset float64
}

func newEdgeInteger(step, offset float64) edgeInteger {
	return edgeInteger{step, math.Abs(offset)}
}

func (e edgeInteger) closeTo(ms, edge float64) bool {
	tol := 1e-10
	if e.offset > 0 {
		digits := log10(e.offset / e.step)
		tol = math.Max(1e-10, math.Pow(10, digits-12))
		tol = math.Min(0.4999, tol)
	}
	return math.Abs(ms-edge) < tol
}

// le returns the largest n such that n*step <= x.
func (e edgeInteger) le(x float64) float64 {
	d, m := divmod(x, e.step)
	if e.closeTo(m/e.step, 1) {
		return d + 1
	}
	return d
}

// ge returns the smallest n such that n*step >= x.
func (e edgeInteger) ge(x float64) float64 {
	d, m := divmod(x, e.step)
	if e.closeTo(m/e.step, 0) {
		return d
	}
	return d + 1
}

// log10 returns the decimal logarithm of x. Unlike math.Log10, it is
// exact when x is a power of ten.
func log10(x float64) float64 {
	l := math.Log10(x)
	if r := math.Round(l); math.Abs(l-r) < 1e-9 && math.Abs(r) <= 22 && math.Pow(10, r) == x {
		return r
	}
	return l
}
