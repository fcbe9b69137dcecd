// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps values from an input domain to the unit interval
// and chooses tick marks for that domain using the locators of package
// ticker.
package scale

import "github.com/aclements/go-ticks/ticker"

// A scale satisfies Interface if it maps from some input range to an
// output interval [0, 1].
type Interface interface {
	Of(x float64) float64

	// Ticks returns at most n major ticks and any minor ticks
	// within the input range.
	Ticks(n int) (major, minor []float64, err error)

	// Domain returns the input range.
	Domain() ticker.Interval
}
