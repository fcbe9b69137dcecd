// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"strings"

	"github.com/aclements/go-ticks/scale"
	"github.com/aclements/go-ticks/ticker"
)

// ruler draws ticks on a horizontal text axis width columns wide. It
// returns the axis line and the label line. Labels that would collide
// with the previous label are dropped.
func ruler(s scale.Interface, width int, ticks []ticker.Tick) (line, labels string) {
	if width < 2 {
		width = 2
	}
	x := scale.NewOutputScale(0, float64(width-1))
	x.Crop()

	lineRunes := []rune(strings.Repeat("─", width))
	labelRunes := []rune(strings.Repeat(" ", width))

	var minorVals, majorVals []float64
	labelOf := make(map[float64]string)
	for _, t := range ticks {
		if t.Minor {
			minorVals = append(minorVals, t.Value)
		} else {
			majorVals = append(majorVals, t.Value)
			labelOf[t.Value] = t.Label
		}
	}

	// Minor ticks first so major ticks win shared columns.
	pos, _ := x.Place(s, minorVals)
	for _, u := range pos {
		lineRunes[column(u, width)] = '┴'
	}

	pos, vals := x.Place(s, majorVals)
	next := 0
	for i, u := range pos {
		col := column(u, width)
		lineRunes[col] = '┼'

		label := []rune(labelOf[vals[i]])
		if len(label) == 0 || len(label) > width {
			continue
		}
		start := col - len(label)/2
		if start < 0 {
			start = 0
		}
		if start+len(label) > width {
			start = width - len(label)
		}
		if start < next {
			continue
		}
		copy(labelRunes[start:], label)
		next = start + len(label) + 1
	}
	return string(lineRunes), strings.TrimRight(string(labelRunes), " ")
}

func column(u float64, width int) int {
	col := int(math.Round(u))
	if col < 0 {
		return 0
	}
	if col >= width {
		return width - 1
	}
	return col
}
