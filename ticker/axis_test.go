// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func split(ticks []Tick) (major, minor []Tick) {
	for _, t := range ticks {
		if t.Minor {
			minor = append(minor, t)
		} else {
			major = append(major, t)
		}
	}
	return
}

func TestAxisTicks(t *testing.T) {
	a := NewAxis()
	a.Minor = &AutoMinorLocator{Major: a.Major}
	a.SetView(0, 1.39)

	ticks, err := a.Ticks()
	require.NoError(t, err)
	major, minor := split(ticks)

	var labels []string
	for _, tick := range major {
		labels = append(labels, tick.Label)
	}
	assert.Equal(t, []string{"0.0", "0.2", "0.4", "0.6", "0.8", "1.0", "1.2", "1.4"}, labels)

	// The minor tick at 1.0 coincides with a major tick.
	assert.Len(t, minor, 21)
	for _, tick := range minor {
		assert.Equal(t, "", tick.Label)
		assert.False(t, math.Abs(tick.Value-1) < 1e-9, "minor tick %v", tick.Value)
	}
	assert.Equal(t, "", a.OffsetString())
}

func TestAxisOffset(t *testing.T) {
	a := NewAxis()
	a.SetView(12349, 12341)
	assert.Equal(t, Interval{12349, 12341}, a.View())

	ticks, err := a.Ticks()
	require.NoError(t, err)
	require.Len(t, ticks, 9)
	assert.Equal(t, "1", ticks[0].Label)
	assert.InDelta(t, 12341.0, ticks[0].Value, 1e-9)
	assert.Equal(t, "+1.234e4", a.OffsetString())
}

func TestAxisSingular(t *testing.T) {
	a := NewAxis()
	a.SetView(5, 5)
	v := a.View()
	assert.InDelta(t, 4.995, v.Lo, 1e-12)
	assert.InDelta(t, 5.005, v.Hi, 1e-12)

	ticks, err := a.Ticks()
	require.NoError(t, err)
	assert.NotEmpty(t, ticks)
}

func TestAxisLog(t *testing.T) {
	a := &Axis{
		Major:          NewLogLocator(10),
		Minor:          &LogLocator{Base: 10, SubsMode: SubsAuto},
		MajorFormatter: NewLogFormatterSciNotation(10, false),
	}
	a.SetView(1, 1000)
	ticks, err := a.Ticks()
	require.NoError(t, err)
	major, minor := split(ticks)
	require.Len(t, major, 6)
	assert.Equal(t, `${10^{0}}$`, major[1].Label)
	assert.Len(t, minor, 6*8)

	a.SetView(0, 1000)
	_, err = a.Ticks()
	var de *DomainError
	assert.True(t, errors.As(err, &de), "got %v", err)
}

func TestAxisNil(t *testing.T) {
	a := &Axis{}
	a.SetView(0, 1)
	ticks, err := a.Ticks()
	require.NoError(t, err)
	assert.Empty(t, ticks)
	assert.Equal(t, "", a.OffsetString())

	a.Major = &FixedLocator{Locs: []float64{0, 0.5, 1}}
	ticks, err = a.Ticks()
	require.NoError(t, err)
	require.Len(t, ticks, 3)
	assert.Equal(t, "", ticks[1].Label)
}
