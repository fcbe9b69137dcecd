// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSublabels(t *testing.T) {
	for _, test := range []struct {
		hi   float64
		want Sublabels
	}{
		{1e4, Sublabels{1}},
		{800, Sublabels{1, 3, 10}},
		{80, Sublabels{1, 2, 5, 10}},
		{8, Sublabels{1, 2, 3, 6, 10}},
	} {
		got := ComputeSublabels(Interval{1, test.hi}, 10)
		assert.Equal(t, test.want, got, "view (1, %v)", test.hi)
	}
	assert.Equal(t, Sublabels{1}, ComputeSublabels(Interval{0, 10}, 10))
}

func TestLogFormatterSublabels(t *testing.T) {
	major := &LogLocator{Base: 10, Subs: []float64{}}
	minor := &LogLocator{Base: 10, Subs: []float64{2, 3, 4, 5, 6, 7, 8, 9}}
	majorFmt := NewLogFormatter(10, true)
	minorFmt := NewLogFormatter(10, false)

	for _, test := range []struct {
		hi   float64
		subs []float64
	}{
		{1e4, nil},
		{800, []float64{3}},
		{80, []float64{2, 5}},
		{8, []float64{2, 3, 6}},
	} {
		view := Interval{1, test.hi}
		if test.hi == 1e4 {
			majors, err := major.TickValues(view.Lo, view.Hi)
			require.NoError(t, err)
			majorFmt.SetLocs(view, majors)
			for i, x := range majors {
				assert.NotEqual(t, "", majorFmt.Format(x, i), "major %v", x)
			}
		}

		minors, err := minor.TickValues(view.Lo, view.Hi)
		require.NoError(t, err)
		minorFmt.SetLocs(view, minors)
		for i, x := range minors {
			coeff := math.Round(x / math.Pow(10, math.Floor(math.Log10(x))))
			want := false
			for _, s := range test.subs {
				want = want || s == coeff
			}
			got := minorFmt.Format(x, i) != ""
			if got != want {
				t.Errorf("view %v: label of minor tick %v: got %v, want %v", view, x, got, want)
			}
		}
	}
}

func TestLogFormatterExponent(t *testing.T) {
	tests := []struct {
		labelOnlyBase bool
		exponent      float64
		locs          []float64
		want          []string
	}{
		{true, 4, []float64{-3, -2, -1, 0, 1, 2, 3}, []string{"-3", "-2", "-1", "0", "1", "2", "3"}},
		{false, 10, []float64{0.1, 0.00001, math.Pi, 0.2, -0.2, -0.00001}, []string{"0.1", "1e-05", "3.14", "0.2", "-0.2", "-1e-05"}},
		{false, 50, []float64{3, 5, 12, 42}, []string{"3", "5", "12", "42"}},
	}
	for _, base := range []float64{2, 5, 10, math.Pi, math.E} {
		for _, test := range tests {
			f := NewLogFormatterExponent(base, test.labelOnlyBase)
			f.SetLocs(Interval{1, math.Pow(base, test.exponent)}, nil)
			var got []string
			for i, loc := range test.locs {
				got = append(got, f.Format(math.Pow(base, loc), i))
			}
			assert.Equal(t, test.want, got, "base %v, exponent %v", base, test.exponent)
		}
	}
}

func TestLogFormatterExponentBlank(t *testing.T) {
	f := NewLogFormatterExponent(10, true)
	f.SetLocs(Interval{1, 10}, nil)
	assert.Equal(t, "", f.Format(math.Pow(10, 0.1), -1))
}

func TestLogFormatterSciNotation(t *testing.T) {
	tests := map[float64][]struct {
		x    float64
		want string
	}{
		10: {
			{1e-05, `${10^{-5}}$`},
			{1, `${10^{0}}$`},
			{100000, `${10^{5}}$`},
			{2e-05, `${2\times10^{-5}}$`},
			{2, `${2\times10^{0}}$`},
			{200000, `${2\times10^{5}}$`},
			{5e-05, `${5\times10^{-5}}$`},
			{5, `${5\times10^{0}}$`},
			{500000, `${5\times10^{5}}$`},
		},
		2: {
			{0.03125, `${2^{-5}}$`},
			{1, `${2^{0}}$`},
			{32, `${2^{5}}$`},
			{0.0375, `${1.2\times2^{-5}}$`},
			{1.2, `${1.2\times2^{0}}$`},
			{38.4, `${1.2\times2^{5}}$`},
		},
	}
	for base, cases := range tests {
		f := NewLogFormatterSciNotation(base, false)
		f.Sublabels = Sublabels{1, 2, 5, 1.2}
		for _, c := range cases {
			if got := f.Format(c.x, -1); got != c.want {
				t.Errorf("base %v: Format(%v) = %q, want %q", base, c.x, got, c.want)
			}
		}
	}
}

func TestLogFormatterMathtext(t *testing.T) {
	f := NewLogFormatterMathtext(10, false)
	f.Sublabels = Sublabels{1, 2}
	assert.Equal(t, `${10^{3}}$`, f.Format(1000, 0))
	assert.Equal(t, `${-10^{3}}$`, f.Format(-1000, 0))
	assert.Equal(t, `${10^{2.30}}$`, f.Format(200, 0))
	assert.Equal(t, "", f.Format(300, 0))
	assert.Equal(t, "${0}$", f.Format(0, 0))

	f.LabelOnlyBase = true
	assert.Equal(t, "", f.Format(200, 0))

	f = NewLogFormatterMathtext(math.E, false)
	assert.Equal(t, `${2.718281828459045^{1}}$`, f.Format(math.E, 0))
}

func TestLogFormatterFormat(t *testing.T) {
	f := NewLogFormatter(10, false)
	f.SetLocs(Interval{1, 8}, nil)
	assert.Equal(t, "2", f.Format(2, 0))
	assert.Equal(t, "0.2", f.Format(0.2, 0))
	assert.Equal(t, "", f.Format(4, 0))
	assert.Equal(t, "-2", f.Format(-2, 0))
	assert.Equal(t, "0", f.Format(0, 0))

	f.UnicodeMinus = true
	assert.Equal(t, "−2", f.Format(-2, 0))

	f.LabelOnlyBase = true
	assert.Equal(t, "", f.Format(2, 0))
	assert.Equal(t, "2", f.FormatData(2))
	assert.Equal(t, "0.25        ", f.FormatDataShort(0.25))
}

func TestLogFormatterSingularView(t *testing.T) {
	// Without a view, the domain is widened as for a single point.
	f := NewLogFormatter(10, false)
	assert.Equal(t, "0.1", f.Format(0.1, 0))
	assert.Equal(t, "0.01", f.Format(0.01, 0))
}

func TestPPrintVal(t *testing.T) {
	tests := []struct {
		x, domain float64
		want      string
	}{
		{3.141592654e-05, 0.001, "3.142e-5"},
		{0.0003141592654, 0.001, "3.142e-4"},
		{0.003141592654, 0.001, "3.142e-3"},
		{0.03141592654, 0.001, "3.142e-2"},
		{0.3141592654, 0.001, "3.142e-1"},
		{3.141592654, 0.001, "3.142"},
		{31.41592654, 0.001, "3.142e1"},
		{314.1592654, 0.001, "3.142e2"},
		{3141.592654, 0.001, "3.142e3"},
		{31415.92654, 0.001, "3.142e4"},
		{314159.2654, 0.001, "3.142e5"},
		{1e-05, 0.001, "1e-5"},
		{0.0001, 0.001, "1e-4"},
		{0.001, 0.001, "1e-3"},
		{0.01, 0.001, "1e-2"},
		{0.1, 0.001, "1e-1"},
		{1, 0.001, "1"},
		{10, 0.001, "10"},
		{100, 0.001, "100"},
		{1000, 0.001, "1000"},
		{10000, 0.001, "1e4"},
		{100000, 0.001, "1e5"},
		{3.141592654e-05, 0.015, "0"},
		{0.0003141592654, 0.015, "0"},
		{0.003141592654, 0.015, "0.003"},
		{0.03141592654, 0.015, "0.031"},
		{0.3141592654, 0.015, "0.314"},
		{3.141592654, 0.015, "3.142"},
		{31.41592654, 0.015, "31.416"},
		{314.1592654, 0.015, "314.159"},
		{3141.592654, 0.015, "3141.593"},
		{31415.92654, 0.015, "31415.927"},
		{314159.2654, 0.015, "314159.265"},
		{1e-05, 0.015, "0"},
		{0.0001, 0.015, "0"},
		{0.001, 0.015, "0.001"},
		{0.01, 0.015, "0.01"},
		{0.1, 0.015, "0.1"},
		{1, 0.015, "1"},
		{10, 0.015, "10"},
		{100, 0.015, "100"},
		{1000, 0.015, "1000"},
		{10000, 0.015, "10000"},
		{100000, 0.015, "100000"},
		{3.141592654e-05, 0.5, "0"},
		{0.0003141592654, 0.5, "0"},
		{0.003141592654, 0.5, "0.003"},
		{0.03141592654, 0.5, "0.031"},
		{0.3141592654, 0.5, "0.314"},
		{3.141592654, 0.5, "3.142"},
		{31.41592654, 0.5, "31.416"},
		{314.1592654, 0.5, "314.159"},
		{3141.592654, 0.5, "3141.593"},
		{31415.92654, 0.5, "31415.927"},
		{314159.2654, 0.5, "314159.265"},
		{1e-05, 0.5, "0"},
		{0.0001, 0.5, "0"},
		{0.001, 0.5, "0.001"},
		{0.01, 0.5, "0.01"},
		{0.1, 0.5, "0.1"},
		{1, 0.5, "1"},
		{10, 0.5, "10"},
		{100, 0.5, "100"},
		{1000, 0.5, "1000"},
		{10000, 0.5, "10000"},
		{100000, 0.5, "100000"},
		{3.141592654e-05, 5, "0"},
		{0.0003141592654, 5, "0"},
		{0.003141592654, 5, "0"},
		{0.03141592654, 5, "0.03"},
		{0.3141592654, 5, "0.31"},
		{3.141592654, 5, "3.14"},
		{31.41592654, 5, "31.42"},
		{314.1592654, 5, "314.16"},
		{3141.592654, 5, "3141.59"},
		{31415.92654, 5, "31415.93"},
		{314159.2654, 5, "314159.27"},
		{1e-05, 5, "0"},
		{0.0001, 5, "0"},
		{0.001, 5, "0"},
		{0.01, 5, "0.01"},
		{0.1, 5, "0.1"},
		{1, 5, "1"},
		{10, 5, "10"},
		{100, 5, "100"},
		{1000, 5, "1000"},
		{10000, 5, "10000"},
		{100000, 5, "100000"},
		{3.141592654e-05, 100, "0"},
		{0.0003141592654, 100, "0"},
		{0.003141592654, 100, "0"},
		{0.03141592654, 100, "0"},
		{0.3141592654, 100, "0.3"},
		{3.141592654, 100, "3.1"},
		{31.41592654, 100, "31.4"},
		{314.1592654, 100, "314.2"},
		{3141.592654, 100, "3141.6"},
		{31415.92654, 100, "31415.9"},
		{314159.2654, 100, "314159.3"},
		{1e-05, 100, "0"},
		{0.0001, 100, "0"},
		{0.001, 100, "0"},
		{0.01, 100, "0"},
		{0.1, 100, "0.1"},
		{1, 100, "1"},
		{10, 100, "10"},
		{100, 100, "100"},
		{1000, 100, "1000"},
		{10000, 100, "10000"},
		{100000, 100, "100000"},
		{3.141592654e-05, 1000000.0, "3.1e-5"},
		{0.0003141592654, 1000000.0, "3.1e-4"},
		{0.003141592654, 1000000.0, "3.1e-3"},
		{0.03141592654, 1000000.0, "3.1e-2"},
		{0.3141592654, 1000000.0, "3.1e-1"},
		{3.141592654, 1000000.0, "3.1"},
		{31.41592654, 1000000.0, "3.1e1"},
		{314.1592654, 1000000.0, "3.1e2"},
		{3141.592654, 1000000.0, "3.1e3"},
		{31415.92654, 1000000.0, "3.1e4"},
		{314159.2654, 1000000.0, "3.1e5"},
		{1e-05, 1000000.0, "1e-5"},
		{0.0001, 1000000.0, "1e-4"},
		{0.001, 1000000.0, "1e-3"},
		{0.01, 1000000.0, "1e-2"},
		{0.1, 1000000.0, "1e-1"},
		{1, 1000000.0, "1"},
		{10, 1000000.0, "10"},
		{100, 1000000.0, "100"},
		{1000, 1000000.0, "1000"},
		{10000, 1000000.0, "1e4"},
		{100000, 1000000.0, "1e5"},
	}
	f := NewLogFormatter(10, false)
	for _, test := range tests {
		if got := f.PPrintVal(test.x, test.domain); got != test.want {
			t.Errorf("PPrintVal(%v, %v) = %q, want %q", test.x, test.domain, got, test.want)
		}
	}
}
