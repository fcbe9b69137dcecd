// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import "strings"

// A Formatter renders a tick value as a label.
type Formatter interface {
	// Format returns the label for the tick at x, which is the
	// pos'th tick on the axis. pos is -1 when the value is not a
	// tick, such as a cursor position.
	Format(x float64, pos int) string
}

// A LocsSetter is a Formatter whose labels depend on all of the ticks
// being labeled. SetLocs must be called with the view and the tick
// positions before Format.
type LocsSetter interface {
	SetLocs(view Interval, locs []float64)
}

// An OffsetFormatter is a Formatter that factors a common offset or
// scale out of its labels, to be displayed once for the axis.
type OffsetFormatter interface {
	OffsetString() string
}

const unicodeMinus = "−"

// fixMinus replaces hyphen-minus signs in s with the Unicode minus
// sign if enabled.
func fixMinus(s string, enabled bool) string {
	if !enabled {
		return s
	}
	return strings.ReplaceAll(s, "-", unicodeMinus)
}

// NullFormatter returns empty labels.
type NullFormatter struct{}

func (NullFormatter) Format(x float64, pos int) string { return "" }

// FixedFormatter returns Labels[pos], ignoring the tick value. It is
// typically paired with a FixedLocator.
type FixedFormatter struct {
	Labels []string

	// Offset is returned by OffsetString.
	Offset string
}

func (f *FixedFormatter) Format(x float64, pos int) string {
	if pos < 0 || pos >= len(f.Labels) {
		return ""
	}
	return f.Labels[pos]
}

func (f *FixedFormatter) OffsetString() string {
	return f.Offset
}

// FuncFormatter labels ticks using a function.
type FuncFormatter func(x float64, pos int) string

func (f FuncFormatter) Format(x float64, pos int) string {
	return f(x, pos)
}

// FormatStrFormatter labels ticks using a %-style template with a
// single conversion, such as "%1.2f" or "%05d". Conversions follow C
// printf semantics: %g has 6 significant digits by default, %d
// truncates toward zero, and %s and %r use the shortest round-trip
// representation of the value.
type FormatStrFormatter struct {
	tmpl *printfTemplate
}

// NewFormatStrFormatter parses the template format.
func NewFormatStrFormatter(format string) (*FormatStrFormatter, error) {
	t, err := parsePrintf(format)
	if err != nil {
		return nil, err
	}
	return &FormatStrFormatter{t}, nil
}

func (f *FormatStrFormatter) Format(x float64, pos int) string {
	return f.tmpl.format(x)
}

// StrMethodFormatter labels ticks using a template with replacement
// fields in braces, such as "{x:.2f}" or "{x:03d}-{pos:02d}". The
// field x is the tick value and pos is its position. Each field may
// carry a conversion (!r, !s) and a format specification of the form
//
//	[[fill]align][sign][#][0][width][grouping][.precision][type]
//
// where type is one of b d o x X (integers; tick values are truncated
// toward zero), e E f F g G n % (floating point), or omitted. Literal
// braces are written {{ and }}.
type StrMethodFormatter struct {
	tmpl *fieldTemplate
}

// NewStrMethodFormatter parses the template format.
func NewStrMethodFormatter(format string) (*StrMethodFormatter, error) {
	t, err := parseFieldTemplate(format)
	if err != nil {
		return nil, err
	}
	return &StrMethodFormatter{t}, nil
}

func (f *StrMethodFormatter) Format(x float64, pos int) string {
	return f.tmpl.format(x, pos)
}
