// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// This file implements the two template languages accepted by
// FormatStrFormatter and StrMethodFormatter, along with the shortest
// round-trip rendering of a float used by both.

// reprFloat returns the shortest string that round-trips to x, in
// fixed notation for magnitudes in [1e-4, 1e16) and exponential
// notation otherwise. Integral values in fixed notation keep a ".0".
func reprFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	if x == 0 {
		if math.Signbit(x) {
			return "-0.0"
		}
		return "0.0"
	}
	e := strconv.FormatFloat(x, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.LastIndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// formatG formats x like C's %.<prec>g.
func formatG(x float64, prec int) string {
	return strconv.FormatFloat(x, 'g', prec, 64)
}

// nonFinite renders an infinity or NaN for a numeric conversion.
func nonFinite(x float64, upper bool, plus, space bool) string {
	s := "inf"
	if math.IsNaN(x) {
		s = "nan"
	}
	if upper {
		s = strings.ToUpper(s)
	}
	switch {
	case math.IsInf(x, -1):
		s = "-" + s
	case plus:
		s = "+" + s
	case space:
		s = " " + s
	}
	return s
}

// A printfTemplate is a %-style template with exactly one value
// conversion, as used with a single value.
type printfTemplate struct {
	before, after string
	conv          printfConv
}

type printfConv struct {
	flags       string
	width, prec int // -1 if absent
	verb        byte
}

func parsePrintf(tmpl string) (*printfTemplate, error) {
	var lits []string
	var convs []printfConv
	var lit strings.Builder
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			lit.WriteByte(tmpl[i])
			continue
		}
		i++
		if i < len(tmpl) && tmpl[i] == '%' {
			lit.WriteByte('%')
			continue
		}
		c := printfConv{width: -1, prec: -1}
		for ; i < len(tmpl) && strings.IndexByte("-+ #0", tmpl[i]) >= 0; i++ {
			c.flags += tmpl[i : i+1]
		}
		c.width, i = scanInt(tmpl, i)
		if i < len(tmpl) && tmpl[i] == '.' {
			c.prec, i = scanInt(tmpl, i+1)
			if c.prec < 0 {
				c.prec = 0
			}
		}
		// Length modifiers are accepted and ignored.
		for ; i < len(tmpl) && strings.IndexByte("hlL", tmpl[i]) >= 0; i++ {
		}
		if i >= len(tmpl) {
			return nil, fmt.Errorf("incomplete format in %q", tmpl)
		}
		c.verb = tmpl[i]
		if strings.IndexByte("diueEfFgGsr", c.verb) < 0 {
			return nil, fmt.Errorf("unsupported format character %q in %q", c.verb, tmpl)
		}
		lits = append(lits, lit.String())
		lit.Reset()
		convs = append(convs, c)
	}
	lits = append(lits, lit.String())
	if len(convs) != 1 {
		return nil, fmt.Errorf("format %q must have exactly one conversion, has %d", tmpl, len(convs))
	}
	return &printfTemplate{lits[0], lits[1], convs[0]}, nil
}

// scanInt parses a decimal integer at s[i:], returning -1 if there
// is none.
func scanInt(s string, i int) (int, int) {
	start := i
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	if i == start {
		return -1, i
	}
	n, _ := strconv.Atoi(s[start:i])
	return n, i
}

func (t *printfTemplate) format(x float64) string {
	return t.before + t.conv.format(x) + t.after
}

func (c printfConv) goFormat(flags string, verb byte) string {
	f := "%" + flags
	if c.width >= 0 {
		f += strconv.Itoa(c.width)
	}
	if c.prec >= 0 {
		f += "." + strconv.Itoa(c.prec)
	}
	return f + string(verb)
}

func (c printfConv) format(x float64) string {
	switch c.verb {
	case 's', 'r':
		return fmt.Sprintf(c.goFormat(strings.ReplaceAll(c.flags, "0", ""), 's'), reprFloat(x))
	}

	if !isFinite(x) {
		s := nonFinite(x, c.verb == 'E' || c.verb == 'F' || c.verb == 'G',
			strings.Contains(c.flags, "+"), strings.Contains(c.flags, " "))
		w := c.width
		if strings.Contains(c.flags, "-") {
			w = -w
		}
		return fmt.Sprintf("%*s", w, s)
	}

	switch c.verb {
	case 'd', 'i', 'u':
		return fmt.Sprintf(c.goFormat(c.flags, 'd'), truncInt(x))
	case 'g', 'G':
		if c.prec < 0 {
			c.prec = 6
		}
	}
	return fmt.Sprintf(c.goFormat(c.flags, c.verb), x)
}

// A fieldTemplate is a str.format-style template whose replacement
// fields may name the tick value "x" and the tick position "pos".
type fieldTemplate struct {
	parts []fieldPart
}

type fieldPart struct {
	lit  string
	name string // "x", "pos", or "" for a literal
	conv byte   // 'r', 's', or 0
	spec formatSpec
}

func parseFieldTemplate(tmpl string) (*fieldTemplate, error) {
	t := &fieldTemplate{}
	var lit strings.Builder
	for i := 0; i < len(tmpl); i++ {
		switch ch := tmpl[i]; ch {
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, fmt.Errorf("single '}' encountered in format string %q", tmpl)
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("unmatched '{' in format string %q", tmpl)
			}
			field, err := parseField(tmpl[i+1 : i+end])
			if err != nil {
				return nil, fmt.Errorf("format string %q: %w", tmpl, err)
			}
			if lit.Len() > 0 {
				t.parts = append(t.parts, fieldPart{lit: lit.String()})
				lit.Reset()
			}
			t.parts = append(t.parts, field)
			i += end
		default:
			lit.WriteByte(ch)
		}
	}
	if lit.Len() > 0 {
		t.parts = append(t.parts, fieldPart{lit: lit.String()})
	}
	return t, nil
}

func parseField(f string) (fieldPart, error) {
	var p fieldPart
	name, spec := f, ""
	if i := strings.IndexByte(f, ':'); i >= 0 {
		name, spec = f[:i], f[i+1:]
	}
	if i := strings.IndexByte(name, '!'); i >= 0 {
		conv := name[i+1:]
		name = name[:i]
		if conv != "r" && conv != "s" && conv != "a" {
			return p, fmt.Errorf("unknown conversion specifier %q", conv)
		}
		p.conv = 'r'
	}
	if name != "x" && name != "pos" {
		return p, fmt.Errorf("unknown field %q; want x or pos", name)
	}
	p.name = name
	var err error
	p.spec, err = parseFormatSpec(spec)
	if err != nil {
		return p, err
	}
	if p.conv == 0 && p.name == "pos" && !isFloatType(p.spec.typ) && p.spec.prec >= 0 {
		return p, fmt.Errorf("precision not allowed in integer format specifier %q", spec)
	}
	return p, nil
}

func (t *fieldTemplate) format(x float64, pos int) string {
	var b strings.Builder
	for _, p := range t.parts {
		switch {
		case p.name == "":
			b.WriteString(p.lit)
		case p.conv != 0:
			s := strconv.Itoa(pos)
			if p.name == "x" {
				s = reprFloat(x)
			}
			b.WriteString(p.spec.formatString(s))
		case p.name == "x":
			b.WriteString(p.spec.formatFloat(x))
		default:
			b.WriteString(p.spec.formatInt(int64(pos)))
		}
	}
	return b.String()
}

// A formatSpec is a parsed format specification:
//
//	[[fill]align][sign][#][0][width][grouping][.precision][type]
type formatSpec struct {
	fill     rune
	align    byte // '<', '>', '^', '=', or 0
	sign     byte // '+', '-', ' ', or 0
	alt      bool
	width    int
	grouping byte // ',', '_', or 0
	prec     int  // -1 if absent
	typ      byte // 0 if absent
}

func parseFormatSpec(s string) (formatSpec, error) {
	f := formatSpec{fill: ' ', prec: -1}
	i := 0
	isAlign := func(c byte) bool { return strings.IndexByte("<>^=", c) >= 0 }
	if r, n := utf8.DecodeRuneInString(s); n > 0 && n < len(s) && isAlign(s[n]) {
		f.fill, f.align = r, s[n]
		i = n + 1
	} else if len(s) > 0 && isAlign(s[0]) {
		f.align = s[0]
		i = 1
	}
	if i < len(s) && strings.IndexByte("+- ", s[i]) >= 0 {
		f.sign = s[i]
		i++
	}
	if i < len(s) && s[i] == '#' {
		f.alt = true
		i++
	}
	if i < len(s) && s[i] == '0' {
		if f.align == 0 {
			f.fill, f.align = '0', '='
		}
		i++
	}
	f.width, i = scanInt(s, i)
	if f.width < 0 {
		f.width = 0
	}
	if i < len(s) && (s[i] == ',' || s[i] == '_') {
		f.grouping = s[i]
		i++
	}
	if i < len(s) && s[i] == '.' {
		f.prec, i = scanInt(s, i+1)
		if f.prec < 0 {
			return f, fmt.Errorf("format specifier %q is missing precision", s)
		}
	}
	if i < len(s) {
		f.typ = s[i]
		i++
		if strings.IndexByte("bdoxXneEfFgG%", f.typ) < 0 {
			return f, fmt.Errorf("unknown format code %q", f.typ)
		}
	}
	if i != len(s) {
		return f, fmt.Errorf("invalid format specifier %q", s)
	}
	if isIntType(f.typ) && f.prec >= 0 {
		return f, fmt.Errorf("precision not allowed in integer format specifier %q", s)
	}
	return f, nil
}

func isIntType(t byte) bool {
	return t != 0 && strings.IndexByte("bdoxX", t) >= 0
}

func isFloatType(t byte) bool {
	return t != 0 && strings.IndexByte("eEfFgGn%", t) >= 0
}

// formatFloat formats x according to f. Integer presentation types
// truncate x toward zero.
func (f formatSpec) formatFloat(x float64) string {
	if isIntType(f.typ) && isFinite(x) {
		return f.formatBigInt(truncInt(x))
	}
	neg := math.Signbit(x) && !math.IsNaN(x)
	ax := math.Abs(x)
	if !isFinite(x) {
		return f.pad(neg, "", nonFinite(ax, f.typ == 'E' || f.typ == 'F' || f.typ == 'G', false, false), "")
	}

	prec := f.prec
	if prec < 0 && f.typ != 0 {
		prec = 6
	}
	var body, suffix string
	switch f.typ {
	case 0:
		if prec < 0 {
			body = reprFloat(ax)
		} else {
			body = f.shortG(ax, prec)
		}
	case 'n':
		body = f.fmtG(ax, prec, 'g')
	case 'g', 'G':
		body = f.fmtG(ax, prec, f.typ)
	case '%':
		body = strconv.FormatFloat(ax*100, 'f', prec, 64)
		suffix = "%"
	default:
		verb := "%." + strconv.Itoa(prec) + string(f.typ)
		if f.alt {
			verb = "%#." + strconv.Itoa(prec) + string(f.typ)
		}
		body = fmt.Sprintf(verb, ax)
	}
	return f.pad(neg, "", body, suffix)
}

func (f formatSpec) fmtG(x float64, prec int, verb byte) string {
	if prec == 0 {
		prec = 1
	}
	if f.alt {
		return fmt.Sprintf("%#."+strconv.Itoa(prec)+string(verb), x)
	}
	return strconv.FormatFloat(x, verb, prec, 64)
}

// shortG formats x with prec significant digits like %g, but switches
// to exponential notation one digit earlier and keeps a ".0" on
// integral fixed-point values.
func (f formatSpec) shortG(x float64, prec int) string {
	if prec == 0 {
		prec = 1
	}
	e := strconv.FormatFloat(x, 'e', prec-1, 64)
	i := strings.LastIndexByte(e, 'e')
	exp, _ := strconv.Atoi(e[i+1:])
	if exp < -4 || exp >= prec-1 {
		mant := e[:i]
		if !f.alt && strings.ContainsRune(mant, '.') {
			mant = strings.TrimRight(strings.TrimRight(mant, "0"), ".")
		}
		return mant + e[i:]
	}
	s := strconv.FormatFloat(x, 'f', prec-1-exp, 64)
	if !f.alt && strings.ContainsRune(s, '.') {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// truncInt returns the finite x truncated toward zero.
func truncInt(x float64) *big.Int {
	n, _ := big.NewFloat(math.Trunc(x)).Int(nil)
	return n
}

func (f formatSpec) formatInt(n int64) string {
	if isFloatType(f.typ) {
		return f.formatFloat(float64(n))
	}
	return f.formatBigInt(big.NewInt(n))
}

func (f formatSpec) formatBigInt(n *big.Int) string {
	neg := n.Sign() < 0
	u := new(big.Int).Abs(n)
	var body, prefix string
	switch f.typ {
	case 'b':
		body, prefix = u.Text(2), "0b"
	case 'o':
		body, prefix = u.Text(8), "0o"
	case 'x':
		body, prefix = u.Text(16), "0x"
	case 'X':
		body, prefix = strings.ToUpper(u.Text(16)), "0X"
	default:
		body = u.Text(10)
	}
	if !f.alt {
		prefix = ""
	}
	return f.pad(neg, prefix, body, "")
}

func (f formatSpec) formatString(s string) string {
	if f.prec >= 0 && utf8.RuneCountInString(s) > f.prec {
		s = string([]rune(s)[:f.prec])
	}
	align := f.align
	if align == 0 || align == '=' {
		align = '<'
	}
	return padTo(s, f.width, f.fill, align)
}

// pad assembles sign, prefix, body and suffix, applying grouping to
// the integer digits of body and padding to the field width.
func (f formatSpec) pad(neg bool, prefix, body, suffix string) string {
	sign := ""
	switch {
	case neg:
		sign = "-"
	case f.sign == '+':
		sign = "+"
	case f.sign == ' ':
		sign = " "
	}

	hex := f.typ == 'x' || f.typ == 'X'
	intEnd := len(body)
	for i := 0; i < len(body); i++ {
		if c := body[i]; !('0' <= c && c <= '9' || hex && ('a' <= c && c <= 'f' || 'A' <= c && c <= 'F')) {
			intEnd = i
			break
		}
	}
	digits, rest := body[:intEnd], body[intEnd:]+suffix

	group := 3
	if hex || f.typ == 'b' || f.typ == 'o' {
		group = 4
	}

	if f.align == '=' && f.fill == '0' && f.grouping != 0 {
		// Zero padding is grouped along with the digits.
		for {
			g := groupDigits(digits, f.grouping, group)
			if utf8.RuneCountInString(sign+prefix+g+rest) >= f.width {
				return sign + prefix + g + rest
			}
			digits = "0" + digits
		}
	}
	if f.grouping != 0 {
		digits = groupDigits(digits, f.grouping, group)
	}

	if f.align == '=' {
		n := f.width - utf8.RuneCountInString(sign+prefix+digits+rest)
		if n > 0 {
			return sign + prefix + strings.Repeat(string(f.fill), n) + digits + rest
		}
		return sign + prefix + digits + rest
	}
	align := f.align
	if align == 0 {
		align = '>'
	}
	return padTo(sign+prefix+digits+rest, f.width, f.fill, align)
}

func groupDigits(digits string, sep byte, n int) string {
	if len(digits) <= n {
		return digits
	}
	var b strings.Builder
	first := len(digits) % n
	if first == 0 {
		first = n
	}
	b.WriteString(digits[:first])
	for i := first; i < len(digits); i += n {
		b.WriteByte(sep)
		b.WriteString(digits[i : i+n])
	}
	return b.String()
}

func padTo(s string, width int, fill rune, align byte) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	switch align {
	case '<':
		return s + strings.Repeat(string(fill), n)
	case '^':
		return strings.Repeat(string(fill), n/2) + s + strings.Repeat(string(fill), n-n/2)
	}
	return strings.Repeat(string(fill), n) + s
}
