// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hashicorp/go-multierror"
)

// Warnings receives non-fatal diagnostics, such as SetParams on a
// locator without parameters or a locator producing an excessive
// number of ticks.
var Warnings = log.New(os.Stderr, "ticker: ", 0)

func warnf(format string, args ...interface{}) {
	Warnings.Printf("warning: "+format, args...)
}

var (
	// ErrUnknownParam is reported for a parameter a locator does
	// not have.
	ErrUnknownParam = errors.New("unknown parameter")

	// ErrInvalidParam is reported for a parameter whose value has
	// the wrong type or is out of range.
	ErrInvalidParam = errors.New("invalid parameter")
)

// A ParamError describes a parameter rejected by SetParams.
type ParamError struct {
	Locator string // Locator type, e.g. "*ticker.MaxNLocator"
	Param   string // Parameter name
	Err     error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: parameter %q: %v", e.Locator, e.Param, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// A Param is a named locator parameter for SetParams. Use the
// constructor functions in this package to create them.
type Param struct {
	name  string
	value interface{}
}

// Name returns the parameter's name.
func (p Param) Name() string {
	return p.name
}

func (p Param) String() string {
	return fmt.Sprintf("%s=%v", p.name, p.value)
}

// NBins sets the maximum number of intervals of a MaxNLocator, or the
// number of labels kept by a FixedLocator. For MaxNLocator, 0 selects
// an automatic count.
func NBins(n int) Param { return Param{"nbins", n} }

// Steps sets the acceptable tick multipliers of a MaxNLocator. A nil
// slice restores the default {1, 2, 2.5, 5, 10}.
func Steps(steps ...float64) Param { return Param{"steps", steps} }

// IntegerTicks restricts a MaxNLocator to integer ticks.
func IntegerTicks(b bool) Param { return Param{"integer", b} }

// Symmetric makes a MaxNLocator's interval symmetric about zero.
func Symmetric(b bool) Param { return Param{"symmetric", b} }

// PruneTicks sets which outermost ticks a MaxNLocator removes.
func PruneTicks(p Prune) Param { return Param{"prune", p} }

// MinNTicks sets the minimum number of visible ticks of a
// MaxNLocator. Values below 1 are raised to 1.
func MinNTicks(n int) Param { return Param{"min_n_ticks", n} }

// RoundNumbers makes a MaxNLocator choose a step that lets nbins
// steps cover the whole interval.
func RoundNumbers(b bool) Param { return Param{"round_numbers", b} }

// NumTicks sets the tick count of a LinearLocator or the maximum
// number of major ticks of a LogLocator or SymmetricalLogLocator.
func NumTicks(n int) Param { return Param{"numticks", n} }

// Presets sets the fixed tick lists of a LinearLocator.
func Presets(p map[Interval][]float64) Param { return Param{"presets", p} }

// Base sets the step of a MultipleLocator or IndexLocator, or the
// logarithm base of a log locator.
func Base(b float64) Param { return Param{"base", b} }

// Offset sets the first tick of an IndexLocator relative to the view
// start.
func Offset(o float64) Param { return Param{"offset", o} }

// Subs sets the mantissas at which a log locator places ticks in each
// decade.
func Subs(subs ...float64) Param { return Param{"subs", subs} }

// SubsModeParam sets how a LogLocator chooses its mantissas.
func SubsModeParam(m SubsMode) Param { return Param{"subs_mode", m} }

// NumDecs sets the numdecs parameter of a LogLocator.
func NumDecs(n int) Param { return Param{"numdecs", n} }

// LinThresh sets the half-width of the linear region of a
// SymmetricalLogLocator.
func LinThresh(t float64) Param { return Param{"linthresh", t} }

// MinorTicks selects minor rather than major ticks for a
// LogitLocator.
func MinorTicks(b bool) Param { return Param{"minor", b} }

// NDivs sets the number of subdivisions of an AutoMinorLocator; 0
// selects it automatically.
func NDivs(n int) Param { return Param{"ndivs", n} }

// paramSet accumulates SetParams errors for one locator.
type paramSet struct {
	locator string
	err     *multierror.Error
}

func newParamSet(l interface{}) *paramSet {
	return &paramSet{locator: fmt.Sprintf("%T", l)}
}

func (s *paramSet) fail(p Param, err error) {
	s.err = multierror.Append(s.err, &ParamError{s.locator, p.name, err})
}

func (s *paramSet) unknown(p Param) {
	s.fail(p, ErrUnknownParam)
}

func (s *paramSet) invalid(p Param, format string, args ...interface{}) {
	s.fail(p, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidParam}, args...)...))
}

func (s *paramSet) badType(p Param, want string) {
	s.invalid(p, "want %s, got %T", want, p.value)
}

func (s *paramSet) int(p Param) (int, bool) {
	v, ok := p.value.(int)
	if !ok {
		s.badType(p, "int")
	}
	return v, ok
}

func (s *paramSet) float(p Param) (float64, bool) {
	switch v := p.value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	s.badType(p, "float64")
	return 0, false
}

func (s *paramSet) bool(p Param) (bool, bool) {
	v, ok := p.value.(bool)
	if !ok {
		s.badType(p, "bool")
	}
	return v, ok
}

func (s *paramSet) floats(p Param) ([]float64, bool) {
	v, ok := p.value.([]float64)
	if !ok {
		s.badType(p, "[]float64")
	}
	return v, ok
}

// result returns the accumulated errors, or nil.
func (s *paramSet) result() error {
	return s.err.ErrorOrNil()
}
