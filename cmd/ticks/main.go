// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ticks prints the tick positions and labels chosen for an
// axis view.
//
// Usage:
//
//	ticks [flags] MIN MAX
//
// Each major tick is printed as a "value<TAB>label" line, followed by
// the offset string if the formatter factored one out. With -minor,
// minor ticks are printed as well. With -ruler=WIDTH, the ticks are
// also drawn on a text axis WIDTH columns wide.
//
// A view with a negative bound must follow "--", as in
// "ticks -- -5 5".
package main

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/aclements/go-ticks/ticker"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("202"))
	offsetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	rulerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "ticks [flags] MIN MAX",
		Short: "Print the ticks placed on an axis view",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.changed = cmd.Flags().Changed
			return run(cmd.OutOrStdout(), &o, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVarP(&o.locator, "locator", "l", "auto", "tick `locator`: auto, maxn, linear, multiple, index, log, symlog, logit, fixed or null")
	f.StringVarP(&o.formatter, "formatter", "f", "scalar", "tick `formatter`: scalar, log, logexp, logmath, logsci, percent, eng, printf, format or null")

	f.IntVar(&o.nbins, "nbins", 0, "maximum number of intervals, or 0 for automatic")
	f.Float64SliceVar(&o.steps, "steps", nil, "acceptable tick steps in [1, 10]")
	f.BoolVar(&o.integer, "integer", false, "place ticks only at integers")
	f.BoolVar(&o.symmetric, "symmetric", false, "make the view symmetric about zero")
	f.StringVar(&o.prune, "prune", "", "drop the `edge` tick: lower, upper or both")
	f.IntVar(&o.minNTicks, "min-n-ticks", 2, "minimum number of ticks in the view")
	f.IntVar(&o.numTicks, "numticks", 0, "number of ticks for linear, or maximum for log and symlog")
	f.Float64Var(&o.base, "base", 10, "multiple or log base")
	f.Float64Var(&o.offset, "offset", 0, "index locator offset")
	f.Float64SliceVar(&o.subs, "subs", nil, "log mantissas of ticks in each decade")
	f.Float64Var(&o.linThresh, "linthresh", 1, "symlog linear threshold")
	f.Float64SliceVar(&o.locs, "locs", nil, "fixed tick positions")
	f.BoolVar(&o.minor, "minor", false, "also place minor ticks")
	f.IntVar(&o.ndivs, "ndivs", 0, "minor subdivisions of each major interval, or 0 for automatic")

	f.StringVar(&o.format, "format", "", "printf or format template")
	f.Float64Var(&o.xmax, "xmax", 100, "percent value that is 100%")
	f.IntVar(&o.decimals, "decimals", ticker.AutoDecimals, "percent decimal places, or -1 for automatic")
	f.StringVar(&o.symbol, "symbol", "%", "percent symbol")
	f.StringVar(&o.unit, "unit", "", "eng unit")
	f.IntVar(&o.places, "places", -1, "eng decimal places, or -1 for automatic")
	f.BoolVar(&o.unicodeMinus, "unicode-minus", false, "use U+2212 for minus signs")
	f.BoolVar(&o.mathText, "mathtext", false, "format scalar labels as mathtext")
	f.BoolVar(&o.labelOnlyBase, "label-only-base", false, "label only powers of the log base")

	f.IntVar(&o.ruler, "ruler", 0, "draw the ticks on a text axis `width` columns wide")
	return cmd
}

func main() {
	log.SetPrefix("ticks: ")
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, o *options, args []string) error {
	var view [2]float64
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("bad view bound %q: %w", arg, err)
		}
		view[i] = x
	}

	a, err := o.axis()
	if err != nil {
		return err
	}
	a.SetView(view[0], view[1])
	ticks, err := a.Ticks()
	if err != nil {
		return err
	}

	var nMajor, nMinor int
	for _, t := range ticks {
		if t.Minor {
			nMinor++
		} else {
			nMajor++
		}
	}

	printTicks(w, "major", ticks, false)
	if off := a.OffsetString(); off != "" {
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("offset"), offsetStyle.Render(off))
	}
	if o.minor {
		printTicks(w, "minor", ticks, true)
	}

	if o.ruler > 0 {
		s, err := o.rulerScale(a.View())
		if err != nil {
			return err
		}
		line, labels := ruler(s, o.ruler, ticks)
		fmt.Fprintln(w, rulerStyle.Render(line))
		fmt.Fprintln(w, labels)
	}

	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%s major, %s minor ticks",
		humanize.Comma(int64(nMajor)), humanize.Comma(int64(nMinor)))))
	return nil
}

func printTicks(w io.Writer, kind string, ticks []ticker.Tick, minor bool) {
	fmt.Fprintln(w, headerStyle.Render(kind))
	for _, t := range ticks {
		if t.Minor != minor {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", strconv.FormatFloat(t.Value, 'g', -1, 64), t.Label)
	}
}
