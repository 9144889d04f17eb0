// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/shapecalc/shapes"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// formatter renders shapes as aligned "key  value" lines with
// locale-aware numbers.
type formatter struct {
	printer   *message.Printer
	precision int
}

func newFormatter(locale string, precision int) (formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return formatter{}, fmt.Errorf("locale %q: %w", locale, err)
	}

	return formatter{printer: message.NewPrinter(tag), precision: precision}, nil
}

// decimal formats v with exactly f.precision fraction digits.
func (f formatter) decimal(v float64) string {
	return f.printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(f.precision),
		number.MaxFractionDigits(f.precision),
	))
}

func (f formatter) writeCircle(w io.Writer, c shapes.Circle) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "shape\tcircle")
	fmt.Fprintf(tw, "radius\t%s\n", f.decimal(c.Radius().Length()))
	fmt.Fprintf(tw, "area\t%s\n", f.decimal(c.CalculateArea()))
	return tw.Flush()
}

func (f formatter) writeTriangle(w io.Writer, t shapes.Triangle, right bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "shape\ttriangle")
	for i, side := range t.Sides() {
		fmt.Fprintf(tw, "side%d\t%s\n", i+1, f.decimal(side.Length()))
	}
	fmt.Fprintf(tw, "area\t%s\n", f.decimal(t.CalculateArea()))
	fmt.Fprintf(tw, "right\t%s\n", yesNo(right))
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
