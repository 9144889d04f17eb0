// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/shapecalc/primitives"
	"github.com/katalvlaran/shapecalc/shapes"
	"github.com/spf13/cobra"
)

func newCircleCmd(opts *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "circle <radius>",
		Short: "Print the area of a circle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := newFormatter(opts.Locale, opts.Precision)
			if err != nil {
				return err
			}

			radius, err := parseSegment("radius", args[0])
			if err != nil {
				return err
			}
			circle, err := shapes.NewCircle(radius)
			if err != nil {
				return fmt.Errorf("circle: %w", err)
			}

			return f.writeCircle(cmd.OutOrStdout(), circle)
		},
	}
}

func newTriangleCmd(opts *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "triangle <side1> <side2> <side3>",
		Short: "Print the area of a triangle and whether it is right",
		Long: "Builds a triangle from three side lengths. The sides must satisfy the triangle inequality. " +
			"Negative numbers must follow a -- separator.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := newFormatter(opts.Locale, opts.Precision)
			if err != nil {
				return err
			}

			sides := make([]primitives.LineSegment, 0, len(args))
			for i, arg := range args {
				side, err := parseSegment("side"+strconv.Itoa(i+1), arg)
				if err != nil {
					return err
				}
				sides = append(sides, side)
			}

			tri, err := shapes.NewTriangleFromSides(sides)
			if err != nil {
				return fmt.Errorf("triangle: %w", err)
			}

			return f.writeTriangle(cmd.OutOrStdout(), tri, tri.IsRightTriangleWithin(opts.RightTolerance))
		},
	}
}

// parseSegment parses a decimal length argument into a LineSegment.
func parseSegment(name, arg string) (primitives.LineSegment, error) {
	length, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return primitives.LineSegment{}, fmt.Errorf("parse %s %q: %w", name, arg, err)
	}

	seg, err := primitives.NewLineSegment(length)
	if err != nil {
		return primitives.LineSegment{}, fmt.Errorf("%s: %w", name, err)
	}

	return seg, nil
}
