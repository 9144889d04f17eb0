// SPDX-License-Identifier: MIT
// Package: shapes
//
// validators.go - construction-time checks shared by Circle and Triangle.
//
// All checks are pure, allocate nothing on the success path and return
// wrapped sentinels from errors.go. None of them panic.

package shapes

import (
	"fmt"

	"github.com/katalvlaran/shapecalc/primitives"
)

// sidesInTriangle is the exact number of sides NewTriangleFromSides accepts.
const sidesInTriangle = 3

// validateSegment rejects segments that bypassed primitives.NewLineSegment.
func validateSegment(name string, seg primitives.LineSegment) error {
	if !seg.IsValid() {
		return fmt.Errorf("%s: %w: segment length must be a positive number, got %g",
			name, ErrInvalidArgument, seg.Length())
	}

	return nil
}

// validateSideCount checks that a side list has exactly three entries.
func validateSideCount(sides []primitives.LineSegment) error {
	if len(sides) != sidesInTriangle {
		return fmt.Errorf("%w: the slice must contain %d sides, got %d",
			ErrInvalidArgument, sidesInTriangle, len(sides))
	}

	return nil
}

// validateTriangle runs the full Triangle check: every side is a valid
// segment, then the triangle inequality holds.
func validateTriangle(a, b, c primitives.LineSegment) error {
	if err := validateSegment("side1", a); err != nil {
		return err
	}
	if err := validateSegment("side2", b); err != nil {
		return err
	}
	if err := validateSegment("side3", c); err != nil {
		return err
	}
	if !satisfiesTriangleInequality(a.Length(), b.Length(), c.Length()) {
		return fmt.Errorf("%w: %s (sides %g, %g, %g)",
			ErrValidationFailed, impossibleTriangleMsg, a.Length(), b.Length(), c.Length())
	}

	return nil
}

// satisfiesTriangleInequality reports whether every pair of sides is strictly
// longer than the remaining side. All three permutations are checked.
func satisfiesTriangleInequality(a, b, c float64) bool {
	return a+b > c &&
		b+c > a &&
		a+c > b
}
