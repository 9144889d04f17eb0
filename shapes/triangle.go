// SPDX-License-Identifier: MIT

package shapes

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shapecalc/primitives"
)

// DefaultRightTolerance is the absolute tolerance used by IsRightTriangle.
// A side must lie strictly closer than this to √(a²+b²) of the other two;
// a difference of exactly 0.01 is not a right triangle.
const DefaultRightTolerance = 0.01

// Triangle is a triangle described by its three side lengths.
//
// Invariants, established by the constructors:
//   - every side is a valid primitives.LineSegment;
//   - side1+side2 > side3, side2+side3 > side1, side1+side3 > side2.
type Triangle struct {
	side1, side2, side3 primitives.LineSegment
}

// NewTriangle returns the triangle with sides side1, side2 and side3.
//
// Errors:
//   - ErrInvalidArgument  if any side is a zero-value segment;
//   - ErrValidationFailed if the sides violate the triangle inequality.
//
// On error the zero Triangle is returned.
func NewTriangle(side1, side2, side3 primitives.LineSegment) (Triangle, error) {
	if err := validateTriangle(side1, side2, side3); err != nil {
		return Triangle{}, err
	}

	return Triangle{side1: side1, side2: side2, side3: side3}, nil
}

// NewTriangleFromSides is NewTriangle taking the sides as an ordered slice.
// The slice must contain exactly three segments, otherwise the error is
// ErrInvalidArgument. The slice is not retained.
func NewTriangleFromSides(sides []primitives.LineSegment) (Triangle, error) {
	if err := validateSideCount(sides); err != nil {
		return Triangle{}, err
	}

	return NewTriangle(sides[0], sides[1], sides[2])
}

// Side1 returns the first side.
func (t Triangle) Side1() primitives.LineSegment { return t.side1 }

// Side2 returns the second side.
func (t Triangle) Side2() primitives.LineSegment { return t.side2 }

// Side3 returns the third side.
func (t Triangle) Side3() primitives.LineSegment { return t.side3 }

// Sides returns [side1, side2, side3] in a newly allocated slice.
// Modifying the result never affects t.
func (t Triangle) Sides() []primitives.LineSegment {
	return []primitives.LineSegment{t.side1, t.side2, t.side3}
}

// CalculateArea returns the area by Heron's formula:
//
//	s    = (a+b+c)/2
//	area = √(s·(s−a)·(s−b)·(s−c))
//
// The triangle inequality guarantees every factor is positive. On
// near-degenerate sides rounding can leave the product a few ulps below
// zero; that residue is clamped so the result is 0, never NaN.
func (t Triangle) CalculateArea() float64 {
	a, b, c := t.side1.Length(), t.side2.Length(), t.side3.Length()
	s := (a + b + c) / 2

	radicand := s * (s - a) * (s - b) * (s - c)
	if radicand < 0 {
		radicand = 0
	}

	return math.Sqrt(radicand)
}

// IsRightTriangle reports whether, for some side c and the other two sides
// a and b, |c − √(a²+b²)| < DefaultRightTolerance.
func (t Triangle) IsRightTriangle() bool {
	return t.IsRightTriangleWithin(DefaultRightTolerance)
}

// IsRightTriangleWithin is IsRightTriangle with a caller-chosen absolute
// tolerance. A negative tol is used by its absolute value; NaN yields false.
func (t Triangle) IsRightTriangleWithin(tol float64) bool {
	if math.IsNaN(tol) {
		return false
	}
	tol = math.Abs(tol)

	a, b, c := t.side1.Length(), t.side2.Length(), t.side3.Length()

	return isHypotenuse(a, b, c, tol) ||
		isHypotenuse(b, a, c, tol) ||
		isHypotenuse(c, a, b, tol)
}

// isHypotenuse reports whether h is within tol of √(x²+y²).
func isHypotenuse(h, x, y, tol float64) bool {
	return math.Abs(h-math.Hypot(x, y)) < tol
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle(%g, %g, %g)", t.side1.Length(), t.side2.Length(), t.side3.Length())
}
