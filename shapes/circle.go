// SPDX-License-Identifier: MIT

package shapes

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shapecalc/primitives"
)

// Circle is a circle described by its radius.
type Circle struct {
	radius primitives.LineSegment
}

// NewCircle returns a circle with the given radius.
//
// A radius obtained from primitives.NewLineSegment is always accepted; the
// only failure is a zero-value segment, reported as ErrInvalidArgument.
func NewCircle(radius primitives.LineSegment) (Circle, error) {
	if err := validateSegment("radius", radius); err != nil {
		return Circle{}, err
	}

	return Circle{radius: radius}, nil
}

// Radius returns the radius segment.
func (c Circle) Radius() primitives.LineSegment { return c.radius }

// CalculateArea returns π·r².
func (c Circle) CalculateArea() float64 {
	r := c.radius.Length()
	return math.Pi * r * r
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle(r=%g)", c.radius.Length())
}
