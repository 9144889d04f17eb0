// SPDX-License-Identifier: MIT

package primitives

import (
	"fmt"
	"math"
	"strconv"
)

// LineSegment is an immutable positive length.
//
// The only way to obtain a valid LineSegment is NewLineSegment (or
// MustLineSegment). The zero value has length 0 and reports IsValid() == false.
type LineSegment struct {
	length float64
}

// NewLineSegment returns a segment of the given length.
//
// Errors:
//   - ErrInvalidArgument if length <= 0, NaN or +Inf.
//
// Complexity: O(1).
func NewLineSegment(length float64) (LineSegment, error) {
	if err := validateLength(length); err != nil {
		return LineSegment{}, err
	}

	return LineSegment{length: length}, nil
}

// MustLineSegment is like NewLineSegment but panics on invalid input.
// Intended for constants, examples and tests.
func MustLineSegment(length float64) LineSegment {
	seg, err := NewLineSegment(length)
	if err != nil {
		panic(err)
	}

	return seg
}

// Length returns the length of the segment.
func (s LineSegment) Length() float64 { return s.length }

// IsValid reports whether s satisfies the segment invariant. It is false
// only for values that did not come from NewLineSegment, such as LineSegment{}.
func (s LineSegment) IsValid() bool {
	return validateLength(s.length) == nil
}

func (s LineSegment) String() string {
	return "LineSegment(" + strconv.FormatFloat(s.length, 'g', -1, 64) + ")"
}

// validateLength enforces the finite, strictly positive length policy.
// NaN fails the "> 0" comparison, so only +Inf needs an explicit check.
func validateLength(length float64) error {
	if !(length > 0) {
		return fmt.Errorf("%w: the length of the segment must be a positive number, got %g", ErrInvalidArgument, length)
	}
	if math.IsInf(length, 1) {
		return fmt.Errorf("%w: the length of the segment must be finite, got %g", ErrInvalidArgument, length)
	}

	return nil
}
