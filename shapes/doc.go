// SPDX-License-Identifier: MIT

// Package shapes implements area-bearing shapes built from primitives.LineSegment.
//
// What is here:
//   - Shape  - the capability contract: CalculateArea() float64.
//   - Circle - one radius segment, area π·r².
//   - Triangle - three side segments, validated against the triangle
//     inequality, area by Heron's formula, approximate right-angle check.
//
// All shapes are immutable value types. Constructors validate everything up
// front and either return a fully valid shape or the zero value and an error;
// methods never fail, and Triangle.Sides returns a fresh copy on each call.
//
// Errors:
//   - ErrInvalidArgument  - malformed input (a side list that is not exactly
//     three long, or a segment that was never constructed). It is the same
//     sentinel as primitives.ErrInvalidArgument.
//   - ErrValidationFailed - three well-formed sides that cannot form a
//     triangle.
//
// Usage:
//
//	tri, err := shapes.NewTriangle(
//		primitives.MustLineSegment(3),
//		primitives.MustLineSegment(4),
//		primitives.MustLineSegment(5),
//	)
//	if errors.Is(err, shapes.ErrValidationFailed) {
//		// geometrically impossible
//	}
//	fmt.Println(tri.CalculateArea(), tri.IsRightTriangle()) // 6 true
package shapes
