// Package shapecalc is a small geometry value-object library: line segments,
// circles and triangles, validated at construction, with area and
// right-triangle calculations.
//
// What is inside:
//
//	primitives/    - LineSegment, the immutable positive length every shape is built from
//	shapes/        - the Shape capability plus Circle (π·r²) and Triangle (Heron's formula)
//	cmd/shapecalc/ - a command-line front end over the two packages
//
// Guarantees:
//
//   - Immutable values: no setters, constructors validate everything up front.
//   - Two error kinds: ErrInvalidArgument for malformed input and
//     shapes.ErrValidationFailed for sides that cannot form a triangle.
//   - No global state, no I/O, no locks: every value is safe to share.
//
// Quick example:
//
//	tri, err := shapes.NewTriangle(
//		primitives.MustLineSegment(3),
//		primitives.MustLineSegment(4),
//		primitives.MustLineSegment(5),
//	)
//	if err != nil {
//		return err
//	}
//	fmt.Println(tri.CalculateArea(), tri.IsRightTriangle()) // 6 true
//
//	go get github.com/katalvlaran/shapecalc
package shapecalc
