// SPDX-License-Identifier: MIT

// Package primitives defines the scalar building blocks that every shape in
// shapecalc is assembled from.
//
// LineSegment is an immutable, strictly positive length. It is a plain value
// type: two segments with the same length compare equal with ==, can be
// copied freely and shared between goroutines without synchronization.
//
// Usage:
//
//	import "github.com/katalvlaran/shapecalc/primitives"
//
//	seg, err := primitives.NewLineSegment(5)
//	if err != nil {
//		// errors.Is(err, primitives.ErrInvalidArgument)
//	}
//	fmt.Println(seg.Length()) // 5
//
// Validation policy:
//   - length must be finite and > 0;
//   - NaN, ±Inf, zero and negative lengths fail with ErrInvalidArgument;
//   - the zero value LineSegment{} is not a valid segment (IsValid == false).
package primitives
