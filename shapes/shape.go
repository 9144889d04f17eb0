// SPDX-License-Identifier: MIT

package shapes

// Shape is anything that has an area.
//
// CalculateArea returns a non-negative area in squared units of the
// segments the shape was built from. Implementations are pure: the same
// shape always yields the same area.
type Shape interface {
	CalculateArea() float64
}

var (
	_ Shape = Circle{}
	_ Shape = Triangle{}
)
