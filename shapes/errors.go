// SPDX-License-Identifier: MIT

package shapes

import (
	"errors"

	"github.com/katalvlaran/shapecalc/primitives"
)

var (
	// ErrInvalidArgument signals malformed input: a side list whose length is
	// not 3, or a LineSegment that did not come from its constructor.
	// It aliases primitives.ErrInvalidArgument so a single errors.Is check
	// covers segment and shape construction.
	ErrInvalidArgument = primitives.ErrInvalidArgument

	// ErrValidationFailed signals that three valid sides violate the triangle
	// inequality.
	ErrValidationFailed = errors.New("shapes: validation failed")
)

// impossibleTriangleMsg is the detail attached to ErrValidationFailed.
const impossibleTriangleMsg = "A triangle with such sides cannot exist; " +
	"the sum of lengths of two sides must be greater than the third side"
