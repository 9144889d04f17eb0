// SPDX-License-Identifier: MIT

package primitives

import "errors"

// ErrInvalidArgument is returned when a segment length is not a finite
// positive number. Callers match it with errors.Is; the returned error
// carries the offending value as context.
var ErrInvalidArgument = errors.New("primitives: invalid argument")
