// Package combin: sentinel error set for the exact integer functions.
// The float64 functions never return these; they follow the NaN /
// +Inf conventions of the rest of the kernel.

package combin

import "errors"

var (
	// ErrDomain is returned for invalid index pairs: negative n or k,
	// or k > n.
	ErrDomain = errors.New("combin: arguments outside the valid index range")

	// ErrOverflow is returned when an exact result does not fit in an
	// int64.
	ErrOverflow = errors.New("combin: result overflows int64")
)
