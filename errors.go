package optops

import "errors"

// Errors reported by the checked operations.
// Each checked division reports at most one of them: a zero divisor is
// detected before overflow, so the two are mutually exclusive.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("overflow")
)
