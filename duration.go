package optops

import "time"

// Duration is a [time.Duration] that participates in option arithmetic,
// divided by an unsigned count. It implements every operand interface
// with a right-hand type of uint32.
//
// Dividing by a count of at least one can only shrink the magnitude, so
// overflow is impossible: CheckedDiv reports [ErrDivisionByZero] at most,
// OverflowingDiv always reports false, and WrappingDiv equals Div.
//
// For two operands of type [time.Duration] itself, use
// [github.com/a-kenji/optops/intops] instead.
type Duration time.Duration

// OptionOperand implements the [Operand] marker.
func (Duration) OptionOperand() {}

// Div returns the duration divided by n.
// Div panics if n is 0.
func (d Duration) Div(n uint32) Duration {
	return d / Duration(n)
}

// DivAssign divides the duration in place by n.
// DivAssign panics if n is 0.
func (d *Duration) DivAssign(n uint32) {
	*d /= Duration(n)
}

// CheckedDiv is like [Duration.Div] but returns [ErrDivisionByZero]
// instead of panicking if n is 0.
func (d Duration) CheckedDiv(n uint32) (Duration, error) {
	if n == 0 {
		return 0, ErrDivisionByZero
	}
	return d / Duration(n), nil
}

// OverflowingDiv returns the duration divided by n and a flag that is
// always false.
// OverflowingDiv panics if n is 0.
func (d Duration) OverflowingDiv(n uint32) (Duration, bool) {
	return d / Duration(n), false
}

// WrappingDiv returns the duration divided by n.
// WrappingDiv panics if n is 0.
func (d Duration) WrappingDiv(n uint32) Duration {
	return d / Duration(n)
}

// String implements the [fmt.Stringer] interface, formatting the
// duration the way [time.Duration.String] does.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// Std returns the duration as a [time.Duration].
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
