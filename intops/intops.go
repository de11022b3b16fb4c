// Package intops provides option-arithmetic division for the built-in
// integer types.
//
// It mirrors the call-shape grid of the root package, instantiated for
// any type in [constraints.Integer] with both operands of the same type.
// That covers the fixed-width signed and unsigned primitives as well as
// every defined type whose underlying type is an integer, such as
// time.Duration.
//
// The plain, assigning, overflowing, and wrapping families panic on a
// zero divisor, exactly like the / operator. The checked family reports
// [optops.ErrDivisionByZero] and [optops.ErrOverflow] instead; for an
// integer type, overflow happens only when the minimum value of a signed
// type is divided by minus one.
package intops

import (
	"golang.org/x/exp/constraints"

	"github.com/a-kenji/optops"
)

// divOverflows reports whether a / b overflows. Integer division
// overflows only when a is the minimum value of a signed type and b is
// minus one; the quotient of unsigned operands always fits.
func divOverflows[T constraints.Integer](a, b T) bool {
	var minusOne T
	minusOne-- // -1 for a signed T, the maximum value for an unsigned T
	if minusOne > 0 {
		return false
	}
	// a is the minimum value iff it is negative and equal to its own
	// negation.
	return b == minusOne && a < 0 && -a == a
}

func checkedDiv[T constraints.Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, optops.ErrDivisionByZero
	}
	if divOverflows(a, b) {
		return 0, optops.ErrOverflow
	}
	return a / b, nil
}

func overflowingDiv[T constraints.Integer](a, b T) (T, bool) {
	if divOverflows(a, b) {
		return a, true
	}
	return a / b, false
}

func wrappingDiv[T constraints.Integer](a, b T) T {
	if divOverflows(a, b) {
		return a
	}
	return a / b
}

// Div returns the quotient of lhs and rhs.
// Div panics if rhs is 0.
func Div[T constraints.Integer](lhs, rhs T) optops.Option[T] {
	return optops.Some(lhs / rhs)
}

// DivOpt returns the quotient of lhs and the value held by rhs,
// or None if rhs is None.
// DivOpt panics if rhs holds 0.
func DivOpt[T constraints.Integer](lhs T, rhs optops.Option[T]) optops.Option[T] {
	r, ok := rhs.Get()
	if !ok {
		return optops.None[T]()
	}
	return optops.Some(lhs / r)
}

// DivRef is like [DivOpt] but reads the right operand through a pointer,
// leaving the referenced option untouched. A nil rhs reads as None.
func DivRef[T constraints.Integer](lhs T, rhs *optops.Option[T]) optops.Option[T] {
	if rhs == nil {
		return optops.None[T]()
	}
	return DivOpt(lhs, *rhs)
}

// OptDiv returns the quotient of the value held by lhs and rhs,
// or None if lhs is None.
func OptDiv[T constraints.Integer](lhs optops.Option[T], rhs T) optops.Option[T] {
	l, ok := lhs.Get()
	if !ok {
		return optops.None[T]()
	}
	return optops.Some(l / rhs)
}

// OptDivOpt returns the quotient of the values held by lhs and rhs,
// or None if either is None.
func OptDivOpt[T constraints.Integer](lhs, rhs optops.Option[T]) optops.Option[T] {
	l, ok := lhs.Get()
	if !ok {
		return optops.None[T]()
	}
	return DivOpt(l, rhs)
}

// OptDivRef is like [OptDivOpt] but reads the right operand through a
// pointer, leaving the referenced option untouched. A nil rhs reads as
// None.
func OptDivRef[T constraints.Integer](lhs optops.Option[T], rhs *optops.Option[T]) optops.Option[T] {
	if rhs == nil {
		return optops.None[T]()
	}
	return OptDivOpt(lhs, *rhs)
}

// DivAssign divides lhs by rhs in place.
// DivAssign panics if rhs is 0.
func DivAssign[T constraints.Integer](lhs *T, rhs T) {
	*lhs /= rhs
}

// DivAssignOpt divides lhs in place by the value held by rhs.
// lhs is unchanged if rhs is None.
func DivAssignOpt[T constraints.Integer](lhs *T, rhs optops.Option[T]) {
	if r, ok := rhs.Get(); ok {
		*lhs /= r
	}
}

// DivAssignRef is like [DivAssignOpt] but reads the right operand through
// a pointer, leaving the referenced option untouched. A nil rhs reads as
// None.
func DivAssignRef[T constraints.Integer](lhs *T, rhs *optops.Option[T]) {
	if rhs != nil {
		DivAssignOpt(lhs, *rhs)
	}
}

// OptDivAssign divides the value held by lhs in place by rhs.
// lhs is unchanged if it is None.
func OptDivAssign[T constraints.Integer](lhs *optops.Option[T], rhs T) {
	if lhs == nil {
		return
	}
	if l, ok := lhs.Get(); ok {
		*lhs = optops.Some(l / rhs)
	}
}

// OptDivAssignOpt divides the value held by lhs in place by the value
// held by rhs. lhs is unchanged if either option is None.
func OptDivAssignOpt[T constraints.Integer](lhs *optops.Option[T], rhs optops.Option[T]) {
	if r, ok := rhs.Get(); ok {
		OptDivAssign(lhs, r)
	}
}

// OptDivAssignRef is like [OptDivAssignOpt] but reads the right operand
// through a pointer, leaving the referenced option untouched. A nil rhs
// reads as None.
func OptDivAssignRef[T constraints.Integer](lhs *optops.Option[T], rhs *optops.Option[T]) {
	if rhs != nil {
		OptDivAssignOpt(lhs, *rhs)
	}
}

// CheckedDiv returns the quotient of lhs and rhs.
//
// CheckedDiv never panics: it returns [optops.ErrDivisionByZero] if rhs
// is 0 and [optops.ErrOverflow] if lhs is the minimum value of a signed
// type and rhs is -1.
func CheckedDiv[T constraints.Integer](lhs, rhs T) (optops.Option[T], error) {
	v, err := checkedDiv(lhs, rhs)
	if err != nil {
		return optops.None[T](), err
	}
	return optops.Some(v), nil
}

// CheckedDivOpt returns the quotient of lhs and the value held by rhs,
// or (None, nil) if rhs is None. Absence is checked before the division
// is attempted.
func CheckedDivOpt[T constraints.Integer](lhs T, rhs optops.Option[T]) (optops.Option[T], error) {
	r, ok := rhs.Get()
	if !ok {
		return optops.None[T](), nil
	}
	return CheckedDiv(lhs, r)
}

// CheckedDivRef is like [CheckedDivOpt] but reads the right operand
// through a pointer, leaving the referenced option untouched. A nil rhs
// reads as None.
func CheckedDivRef[T constraints.Integer](lhs T, rhs *optops.Option[T]) (optops.Option[T], error) {
	if rhs == nil {
		return optops.None[T](), nil
	}
	return CheckedDivOpt(lhs, *rhs)
}

// OptCheckedDiv returns the quotient of the value held by lhs and rhs,
// or (None, nil) if lhs is None.
func OptCheckedDiv[T constraints.Integer](lhs optops.Option[T], rhs T) (optops.Option[T], error) {
	l, ok := lhs.Get()
	if !ok {
		return optops.None[T](), nil
	}
	return CheckedDiv(l, rhs)
}

// OptCheckedDivOpt returns the quotient of the values held by lhs and
// rhs, or (None, nil) if either is None.
func OptCheckedDivOpt[T constraints.Integer](lhs, rhs optops.Option[T]) (optops.Option[T], error) {
	l, ok := lhs.Get()
	if !ok {
		return optops.None[T](), nil
	}
	return CheckedDivOpt(l, rhs)
}

// OptCheckedDivRef is like [OptCheckedDivOpt] but reads the right operand
// through a pointer, leaving the referenced option untouched. A nil rhs
// reads as None.
func OptCheckedDivRef[T constraints.Integer](lhs optops.Option[T], rhs *optops.Option[T]) (optops.Option[T], error) {
	if rhs == nil {
		return optops.None[T](), nil
	}
	return OptCheckedDivOpt(lhs, *rhs)
}

// OverflowingDiv returns the quotient of lhs and rhs along with a flag
// that is true exactly when the exact quotient was not representable, in
// which case lhs itself is returned.
// OverflowingDiv panics if rhs is 0.
func OverflowingDiv[T constraints.Integer](lhs, rhs T) (optops.Option[T], bool) {
	v, over := overflowingDiv(lhs, rhs)
	return optops.Some(v), over
}

// OverflowingDivOpt returns the quotient of lhs and the value held by
// rhs, or (None, false) if rhs is None. The flag is meaningful only when
// the option is present.
func OverflowingDivOpt[T constraints.Integer](lhs T, rhs optops.Option[T]) (optops.Option[T], bool) {
	r, ok := rhs.Get()
	if !ok {
		return optops.None[T](), false
	}
	return OverflowingDiv(lhs, r)
}

// OverflowingDivRef is like [OverflowingDivOpt] but reads the right
// operand through a pointer, leaving the referenced option untouched.
// A nil rhs reads as None.
func OverflowingDivRef[T constraints.Integer](lhs T, rhs *optops.Option[T]) (optops.Option[T], bool) {
	if rhs == nil {
		return optops.None[T](), false
	}
	return OverflowingDivOpt(lhs, *rhs)
}

// OptOverflowingDiv returns the quotient of the value held by lhs and
// rhs, or (None, false) if lhs is None.
func OptOverflowingDiv[T constraints.Integer](lhs optops.Option[T], rhs T) (optops.Option[T], bool) {
	l, ok := lhs.Get()
	if !ok {
		return optops.None[T](), false
	}
	return OverflowingDiv(l, rhs)
}

// OptOverflowingDivOpt returns the quotient of the values held by lhs
// and rhs, or (None, false) if either is None.
func OptOverflowingDivOpt[T constraints.Integer](lhs, rhs optops.Option[T]) (optops.Option[T], bool) {
	l, ok := lhs.Get()
	if !ok {
		return optops.None[T](), false
	}
	return OverflowingDivOpt(l, rhs)
}

// OptOverflowingDivRef is like [OptOverflowingDivOpt] but reads the right
// operand through a pointer, leaving the referenced option untouched.
// A nil rhs reads as None.
func OptOverflowingDivRef[T constraints.Integer](lhs optops.Option[T], rhs *optops.Option[T]) (optops.Option[T], bool) {
	if rhs == nil {
		return optops.None[T](), false
	}
	return OptOverflowingDivOpt(lhs, *rhs)
}

// WrappingDiv returns the quotient of lhs and rhs, wrapping around at
// the numeric bounds instead of overflowing: the minimum value of a
// signed type divided by -1 is the minimum value again.
// WrappingDiv panics if rhs is 0.
func WrappingDiv[T constraints.Integer](lhs, rhs T) optops.Option[T] {
	return optops.Some(wrappingDiv(lhs, rhs))
}

// WrappingDivOpt returns the wrapping quotient of lhs and the value held
// by rhs, or None if rhs is None.
func WrappingDivOpt[T constraints.Integer](lhs T, rhs optops.Option[T]) optops.Option[T] {
	r, ok := rhs.Get()
	if !ok {
		return optops.None[T]()
	}
	return optops.Some(wrappingDiv(lhs, r))
}

// WrappingDivRef is like [WrappingDivOpt] but reads the right operand
// through a pointer, leaving the referenced option untouched. A nil rhs
// reads as None.
func WrappingDivRef[T constraints.Integer](lhs T, rhs *optops.Option[T]) optops.Option[T] {
	if rhs == nil {
		return optops.None[T]()
	}
	return WrappingDivOpt(lhs, *rhs)
}

// OptWrappingDiv returns the wrapping quotient of the value held by lhs
// and rhs, or None if lhs is None.
func OptWrappingDiv[T constraints.Integer](lhs optops.Option[T], rhs T) optops.Option[T] {
	l, ok := lhs.Get()
	if !ok {
		return optops.None[T]()
	}
	return optops.Some(wrappingDiv(l, rhs))
}

// OptWrappingDivOpt returns the wrapping quotient of the values held by
// lhs and rhs, or None if either is None.
func OptWrappingDivOpt[T constraints.Integer](lhs, rhs optops.Option[T]) optops.Option[T] {
	l, ok := lhs.Get()
	if !ok {
		return optops.None[T]()
	}
	return WrappingDivOpt(l, rhs)
}

// OptWrappingDivRef is like [OptWrappingDivOpt] but reads the right
// operand through a pointer, leaving the referenced option untouched.
// A nil rhs reads as None.
func OptWrappingDivRef[T constraints.Integer](lhs optops.Option[T], rhs *optops.Option[T]) optops.Option[T] {
	if rhs == nil {
		return optops.None[T]()
	}
	return OptWrappingDivOpt(lhs, *rhs)
}
