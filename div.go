package optops

// Operand marks a type as participating in option arithmetic.
// A concrete type must declare the marker before the call-shape functions
// accept it; the marker carries no behavior of its own.
type Operand interface {
	OptionOperand()
}

// Divider is the interface of types supporting plain division,
// mirroring the / operator.
//
// Div returns the quotient of the receiver and rhs. Most implementations
// panic if rhs is zero; a type whose division is total is free not to.
type Divider[T, R any] interface {
	Operand
	Div(rhs R) T
}

// DivAssigner is the interface of types supporting in-place division,
// mirroring the /= operator. DivAssign is expected on the pointer
// receiver.
//
// Most implementations panic if rhs is zero.
type DivAssigner[R any] interface {
	Operand
	DivAssign(rhs R)
}

// CheckedDivider is the interface of types supporting checked division.
//
// CheckedDiv never panics: it returns [ErrDivisionByZero] if rhs is zero,
// [ErrOverflow] if the exact quotient is not representable, and the
// quotient otherwise. There is no built-in operation to derive this from,
// so each concrete type supplies its own; see
// [github.com/a-kenji/optops/intops] for the integer primitives.
type CheckedDivider[T, R any] interface {
	Operand
	CheckedDiv(rhs R) (T, error)
}

// OverflowingDivider is the interface of types supporting overflowing
// division.
//
// OverflowingDiv returns the quotient along with a flag that is true
// exactly when the exact quotient was not representable, in which case
// the returned value is the wrapped substitute.
// Most implementations panic if rhs is zero.
type OverflowingDivider[T, R any] interface {
	Operand
	OverflowingDiv(rhs R) (T, bool)
}

// WrappingDivider is the interface of types supporting wrapping division,
// which wraps around at the numeric bounds instead of overflowing.
//
// Most implementations panic if rhs is zero.
type WrappingDivider[T, R any] interface {
	Operand
	WrappingDiv(rhs R) T
}

// Assignable constrains PT to the pointer type of T, with in-place
// division by R available on that pointer.
type Assignable[T, R any] interface {
	*T
	DivAssigner[R]
}

// Div returns the quotient of lhs and rhs.
// The result is always present; the option carrier keeps the signature
// aligned with the optional shapes.
func Div[T Divider[T, R], R any](lhs T, rhs R) Option[T] {
	return Some(lhs.Div(rhs))
}

// DivOpt returns the quotient of lhs and the value held by rhs,
// or None if rhs is None.
func DivOpt[T Divider[T, R], R any](lhs T, rhs Option[R]) Option[T] {
	r, ok := rhs.Get()
	if !ok {
		return None[T]()
	}
	return Some(lhs.Div(r))
}

// DivRef is like [DivOpt] but reads the right operand through a pointer,
// leaving the referenced option untouched. A nil rhs reads as None.
func DivRef[T Divider[T, R], R any](lhs T, rhs *Option[R]) Option[T] {
	if rhs == nil {
		return None[T]()
	}
	return DivOpt(lhs, *rhs)
}

// OptDiv returns the quotient of the value held by lhs and rhs,
// or None if lhs is None.
func OptDiv[T Divider[T, R], R any](lhs Option[T], rhs R) Option[T] {
	l, ok := lhs.Get()
	if !ok {
		return None[T]()
	}
	return Some(l.Div(rhs))
}

// OptDivOpt returns the quotient of the values held by lhs and rhs,
// or None if either is None.
func OptDivOpt[T Divider[T, R], R any](lhs Option[T], rhs Option[R]) Option[T] {
	l, ok := lhs.Get()
	if !ok {
		return None[T]()
	}
	return DivOpt(l, rhs)
}

// OptDivRef is like [OptDivOpt] but reads the right operand through a
// pointer, leaving the referenced option untouched. A nil rhs reads as
// None.
func OptDivRef[T Divider[T, R], R any](lhs Option[T], rhs *Option[R]) Option[T] {
	if rhs == nil {
		return None[T]()
	}
	return OptDivOpt(lhs, *rhs)
}

// DivAssign divides lhs by rhs in place.
func DivAssign[T DivAssigner[R], R any](lhs T, rhs R) {
	lhs.DivAssign(rhs)
}

// DivAssignOpt divides lhs in place by the value held by rhs.
// lhs is unchanged if rhs is None.
func DivAssignOpt[T DivAssigner[R], R any](lhs T, rhs Option[R]) {
	if r, ok := rhs.Get(); ok {
		lhs.DivAssign(r)
	}
}

// DivAssignRef is like [DivAssignOpt] but reads the right operand through
// a pointer, leaving the referenced option untouched. A nil rhs reads as
// None.
func DivAssignRef[T DivAssigner[R], R any](lhs T, rhs *Option[R]) {
	if rhs != nil {
		DivAssignOpt(lhs, *rhs)
	}
}

// OptDivAssign divides the value held by lhs in place by rhs.
// lhs is unchanged if it is None.
func OptDivAssign[T any, PT Assignable[T, R], R any](lhs *Option[T], rhs R) {
	if lhs == nil || !lhs.present {
		return
	}
	PT(&lhs.value).DivAssign(rhs)
}

// OptDivAssignOpt divides the value held by lhs in place by the value
// held by rhs. lhs is unchanged if either option is None.
func OptDivAssignOpt[T any, PT Assignable[T, R], R any](lhs *Option[T], rhs Option[R]) {
	if r, ok := rhs.Get(); ok {
		OptDivAssign[T, PT](lhs, r)
	}
}

// OptDivAssignRef is like [OptDivAssignOpt] but reads the right operand
// through a pointer, leaving the referenced option untouched. A nil rhs
// reads as None.
func OptDivAssignRef[T any, PT Assignable[T, R], R any](lhs *Option[T], rhs *Option[R]) {
	if rhs != nil {
		OptDivAssignOpt[T, PT](lhs, *rhs)
	}
}

// CheckedDiv returns the quotient of lhs and rhs.
//
// CheckedDiv never panics: it returns [ErrDivisionByZero] if rhs is zero
// and [ErrOverflow] if the exact quotient is not representable.
func CheckedDiv[T CheckedDivider[T, R], R any](lhs T, rhs R) (Option[T], error) {
	v, err := lhs.CheckedDiv(rhs)
	if err != nil {
		return None[T](), err
	}
	return Some(v), nil
}

// CheckedDivOpt returns the quotient of lhs and the value held by rhs,
// or (None, nil) if rhs is None. Absence is checked before the division
// is attempted.
func CheckedDivOpt[T CheckedDivider[T, R], R any](lhs T, rhs Option[R]) (Option[T], error) {
	r, ok := rhs.Get()
	if !ok {
		return None[T](), nil
	}
	return CheckedDiv(lhs, r)
}

// CheckedDivRef is like [CheckedDivOpt] but reads the right operand
// through a pointer, leaving the referenced option untouched. A nil rhs
// reads as None.
func CheckedDivRef[T CheckedDivider[T, R], R any](lhs T, rhs *Option[R]) (Option[T], error) {
	if rhs == nil {
		return None[T](), nil
	}
	return CheckedDivOpt(lhs, *rhs)
}

// OptCheckedDiv returns the quotient of the value held by lhs and rhs,
// or (None, nil) if lhs is None.
func OptCheckedDiv[T CheckedDivider[T, R], R any](lhs Option[T], rhs R) (Option[T], error) {
	l, ok := lhs.Get()
	if !ok {
		return None[T](), nil
	}
	return CheckedDiv(l, rhs)
}

// OptCheckedDivOpt returns the quotient of the values held by lhs and
// rhs, or (None, nil) if either is None.
func OptCheckedDivOpt[T CheckedDivider[T, R], R any](lhs Option[T], rhs Option[R]) (Option[T], error) {
	l, ok := lhs.Get()
	if !ok {
		return None[T](), nil
	}
	return CheckedDivOpt(l, rhs)
}

// OptCheckedDivRef is like [OptCheckedDivOpt] but reads the right operand
// through a pointer, leaving the referenced option untouched. A nil rhs
// reads as None.
func OptCheckedDivRef[T CheckedDivider[T, R], R any](lhs Option[T], rhs *Option[R]) (Option[T], error) {
	if rhs == nil {
		return None[T](), nil
	}
	return OptCheckedDivOpt(lhs, *rhs)
}

// OverflowingDiv returns the quotient of lhs and rhs along with a flag
// that is true exactly when the exact quotient was not representable, in
// which case the returned value is the wrapped substitute.
func OverflowingDiv[T OverflowingDivider[T, R], R any](lhs T, rhs R) (Option[T], bool) {
	v, over := lhs.OverflowingDiv(rhs)
	return Some(v), over
}

// OverflowingDivOpt returns the quotient of lhs and the value held by
// rhs, or (None, false) if rhs is None. The flag is meaningful only when
// the option is present.
func OverflowingDivOpt[T OverflowingDivider[T, R], R any](lhs T, rhs Option[R]) (Option[T], bool) {
	r, ok := rhs.Get()
	if !ok {
		return None[T](), false
	}
	return OverflowingDiv(lhs, r)
}

// OverflowingDivRef is like [OverflowingDivOpt] but reads the right
// operand through a pointer, leaving the referenced option untouched.
// A nil rhs reads as None.
func OverflowingDivRef[T OverflowingDivider[T, R], R any](lhs T, rhs *Option[R]) (Option[T], bool) {
	if rhs == nil {
		return None[T](), false
	}
	return OverflowingDivOpt(lhs, *rhs)
}

// OptOverflowingDiv returns the quotient of the value held by lhs and
// rhs, or (None, false) if lhs is None.
func OptOverflowingDiv[T OverflowingDivider[T, R], R any](lhs Option[T], rhs R) (Option[T], bool) {
	l, ok := lhs.Get()
	if !ok {
		return None[T](), false
	}
	return OverflowingDiv(l, rhs)
}

// OptOverflowingDivOpt returns the quotient of the values held by lhs
// and rhs, or (None, false) if either is None.
func OptOverflowingDivOpt[T OverflowingDivider[T, R], R any](lhs Option[T], rhs Option[R]) (Option[T], bool) {
	l, ok := lhs.Get()
	if !ok {
		return None[T](), false
	}
	return OverflowingDivOpt(l, rhs)
}

// OptOverflowingDivRef is like [OptOverflowingDivOpt] but reads the right
// operand through a pointer, leaving the referenced option untouched.
// A nil rhs reads as None.
func OptOverflowingDivRef[T OverflowingDivider[T, R], R any](lhs Option[T], rhs *Option[R]) (Option[T], bool) {
	if rhs == nil {
		return None[T](), false
	}
	return OptOverflowingDivOpt(lhs, *rhs)
}

// WrappingDiv returns the quotient of lhs and rhs, wrapping around at
// the numeric bounds instead of overflowing.
func WrappingDiv[T WrappingDivider[T, R], R any](lhs T, rhs R) Option[T] {
	return Some(lhs.WrappingDiv(rhs))
}

// WrappingDivOpt returns the wrapping quotient of lhs and the value held
// by rhs, or None if rhs is None.
func WrappingDivOpt[T WrappingDivider[T, R], R any](lhs T, rhs Option[R]) Option[T] {
	r, ok := rhs.Get()
	if !ok {
		return None[T]()
	}
	return Some(lhs.WrappingDiv(r))
}

// WrappingDivRef is like [WrappingDivOpt] but reads the right operand
// through a pointer, leaving the referenced option untouched. A nil rhs
// reads as None.
func WrappingDivRef[T WrappingDivider[T, R], R any](lhs T, rhs *Option[R]) Option[T] {
	if rhs == nil {
		return None[T]()
	}
	return WrappingDivOpt(lhs, *rhs)
}

// OptWrappingDiv returns the wrapping quotient of the value held by lhs
// and rhs, or None if lhs is None.
func OptWrappingDiv[T WrappingDivider[T, R], R any](lhs Option[T], rhs R) Option[T] {
	l, ok := lhs.Get()
	if !ok {
		return None[T]()
	}
	return Some(l.WrappingDiv(rhs))
}

// OptWrappingDivOpt returns the wrapping quotient of the values held by
// lhs and rhs, or None if either is None.
func OptWrappingDivOpt[T WrappingDivider[T, R], R any](lhs Option[T], rhs Option[R]) Option[T] {
	l, ok := lhs.Get()
	if !ok {
		return None[T]()
	}
	return WrappingDivOpt(l, rhs)
}

// OptWrappingDivRef is like [OptWrappingDivOpt] but reads the right
// operand through a pointer, leaving the referenced option untouched.
// A nil rhs reads as None.
func OptWrappingDivRef[T WrappingDivider[T, R], R any](lhs Option[T], rhs *Option[R]) Option[T] {
	if rhs == nil {
		return None[T]()
	}
	return OptWrappingDivOpt(lhs, *rhs)
}
